// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package govern_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/test"
)

func TestTransition(t *testing.T) {
	test.ExpectSuccess(t, govern.Transition(govern.EmulatorStart, govern.Initialising))
	test.ExpectSuccess(t, govern.Transition(govern.Initialising, govern.Running))
	test.ExpectSuccess(t, govern.Transition(govern.Running, govern.Paused))
	test.ExpectSuccess(t, govern.Transition(govern.Paused, govern.Stepping))
	test.ExpectSuccess(t, govern.Transition(govern.Running, govern.Halted))
	test.ExpectSuccess(t, govern.Transition(govern.Halted, govern.Initialising))
	test.ExpectSuccess(t, govern.Transition(govern.Halted, govern.Ending))

	test.ExpectFailure(t, govern.Transition(govern.Running, govern.EmulatorStart))
	test.ExpectFailure(t, govern.Transition(govern.Halted, govern.Running))
	test.ExpectFailure(t, govern.Transition(govern.Ending, govern.Running))
	test.ExpectFailure(t, govern.Transition(govern.Ending, govern.Initialising))
}

func TestString(t *testing.T) {
	test.ExpectEquality(t, govern.Halted.String(), "Halted")
	test.ExpectEquality(t, govern.Stepping.String(), "Stepping")
}
