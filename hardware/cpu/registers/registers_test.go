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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8/test"
)

func TestRegister(t *testing.T) {
	r := registers.NewRegister(0, "V1")
	test.ExpectSuccess(t, r.IsZero())
	test.ExpectEquality(t, r.Label(), "V1")

	r.Load(127)
	test.ExpectEquality(t, r.Add(2), 0)
	test.ExpectEquality(t, r.Value(), 129)
	test.ExpectEquality(t, r.String(), "V1=0x81")

	// addition boundary
	r.Load(0xff)
	test.ExpectEquality(t, r.Add(1), 1)
	test.ExpectEquality(t, r.Value(), 0)
	test.ExpectSuccess(t, r.IsZero())

	// subtraction
	r.Load(11)
	test.ExpectEquality(t, r.Subtract(1), 0)
	test.ExpectEquality(t, r.Value(), 10)

	// subtraction of equal values does not borrow
	test.ExpectEquality(t, r.Subtract(10), 0)
	test.ExpectEquality(t, r.Value(), 0)

	// subtraction boundary
	test.ExpectEquality(t, r.Subtract(1), 1)
	test.ExpectEquality(t, r.Value(), 0xff)

	r.Reset()
	test.ExpectEquality(t, r.Value(), 0)
}

func TestShift(t *testing.T) {
	r := registers.NewRegister(0x81, "V0")
	test.ExpectEquality(t, r.ShiftRight(), 1)
	test.ExpectEquality(t, r.Value(), 0x40)
	test.ExpectEquality(t, r.ShiftRight(), 0)
	test.ExpectEquality(t, r.Value(), 0x20)

	r.Load(0x81)
	test.ExpectEquality(t, r.ShiftLeft(), 1)
	test.ExpectEquality(t, r.Value(), 0x02)
	test.ExpectEquality(t, r.ShiftLeft(), 0)
	test.ExpectEquality(t, r.Value(), 0x04)
}

func TestAddress(t *testing.T) {
	pc := registers.NewAddress(0x200, "PC")
	test.ExpectEquality(t, pc.Value(), 0x200)
	test.ExpectEquality(t, pc.String(), "PC=0x0200")

	test.ExpectFailure(t, pc.Add(2))
	test.ExpectEquality(t, pc.Value(), 0x202)

	// 16-bit wrap
	pc.Load(0xffff)
	test.ExpectSuccess(t, pc.Add(1))
	test.ExpectEquality(t, pc.Value(), 0)
	test.ExpectSuccess(t, pc.Subtract(1))
	test.ExpectEquality(t, pc.Value(), 0xffff)

	pc.Reset()
	test.ExpectEquality(t, pc.Value(), 0)
}
