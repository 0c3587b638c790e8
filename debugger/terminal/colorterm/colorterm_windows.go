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

package colorterm

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
)

// ColorTerminal cannot be initialised on windows. Use the plain terminal
// instead.
type ColorTerminal struct{}

func (*ColorTerminal) Initialise() error {
	return curated.Errorf("colorterm: not supported on this platform")
}

func (*ColorTerminal) CleanUp() {}
func (*ColorTerminal) RegisterTabCompletion(terminal.TabCompletion) {}
func (*ColorTerminal) IsInteractive() bool { return false }
func (*ColorTerminal) TermPrintLine(terminal.Style, string) {}

func (*ColorTerminal) TermRead([]byte, terminal.Prompt, *terminal.ReadEvents) (int, error) {
	return 0, nil
}
