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

package debugger

import (
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/debugger/terminal"
)

// handleUserInput drains the user input channel. user input is only possible
// when a display window is attached.
func (dbg *Debugger) handleUserInput() {
	for {
		select {
		case ev := <-dbg.userinput:
			err := dbg.controllers.HandleUserInput(ev, dbg.itr.Input)
			if err != nil {
				dbg.printLine(terminal.StyleError, "%s", err)
				continue // for loop
			}

			switch {
			case dbg.controllers.Quit:
				dbg.setState(govern.Ending)
				return

			case dbg.controllers.Reset:
				err = dbg.reset()
				if err != nil {
					dbg.printLine(terminal.StyleError, "%s", err)
				}

			case dbg.controllers.Step:
				if dbg.state == govern.Paused {
					err = dbg.step(1)
					if err != nil {
						dbg.printLine(terminal.StyleError, "%s", err)
					}
				}
			}

		default:
			return
		}
	}
}
