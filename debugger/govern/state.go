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

package govern

// State of the emulation as a whole.
type State int

// List of valid State values. EmulatorStart is the zero value and is never
// returned to.
const (
	EmulatorStart State = iota

	// a program is being loaded or the interpreter is being reset
	Initialising

	Paused
	Stepping
	Running

	// the CPU has faulted. only a reset will get the emulation going again
	Halted

	Ending
)

var stateNames = [...]string{
	EmulatorStart: "EmulatorStart",
	Initialising:  "Initialising",
	Paused:        "Paused",
	Stepping:      "Stepping",
	Running:       "Running",
	Halted:        "Halted",
	Ending:        "Ending",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return ""
	}
	return stateNames[s]
}

// Transition reports whether the emulation may move from one state to
// another. Ending may always be entered and never left. Initialising may be
// entered from anything but Ending. Halted may only be left through
// Initialising. EmulatorStart is never entered.
func Transition(from State, to State) bool {
	switch {
	case to == EmulatorStart:
		return false
	case to == Ending:
		return true
	case from == Ending:
		return false
	case to == Initialising:
		return true
	}
	return from != Halted
}
