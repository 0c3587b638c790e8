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

package disassembly

import (
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// flow marks every instruction that can be reached from the address.
//
// every jump, subroutine call and skip is considered. however, it is possible
// for real execution of the program to reach places not considered by the flow
// disassembly. for example:
//
//	o jumps through the V0 register
//	o return addresses that do not follow a CALL
//	o self-modifying code
func (dsm *Disassembly) flow(address uint16) {
	pending := []uint16{address}

	for len(pending) > 0 {
		address = pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		for {
			e, ok := dsm.GetEntryByAddress(address)
			if !ok || e.Level == EntryLevelCode {
				break // for loop
			}

			ins, ok := dsm.decode(address)
			if !ok {
				break // for loop
			}

			// an invalid instruction would halt the interpreter. we can
			// assume that the flow does not really reach it
			if ins.Operator == instructions.Invalid {
				break // for loop
			}

			e.Level = EntryLevelCode
			e.Instruction = ins

			next := address + 2

			switch ins.Operator {
			case instructions.Jp:
				dsm.addLabel(ins.NNN())
				pending = append(pending, ins.NNN())
				next = 0

			case instructions.Call:
				dsm.addLabel(ins.NNN())
				pending = append(pending, ins.NNN())

			case instructions.Ret, instructions.JpV0:
				// the destination is not known without running the program
				next = 0

			default:
				if ins.Definition().Category == instructions.Skip {
					pending = append(pending, address+4)
				}
			}

			if next == 0 {
				break // for loop
			}
			address = next
		}
	}
}

// addLabel adds a label for the address if the address is part of the program.
func (dsm *Disassembly) addLabel(address uint16) {
	e, ok := dsm.GetEntryByAddress(address)
	if !ok {
		return
	}
	e.Label = labelName(address)
	dsm.labels[address] = e.Label
}
