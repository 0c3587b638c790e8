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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// Result records the state and effect of a single step of the CPU.
type Result struct {
	// the address of the instruction. for a step spent waiting for a key,
	// the address is that of the instruction following the LD Vx, K
	// instruction
	Address uint16

	// the decoded instruction
	Instruction instructions.Instruction

	// the time cost of the step in microseconds
	Cost int

	// the step was spent polling the keyboard. the Instruction field is the
	// LD Vx, K instruction that caused the wait
	Waiting bool

	// the key that ended a waiting state. only valid if Waiting is true
	KeyFound bool
	Key      uint8

	// whether this data has been finalised. the fields above are undefined
	// unless Final is true
	Final bool
}

func (r Result) String() string {
	if !r.Final {
		return "unfinished instruction"
	}
	if r.Waiting {
		if r.KeyFound {
			return fmt.Sprintf("%#04x waiting for key: %X found (%d)", r.Address, r.Key, r.Cost)
		}
		return fmt.Sprintf("%#04x waiting for key (%d)", r.Address, r.Cost)
	}
	return fmt.Sprintf("%#04x %04x %s (%d)", r.Address, r.Instruction.Opcode, r.Instruction, r.Cost)
}
