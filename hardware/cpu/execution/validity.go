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
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/cpu/timing"
)

// IsValid checks whether the instance of Result contains information
// consistent with the timing values.
func (r Result) IsValid(t timing.Timing) error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	if r.Address&0x01 == 0x01 {
		return curated.Errorf("cpu: instruction address is not aligned (%#04x)", r.Address)
	}

	if r.Waiting {
		if r.Instruction.Operator != instructions.LdKey {
			return curated.Errorf("cpu: waiting for key after a %s instruction", r.Instruction.Operator)
		}
		if r.Cost != t.KeyWaitPoll {
			return curated.Errorf("cpu: cost of waiting for key wrong (%d instead of %d)", r.Cost, t.KeyWaitPoll)
		}
		if r.KeyFound && r.Key > 0x0f {
			return curated.Errorf("cpu: waiting for key ended with an impossible key (%#02x)", r.Key)
		}
		return nil
	}

	if r.KeyFound {
		return curated.Errorf("cpu: key found while not waiting for key")
	}

	if r.Cost != t.Cost(r.Instruction) {
		return curated.Errorf("cpu: cost wrong for opcode %#04x [%s] (%d instead of %d)",
			r.Instruction.Opcode,
			r.Instruction.Operator,
			r.Cost,
			t.Cost(r.Instruction))
	}

	return nil
}
