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

package timing

import "github.com/jetsetilly/gopher8/hardware/cpu/instructions"

// Cost returns the time cost of the instruction. The cost of an Invalid
// instruction is zero.
func (t Timing) Cost(ins instructions.Instruction) int {
	switch ins.Operator {
	case instructions.Cls:
		return t.ClearScreen
	case instructions.Ret, instructions.Jp, instructions.Call, instructions.JpV0:
		return t.Flow
	case instructions.SeImm, instructions.SneImm:
		return t.SkipImmediate
	case instructions.SeReg, instructions.SneReg:
		return t.SkipRegister
	case instructions.LdImm:
		return t.LoadImmediate
	case instructions.AddImm:
		return t.AddImmediate
	case instructions.LdReg, instructions.Or, instructions.And, instructions.Xor,
		instructions.AddReg, instructions.Sub, instructions.Shr, instructions.Subn,
		instructions.Shl:
		return t.ALU
	case instructions.LdIndex:
		return t.LoadIndex
	case instructions.Rnd:
		return t.Random
	case instructions.Drw:
		return t.Draw(int(ins.N()))
	case instructions.Skp, instructions.Sknp:
		return t.SkipKey
	case instructions.LdFromDT, instructions.LdToDT, instructions.LdToST:
		return t.Timers
	case instructions.LdKey:
		return t.KeyWait
	case instructions.AddIndex:
		return t.AddIndex
	case instructions.LdFont:
		return t.Font
	case instructions.LdBCD:
		return t.BCD
	case instructions.StoreBlock, instructions.LoadBlock:
		return t.RegisterBlock
	}
	return 0
}
