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

package instructions

import (
	"fmt"
)

// Instruction is a decoded opcode. Operand fields are extracted from the
// opcode on request.
type Instruction struct {
	Operator Operator
	Opcode   uint16
}

// Decode the opcode. Decoding never fails. Unrecognised opcodes, including
// the 0nnn machine code call, decode as the Invalid operator.
func Decode(opcode uint16) Instruction {
	return Instruction{
		Operator: decodeOperator(opcode),
		Opcode:   opcode,
	}
}

// DecodeBytes decodes the opcode formed by the two bytes. The hi byte is the
// byte at the lower address.
func DecodeBytes(hi uint8, lo uint8) Instruction {
	return Decode(uint16(hi)<<8 | uint16(lo))
}

func decodeOperator(opcode uint16) Operator {
	n := opcode & 0x000f
	kk := opcode & 0x00ff

	switch opcode >> 12 {
	case 0x0:
		switch opcode {
		case 0x00e0:
			return Cls
		case 0x00ee:
			return Ret
		}
	case 0x1:
		return Jp
	case 0x2:
		return Call
	case 0x3:
		return SeImm
	case 0x4:
		return SneImm
	case 0x5:
		if n == 0x0 {
			return SeReg
		}
	case 0x6:
		return LdImm
	case 0x7:
		return AddImm
	case 0x8:
		switch n {
		case 0x0:
			return LdReg
		case 0x1:
			return Or
		case 0x2:
			return And
		case 0x3:
			return Xor
		case 0x4:
			return AddReg
		case 0x5:
			return Sub
		case 0x6:
			return Shr
		case 0x7:
			return Subn
		case 0xe:
			return Shl
		}
	case 0x9:
		if n == 0x0 {
			return SneReg
		}
	case 0xa:
		return LdIndex
	case 0xb:
		return JpV0
	case 0xc:
		return Rnd
	case 0xd:
		return Drw
	case 0xe:
		switch kk {
		case 0x9e:
			return Skp
		case 0xa1:
			return Sknp
		}
	case 0xf:
		switch kk {
		case 0x07:
			return LdFromDT
		case 0x0a:
			return LdKey
		case 0x15:
			return LdToDT
		case 0x18:
			return LdToST
		case 0x1e:
			return AddIndex
		case 0x29:
			return LdFont
		case 0x33:
			return LdBCD
		case 0x55:
			return StoreBlock
		case 0x65:
			return LoadBlock
		}
	}

	return Invalid
}

// X is the register index in the second nibble of the opcode.
func (ins Instruction) X() uint8 {
	return uint8(ins.Opcode>>8) & 0x0f
}

// Y is the register index in the third nibble of the opcode.
func (ins Instruction) Y() uint8 {
	return uint8(ins.Opcode>>4) & 0x0f
}

// N is the value of the fourth nibble of the opcode.
func (ins Instruction) N() uint8 {
	return uint8(ins.Opcode) & 0x0f
}

// KK is the value of the low byte of the opcode.
func (ins Instruction) KK() uint8 {
	return uint8(ins.Opcode)
}

// NNN is the address in the low twelve bits of the opcode.
func (ins Instruction) NNN() uint16 {
	return ins.Opcode & 0x0fff
}

// Nibbles returns the four nibbles of the opcode, most significant first.
func (ins Instruction) Nibbles() [4]uint8 {
	return [4]uint8{
		uint8(ins.Opcode >> 12),
		ins.X(),
		ins.Y(),
		ins.N(),
	}
}

// Definition returns the definition of the instruction's operator.
func (ins Instruction) Definition() Definition {
	return ins.Operator.Definition()
}

// Operands returns the operands of the instruction as a string, in the form
// used by assemblers.
func (ins Instruction) Operands() string {
	switch ins.Definition().Operands {
	case NoOperands:
		return ""
	case Addr:
		return fmt.Sprintf("$%03X", ins.NNN())
	case V0Addr:
		return fmt.Sprintf("V0, $%03X", ins.NNN())
	case VxByte:
		return fmt.Sprintf("V%X, $%02X", ins.X(), ins.KK())
	case VxVy:
		return fmt.Sprintf("V%X, V%X", ins.X(), ins.Y())
	case Vx:
		return fmt.Sprintf("V%X", ins.X())
	case IndexAddr:
		return fmt.Sprintf("I, $%03X", ins.NNN())
	case VxVyN:
		return fmt.Sprintf("V%X, V%X, $%X", ins.X(), ins.Y(), ins.N())
	case VxDT:
		return fmt.Sprintf("V%X, DT", ins.X())
	case VxK:
		return fmt.Sprintf("V%X, K", ins.X())
	case DTVx:
		return fmt.Sprintf("DT, V%X", ins.X())
	case STVx:
		return fmt.Sprintf("ST, V%X", ins.X())
	case IndexVx:
		return fmt.Sprintf("I, V%X", ins.X())
	case FontVx:
		return fmt.Sprintf("F, V%X", ins.X())
	case BCDVx:
		return fmt.Sprintf("B, V%X", ins.X())
	case BlockVx:
		return fmt.Sprintf("[I], V%X", ins.X())
	case VxBlock:
		return fmt.Sprintf("V%X, [I]", ins.X())
	}
	return fmt.Sprintf("$%04X", ins.Opcode)
}

// String returns the instruction as it would be written in assembly.
func (ins Instruction) String() string {
	operands := ins.Operands()
	if operands == "" {
		return ins.Operator.String()
	}
	return fmt.Sprintf("%s %s", ins.Operator, operands)
}
