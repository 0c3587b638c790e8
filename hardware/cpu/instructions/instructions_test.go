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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/test"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		opcode   uint16
		operator instructions.Operator
		asm      string
	}{
		{0x00e0, instructions.Cls, "CLS"},
		{0x00ee, instructions.Ret, "RET"},
		{0x1234, instructions.Jp, "JP $234"},
		{0x2234, instructions.Call, "CALL $234"},
		{0x3234, instructions.SeImm, "SE V2, $34"},
		{0x4234, instructions.SneImm, "SNE V2, $34"},
		{0x5230, instructions.SeReg, "SE V2, V3"},
		{0x6234, instructions.LdImm, "LD V2, $34"},
		{0x7234, instructions.AddImm, "ADD V2, $34"},
		{0x8230, instructions.LdReg, "LD V2, V3"},
		{0x8231, instructions.Or, "OR V2, V3"},
		{0x8232, instructions.And, "AND V2, V3"},
		{0x8233, instructions.Xor, "XOR V2, V3"},
		{0x8234, instructions.AddReg, "ADD V2, V3"},
		{0x8235, instructions.Sub, "SUB V2, V3"},
		{0x8236, instructions.Shr, "SHR V2"},
		{0x8237, instructions.Subn, "SUBN V2, V3"},
		{0x823e, instructions.Shl, "SHL V2"},
		{0x9230, instructions.SneReg, "SNE V2, V3"},
		{0xa234, instructions.LdIndex, "LD I, $234"},
		{0xb234, instructions.JpV0, "JP V0, $234"},
		{0xc234, instructions.Rnd, "RND V2, $34"},
		{0xd235, instructions.Drw, "DRW V2, V3, $5"},
		{0xe29e, instructions.Skp, "SKP V2"},
		{0xe2a1, instructions.Sknp, "SKNP V2"},
		{0xf207, instructions.LdFromDT, "LD V2, DT"},
		{0xf20a, instructions.LdKey, "LD V2, K"},
		{0xf215, instructions.LdToDT, "LD DT, V2"},
		{0xf218, instructions.LdToST, "LD ST, V2"},
		{0xf21e, instructions.AddIndex, "ADD I, V2"},
		{0xf229, instructions.LdFont, "LD F, V2"},
		{0xf233, instructions.LdBCD, "LD B, V2"},
		{0xf255, instructions.StoreBlock, "LD [I], V2"},
		{0xf265, instructions.LoadBlock, "LD V2, [I]"},
	}

	seen := make(map[instructions.Operator]bool)

	for _, tt := range tests {
		ins := instructions.Decode(tt.opcode)
		test.ExpectEquality(t, ins.Operator, tt.operator, tt.asm)
		test.ExpectEquality(t, ins.String(), tt.asm)
		test.ExpectEquality(t, ins.Opcode, tt.opcode)
		seen[ins.Operator] = true
	}

	// every operator other than Invalid must have been decoded
	test.ExpectEquality(t, len(seen), int(instructions.NumOperators)-1)
}

func TestOperands(t *testing.T) {
	ins := instructions.DecodeBytes(0x61, 0x0a)
	test.ExpectEquality(t, ins.Operator, instructions.LdImm)
	test.ExpectEquality(t, ins.X(), 1)
	test.ExpectEquality(t, ins.KK(), 0x0a)
	test.ExpectEquality(t, ins.String(), "LD V1, $0A")

	ins = instructions.Decode(0xdab7)
	test.ExpectEquality(t, ins.Operator, instructions.Drw)
	test.ExpectEquality(t, ins.X(), 0xa)
	test.ExpectEquality(t, ins.Y(), 0xb)
	test.ExpectEquality(t, ins.N(), 0x7)
	test.ExpectEquality(t, ins.Nibbles(), [4]uint8{0xd, 0xa, 0xb, 0x7})

	ins = instructions.Decode(0xbfff)
	test.ExpectEquality(t, ins.NNN(), 0xfff)
}

func TestInvalid(t *testing.T) {
	for _, opcode := range []uint16{0x0000, 0x0123, 0x00e1, 0x5231, 0x8238, 0x823f, 0x9231, 0xe29f, 0xe2a2, 0xf200, 0xf2ff} {
		ins := instructions.Decode(opcode)
		test.ExpectEquality(t, ins.Operator, instructions.Invalid, opcode)
		test.ExpectEquality(t, ins.Definition().Category, instructions.Halt)
	}

	ins := instructions.Decode(0x5231)
	test.ExpectEquality(t, ins.String(), "??? $5231")
	test.ExpectEquality(t, ins.Nibbles(), [4]uint8{0x5, 0x2, 0x3, 0x1})
}

func TestDecodeIsTotal(t *testing.T) {
	for opcode := 0; opcode <= 0xffff; opcode++ {
		ins := instructions.Decode(uint16(opcode))
		if ins.Operator < instructions.Invalid || ins.Operator >= instructions.NumOperators {
			t.Fatalf("opcode %#04x decoded to an unknown operator (%d)", opcode, ins.Operator)
		}
		if ins.String() == "" {
			t.Fatalf("opcode %#04x has no string representation", opcode)
		}
	}
}

func TestCategory(t *testing.T) {
	test.ExpectEquality(t, instructions.Decode(0x1200).Definition().Category, instructions.Flow)
	test.ExpectEquality(t, instructions.Decode(0xb200).Definition().Category, instructions.Flow)
	test.ExpectEquality(t, instructions.Decode(0x2200).Definition().Category, instructions.Subroutine)
	test.ExpectEquality(t, instructions.Decode(0x00ee).Definition().Category, instructions.Subroutine)
	test.ExpectEquality(t, instructions.Decode(0xe1a1).Definition().Category, instructions.Skip)
	test.ExpectEquality(t, instructions.Decode(0xf10a).Definition().Category, instructions.Wait)
	test.ExpectEquality(t, instructions.Decode(0x6000).Definition().Category, instructions.Modify)
	test.ExpectEquality(t, instructions.Flow.String(), "Flow")
}
