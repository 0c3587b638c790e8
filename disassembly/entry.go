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
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// EntryLevel describes how the disassembler has classified an address.
type EntryLevel int

// List of valid EntryLevel values.
const (
	// the address has not been reached by the flow disassembly
	EntryLevelData EntryLevel = iota

	// the address is the first byte of an instruction reached by the flow
	// disassembly
	EntryLevelCode
)

func (l EntryLevel) String() string {
	switch l {
	case EntryLevelData:
		return "data"
	case EntryLevelCode:
		return "code"
	}
	return "unknown entry level"
}

// Entry is a disassembled address.
type Entry struct {
	Address uint16
	Level   EntryLevel

	// the decoded instruction. only valid if Level is EntryLevelCode
	Instruction instructions.Instruction

	// the byte at the address
	Data uint8

	// the address is the target of a jump or subroutine call
	Label string
}

// labelName is the name of the label for the address.
func labelName(address uint16) string {
	return fmt.Sprintf("L_%03X", address)
}

// Mnemonic returns the mnemonic of the entry. Data entries have the .byte
// mnemonic.
func (e *Entry) Mnemonic() string {
	if e.Level != EntryLevelCode {
		return ".byte"
	}
	return e.Instruction.Definition().Mnemonic
}

// Operand returns the operands of the entry. Addresses that have a label are
// replaced by the label.
func (e *Entry) Operand(dsm *Disassembly) string {
	if e.Level != EntryLevelCode {
		return fmt.Sprintf("$%02X", e.Data)
	}

	switch e.Instruction.Operator {
	case instructions.Jp, instructions.Call:
		if l, ok := dsm.labels[e.Instruction.NNN()]; ok {
			return l
		}
	}

	return e.Instruction.Operands()
}

// ByteCode returns the bytes of the entry as a hex string.
func (e *Entry) ByteCode() string {
	if e.Level != EntryLevelCode {
		return fmt.Sprintf("%02X", e.Data)
	}
	return fmt.Sprintf("%04X", e.Instruction.Opcode)
}
