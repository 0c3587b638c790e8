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
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// Sentinel error patterns.
const (
	EmptyProgram    = "disassembly: program is empty"
	ProgramTooLarge = "disassembly: program too large (%d bytes)"
)

// Disassembly represents the annotated disassembly of a program.
type Disassembly struct {
	program []uint8

	// one entry for every byte of the program. the second byte of an
	// instruction is a data entry unless it is also the start of another
	// instruction
	entries []*Entry

	// labels indexed by the address they refer to
	labels map[uint16]string
}

// FromProgram disassembles the program by following every flow path from the
// program origin.
func FromProgram(program []uint8) (*Disassembly, error) {
	if len(program) == 0 {
		return nil, curated.Errorf(EmptyProgram)
	}
	if len(program) > memory.MaxProgramSize {
		return nil, curated.Errorf(ProgramTooLarge, len(program))
	}

	dsm := &Disassembly{
		program: make([]uint8, len(program)),
		entries: make([]*Entry, len(program)),
		labels:  make(map[uint16]string),
	}
	copy(dsm.program, program)

	for i, d := range dsm.program {
		dsm.entries[i] = &Entry{
			Address: memory.ProgramOrigin + uint16(i),
			Level:   EntryLevelData,
			Data:    d,
		}
	}

	dsm.flow(memory.ProgramOrigin)

	return dsm, nil
}

// GetEntryByAddress returns the entry for the address. Returns false if the
// address is not part of the program.
func (dsm *Disassembly) GetEntryByAddress(address uint16) (*Entry, bool) {
	if !dsm.inProgram(address) {
		return nil, false
	}
	return dsm.entries[address-memory.ProgramOrigin], true
}

// inProgram returns true if the address is part of the program.
func (dsm *Disassembly) inProgram(address uint16) bool {
	return address >= memory.ProgramOrigin && int(address-memory.ProgramOrigin) < len(dsm.program)
}

// decode the instruction at the address. returns false if the address or the
// address immediately after it is not part of the program.
func (dsm *Disassembly) decode(address uint16) (instructions.Instruction, bool) {
	if !dsm.inProgram(address) || !dsm.inProgram(address+1) {
		return instructions.Instruction{}, false
	}
	i := address - memory.ProgramOrigin
	return instructions.DecodeBytes(dsm.program[i], dsm.program[i+1]), true
}

// Iterate calls the function for every entry that would appear in a listing,
// in address order. the second byte of an instruction is skipped.
func (dsm *Disassembly) Iterate(f func(e *Entry)) {
	for i := 0; i < len(dsm.entries); i++ {
		e := dsm.entries[i]
		f(e)
		if e.Level == EntryLevelCode {
			i++
		}
	}
}
