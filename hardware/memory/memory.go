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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/logger"
)

// Layout of the address space.
const (
	Size          = 0x1000
	FontOrigin    = 0x000
	ProgramOrigin = 0x200

	// the maximum number of bytes in a program image
	MaxProgramSize = Size - ProgramOrigin
)

// Sentinel error patterns.
const (
	AddressOutOfRange = "memory: address out of range (%#04x)"
	ProgramTooLarge   = "memory: program too large (%d bytes with a maximum of %d)"
)

// Memory is the complete address space of the interpreter.
type Memory struct {
	ins *instance.Instance
	ram [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The instance argument can be nil, in which case memory accesses are never
// logged and the random state preference is ignored.
func NewMemory(ins *instance.Instance) *Memory {
	mem := &Memory{ins: ins}
	mem.Reset()
	return mem
}

// Reset clears memory and restores the font. If the random state preference
// is set then memory outside of the font is filled with random values.
func (mem *Memory) Reset() {
	if mem.ins != nil && mem.ins.Prefs.Live.RandomState.Load() {
		for i := range mem.ram {
			mem.ram[i] = uint8(mem.ins.Random.NoRewind(0x100))
		}
	} else {
		mem.ram = [Size]uint8{}
	}
	copy(mem.ram[FontOrigin:], font[:])
}

func (mem *Memory) trace() bool {
	return mem.ins != nil && mem.ins.TraceAccess()
}

// Read a single byte. Implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if address >= Size {
		return 0, curated.Errorf(AddressOutOfRange, address)
	}
	if mem.trace() {
		logger.Logf(mem.ins, "memory", "read %#04x = %#02x", address, mem.ram[address])
	}
	return mem.ram[address], nil
}

// Read16 reads two consecutive bytes and returns them as a big-endian word.
// Implements the cpubus.Memory interface.
func (mem *Memory) Read16(address uint16) (uint16, error) {
	if address >= Size-1 {
		return 0, curated.Errorf(AddressOutOfRange, address)
	}
	v := uint16(mem.ram[address])<<8 | uint16(mem.ram[address+1])
	if mem.trace() {
		logger.Logf(mem.ins, "memory", "read16 %#04x = %#04x", address, v)
	}
	return v, nil
}

// Write a single byte. Implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) error {
	if address >= Size {
		return curated.Errorf(AddressOutOfRange, address)
	}
	if mem.trace() {
		logger.Logf(mem.ins, "memory", "write %#04x = %#02x", address, data)
	}
	mem.ram[address] = data
	return nil
}

// WriteBlock writes the data to consecutive addresses beginning at the origin.
// Memory is not changed if the block does not fit in the address space.
func (mem *Memory) WriteBlock(origin uint16, data []uint8) error {
	if int(origin)+len(data) > Size {
		return curated.Errorf(AddressOutOfRange, int(origin)+len(data)-1)
	}
	if mem.trace() {
		logger.Logf(mem.ins, "memory", "write block %#04x with length %d", origin, len(data))
	}
	copy(mem.ram[origin:], data)
	return nil
}

// LoadProgram writes the program image at ProgramOrigin.
func (mem *Memory) LoadProgram(data []uint8) error {
	if len(data) > MaxProgramSize {
		return curated.Errorf(ProgramTooLarge, len(data), MaxProgramSize)
	}
	return mem.WriteBlock(ProgramOrigin, data)
}

// Peek returns the byte at the address without logging.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	if address >= Size {
		return 0, curated.Errorf(AddressOutOfRange, address)
	}
	return mem.ram[address], nil
}

// Poke writes the byte to the address without logging.
func (mem *Memory) Poke(address uint16, data uint8) error {
	if address >= Size {
		return curated.Errorf(AddressOutOfRange, address)
	}
	mem.ram[address] = data
	return nil
}

// Dump returns a hex dump of memory between the two addresses inclusive. Each
// line shows sixteen bytes.
func (mem *Memory) Dump(from uint16, to uint16) (string, error) {
	if from >= Size {
		return "", curated.Errorf(AddressOutOfRange, from)
	}
	if to >= Size {
		return "", curated.Errorf(AddressOutOfRange, to)
	}
	if to < from {
		from, to = to, from
	}

	s := strings.Builder{}
	for a := from &^ 0x0f; a <= to; a += 0x10 {
		s.WriteString(fmt.Sprintf("%03x:", a))
		for i := uint16(0); i < 0x10; i++ {
			if a+i < from || a+i > to {
				s.WriteString("   ")
			} else {
				s.WriteString(fmt.Sprintf(" %02x", mem.ram[a+i]))
			}
		}
		s.WriteString("\n")
	}
	return s.String(), nil
}
