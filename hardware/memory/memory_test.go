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

package memory_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher8/test"
)

func TestFont(t *testing.T) {
	mem := memory.NewMemory(nil)

	// the glyph for zero
	for i, v := range []uint8{0xf0, 0x90, 0x90, 0x90, 0xf0} {
		d, err := mem.Read(uint16(i))
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, d, v)
	}

	// the last byte of the glyph for F
	d, err := mem.Read(0x4f)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, 0x80)

	test.ExpectEquality(t, memory.GlyphAddress(0x0a), 50)
	test.ExpectEquality(t, memory.GlyphAddress(0x10), 0x50)
	test.ExpectEquality(t, memory.GlyphAddress(0x1f), 155)
	test.ExpectEquality(t, memory.GlyphAddress(0xff), 1275)

	// the font survives a reset
	test.ExpectSuccess(t, mem.Write(0x00, 0xff))
	mem.Reset()
	d, _ = mem.Read(0x00)
	test.ExpectEquality(t, d, 0xf0)
}

func TestReadWrite(t *testing.T) {
	mem := memory.NewMemory(nil)
	test.DemandImplements(t, mem, (*cpubus.Memory)(nil))

	test.ExpectSuccess(t, mem.Write(0x300, 0x12))
	test.ExpectSuccess(t, mem.Write(0x301, 0x34))

	d, err := mem.Read16(0x300)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, 0x1234)

	// last address
	test.ExpectSuccess(t, mem.Write(0xfff, 0xab))
	v, err := mem.Peek(0xfff)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xab)

	test.ExpectSuccess(t, mem.Poke(0x200, 0x99))
	v, _ = mem.Read(0x200)
	test.ExpectEquality(t, v, 0x99)
}

func TestOutOfRange(t *testing.T) {
	mem := memory.NewMemory(nil)

	_, err := mem.Read(0x1000)
	test.ExpectSuccess(t, curated.Is(err, memory.AddressOutOfRange))

	// a two byte read can not start on the last address
	_, err = mem.Read16(0xfff)
	test.ExpectSuccess(t, curated.Is(err, memory.AddressOutOfRange))

	err = mem.Write(0xffff, 0)
	test.ExpectSuccess(t, curated.Is(err, memory.AddressOutOfRange))

	err = mem.WriteBlock(0xffe, []uint8{1, 2, 3})
	test.ExpectSuccess(t, curated.Is(err, memory.AddressOutOfRange))

	// memory is unchanged by the failed block write
	v, _ := mem.Peek(0xffe)
	test.ExpectEquality(t, v, 0)
}

func TestLoadProgram(t *testing.T) {
	mem := memory.NewMemory(nil)

	test.ExpectSuccess(t, mem.LoadProgram([]uint8{0x00, 0xe0, 0x12, 0x00}))
	d, _ := mem.Read16(0x202)
	test.ExpectEquality(t, d, 0x1200)

	test.ExpectSuccess(t, mem.LoadProgram(make([]uint8, memory.MaxProgramSize)))

	err := mem.LoadProgram(make([]uint8, memory.MaxProgramSize+1))
	test.ExpectSuccess(t, curated.Is(err, memory.ProgramTooLarge))
}

func TestDump(t *testing.T) {
	mem := memory.NewMemory(nil)

	s, err := mem.Dump(0x000, 0x004)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(s, "000: f0 90 90 90 f0"))
	test.ExpectEquality(t, strings.Count(s, "\n"), 1)

	s, err = mem.Dump(0x00f, 0x010)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.Count(s, "\n"), 2)

	_, err = mem.Dump(0x000, 0x1000)
	test.ExpectFailure(t, err)
}
