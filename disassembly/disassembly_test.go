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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/test"
)

// lineWriter records each call to Write() as a separate line
type lineWriter struct {
	lines []string
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.lines = append(w.lines, strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

func listing(t *testing.T, program []uint8, attr disassembly.WriteAttr) []string {
	t.Helper()
	dsm, err := disassembly.FromProgram(program)
	test.DemandSuccess(t, err)

	w := &lineWriter{}
	test.DemandSuccess(t, dsm.Write(w, attr))
	return w.lines
}

func expectListing(t *testing.T, lines []string, expected []string) {
	t.Helper()
	if !test.ExpectEquality(t, len(lines), len(expected)) {
		t.Log(strings.Join(lines, "\n"))
		return
	}
	for i := range lines {
		test.ExpectEquality(t, lines[i], expected[i])
	}
}

func TestSubroutine(t *testing.T) {
	lines := listing(t, []uint8{
		0x60, 0x05, // LD V0, $05
		0x22, 0x08, // CALL $208
		0x12, 0x04, // JP $204
		0xab, 0xcd, // unreachable
		0x70, 0x01, // ADD V0, $01
		0x00, 0xee, // RET
	}, disassembly.WriteAttr{})

	expectListing(t, lines, []string{
		"\t.org $200",
		"\tLD V0, $05",
		"\tCALL L_208",
		"L_204:",
		"\tJP L_204",
		"\t.byte $AB",
		"\t.byte $CD",
		"L_208:",
		"\tADD V0, $01",
		"\tRET",
	})
}

func TestSkip(t *testing.T) {
	lines := listing(t, []uint8{
		0x30, 0x05, // SE V0, $05
		0x12, 0x06, // JP $206
		0x00, 0xe0, // CLS
		0x12, 0x06, // JP $206
	}, disassembly.WriteAttr{})

	expectListing(t, lines, []string{
		"\t.org $200",
		"\tSE V0, $05",
		"\tJP L_206",
		"\tCLS",
		"L_206:",
		"\tJP L_206",
	})
}

func TestUnalignedJump(t *testing.T) {
	lines := listing(t, []uint8{
		0x12, 0x03, // JP $203
		0xff,
		0x00, 0xe0, // CLS
		0x12, 0x05, // JP $205
	}, disassembly.WriteAttr{})

	expectListing(t, lines, []string{
		"\t.org $200",
		"\tJP L_203",
		"\t.byte $FF",
		"L_203:",
		"\tCLS",
		"L_205:",
		"\tJP L_205",
	})
}

func TestFlowEnds(t *testing.T) {
	dsm, err := disassembly.FromProgram([]uint8{
		0xb2, 0x06, // JP V0, $206
		0x61, 0x01, // unreachable
		0x11, 0x00, // unreachable
		0x00, 0xe0, // unreachable
		0x00,
	})
	test.DemandSuccess(t, err)

	e, ok := dsm.GetEntryByAddress(0x200)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelCode)

	// the destination of JP V0 is not followed and is not labelled
	e, ok = dsm.GetEntryByAddress(0x206)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelData)
	test.ExpectEquality(t, e.Label, "")

	_, ok = dsm.GetEntryByAddress(0x209)
	test.ExpectEquality(t, ok, false)
	_, ok = dsm.GetEntryByAddress(0x1ff)
	test.ExpectEquality(t, ok, false)
}

func TestOutOfProgram(t *testing.T) {
	// a jump outside of the program is not labelled. an instruction that
	// would run off the end of the program is data
	lines := listing(t, []uint8{
		0x22, 0x50, // CALL $250
		0x11, 0x00, // JP $100
		0x60,
	}, disassembly.WriteAttr{})

	expectListing(t, lines, []string{
		"\t.org $200",
		"\tCALL $250",
		"\tJP $100",
		"\t.byte $60",
	})

	lines = listing(t, []uint8{0x60, 0x05, 0x00, 0x00}, disassembly.WriteAttr{})
	expectListing(t, lines, []string{
		"\t.org $200",
		"\tLD V0, $05",
		"\t.byte $00",
		"\t.byte $00",
	})
}

func TestByteCode(t *testing.T) {
	lines := listing(t, []uint8{0x60, 0x05, 0x12, 0x02, 0x99}, disassembly.WriteAttr{ByteCode: true})
	test.DemandEquality(t, len(lines), 5)
	test.ExpectSuccess(t, strings.HasPrefix(lines[1], "\tLD V0, $05"))
	test.ExpectSuccess(t, strings.HasSuffix(lines[1], "; 200: 6005"))
	test.ExpectSuccess(t, strings.HasSuffix(lines[3], "; 202: 1202"))
	test.ExpectSuccess(t, strings.HasSuffix(lines[4], "; 204: 99"))
}

func TestErrors(t *testing.T) {
	_, err := disassembly.FromProgram(nil)
	test.ExpectSuccess(t, curated.Is(err, disassembly.EmptyProgram))

	_, err = disassembly.FromProgram(make([]uint8, 0x1000))
	test.ExpectSuccess(t, curated.Is(err, disassembly.ProgramTooLarge))
}

func TestGrep(t *testing.T) {
	dsm, err := disassembly.FromProgram([]uint8{
		0x60, 0x05, // LD V0, $05
		0x61, 0x06, // LD V1, $06
		0x70, 0x01, // ADD V0, $01
		0x12, 0x04, // JP $204
	})
	test.DemandSuccess(t, err)

	w := &lineWriter{}
	n, err := dsm.Grep(w, disassembly.GrepMnemonic, "ld", false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, w.lines[0], "200: LD V0, $05")

	w = &lineWriter{}
	n, err = dsm.Grep(w, disassembly.GrepOperand, "V0", true)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, w.lines[1], "204: ADD V0, $01")

	n, err = dsm.Grep(w, disassembly.GrepAll, "jp l_204", false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 1)
}
