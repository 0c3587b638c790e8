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

package debugger

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/debugger/terminal"
)

// printLine sends a line to the terminal. The string is only treated as a
// format pattern when there are arguments, because help text contains
// percent signs.
func (dbg *Debugger) printLine(sty terminal.Style, s string, a ...any) {
	if len(a) > 0 {
		s = fmt.Sprintf(s, a...)
	}

	s = strings.TrimRight(s, "\n")
	if s == "" {
		return
	}

	dbg.term.TermPrintLine(sty, s)
}

// printStyle returns an io.Writer that prints every write to the terminal in
// the given style. Used with functions that write listings, such as the
// disassembler and the logger.
func (dbg *Debugger) printStyle(sty terminal.Style) *styleWriter {
	return &styleWriter{
		dbg: dbg,
		sty: sty,
	}
}

type styleWriter struct {
	dbg *Debugger
	sty terminal.Style
}

// Write implements the io.Writer interface. A write containing several lines
// is split so that each line reaches the terminal separately.
func (w *styleWriter) Write(p []byte) (int, error) {
	for _, l := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		w.dbg.printLine(w.sty, "%s", l)
	}
	return len(p), nil
}
