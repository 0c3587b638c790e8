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
	"io"

	"github.com/jetsetilly/gopher8/hardware/memory"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	// append the address and the bytes of each entry as a comment
	ByteCode bool
}

// Write the entire disassembly to io.Writer as an assembly listing. Each line
// is written with a separate call to the Write() function of the io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	_, err := io.WriteString(output, fmt.Sprintf("\t.org $%03X\n", memory.ProgramOrigin))
	if err != nil {
		return err
	}

	dsm.Iterate(func(e *Entry) {
		if err != nil {
			return
		}
		err = dsm.WriteEntry(output, attr, e)
	})

	return err
}

// WriteEntry writes a single entry to io.Writer. The entry is preceded by its
// label if it has one.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) error {
	if e.Label != "" {
		_, err := io.WriteString(output, fmt.Sprintf("%s:\n", e.Label))
		if err != nil {
			return err
		}
	}

	_, err := io.WriteString(output, dsm.entryString(attr, e)+"\n")
	return err
}

func (dsm *Disassembly) entryString(attr WriteAttr, e *Entry) string {
	s := e.Mnemonic()
	if o := e.Operand(dsm); o != "" {
		s = fmt.Sprintf("%s %s", s, o)
	}

	if attr.ByteCode {
		return fmt.Sprintf("\t%-24s; %03X: %s", s, e.Address, e.ByteCode())
	}
	return fmt.Sprintf("\t%s", s)
}
