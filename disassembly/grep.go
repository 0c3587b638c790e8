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
	"strings"
)

// GrepScope limits the scope of the search.
type GrepScope int

// List of available scopes.
const (
	GrepMnemonic GrepScope = iota
	GrepOperand
	GrepAll
)

// Grep searches the disassembly for the specified search string. Matching
// entries are written to the io.Writer along with their address. Returns the
// number of matches.
func (dsm *Disassembly) Grep(output io.Writer, scope GrepScope, search string, caseSensitive bool) (int, error) {
	var matches int
	var err error

	if !caseSensitive {
		search = strings.ToUpper(search)
	}

	dsm.Iterate(func(e *Entry) {
		if err != nil {
			return
		}

		var s string

		// limit scope of grep to the correct field
		switch scope {
		case GrepMnemonic:
			s = e.Mnemonic()
		case GrepOperand:
			s = e.Operand(dsm)
		case GrepAll:
			s = fmt.Sprintf("%s %s", e.Mnemonic(), e.Operand(dsm))
		}

		if !caseSensitive {
			s = strings.ToUpper(s)
		}

		if strings.Contains(s, search) {
			matches++
			_, err = io.WriteString(output, fmt.Sprintf("%03X: %s\n", e.Address,
				strings.TrimSpace(dsm.entryString(WriteAttr{}, e))))
		}
	})

	return matches, err
}
