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

// Package ansi provides the few control sequences needed by the line editor.
// The sequences come from the charmbracelet ansi package.
package ansi

import (
	xansi "github.com/charmbracelet/x/ansi"
)

// ClearLine erases the whole of the line the cursor is on. The cursor does not
// move.
const ClearLine = xansi.EraseEntireLine

// CursorMove returns the sequence that moves the cursor n cells along the
// current line. Negative values of n move the cursor left.
func CursorMove(n int) string {
	switch {
	case n > 0:
		return xansi.CursorRight(n)
	case n < 0:
		return xansi.CursorLeft(-n)
	}
	return ""
}
