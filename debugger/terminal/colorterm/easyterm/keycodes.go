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

package easyterm

// Control characters recognised by the line editor.
const (
	KeyInterrupt      = 0x03 // ctrl-c
	KeyEndOfTransmit  = 0x04 // ctrl-d
	KeyBackspace      = 0x08
	KeyTab            = 0x09
	KeyLineFeed       = 0x0a
	KeyCarriageReturn = 0x0d
	KeySuspend        = 0x1a // ctrl-z
	KeyEsc            = 0x1b
	KeyDelete         = 0x7f // usually what the backspace key sends
)

// EscCursor follows KeyEsc in a cursor key sequence.
const EscCursor = '['

// Final characters of the cursor key sequences.
const (
	CursorUp       = 'A'
	CursorDown     = 'B'
	CursorForward  = 'C'
	CursorBackward = 'D'
	CursorEnd      = 'F'
	CursorHome     = 'H'

	// the delete key sends the sequence ESC [ 3 ~
	CursorDelete = '3'
)
