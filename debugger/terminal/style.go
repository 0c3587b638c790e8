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

package terminal

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can interpret
// this how it sees fit - the most likely treatment is to print different
// styles in different colours.
type Style int

// List of terminal styles.
const (
	// input from the user being echoed back to the user. echoed input has
	// been "normalised" (eg. capitalised, leading space removed, etc.)
	StyleEcho Style = iota

	// information from the internal help system
	StyleHelp

	// information from a command
	StyleFeedback

	// disassembly output of an executed instruction
	StyleInstruction

	// state of the CPU
	StyleCPU

	// memory and display dumps
	StyleMem

	// a halt condition has been met
	StyleBreakpoint

	// entries from the central logger
	StyleLog

	// the prompt
	StylePrompt

	// an error has occurred
	StyleError
)

// IsPrompt returns true if the style is the prompt style.
func (sty Style) IsPrompt() bool {
	return sty == StylePrompt
}
