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

import (
	"os"
)

// Input is the reading half of a Terminal.
type Input interface {
	// TermRead reads one line of input into the buffer and returns the number
	// of bytes read. The prompt should be shown to the user if the
	// implementation shows prompts at all.
	//
	// Implementations that can do so should watch the ReadEvents while
	// waiting and return a UserInterrupt error when an interrupt arrives.
	TermRead(buffer []byte, prompt Prompt, events *ReadEvents) (int, error)

	// IsInteractive is true if a person is on the other end of the terminal.
	IsInteractive() bool
}

// Patterns for errors returned by TermRead().
const (
	// ctrl-c
	UserInterrupt = "user interrupt"

	// ctrl-d on an empty line
	UserAbort = "user abort"
)

// ReadEvents are the events a TermRead() implementation should watch for.
type ReadEvents struct {
	IntEvents chan os.Signal
}

// Output is the writing half of a Terminal.
type Output interface {
	// TermPrintLine prints the string and a newline. The Style can be used
	// to decide how to present the string.
	TermPrintLine(Style, string)
}

// Terminal is the interface used by the debugger for all user interaction.
type Terminal interface {
	Input
	Output

	// Initialise is called once before the first read.
	Initialise() error

	// CleanUp is called once when the debugger ends. Implementations that
	// change terminal modes should restore them here.
	CleanUp()

	// RegisterTabCompletion sets the TabCompletion used by the terminal.
	// Implementations without line editing can ignore it.
	RegisterTabCompletion(TabCompletion)
}

// TabCompletion completes partial input.
type TabCompletion interface {
	// Complete returns the input with the last word completed. Calling it
	// again without an intervening Reset() cycles through the candidates.
	Complete(input string) string

	// Reset is called when the input changes in any way other than by
	// completion.
	Reset()
}
