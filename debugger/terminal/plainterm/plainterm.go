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

// Package plainterm is a line based terminal for the debugger. It does no
// line editing of its own and is suitable for scripted input.
package plainterm

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"golang.org/x/term"
)

// PlainTerminal reads whole lines of input. The zero value reads from stdin
// and writes to stdout.
type PlainTerminal struct {
	in  *bufio.Reader
	out io.Writer

	// the prompt is only printed if input is from a terminal
	ttyIn  bool
	ttyOut bool
}

// NewPlainTerminal returns a PlainTerminal for the given streams. It is never
// interactive.
func NewPlainTerminal(in io.Reader, out io.Writer) *PlainTerminal {
	return &PlainTerminal{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func (pt *PlainTerminal) Initialise() error {
	if pt.in == nil {
		pt.in = bufio.NewReader(os.Stdin)
		pt.ttyIn = isTerminal(os.Stdin)
	}
	if pt.out == nil {
		pt.out = os.Stdout
		pt.ttyOut = isTerminal(os.Stdout)
	}
	return nil
}

func (pt *PlainTerminal) CleanUp() {}

// RegisterTabCompletion does nothing. There is no line editor to complete
// with.
func (pt *PlainTerminal) RegisterTabCompletion(terminal.TabCompletion) {}

func (pt *PlainTerminal) IsInteractive() bool {
	return pt.ttyIn && pt.ttyOut
}

func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	switch style {
	case terminal.StyleEcho:
		// the user's terminal has echoed the input already
		return
	case terminal.StyleError:
		io.WriteString(pt.out, "* ")
	}
	io.WriteString(pt.out, s)
	io.WriteString(pt.out, "\n")
}

// TermRead blocks until a line of input is available. The final line of input
// does not need a newline.
func (pt *PlainTerminal) TermRead(buffer []byte, prompt terminal.Prompt, events *terminal.ReadEvents) (int, error) {
	if pt.ttyIn {
		io.WriteString(pt.out, prompt.String())
	}

	s, err := pt.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && s != "") {
		return 0, err
	}

	// ctrl-c while blocked on input interrupts the read
	if events != nil {
		select {
		case <-events.IntEvents:
			return 0, curated.Errorf(terminal.UserInterrupt)
		default:
		}
	}

	return copy(buffer, s), nil
}
