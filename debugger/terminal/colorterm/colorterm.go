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

//go:build !windows

// Package colorterm is a line editing terminal for the debugger. Output is
// styled with lipgloss and input has history and tab completion.
package colorterm

import (
	"bufio"
	"os"

	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm/easyterm"
)

// ColorTerminal implements the terminal.Terminal interface for stdin and
// stdout.
type ColorTerminal struct {
	easyterm.EasyTerm

	reader *bufio.Reader
	styles styles

	commandHistory []string
	tabCompletion  terminal.TabCompletion
}

func (ct *ColorTerminal) Initialise() error {
	if err := ct.EasyTerm.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}
	ct.reader = bufio.NewReader(os.Stdin)
	ct.styles = newStyles()
	ct.commandHistory = ct.commandHistory[:0]
	return nil
}

func (ct *ColorTerminal) CleanUp() {
	ct.TermPrint("\r")
	_ = ct.Flush()
	ct.EasyTerm.CleanUp()
}

func (ct *ColorTerminal) RegisterTabCompletion(tc terminal.TabCompletion) {
	ct.tabCompletion = tc
}

func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// TermPrintLine writes the line in the colours of the style. Echoed input is
// not printed because the line editor has already shown it.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	switch {
	case style == terminal.StyleEcho:
		return
	case style == terminal.StyleError:
		s = "* " + s
	}

	ct.TermPrint("\r")
	ct.TermPrint(ct.styles.render(style, s))
	if !style.IsPrompt() {
		ct.TermPrint("\n")
	}
}
