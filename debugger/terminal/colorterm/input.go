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

package colorterm

import (
	"unicode"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(buffer []byte, prompt terminal.Prompt, events *terminal.ReadEvents) (int, error) {
	ct.RawMode()
	defer ct.CanonicalMode()

	var input []rune
	cursor := 0
	history := len(ct.commandHistory)

	// the input being edited before the user started scrolling through the
	// history. we don't want to lose what has been typed
	var stash []rune

	if ct.tabCompletion != nil {
		ct.tabCompletion.Reset()
	}

	p := ct.styles.renderPrompt(prompt)

	for {
		// redraw the entire line and then move the cursor back from the end
		// of the line to the edit position
		ct.TermPrint("\r")
		ct.TermPrint(ansi.ClearLine)
		ct.TermPrint(p)
		ct.TermPrint(string(input))
		ct.TermPrint(ansi.CursorMove(cursor - len(input)))

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return 0, curated.Errorf("colorterm: %v", err)
		}

		// any key other than tab resets tab completion
		if r != easyterm.KeyTab && ct.tabCompletion != nil {
			ct.tabCompletion.Reset()
		}

		switch r {
		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				s := []rune(ct.tabCompletion.Complete(string(input[:cursor])))
				input = append(s, input[cursor:]...)
				cursor = len(s)
			}

		case easyterm.KeyInterrupt:
			ct.TermPrint("\r\n")
			return 0, curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEndOfTransmit:
			if len(input) == 0 {
				ct.TermPrint("\r\n")
				return 0, curated.Errorf(terminal.UserAbort)
			}

		case easyterm.KeySuspend:
			ct.CanonicalMode()
			easyterm.SuspendProcess()
			ct.RawMode()

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			s := string(input)

			// only add to history if input is not the same as the last
			// history entry
			if len(s) > 0 {
				if len(ct.commandHistory) == 0 || ct.commandHistory[len(ct.commandHistory)-1] != s {
					ct.commandHistory = append(ct.commandHistory, s)
				}
			}

			ct.TermPrint("\r\n")
			return copy(buffer, s), nil

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if cursor > 0 {
				input = append(input[:cursor-1], input[cursor:]...)
				cursor--
				history = len(ct.commandHistory)
			}

		case easyterm.KeyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return 0, curated.Errorf("colorterm: %v", err)
			}
			if r != easyterm.EscCursor {
				continue // for loop
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return 0, curated.Errorf("colorterm: %v", err)
			}

			switch r {
			case easyterm.CursorUp:
				if history > 0 {
					if history == len(ct.commandHistory) {
						stash = input
					}
					history--
					input = []rune(ct.commandHistory[history])
					cursor = len(input)
				}

			case easyterm.CursorDown:
				if history < len(ct.commandHistory) {
					history++
					if history == len(ct.commandHistory) {
						input = stash
					} else {
						input = []rune(ct.commandHistory[history])
					}
					cursor = len(input)
				}

			case easyterm.CursorForward:
				if cursor < len(input) {
					cursor++
				}

			case easyterm.CursorBackward:
				if cursor > 0 {
					cursor--
				}

			case easyterm.CursorHome:
				cursor = 0

			case easyterm.CursorEnd:
				cursor = len(input)

			case easyterm.CursorDelete:
				// delete key sends a trailing tilde
				_, _, _ = ct.reader.ReadRune()
				if cursor < len(input) {
					input = append(input[:cursor], input[cursor+1:]...)
					history = len(ct.commandHistory)
				}
			}

		default:
			if unicode.IsPrint(r) {
				input = append(input[:cursor], append([]rune{r}, input[cursor:]...)...)
				cursor++
				history = len(ct.commandHistory)
			}
		}
	}
}
