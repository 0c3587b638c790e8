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

package commandline

import (
	"strings"
)

// TabCompletion keeps track of the most recent tab completion attempt.
type TabCompletion struct {
	cmds *Commands

	matches []string
	match   int

	// the input to which the matches are added
	base string

	// the string returned by the most recent call to Complete()
	last string
}

// NewTabCompletion initialises a new TabCompletion instance.
func NewTabCompletion(cmds *Commands) *TabCompletion {
	tc := &TabCompletion{cmds: cmds}
	tc.Reset()
	return tc
}

// Complete transforms the input such that the last word in the input is
// expanded to meet the closest match allowed by the template. Subsequent calls
// to Complete() without an intervening call to Reset() will cycle
// through the original available options.
func (tc *TabCompletion) Complete(input string) string {
	// continue cycling through the matches of the previous completion
	if len(tc.matches) > 0 && input == tc.last {
		tc.match = (tc.match + 1) % len(tc.matches)
		tc.last = tc.base + tc.matches[tc.match] + " "
		return tc.last
	}

	tc.Reset()

	// split input into complete tokens and the partial word being completed
	tokens := strings.Fields(input)
	partial := ""
	if len(tokens) > 0 && !strings.HasSuffix(input, " ") {
		partial = tokens[len(tokens)-1]
		tokens = tokens[:len(tokens)-1]
	}

	for _, c := range tc.cmds.candidates(tokens) {
		if strings.HasPrefix(c, strings.ToUpper(partial)) {
			tc.matches = append(tc.matches, c)
		}
	}

	if len(tc.matches) == 0 {
		return input
	}

	tc.base = input[:len(input)-len(partial)]
	tc.last = tc.base + tc.matches[0] + " "

	return tc.last
}

// Reset is used to clear an outstanding completion session.
func (tc *TabCompletion) Reset() {
	tc.matches = tc.matches[:0]
	tc.match = 0
	tc.base = ""
	tc.last = ""
}
