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

package colorterm

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/test"
)

func TestRenderLines(t *testing.T) {
	sty := newStyles()

	s := sty.render(terminal.StyleMem, "200: 00 e0\n210: 12")
	lines := strings.Split(s, "\n")
	test.ExpectEquality(t, len(lines), 2)

	// whatever the colour profile of the test environment, the content of
	// each line is preserved and not padded
	test.ExpectSuccess(t, strings.Contains(lines[0], "200: 00 e0"))
	test.ExpectSuccess(t, strings.Contains(lines[1], "210: 12"))
	test.ExpectFailure(t, strings.Contains(lines[1], "210: 12 "))
}

func TestPromptStyle(t *testing.T) {
	sty := newStyles()
	p := terminal.Prompt{Type: terminal.PromptTypeHalted, Content: "halted"}
	test.ExpectSuccess(t, strings.Contains(sty.renderPrompt(p), "[ halted ] !!"))
}
