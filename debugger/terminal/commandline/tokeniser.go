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

// Tokens is a line of input split on white space. Tokens are consumed in
// order with Get().
type Tokens struct {
	tokens []string
	next   int
}

// TokeniseInput splits the input into tokens. Hexadecimal numbers written in
// the disassembler's style, $200 for example, are rewritten as 0x200 so that
// strconv understands them.
func TokeniseInput(input string) *Tokens {
	tk := &Tokens{tokens: strings.Fields(input)}
	for i, s := range tk.tokens {
		if hex, ok := strings.CutPrefix(s, "$"); ok && hex != "" {
			tk.tokens[i] = "0x" + hex
		}
	}
	return tk
}

func (tk *Tokens) String() string {
	return strings.Join(tk.tokens, " ")
}

// Len is the number of tokens, consumed or not.
func (tk *Tokens) Len() int {
	return len(tk.tokens)
}

// Reset so that the next call to Get() returns the first token.
func (tk *Tokens) Reset() {
	tk.next = 0
}

// Get consumes the next token. The boolean is false if there are no more
// tokens.
func (tk *Tokens) Get() (string, bool) {
	if tk.next >= len(tk.tokens) {
		return "", false
	}
	tk.next++
	return tk.tokens[tk.next-1], true
}
