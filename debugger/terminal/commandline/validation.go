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
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Sentinal errors returned by Validate().
const (
	NoSuchCommand    = "unrecognised command (%s)"
	BadArgument      = "unrecognised argument (%s) for %s"
	MissingArguments = "%s requires more arguments"
)

// matcher walks the template of a command comparing it to a list of tokens.
// it records the furthest token that failed to match, for the purposes of
// error messages, and the literals that could follow the final token, for the
// purposes of tab completion.
type matcher struct {
	tokens []string

	furthestFail int

	// literals that could appear immediately after the final token
	candidates map[string]bool
}

func newMatcher(tokens []string) *matcher {
	return &matcher{
		tokens:     tokens,
		candidates: make(map[string]bool),
	}
}

func (m *matcher) fail(pos int) {
	if pos > m.furthestFail {
		m.furthestFail = pos
	}
}

// sequence returns every token position that can be reached by matching the
// entire sequence of nodes starting at the token position pos.
func (m *matcher) sequence(seq []*node, pos int) []int {
	positions := []int{pos}
	for _, n := range seq {
		var next []int
		for _, p := range positions {
			next = appendUnique(next, m.node(n, p)...)
		}
		if len(next) == 0 {
			return nil
		}
		positions = next
	}
	return positions
}

func (m *matcher) node(n *node, pos int) []int {
	switch n.typ {
	case nodeLiteral:
		if pos >= len(m.tokens) {
			m.candidates[n.tag] = true
			m.fail(pos)
			return nil
		}
		if strings.EqualFold(m.tokens[pos], n.tag) {
			return []int{pos + 1}
		}

	case nodePlaceholder:
		if pos >= len(m.tokens) {
			m.fail(pos)
			return nil
		}
		if n.tag[0] != placeholderNumber {
			return []int{pos + 1}
		}
		if _, err := strconv.ParseUint(m.tokens[pos], 0, 16); err == nil {
			return []int{pos + 1}
		}

	case nodeRequired, nodeOptional:
		var positions []int
		if n.typ == nodeOptional {
			positions = append(positions, pos)
		}
		for _, b := range n.branches {
			positions = appendUnique(positions, m.sequence(b, pos)...)
		}
		return positions
	}

	m.fail(pos)
	return nil
}

func appendUnique(positions []int, add ...int) []int {
	for _, a := range add {
		found := false
		for _, p := range positions {
			if p == a {
				found = true
				break
			}
		}
		if !found {
			positions = append(positions, a)
		}
	}
	return positions
}

// Validate input string against command definitions.
func (cmds Commands) Validate(input string) error {
	return cmds.ValidateTokens(TokeniseInput(input))
}

// ValidateTokens like Validate, but works on tokens rather than an input
// string.
func (cmds Commands) ValidateTokens(tokens *Tokens) error {
	if tokens.Len() == 0 {
		return nil
	}

	keyword := strings.ToUpper(tokens.tokens[0])
	cmd, ok := cmds.Index[keyword]
	if !ok {
		return curated.Errorf(NoSuchCommand, tokens.tokens[0])
	}

	m := newMatcher(tokens.tokens)
	ends := m.sequence(cmd.args, 1)

	furthest := m.furthestFail
	for _, e := range ends {
		if e == len(tokens.tokens) {
			return nil
		}
		if e > furthest {
			furthest = e
		}
	}

	if furthest >= len(tokens.tokens) {
		return curated.Errorf(MissingArguments, keyword)
	}
	return curated.Errorf(BadArgument, tokens.tokens[furthest], keyword)
}

// candidates returns the sorted list of literals that could follow the tokens.
func (cmds Commands) candidates(tokens []string) []string {
	var c []string

	if len(tokens) == 0 {
		return cmds.Keywords()
	}

	cmd, ok := cmds.Index[strings.ToUpper(tokens[0])]
	if !ok {
		return c
	}

	m := newMatcher(tokens)
	m.sequence(cmd.args, 1)
	for k := range m.candidates {
		c = append(c, k)
	}
	sort.Strings(c)

	return c
}
