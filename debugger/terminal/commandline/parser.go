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

	"github.com/jetsetilly/gopher8/curated"
)

// TemplateError is returned by ParseCommandTemplate() when a template can not
// be parsed.
const TemplateError = "commandline: %s: %s (char %d)"

// ParseCommandTemplate turns a list of template strings into a Commands
// instance.
func ParseCommandTemplate(template []string) (*Commands, error) {
	cmds := &Commands{
		Index: make(map[string]*command),
	}

	for _, t := range template {
		cmd, err := parseDefinition(t)
		if err != nil {
			return nil, err
		}

		if _, ok := cmds.Index[cmd.keyword]; ok {
			return nil, curated.Errorf(TemplateError, cmd.keyword, "already defined", 0)
		}

		cmds.cmds = append(cmds.cmds, cmd)
		cmds.Index[cmd.keyword] = cmd
	}

	return cmds, nil
}

type templateParser struct {
	defn string
	pos  int
}

func (p *templateParser) err(msg string) error {
	return curated.Errorf(TemplateError, p.defn, msg, p.pos)
}

func (p *templateParser) skipSpace() {
	for p.pos < len(p.defn) && p.defn[p.pos] == ' ' {
		p.pos++
	}
}

func (p *templateParser) word() string {
	start := p.pos
	for p.pos < len(p.defn) && !strings.ContainsRune(" []()|%<>", rune(p.defn[p.pos])) {
		p.pos++
	}
	return p.defn[start:p.pos]
}

func parseDefinition(defn string) (*command, error) {
	p := &templateParser{defn: strings.TrimSpace(defn)}

	keyword := p.word()
	if keyword == "" {
		return nil, p.err("template must start with a keyword")
	}
	if keyword != strings.ToUpper(keyword) {
		return nil, p.err("keywords must be upper case")
	}

	args, err := p.sequence()
	if err != nil {
		return nil, err
	}

	if p.pos < len(p.defn) {
		return nil, p.err("unbalanced group")
	}

	return &command{keyword: keyword, args: args}, nil
}

// sequence parses nodes until the end of the template or until the end of a
// group branch.
func (p *templateParser) sequence() ([]*node, error) {
	var seq []*node

	for {
		p.skipSpace()
		if p.pos >= len(p.defn) {
			return seq, nil
		}

		switch p.defn[p.pos] {
		case '|', ']', ')':
			return seq, nil

		case '[':
			n, err := p.group(nodeRequired, ']')
			if err != nil {
				return nil, err
			}
			seq = append(seq, n)

		case '(':
			n, err := p.group(nodeOptional, ')')
			if err != nil {
				return nil, err
			}
			seq = append(seq, n)

		case '%':
			n, err := p.placeholder()
			if err != nil {
				return nil, err
			}
			seq = append(seq, n)

		default:
			w := p.word()
			if w == "" {
				return nil, p.err("unexpected character")
			}
			seq = append(seq, &node{typ: nodeLiteral, tag: strings.ToUpper(w)})
		}
	}
}

func (p *templateParser) group(typ nodeType, close byte) (*node, error) {
	n := &node{typ: typ}

	// skip opening bracket
	p.pos++

	for {
		seq, err := p.sequence()
		if err != nil {
			return nil, err
		}
		if len(seq) == 0 {
			return nil, p.err("empty branch in group")
		}
		n.branches = append(n.branches, seq)

		if p.pos >= len(p.defn) {
			return nil, p.err("unterminated group")
		}

		c := p.defn[p.pos]
		p.pos++

		if c == close {
			return n, nil
		}
		if c != '|' {
			return nil, p.err("mismatched group brackets")
		}
	}
}

func (p *templateParser) placeholder() (*node, error) {
	n := &node{typ: nodePlaceholder}

	// skip percent sign
	p.pos++

	if p.pos < len(p.defn) && p.defn[p.pos] == '<' {
		end := strings.IndexByte(p.defn[p.pos:], '>')
		if end == -1 {
			return nil, p.err("unterminated placeholder label")
		}
		n.label = p.defn[p.pos+1 : p.pos+end]
		p.pos += end + 1
	}

	if p.pos >= len(p.defn) {
		return nil, p.err("missing placeholder type")
	}

	switch p.defn[p.pos] {
	case placeholderNumber, placeholderString, placeholderFilename:
		n.tag = string(p.defn[p.pos])
	default:
		return nil, p.err("unknown placeholder type")
	}
	p.pos++

	return n, nil
}
