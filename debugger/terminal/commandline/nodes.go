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
	"fmt"
	"strings"
)

type nodeType int

const (
	nodeLiteral nodeType = iota
	nodePlaceholder
	nodeRequired
	nodeOptional
)

// placeholder types
const (
	placeholderNumber   = 'N'
	placeholderString   = 'S'
	placeholderFilename = 'F'
)

// node is one element in a command template. nodes of the group types
// contain one or more branches, each of which is a sequence of nodes.
type node struct {
	typ nodeType

	// the literal value of a nodeLiteral or the placeholder type of a
	// nodePlaceholder
	tag string

	// label of a placeholder. used for the help system
	label string

	branches [][]*node
}

// String returns the node as it would appear in a template.
func (n *node) String() string {
	return n.string(false)
}

// usageString returns the node in a form suitable for the help system.
func (n *node) usageString() string {
	return n.string(true)
}

func (n *node) string(useLabels bool) string {
	switch n.typ {
	case nodeLiteral:
		return n.tag
	case nodePlaceholder:
		if useLabels {
			if n.label != "" {
				return fmt.Sprintf("<%s>", n.label)
			}
			return fmt.Sprintf("<%s>", placeholderName(n.tag[0]))
		}
		if n.label != "" {
			return fmt.Sprintf("%%<%s>%s", n.label, n.tag)
		}
		return fmt.Sprintf("%%%s", n.tag)
	}

	branches := make([]string, 0, len(n.branches))
	for _, b := range n.branches {
		branches = append(branches, sequenceString(b, useLabels))
	}

	if n.typ == nodeRequired {
		return fmt.Sprintf("[%s]", strings.Join(branches, "|"))
	}
	return fmt.Sprintf("(%s)", strings.Join(branches, "|"))
}

func sequenceString(seq []*node, useLabels bool) string {
	s := make([]string, 0, len(seq))
	for _, n := range seq {
		s = append(s, n.string(useLabels))
	}
	return strings.Join(s, " ")
}

func placeholderName(p byte) string {
	switch p {
	case placeholderNumber:
		return "number"
	case placeholderFilename:
		return "file"
	}
	return "string"
}
