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
	"sort"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// command is the parsed template of a single command.
type command struct {
	keyword string
	args    []*node
}

// String returns the command as it would appear in a template.
func (cmd *command) String() string {
	if len(cmd.args) == 0 {
		return cmd.keyword
	}
	return fmt.Sprintf("%s %s", cmd.keyword, sequenceString(cmd.args, false))
}

func (cmd *command) usageString() string {
	if len(cmd.args) == 0 {
		return cmd.keyword
	}
	return fmt.Sprintf("%s %s", cmd.keyword, sequenceString(cmd.args, true))
}

// Commands is the root of the command tree.
type Commands struct {
	Index map[string]*command

	cmds []*command

	helpCommand string
	helps       map[string]string
}

// Len implements sort.Interface.
func (cmds Commands) Len() int {
	return len(cmds.cmds)
}

// Less implements sort.Interface.
func (cmds Commands) Less(i int, j int) bool {
	return cmds.cmds[i].keyword < cmds.cmds[j].keyword
}

// Swap implements sort.Interface.
func (cmds Commands) Swap(i int, j int) {
	cmds.cmds[i], cmds.cmds[j] = cmds.cmds[j], cmds.cmds[i]
}

// Sort the commands alphabetically by keyword.
func (cmds *Commands) Sort() {
	sort.Sort(cmds)
}

// String returns the template of every command, one per line.
func (cmds Commands) String() string {
	s := strings.Builder{}
	for _, c := range cmds.cmds {
		s.WriteString(c.String())
		s.WriteString("\n")
	}
	return strings.TrimRight(s.String(), "\n")
}

// Keywords returns the keyword of every command in the order in which they
// appear in the tree.
func (cmds Commands) Keywords() []string {
	k := make([]string, 0, len(cmds.cmds))
	for _, c := range cmds.cmds {
		k = append(k, c.keyword)
	}
	return k
}

// AddHelp adds a help command to the tree. The help command takes an optional
// argument, which is the keyword of any other command.
func (cmds *Commands) AddHelp(helpCommand string, helps map[string]string) error {
	if _, ok := cmds.Index[helpCommand]; ok {
		return curated.Errorf("commandline: %s: already defined", helpCommand)
	}

	keywords := append(cmds.Keywords(), helpCommand)
	cmd, err := parseDefinition(fmt.Sprintf("%s (%s)", helpCommand, strings.Join(keywords, "|")))
	if err != nil {
		return err
	}

	cmds.cmds = append(cmds.cmds, cmd)
	cmds.Index[cmd.keyword] = cmd
	cmds.helpCommand = helpCommand
	cmds.helps = helps

	return nil
}

// HelpOverview returns a list of every keyword arranged in columns.
func (cmds Commands) HelpOverview() string {
	longest := 0
	for _, c := range cmds.cmds {
		if len(c.keyword) > longest {
			longest = len(c.keyword)
		}
	}

	width := longest + 3
	columns := 80 / width

	s := strings.Builder{}
	for i, c := range cmds.cmds {
		s.WriteString(fmt.Sprintf("%-*s", width, c.keyword))
		if i%columns == columns-1 {
			s.WriteString("\n")
		}
	}

	// trailing space is also removed from each line
	lines := strings.Split(strings.TrimRight(s.String(), "\n"), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.Join(lines, "\n")
}

// Help returns the help text and usage for the keyword.
func (cmds Commands) Help(keyword string) string {
	keyword = strings.ToUpper(keyword)

	s := strings.Builder{}

	if txt, ok := cmds.helps[keyword]; !ok {
		s.WriteString(fmt.Sprintf("no help for %s", keyword))
	} else {
		s.WriteString(txt)
	}

	if cmd, ok := cmds.Index[keyword]; ok {
		s.WriteString("\n\n  Usage: ")
		s.WriteString(cmd.usageString())
	}

	return s.String()
}

// Usage returns the usage string for the keyword.
func (cmds Commands) Usage(keyword string) string {
	if cmd, ok := cmds.Index[strings.ToUpper(keyword)]; ok {
		return cmd.usageString()
	}
	return ""
}
