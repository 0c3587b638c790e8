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

package commandline_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/debugger/terminal/commandline"
	"github.com/jetsetilly/gopher8/test"
)

func TestParser(t *testing.T) {
	template := []string{
		"RUN",
		"STEP (%<count>N)",
		"BREAK (DROP [%<address>N|ALL]|%<address>N)",
		"MEMVIZ %F",
	}

	cmds, err := commandline.ParseCommandTemplate(template)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cmds.Len(), 4)

	test.ExpectEquality(t, cmds.String(), "RUN\nSTEP (%<count>N)\nBREAK (DROP [%<address>N|ALL]|%<address>N)\nMEMVIZ %F")

	test.ExpectEquality(t, cmds.Usage("step"), "STEP (<count>)")
	test.ExpectEquality(t, cmds.Usage("MEMVIZ"), "MEMVIZ <file>")
	test.ExpectEquality(t, cmds.Usage("NOTHING"), "")

	cmds.Sort()
	test.ExpectEquality(t, cmds.Keywords()[0], "BREAK")
}

func TestParserErrors(t *testing.T) {
	for _, tmpl := range []string{
		"",
		"run",
		"TEST [A|B",
		"TEST (A]",
		"TEST A|B",
		"TEST [A|]",
		"TEST %X",
		"TEST %<label",
		"TEST %",
		"TEST )",
	} {
		_, err := commandline.ParseCommandTemplate([]string{tmpl})
		test.ExpectFailure(t, err, tmpl)
	}

	// duplicate commands
	_, err := commandline.ParseCommandTemplate([]string{"TEST", "TEST (A)"})
	test.ExpectFailure(t, err)
}

func TestHelp(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate([]string{"RUN", "STEP (%<count>N)"})
	test.DemandSuccess(t, err)

	err = cmds.AddHelp("HELP", map[string]string{
		"STEP": "Step the interpreter",
	})
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, cmds.AddHelp("HELP", nil))

	test.ExpectEquality(t, cmds.Help("step"), "Step the interpreter\n\n  Usage: STEP (<count>)")
	test.ExpectEquality(t, cmds.Help("RUN"), "no help for RUN\n\n  Usage: RUN")
	test.ExpectEquality(t, cmds.HelpOverview(), "RUN    STEP   HELP")

	test.ExpectSuccess(t, cmds.Validate("HELP"))
	test.ExpectSuccess(t, cmds.Validate("HELP step"))
	test.ExpectSuccess(t, cmds.Validate("HELP HELP"))
	test.ExpectFailure(t, cmds.Validate("HELP foo"))
}
