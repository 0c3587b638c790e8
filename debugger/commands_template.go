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

package debugger

const (
	cmdRun   = "RUN"
	cmdStep  = "STEP"
	cmdReset = "RESET"
	cmdQuit  = "QUIT"

	cmdCPU     = "CPU"
	cmdMem     = "MEM"
	cmdPeek    = "PEEK"
	cmdPoke    = "POKE"
	cmdDisplay = "DISPLAY"
	cmdDisasm  = "DISASM"
	cmdGrep    = "GREP"
	cmdMemViz  = "MEMVIZ"

	// keypad
	cmdKeys    = "KEYS"
	cmdPress   = "PRESS"
	cmdRelease = "RELEASE"

	// timers
	cmdTimers = "TIMERS"
	cmdTick   = "TICK"

	// halt conditions
	cmdBreak = "BREAK"
	cmdList  = "LIST"

	// meta
	cmdRecent = "RECENT"
	cmdLog    = "LOG"
	cmdPrefs  = "PREFS"
	cmdHelp   = "HELP"
)

var commandTemplate = []string{
	cmdRun,
	cmdStep + " (%<count>N)",
	cmdReset,
	cmdQuit,

	cmdCPU + " (SET [PC|I|DT|ST|V0|V1|V2|V3|V4|V5|V6|V7|V8|V9|VA|VB|VC|VD|VE|VF] %<value>N)",
	cmdMem + " (%<from>N (%<to>N))",
	cmdPeek + " %<address>N",
	cmdPoke + " %<address>N %<value>N",
	cmdDisplay,
	cmdDisasm + " (BYTECODE)",
	cmdGrep + " %<search>S",
	cmdMemViz + " (%<dot file>F)",

	cmdKeys,
	cmdPress + " %<key>S",
	cmdRelease + " [%<key>S|ALL]",

	cmdTimers,
	cmdTick + " (%<count>N)",

	cmdBreak + " (DROP [ALL|%<address>N]|%<address>N)",
	cmdList,

	cmdRecent + " (%<count>N)",
	cmdLog + " (%<count>N|CLEAR)",
	cmdPrefs + " (SET %<key>S %<value>S|SAVE|DEFAULT)",
}
