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

var helps = map[string]string{
	cmdRun:   "Run the interpreter in real time until a breakpoint is reached, a fault occurs or the run is interrupted with ctrl-c.",
	cmdStep:  "Step the interpreter by one or more instructions. Stepping stops early if a breakpoint is reached. Timers are not ticked by stepping, use TICK to tick the timers.",
	cmdReset: "Reset the interpreter and reload the program. Reset is the only way to continue after a fault.",
	cmdQuit:  "Exit the debugger.",

	cmdCPU:     "Display the state of the CPU registers. The SET argument changes the value of a register.",
	cmdMem:     "Display a hex dump of memory. With no arguments the loaded program is shown. With one argument sixteen bytes from the address are shown.",
	cmdPeek:    "Display the byte at the address.",
	cmdPoke:    "Change the byte at the address.",
	cmdDisplay: "Display the state of every pixel on the display.",
	cmdDisasm:  "Disassemble the loaded program. The BYTECODE argument includes the bytes of each instruction in the listing.",
	cmdGrep:    "Search the disassembly of the loaded program. The search is not case sensitive.",
	cmdMemViz:  "Write a graphviz dot file of the interpreter's state. A filename is generated if one is not given.",

	cmdKeys:    "Display the state of the keypad.",
	cmdPress:   "Press the keypad key. Keys are identified by the hex digits 0 to F.",
	cmdRelease: "Release the keypad key. ALL releases every key.",

	cmdTimers: "Display the state of the delay and sound timers.",
	cmdTick:   "Tick the delay and sound timers as though one or more 60Hz periods had passed.",

	cmdBreak: "Add a breakpoint at the address. The interpreter halts when the program counter reaches the address. The DROP argument removes a breakpoint. With no argument the list of breakpoints is shown.",
	cmdList:  "List the breakpoints.",

	cmdRecent: "Display the most recently executed instructions.",
	cmdLog:    "Display the most recent entries in the log. The CLEAR argument empties the log.",
	cmdPrefs:  "Display or change the hardware preferences. Changes take effect immediately but are not saved until PREFS SAVE.",
	cmdHelp:   "Lists commands. Help for a specific command is shown when it is the argument to HELP.",
}
