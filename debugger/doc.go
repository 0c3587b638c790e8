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

// Package debugger implements a reaonably comprehensive debugging tool for
// the interpreter. Features include:
//
//   - breakpoints
//   - stepping by instruction or by a number of instructions
//   - running in real time until a breakpoint or fault
//   - inspection and modification of memory and the CPU registers
//   - control of the keypad and the timers
//   - a record of recently executed instructions
//   - disassembly of the loaded program
//
// Interaction with the debugger is through the terminal.Terminal interface.
// Two implementations are provided in the terminal sub-packages. A display
// window can be attached to the debugger through the gui.GUI and
// gui.FrameRenderer interfaces but this is optional.
//
// The command syntax is defined by the command template in
// commands_template.go and is validated by the commandline package. Help for
// each command is available with the HELP command.
package debugger
