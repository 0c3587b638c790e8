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

// Package hardware is the base package for the CHIP-8 interpreter emulation.
// It and its sub-packages contain everything required for a headless
// emulation.
//
// The Interpreter type is the root of the emulation and contains external
// references to all the interpreter's sub-systems. From here, the emulation
// can either be started to run continuously (with optional hooks to check for
// continuation) or it can be stepped one instruction at a time.
//
// The Interpreter does not measure time. The InstructionStep() function
// returns the time cost of each instruction and it is up to the host to pace
// the emulation accordingly, and to call FrequencyStep() sixty times a
// second. See the scheduler package for an implementation.
//
// The Run() function paces the timers against the instruction time costs but
// otherwise runs as quickly as possible. Useful for performance checking and
// for testing.
package hardware
