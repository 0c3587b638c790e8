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

// Package playmode runs the interpreter without any debugging features. The
// emulation is paced by the scheduler package and user input arrives from
// the GUI over a channel.
//
// In step mode the emulation starts paused. Each press of the step key
// executes a single instruction. The timers continue to be stepped at the
// normal rate while paused.
//
// If the interpreter faults the emulation is halted and the fault is sent to
// the GUI. The emulation can only continue after a reset.
package playmode
