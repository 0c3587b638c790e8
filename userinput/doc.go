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

// Package userinput translates user input events from the host into events
// for the interpreter.
//
// User input events are created by the GUI and passed over a channel to
// whichever part of the emulator is driving the interpreter. The Controllers
// type takes those events and forwards keypad events to a HandleInput
// implementation. Events that control the emulator rather than the
// interpreter (quit, reset and single-step) are noted in the fields of the
// Controllers type for the caller to act upon.
//
// The keypad is mapped onto the left-hand side of the host keyboard:
//
//	2 3 4 5        1 2 3 C
//	W E R T   ->   4 5 6 D
//	S D F G        7 8 9 E
//	X C V B        A 0 B F
package userinput
