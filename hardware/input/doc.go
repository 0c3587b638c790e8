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

// Package input coordinates the two types of key input into the interpreter.
//
// 1) Immediate input, from the same goroutine as the emulation
// 2) Pushed input, from a different goroutine
//
// Pushed events are queued and handled on the next call to Handle(). The
// Interpreter calls Handle() at the start of every instruction step so pushed
// events are seen by the CPU in the order in which they were pushed. For an
// example of pushed events see the gui/sdlplay package, which runs on the
// main thread while the emulation runs in its own goroutine.
package input
