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

// Package scheduler couples the interpreter to wall-clock time.
//
// The interpreter has no notion of real time. Each instruction reports how
// long it would have taken on the original hardware and it is the job of the
// Scheduler to run enough instructions to keep pace with the host. The host
// calls Frame() once per display refresh with the amount of time that has
// passed since the previous call.
//
// Any difference between the emulated time and wall time is carried over to
// the next frame. An instruction that overruns the wall time is not lost and
// the next frame simply runs fewer instructions.
//
// The Throttle type paces the host loop at the timer frequency.
package scheduler
