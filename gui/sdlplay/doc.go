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

// Package sdlplay implements the GUI for play mode using SDL. It shows the
// interpreter's display in a window and sends keyboard events to the
// emulation as userinput.Event values. The beeper is played through the
// sdlaudio package.
//
// All SDL functions must be called from the main thread. The emulation runs
// in a different goroutine and communicates with the GUI through
// SetFeature() and NewFrame(), both of which are serviced by Service().
package sdlplay
