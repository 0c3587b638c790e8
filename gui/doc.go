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

// Package gui is an abstraction layer for real GUI implementations. It defines
// the GUI interface, through which feature requests are made, and the
// FrameRenderer interface, through which the interpreter's display is shown.
//
// User input from the GUI is sent over a channel as userinput.Event values.
// The channel is given to the GUI with the ReqSetEventChan request.
package gui
