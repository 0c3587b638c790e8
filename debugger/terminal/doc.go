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

// Package terminal describes how the debugger talks to the user. The debugger
// reads commands and prints results through the Terminal interface and never
// touches stdin or stdout itself.
//
// The plainterm sub-package reads whole lines from any io.Reader and is
// suitable for scripted input. The colorterm sub-package puts the terminal
// into raw mode and provides line editing, history and coloured output.
//
// Tab completion is supplied to the terminal by the debugger through
// RegisterTabCompletion(). The commandline package has an implementation that
// completes against the debugger's command template.
package terminal
