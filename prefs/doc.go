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

// Package prefs facilitates the storing and loading of preference values to
// and from disk.
//
// Preference values are typed (Bool, String, Int, Float and Generic) and are
// registered with a Disk instance using a key. Calling Save() on the Disk
// writes every registered value to the preferences file, which is a plain text
// file beginning with WarningBoilerPlate and followed by one sorted entry per
// line:
//
//	key :: value
//
// Entries in the file that belong to another Disk instance are preserved when
// the file is saved. This means that more than one part of the program can
// share the same preferences file.
//
// Values can also be set from the command line with PushCommandLineStack().
// Command line values take priority over values loaded from disk and are
// consumed when they are used.
package prefs
