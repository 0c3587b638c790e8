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

// Package paths contains functions to prepare paths for gopher8 resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the preferences file.
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// The policy of ResourcePath() depends on the build tags. For development
// builds the base path is ".gopher8" in the current working directory. For
// release builds (built with the "release" tag) the base path is "gopher8" in
// the user's configuration directory, as returned by os.UserConfigDir().
//
// In both cases the directory, including any subdirectory named in the path
// argument, is created if it does not already exist.
package paths
