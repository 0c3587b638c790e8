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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas, with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DEBUG", "DISASM")
//	verbosity := md.AddString("verbosity", "INFO", "log verbosity")
//	p, err := md.Parse()
//
// If the first argument after the flags is one of the sub-modes then Mode()
// returns that sub-mode and the argument is removed from RemainingArgs().
// Otherwise the first sub-mode in the list is taken to be the mode. Sub-mode
// comparisons are case insensitive.
//
// Once the mode is known, NewMode() prepares the Modes instance for the
// flags of that mode and Parse() is called again:
//
//	switch md.Mode() {
//	case "DEBUG":
//		md.NewMode()
//		term := md.AddString("term", "COLOR", "terminal type")
//		p, err := md.Parse()
//		...
//	}
//
// Modes can be nested as deeply as required. The Path() function returns the
// list of modes encountered so far, separated by a forward slash.
//
// Requests for help (the -help or -h flags) are handled by Parse(). The help
// message lists the flags for the current mode and the available sub-modes.
// Parse() returns ParseHelp in this instance.
package modalflag
