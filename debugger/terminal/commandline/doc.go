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

// Package commandline facilitates parsing of command line input. Given a
// command template, it can be used to validate user input and to offer tab
// completion.
//
// A command template is a list of strings, one per command. The first word of
// each template is the command's keyword. The remaining words describe the
// arguments:
//
//	KEYWORD      a literal argument that must be typed as shown
//	%N           a number (decimal, hex with 0x or $ prefix, octal with 0o)
//	%S           any string
//	%F           a filename
//	[A|B]        a required group; one of the alternatives must be given
//	(A|B)        an optional group
//
// Placeholders can be labelled for the purposes of the help system, for
// example %<address>N. Groups can be nested and each alternative in a group
// can be a sequence of arguments:
//
//	BREAK (DROP [%<address>N|ALL]|%<address>N)
//
// Literal arguments and keywords are matched without regard to case.
package commandline
