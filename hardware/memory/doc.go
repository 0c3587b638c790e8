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

// Package memory implements the 4096 byte address space of the interpreter.
//
// The first 80 bytes of memory hold the built-in font. Each glyph is five
// bytes long and the glyph for a digit is found at the address of the digit
// multiplied by five. The font is restored on every call to Reset().
//
// Programs are loaded at ProgramOrigin (0x200). Memory between the font and
// the program origin is unused by the interpreter.
//
// Access to memory is always bounds checked. An access outside of the address
// space returns an error matching the AddressOutOfRange pattern.
//
// There are two sets of access functions. Read(), Read16() and Write() are
// used by the CPU and implement the cpubus.Memory interface. These accesses
// are logged when access tracing is enabled. Peek() and Poke() are intended
// for the debugger and are never logged.
package memory
