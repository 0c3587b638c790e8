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

// Package disassembly produces assembly listings of CHIP-8 programs.
//
// Disassembly is performed by following the flow of the program from the
// program origin. Every jump, subroutine call and skip is considered, and the
// bytes that can not be reached are listed as data. A program can reach code
// that the flow disassembly can not see, for example by jumping through V0 or
// by modifying itself, so the code/data distinction is a best guess.
//
// For quick disassemblies the FromProgram() function can be used. The
// resulting Disassembly can be written as an assembly listing with the Write()
// function, or searched with the Grep() function.
package disassembly
