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

// Package instructions decodes the two byte opcodes of the CHIP-8 instruction
// set.
//
// Decoding is a total function. Every 16 bit value decodes to exactly one
// Instruction, with unrecognised bit patterns decoding to the Invalid
// operator. Whether an Invalid instruction is an error is a decision for the
// CPU at the time of execution.
//
// The Definition for each Operator describes the instruction's mnemonic, the
// form of its operands and the category of effect it has on the flow of the
// program. The Category is used by the disassembler to follow the program.
package instructions
