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

// Package registers implements the two types of register found in the
// interpreter. Register is an 8-bit register and is used for the sixteen
// general purpose registers (V0 to VF) and the two timers (DT and ST). Address
// is a 16-bit register and is used for the index register (I) and the program
// counter (PC).
//
// All arithmetic is wrapping to the width of the register. Flags are not
// stored in the register types. Rather, the functions that can produce a
// carry or borrow return that information and it is up to the CPU to decide
// what to do with it. For example, the ADD Vx, Vy instruction might be
// implemented as:
//
//	carry := cpu.V[x].Add(cpu.V[y].Value())
//	cpu.V[0xf].Load(carry)
package registers
