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

// Package cpu emulates the CHIP-8 interpreter's processor. The processor
// executes instructions according to the two byte value read from the
// address pointed to by the program counter. This value is the opcode and is
// decoded by the instructions package. The decoded instruction is then
// executed against the registers, memory, stack, display and keyboard.
//
// The instance of the CPU type requires an implementation of the
// cpubus.Memory interface, along with implementations of the Display and
// Keypad interfaces. The cpubus interface defines the memory operations
// required by the CPU.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// It executes a single instruction and returns the time cost of that
// instruction in microseconds. The cost is not measured, it is taken from the
// timing values of the instance. A host should use the time cost to pace the
// emulation.
//
//	mc := cpu.NewCPU(ins, mem, dsp, kb)
//
//	for {
//		cost, err := mc.ExecuteInstruction()
//		if err != nil {
//			return err
//		}
//		wait(cost)
//	}
//
// The delay and sound timers are not decremented by ExecuteInstruction(). A
// host should call TimerTick() sixty times a second regardless of how many
// instructions are being executed.
//
// The LD Vx, K instruction puts the CPU into a waiting state. The instruction
// does not block. Instead, every subsequent call to ExecuteInstruction()
// polls the keypad until a key is pressed.
//
// The CPU type contains some public fields that are worthy of mention. The
// LastResult field can be probed for information about the last instruction
// executed. See the execution package for more information. Very useful for
// debuggers.
package cpu
