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

package cpu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8/hardware/cpu/stack"
	"github.com/jetsetilly/gopher8/hardware/cpu/timing"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/keyboard"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/random"
)

// IllegalInstruction is the sentinel error pattern for an opcode that decodes
// to the Invalid operator.
const IllegalInstruction = "cpu: illegal instruction (%04x) at %#04x"

// NumRegisters is the number of general purpose registers.
const NumRegisters = 16

// Flag is the index of the general purpose register used for carry, borrow
// and collision results.
const Flag = 0xf

// Display defines the operations of the display as required by the CPU.
type Display interface {
	Reset()
	DrawSprite(x uint8, y uint8, sprite []uint8) bool
}

// Keypad defines the operations of the keyboard as required by the CPU. Read
// should return the pressed state of the key and clear it.
type Keypad interface {
	Read(key uint8) (bool, error)
}

// CPU implements the CHIP-8 processor. Register logic is implemented by the
// Register and Address types in the registers sub-package.
type CPU struct {
	ins *instance.Instance

	V  [NumRegisters]registers.Register
	I  registers.Address
	PC registers.Address
	DT registers.Register
	ST registers.Register

	Stack *stack.Stack

	mem cpubus.Memory
	dsp Display
	kb  Keypad

	// random numbers for the RND instruction. taken from the instance if
	// possible
	rnd *random.Random

	// the CPU is waiting for a key press. the target register is specified by
	// the instruction that started the wait
	waiting     bool
	waitingInst instructions.Instruction

	// number of steps since the last reset, including steps spent waiting for
	// a key
	count uint64

	// buffer for sprite data read from memory
	sprite [0x0f]uint8

	// last result. the Final field is false only when the CPU has just been
	// reset or if the last step failed during fetch
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// instance argument can be nil, in which case the default timing values are
// used and nothing is logged.
func NewCPU(ins *instance.Instance, mem cpubus.Memory, dsp Display, kb Keypad) *CPU {
	mc := &CPU{
		ins:   ins,
		mem:   mem,
		dsp:   dsp,
		kb:    kb,
		I:     registers.NewAddress(0, "I"),
		PC:    registers.NewAddress(memory.ProgramOrigin, "PC"),
		DT:    registers.NewRegister(0, "DT"),
		ST:    registers.NewRegister(0, "ST"),
		Stack: stack.NewStack(),
	}

	for i := range mc.V {
		mc.V[i] = registers.NewRegister(0, fmt.Sprintf("V%X", i))
	}

	if ins != nil {
		mc.rnd = ins.Random
	} else {
		mc.rnd = random.NewRandom(mc)
	}

	return mc
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s %s %s %s SP=%d", mc.PC, mc.I, mc.DT, mc.ST, mc.Stack.Depth()))
	for i := range mc.V {
		if i%8 == 0 {
			s.WriteString("\n")
		} else {
			s.WriteString(" ")
		}
		s.WriteString(mc.V[i].String())
	}
	return s.String()
}

// Instructions implements the random.Clock interface.
func (mc *CPU) Instructions() uint64 {
	return mc.count
}

// Waiting returns true if the CPU is waiting for a key press. The second
// value is the index of the register that will receive the key.
func (mc *CPU) Waiting() (bool, uint8) {
	return mc.waiting, mc.waitingInst.X()
}

func (mc *CPU) timing() timing.Timing {
	if mc.ins == nil {
		return timing.Default()
	}
	return mc.ins.Timing
}

// Reset reinitialises all registers, the stack and the waiting state. The
// program counter is set to the program origin. If the random state
// preference is set then the general purpose registers are given random
// values.
func (mc *CPU) Reset() {
	mc.LastResult = execution.Result{}
	mc.count = 0
	mc.waiting = false
	mc.waitingInst = instructions.Instruction{}

	randomState := mc.ins != nil && mc.ins.Prefs.Live.RandomState.Load()
	for i := range mc.V {
		if randomState {
			mc.V[i].Load(uint8(mc.ins.Random.NoRewind(0x100)))
		} else {
			mc.V[i].Reset()
		}
	}

	mc.I.Reset()
	mc.PC.Load(memory.ProgramOrigin)
	mc.DT.Reset()
	mc.ST.Reset()
	mc.Stack.Reset()
}

// TimerTick decrements the delay and sound timers. Neither timer decrements
// below zero.
func (mc *CPU) TimerTick() {
	if !mc.DT.IsZero() {
		mc.DT.Subtract(1)
	}
	if !mc.ST.IsZero() {
		mc.ST.Subtract(1)
	}
}

// SoundOn returns true if the sound timer is not zero.
func (mc *CPU) SoundOn() bool {
	return !mc.ST.IsZero()
}

// ExecuteInstruction steps the CPU forward one instruction, or polls the
// keypad if the CPU is waiting for a key. Returns the time cost of the step in
// microseconds.
//
// An error is returned for illegal instructions and for instructions that
// access memory, the stack or the keypad outside of their limits. The
// LastResult field describes the failed instruction.
func (mc *CPU) ExecuteInstruction() (int, error) {
	mc.count++

	if mc.waiting {
		return mc.pollKeypad()
	}

	mc.LastResult = execution.Result{
		Address: mc.PC.Value(),
	}

	opcode, err := mc.mem.Read16(mc.PC.Value())
	if err != nil {
		return 0, curated.Errorf("cpu: %v", err)
	}

	ins := instructions.Decode(opcode)
	mc.LastResult.Instruction = ins
	mc.LastResult.Cost = mc.timing().Cost(ins)

	// the program counter is advanced before execution regardless of the
	// instruction
	mc.PC.Add(2)

	err = mc.execute(ins)
	mc.LastResult.Final = true

	if mc.ins != nil && mc.ins.TraceInstructions() {
		logger.Log(mc.ins, "cpu", mc.LastResult)
	}

	return mc.LastResult.Cost, err
}

// poll the keypad in ascending order. the first pressed key ends the waiting
// state and is consumed by the read
func (mc *CPU) pollKeypad() (int, error) {
	mc.LastResult = execution.Result{
		Address:     mc.PC.Value(),
		Instruction: mc.waitingInst,
		Cost:        mc.timing().KeyWaitPoll,
		Waiting:     true,
		Final:       true,
	}

	for k := uint8(0); k < keyboard.NumKeys; k++ {
		pressed, err := mc.kb.Read(k)
		if err != nil {
			return mc.LastResult.Cost, curated.Errorf("cpu: %v", err)
		}
		if pressed {
			mc.V[mc.waitingInst.X()].Load(k)
			mc.waiting = false
			mc.LastResult.KeyFound = true
			mc.LastResult.Key = k
			break
		}
	}

	if mc.ins != nil && mc.ins.TraceInstructions() {
		logger.Log(mc.ins, "cpu", mc.LastResult)
	}

	return mc.LastResult.Cost, nil
}

func (mc *CPU) skipIf(condition bool) {
	if condition {
		mc.PC.Add(2)
	}
}

func (mc *CPU) execute(ins instructions.Instruction) error {
	vx := &mc.V[ins.X()]
	vy := &mc.V[ins.Y()]
	vf := &mc.V[Flag]

	switch ins.Operator {
	case instructions.Cls:
		mc.dsp.Reset()

	case instructions.Ret:
		addr, err := mc.Stack.Pop()
		if err != nil {
			return curated.Errorf("cpu: %v", err)
		}
		mc.PC.Load(addr)

	case instructions.Jp:
		mc.PC.Load(ins.NNN())

	case instructions.Call:
		err := mc.Stack.Push(mc.PC.Value())
		if err != nil {
			return curated.Errorf("cpu: %v", err)
		}
		mc.PC.Load(ins.NNN())

	case instructions.SeImm:
		mc.skipIf(vx.Value() == ins.KK())

	case instructions.SneImm:
		mc.skipIf(vx.Value() != ins.KK())

	case instructions.SeReg:
		mc.skipIf(vx.Value() == vy.Value())

	case instructions.LdImm:
		vx.Load(ins.KK())

	case instructions.AddImm:
		// carry is discarded
		vx.Add(ins.KK())

	case instructions.LdReg:
		vx.Load(vy.Value())

	case instructions.Or:
		vx.Load(vx.Value() | vy.Value())

	case instructions.And:
		vx.Load(vx.Value() & vy.Value())

	case instructions.Xor:
		vx.Load(vx.Value() ^ vy.Value())

	case instructions.AddReg:
		// the flag is written before the result. if Vx is VF then the result
		// overwrites the flag
		x, y := vx.Value(), vy.Value()
		carry := registers.NewRegister(x, "")
		vf.Load(carry.Add(y))
		vx.Load(carry.Value())

	case instructions.Sub:
		x, y := vx.Value(), vy.Value()
		var flag uint8
		if x > y {
			flag = 1
		}
		vf.Load(flag)
		vx.Load(x - y)

	case instructions.Shr:
		v := registers.NewRegister(vx.Value(), "")
		vf.Load(v.ShiftRight())
		vx.Load(v.Value())

	case instructions.Subn:
		x, y := vx.Value(), vy.Value()
		var flag uint8
		if y > x {
			flag = 1
		}
		vf.Load(flag)
		vx.Load(y - x)

	case instructions.Shl:
		v := registers.NewRegister(vx.Value(), "")
		vf.Load(v.ShiftLeft())
		vx.Load(v.Value())

	case instructions.SneReg:
		mc.skipIf(vx.Value() != vy.Value())

	case instructions.LdIndex:
		mc.I.Load(ins.NNN())

	case instructions.JpV0:
		mc.PC.Load(ins.NNN() + uint16(mc.V[0].Value()))

	case instructions.Rnd:
		vx.Load(uint8(mc.rnd.Rewindable(0x100)) & ins.KK())

	case instructions.Drw:
		n := int(ins.N())
		for i := 0; i < n; i++ {
			d, err := mc.mem.Read(mc.I.Value() + uint16(i))
			if err != nil {
				return curated.Errorf("cpu: %v", err)
			}
			mc.sprite[i] = d
		}
		var collision uint8
		if mc.dsp.DrawSprite(vx.Value(), vy.Value(), mc.sprite[:n]) {
			collision = 1
		}
		vf.Load(collision)

	case instructions.Skp:
		pressed, err := mc.kb.Read(vx.Value())
		if err != nil {
			return curated.Errorf("cpu: %v", err)
		}
		mc.skipIf(pressed)

	case instructions.Sknp:
		pressed, err := mc.kb.Read(vx.Value())
		if err != nil {
			return curated.Errorf("cpu: %v", err)
		}
		mc.skipIf(!pressed)

	case instructions.LdFromDT:
		vx.Load(mc.DT.Value())

	case instructions.LdKey:
		mc.waiting = true
		mc.waitingInst = ins

	case instructions.LdToDT:
		mc.DT.Load(vx.Value())

	case instructions.LdToST:
		mc.ST.Load(vx.Value())

	case instructions.AddIndex:
		mc.I.Add(uint16(vx.Value()))

	case instructions.LdFont:
		mc.I.Load(memory.GlyphAddress(vx.Value()))

	case instructions.LdBCD:
		v := vx.Value()
		digits := [3]uint8{v / 100, (v / 10) % 10, v % 10}
		for i, d := range digits {
			err := mc.mem.Write(mc.I.Value()+uint16(i), d)
			if err != nil {
				return curated.Errorf("cpu: %v", err)
			}
		}

	case instructions.StoreBlock:
		for i := 0; i <= int(ins.X()); i++ {
			err := mc.mem.Write(mc.I.Value()+uint16(i), mc.V[i].Value())
			if err != nil {
				return curated.Errorf("cpu: %v", err)
			}
		}

	case instructions.LoadBlock:
		for i := 0; i <= int(ins.X()); i++ {
			d, err := mc.mem.Read(mc.I.Value() + uint16(i))
			if err != nil {
				return curated.Errorf("cpu: %v", err)
			}
			mc.V[i].Load(d)
		}

	default:
		return curated.Errorf(IllegalInstruction, ins.Opcode, mc.LastResult.Address)
	}

	return nil
}
