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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/cpu/stack"
	"github.com/jetsetilly/gopher8/hardware/cpu/timing"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keyboard"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/test"
)

type harness struct {
	mc  *cpu.CPU
	mem *memory.Memory
	dsp *display.Display
	kb  *keyboard.Keyboard
}

func newHarness() *harness {
	h := &harness{
		mem: memory.NewMemory(nil),
		dsp: display.NewDisplay(nil),
		kb:  keyboard.NewKeyboard(nil),
	}
	h.mc = cpu.NewCPU(nil, h.mem, h.dsp, h.kb)
	return h
}

// putInstructions writes the instruction bytes to memory at the origin and
// returns the address following the last byte
func (h *harness) putInstructions(t *testing.T, origin uint16, bytes ...uint8) uint16 {
	t.Helper()
	for i, b := range bytes {
		test.DemandSuccess(t, h.mem.Poke(origin+uint16(i), b))
	}
	return origin + uint16(len(bytes))
}

func (h *harness) assertMem(t *testing.T, address uint16, value uint8) {
	t.Helper()
	d, err := h.mem.Peek(address)
	test.DemandSuccess(t, err)
	if d != value {
		t.Errorf("memory assertion failed (%#02x - wanted %#02x at address %#04x)", d, value, address)
	}
}

func step(t *testing.T, mc *cpu.CPU) int {
	t.Helper()
	cost, err := mc.ExecuteInstruction()
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid(timing.Default())
	if err != nil {
		t.Fatal(err)
	}
	return cost
}

func TestLoadImmediate(t *testing.T) {
	h := newHarness()
	h.putInstructions(t, 0x200, 0x61, 0x0a)

	test.ExpectEquality(t, step(t, h.mc), 27)
	test.ExpectEquality(t, h.mc.V[1].Value(), 0x0a)
	test.ExpectEquality(t, h.mc.PC.Value(), 0x202)
	test.ExpectEquality(t, h.mc.LastResult.Address, 0x200)
	test.ExpectEquality(t, h.mc.LastResult.Instruction.String(), "LD V1, $0A")
}

func TestAddImmediate(t *testing.T) {
	h := newHarness()
	h.putInstructions(t, 0x200, 0x70, 0xff, 0x70, 0x02)

	h.mc.V[cpu.Flag].Load(0x55)
	step(t, h.mc)
	test.ExpectEquality(t, h.mc.V[0].Value(), 0xff)
	step(t, h.mc)
	test.ExpectEquality(t, h.mc.V[0].Value(), 0x01)

	// carry is not recorded
	test.ExpectEquality(t, h.mc.V[cpu.Flag].Value(), 0x55)
}

func TestAddRegister(t *testing.T) {
	h := newHarness()

	// ADD V0, V1; ADD V0, V1; ADD VF, V1
	h.putInstructions(t, 0x200, 0x80, 0x14, 0x80, 0x14, 0x8f, 0x14)

	h.mc.V[0].Load(0xff)
	h.mc.V[1].Load(0x01)
	test.ExpectEquality(t, step(t, h.mc), 200)
	test.ExpectEquality(t, h.mc.V[0].Value(), 0x00)
	test.ExpectEquality(t, h.mc.V[cpu.Flag].Value(), 1)

	step(t, h.mc)
	test.ExpectEquality(t, h.mc.V[0].Value(), 0x01)
	test.ExpectEquality(t, h.mc.V[cpu.Flag].Value(), 0)

	// result written after the flag
	h.mc.V[cpu.Flag].Load(0xff)
	step(t, h.mc)
	test.ExpectEquality(t, h.mc.V[cpu.Flag].Value(), 0x00)
}

func TestSubtract(t *testing.T) {
	h := newHarness()

	// SUB V0, V1 three times
	h.putInstructions(t, 0x200, 0x80, 0x15, 0x80, 0x15, 0x80, 0x15)

	// equal operands do not set the flag
	h.mc.V[0].Load(0x05)
	h.mc.V[1].Load(0x05)
	step(t, h.mc)
	test.ExpectEquality(t, h.mc.V[0].Value(), 0x00)
	test.ExpectEquality(t, h.mc.V[cpu.Flag].Value(), 0)

	h.mc.V[0].Load(0x06)
	step(t, h.mc)
	test.ExpectEquality(t, h.mc.V[0].Value(), 0x01)
	test.ExpectEquality(t, h.mc.V[cpu.Flag].Value(), 1)

	h.mc.V[0].Load(0x04)
	step(t, h.mc)
	test.ExpectEquality(t, h.mc.V[0].Value(), 0xff)
	test.ExpectEquality(t, h.mc.V[cpu.Flag].Value(), 0)
}

func TestSubtractReverse(t *testing.T) {
	h := newHarness()

	// SUBN V0, V1 three times
	h.putInstructions(t, 0x200, 0x80, 0x17, 0x80, 0x17, 0x80, 0x17)

	h.mc.V[0].Load(0x03)
	h.mc.V[1].Load(0x05)
	step(t, h.mc)
	test.ExpectEquality(t, h.mc.V[0].Value(), 0x02)
	test.ExpectEquality(t, h.mc.V[cpu.Flag].Value(), 1)

	// underflow wraps
	h.mc.V[0].Load(0x07)
	step(t, h.mc)
	test.ExpectEquality(t, h.mc.V[0].Value(), 0xfe)
	test.ExpectEquality(t, h.mc.V[cpu.Flag].Value(), 0)

	h.mc.V[0].Load(0x05)
	step(t, h.mc)
	test.ExpectEquality(t, h.mc.V[0].Value(), 0x00)
	test.ExpectEquality(t, h.mc.V[cpu.Flag].Value(), 0)
}

func TestBitwise(t *testing.T) {
	h := newHarness()

	// OR V0, V1; AND V0, V2; XOR V0, V3; LD V4, V0
	h.putInstructions(t, 0x200, 0x80, 0x11, 0x80, 0x22, 0x80, 0x33, 0x84, 0x00)

	h.mc.V[0].Load(0x0f)
	h.mc.V[1].Load(0xf0)
	h.mc.V[2].Load(0x3c)
	h.mc.V[3].Load(0xff)

	step(t, h.mc)
	test.ExpectEquality(t, h.mc.V[0].Value(), 0xff)
	step(t, h.mc)
	test.ExpectEquality(t, h.mc.V[0].Value(), 0x3c)
	step(t, h.mc)
	test.ExpectEquality(t, h.mc.V[0].Value(), 0xc3)
	step(t, h.mc)
	test.ExpectEquality(t, h.mc.V[4].Value(), 0xc3)
}

func TestShift(t *testing.T) {
	h := newHarness()

	// SHR V0; SHR V0; SHL V1; SHL V1
	h.putInstructions(t, 0x200, 0x80, 0x06, 0x80, 0x06, 0x81, 0x0e, 0x81, 0x0e)

	h.mc.V[0].Load(0x03)
	h.mc.V[1].Load(0x40)

	step(t, h.mc)
	test.ExpectEquality(t, h.mc.V[0].Value(), 0x01)
	test.ExpectEquality(t, h.mc.V[cpu.Flag].Value(), 1)
	step(t, h.mc)
	test.ExpectEquality(t, h.mc.V[0].Value(), 0x00)
	test.ExpectEquality(t, h.mc.V[cpu.Flag].Value(), 1)

	step(t, h.mc)
	test.ExpectEquality(t, h.mc.V[1].Value(), 0x80)
	test.ExpectEquality(t, h.mc.V[cpu.Flag].Value(), 0)
	step(t, h.mc)
	test.ExpectEquality(t, h.mc.V[1].Value(), 0x00)
	test.ExpectEquality(t, h.mc.V[cpu.Flag].Value(), 1)
}

func TestSkips(t *testing.T) {
	h := newHarness()
	h.mc.V[0].Load(0x12)
	h.mc.V[1].Load(0x12)
	h.mc.V[2].Load(0x34)

	tests := []struct {
		hi, lo uint8
		skip   bool
		cost   int
	}{
		{0x30, 0x12, true, 55},  // SE V0, $12
		{0x30, 0x13, false, 55}, // SE V0, $13
		{0x40, 0x12, false, 55}, // SNE V0, $12
		{0x40, 0x13, true, 55},  // SNE V0, $13
		{0x50, 0x10, true, 73},  // SE V0, V1
		{0x50, 0x20, false, 73}, // SE V0, V2
		{0x90, 0x10, false, 73}, // SNE V0, V1
		{0x90, 0x20, true, 73},  // SNE V0, V2
	}

	for _, tt := range tests {
		h.mc.PC.Load(0x200)
		h.putInstructions(t, 0x200, tt.hi, tt.lo)
		test.ExpectEquality(t, step(t, h.mc), tt.cost)
		if tt.skip {
			test.ExpectEquality(t, h.mc.PC.Value(), 0x204, h.mc.LastResult)
		} else {
			test.ExpectEquality(t, h.mc.PC.Value(), 0x202, h.mc.LastResult)
		}
	}
}

func TestJumps(t *testing.T) {
	h := newHarness()

	// JP $300
	h.putInstructions(t, 0x200, 0x13, 0x00)
	test.ExpectEquality(t, step(t, h.mc), 105)
	test.ExpectEquality(t, h.mc.PC.Value(), 0x300)

	// JP V0, $400
	h.putInstructions(t, 0x300, 0xb4, 0x00)
	h.mc.V[0].Load(0x22)
	test.ExpectEquality(t, step(t, h.mc), 105)
	test.ExpectEquality(t, h.mc.PC.Value(), 0x422)
}

func TestSubroutine(t *testing.T) {
	h := newHarness()

	// CALL $300
	h.putInstructions(t, 0x200, 0x23, 0x00)

	// RET
	h.putInstructions(t, 0x300, 0x00, 0xee)

	step(t, h.mc)
	test.ExpectEquality(t, h.mc.PC.Value(), 0x300)
	test.ExpectEquality(t, h.mc.Stack.Depth(), 1)

	step(t, h.mc)
	test.ExpectEquality(t, h.mc.PC.Value(), 0x202)
	test.ExpectEquality(t, h.mc.Stack.Depth(), 0)
}

func TestStackOverflow(t *testing.T) {
	h := newHarness()

	// CALL $200
	h.putInstructions(t, 0x200, 0x22, 0x00)

	for i := 0; i < stack.Size; i++ {
		step(t, h.mc)
	}
	test.ExpectEquality(t, h.mc.Stack.Depth(), stack.Size)

	_, err := h.mc.ExecuteInstruction()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, stack.Overflow))
	test.ExpectEquality(t, h.mc.Stack.Depth(), stack.Size)
}

func TestStackUnderflow(t *testing.T) {
	h := newHarness()

	// RET
	h.putInstructions(t, 0x200, 0x00, 0xee)

	_, err := h.mc.ExecuteInstruction()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, stack.Underflow))
}

func TestIllegalInstruction(t *testing.T) {
	h := newHarness()
	h.putInstructions(t, 0x200, 0x61, 0x01, 0x51, 0x23)

	step(t, h.mc)

	_, err := h.mc.ExecuteInstruction()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpu.IllegalInstruction))
	test.ExpectEquality(t, err.Error(), "cpu: illegal instruction (5123) at 0x0202")
	test.ExpectEquality(t, h.mc.LastResult.Address, 0x202)
	test.ExpectEquality(t, h.mc.LastResult.Instruction.Opcode, 0x5123)
}

func TestFetchOutOfRange(t *testing.T) {
	h := newHarness()

	// JP $FFF
	h.putInstructions(t, 0x200, 0x1f, 0xff)
	step(t, h.mc)

	_, err := h.mc.ExecuteInstruction()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, memory.AddressOutOfRange))
	test.ExpectEquality(t, h.mc.LastResult.Final, false)
}

func TestRandom(t *testing.T) {
	h := newHarness()

	// RND V0, $00; RND V1, $0F
	h.putInstructions(t, 0x200, 0xc0, 0x00, 0xc1, 0x0f)

	h.mc.V[0].Load(0xff)
	test.ExpectEquality(t, step(t, h.mc), 164)
	test.ExpectEquality(t, h.mc.V[0].Value(), 0x00)

	h.mc.V[1].Load(0xff)
	step(t, h.mc)
	test.ExpectSuccess(t, h.mc.V[1].Value() <= 0x0f)
}

func TestDraw(t *testing.T) {
	h := newHarness()

	// LD I, $300; DRW V0, V1, 1; DRW V0, V1, 1
	h.putInstructions(t, 0x200, 0xa3, 0x00, 0xd0, 0x11, 0xd0, 0x11)
	h.putInstructions(t, 0x300, 0xff)

	step(t, h.mc)

	test.ExpectEquality(t, step(t, h.mc), 11000)
	test.ExpectEquality(t, h.mc.V[cpu.Flag].Value(), 0)
	px := h.dsp.Pixels()
	for x := 0; x < 8; x++ {
		test.ExpectSuccess(t, px[x][0], x)
	}
	test.ExpectEquality(t, px[8][0], false)

	step(t, h.mc)
	test.ExpectEquality(t, h.mc.V[cpu.Flag].Value(), 1)
	test.ExpectEquality(t, h.dsp.Pixels(), display.Pixels{})
}

func TestDrawFont(t *testing.T) {
	h := newHarness()

	// LD F, V0; DRW V1, V1, 5; CLS
	h.putInstructions(t, 0x200, 0xf0, 0x29, 0xd1, 0x15, 0x00, 0xe0)

	h.mc.V[0].Load(0x0a)
	test.ExpectEquality(t, step(t, h.mc), 91)
	test.ExpectEquality(t, h.mc.I.Value(), 50)

	test.ExpectEquality(t, step(t, h.mc), 15000)
	test.ExpectInequality(t, h.dsp.Pixels(), display.Pixels{})

	test.ExpectEquality(t, step(t, h.mc), 109)
	test.ExpectEquality(t, h.dsp.Pixels(), display.Pixels{})
}

func TestFontDigitOutOfRange(t *testing.T) {
	h := newHarness()

	// LD F, V0; LD F, V1
	h.putInstructions(t, 0x200, 0xf0, 0x29, 0xf1, 0x29)
	h.mc.V[0].Load(0x10)
	h.mc.V[1].Load(0xff)

	step(t, h.mc)
	test.ExpectEquality(t, h.mc.I.Value(), 0x50)
	step(t, h.mc)
	test.ExpectEquality(t, h.mc.I.Value(), 0x4fb)
}

func TestSkipKey(t *testing.T) {
	h := newHarness()

	// SKP V0; SKP V0
	h.putInstructions(t, 0x200, 0xe0, 0x9e)
	h.putInstructions(t, 0x204, 0xe0, 0x9e)

	h.mc.V[0].Load(0x05)
	test.DemandSuccess(t, h.kb.Press(5))

	test.ExpectEquality(t, step(t, h.mc), 73)
	test.ExpectEquality(t, h.mc.PC.Value(), 0x204)

	// the key has been consumed
	test.ExpectEquality(t, h.kb.Peek(5), false)
	step(t, h.mc)
	test.ExpectEquality(t, h.mc.PC.Value(), 0x206)

	// SKNP V0
	h.mc.PC.Load(0x200)
	h.putInstructions(t, 0x200, 0xe0, 0xa1)
	step(t, h.mc)
	test.ExpectEquality(t, h.mc.PC.Value(), 0x204)

	// no such key
	h.mc.PC.Load(0x200)
	h.mc.V[0].Load(0x10)
	_, err := h.mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Has(err, keyboard.NoSuchKey))
}

func TestWaitForKey(t *testing.T) {
	h := newHarness()

	// LD V3, K
	h.putInstructions(t, 0x200, 0xf3, 0x0a)

	test.ExpectEquality(t, step(t, h.mc), 0)
	waiting, reg := h.mc.Waiting()
	test.ExpectSuccess(t, waiting)
	test.ExpectEquality(t, reg, 3)

	test.ExpectEquality(t, step(t, h.mc), 100)
	test.ExpectSuccess(t, h.mc.LastResult.Waiting)
	test.ExpectEquality(t, h.mc.LastResult.KeyFound, false)
	test.ExpectEquality(t, h.mc.PC.Value(), 0x202)

	// the lowest pressed key ends the wait
	test.DemandSuccess(t, h.kb.Press(9))
	test.DemandSuccess(t, h.kb.Press(7))
	test.ExpectEquality(t, step(t, h.mc), 100)
	test.ExpectEquality(t, h.mc.V[3].Value(), 7)
	test.ExpectEquality(t, h.mc.LastResult.Key, 7)

	waiting, _ = h.mc.Waiting()
	test.ExpectEquality(t, waiting, false)
	test.ExpectEquality(t, h.kb.Peek(7), false)
	test.ExpectEquality(t, h.kb.Peek(9), true)
	test.ExpectEquality(t, h.mc.PC.Value(), 0x202)
}

func TestTimers(t *testing.T) {
	h := newHarness()

	// LD DT, V0; LD ST, V1; LD V2, DT
	h.putInstructions(t, 0x200, 0xf0, 0x15, 0xf1, 0x18, 0xf2, 0x07)

	h.mc.V[0].Load(2)
	h.mc.V[1].Load(1)

	test.ExpectEquality(t, step(t, h.mc), 45)
	test.ExpectEquality(t, h.mc.DT.Value(), 2)
	step(t, h.mc)
	test.ExpectEquality(t, h.mc.ST.Value(), 1)
	test.ExpectSuccess(t, h.mc.SoundOn())

	h.mc.TimerTick()
	test.ExpectEquality(t, h.mc.DT.Value(), 1)
	test.ExpectEquality(t, h.mc.SoundOn(), false)
	h.mc.TimerTick()
	test.ExpectEquality(t, h.mc.DT.Value(), 0)
	h.mc.TimerTick()
	test.ExpectEquality(t, h.mc.DT.Value(), 0)
	test.ExpectEquality(t, h.mc.ST.Value(), 0)

	step(t, h.mc)
	test.ExpectEquality(t, h.mc.V[2].Value(), 0)
}

func TestIndex(t *testing.T) {
	h := newHarness()

	// LD I, $FFE; ADD I, V0
	h.putInstructions(t, 0x200, 0xaf, 0xfe, 0xf0, 0x1e)

	h.mc.V[0].Load(0x04)
	h.mc.V[cpu.Flag].Load(0x00)

	test.ExpectEquality(t, step(t, h.mc), 55)
	test.ExpectEquality(t, step(t, h.mc), 86)
	test.ExpectEquality(t, h.mc.I.Value(), 0x1002)
	test.ExpectEquality(t, h.mc.V[cpu.Flag].Value(), 0)

	// sixteen bit wrap
	h.mc.PC.Load(0x202)
	h.mc.I.Load(0xfffe)
	step(t, h.mc)
	test.ExpectEquality(t, h.mc.I.Value(), 0x0002)
}

func TestBCD(t *testing.T) {
	h := newHarness()

	// LD I, $300; LD B, V0
	h.putInstructions(t, 0x200, 0xa3, 0x00, 0xf0, 0x33)

	h.mc.V[0].Load(234)
	step(t, h.mc)
	test.ExpectEquality(t, step(t, h.mc), 927)
	h.assertMem(t, 0x300, 2)
	h.assertMem(t, 0x301, 3)
	h.assertMem(t, 0x302, 4)
	test.ExpectEquality(t, h.mc.I.Value(), 0x300)

	// writing beyond the end of memory
	h.mc.PC.Load(0x202)
	h.mc.I.Load(0xffe)
	_, err := h.mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Has(err, memory.AddressOutOfRange))
}

func TestRegisterBlock(t *testing.T) {
	h := newHarness()

	// LD I, $300; LD [I], V2; LD V3, [I]
	h.putInstructions(t, 0x200, 0xa3, 0x00, 0xf2, 0x55, 0xf3, 0x65)
	h.putInstructions(t, 0x303, 0x44)

	h.mc.V[0].Load(0x11)
	h.mc.V[1].Load(0x22)
	h.mc.V[2].Load(0x33)
	h.mc.V[3].Load(0x99)

	step(t, h.mc)
	test.ExpectEquality(t, step(t, h.mc), 605)
	h.assertMem(t, 0x300, 0x11)
	h.assertMem(t, 0x301, 0x22)
	h.assertMem(t, 0x302, 0x33)
	h.assertMem(t, 0x303, 0x44)
	test.ExpectEquality(t, h.mc.I.Value(), 0x300)

	h.mc.V[0].Reset()
	h.mc.V[1].Reset()
	h.mc.V[2].Reset()
	step(t, h.mc)
	test.ExpectEquality(t, h.mc.V[0].Value(), 0x11)
	test.ExpectEquality(t, h.mc.V[1].Value(), 0x22)
	test.ExpectEquality(t, h.mc.V[2].Value(), 0x33)
	test.ExpectEquality(t, h.mc.V[3].Value(), 0x44)
}

func TestReset(t *testing.T) {
	h := newHarness()

	// LD V5, $55; CALL $300; LD V0, K
	h.putInstructions(t, 0x200, 0x65, 0x55, 0x23, 0x00)
	h.putInstructions(t, 0x300, 0xf0, 0x0a)

	step(t, h.mc)
	step(t, h.mc)
	step(t, h.mc)
	h.mc.I.Load(0x123)
	h.mc.DT.Load(10)

	h.mc.Reset()
	test.ExpectEquality(t, h.mc.PC.Value(), 0x200)
	test.ExpectEquality(t, h.mc.I.Value(), 0)
	test.ExpectEquality(t, h.mc.DT.Value(), 0)
	test.ExpectEquality(t, h.mc.V[5].Value(), 0)
	test.ExpectEquality(t, h.mc.Stack.Depth(), 0)
	test.ExpectEquality(t, h.mc.Instructions(), 0)
	test.ExpectEquality(t, h.mc.LastResult.Final, false)

	waiting, _ := h.mc.Waiting()
	test.ExpectEquality(t, waiting, false)
}

func TestString(t *testing.T) {
	h := newHarness()
	h.mc.V[0xa].Load(0x12)
	test.ExpectEquality(t, h.mc.String(), "PC=0x0200 I=0x0000 DT=0x00 ST=0x00 SP=0\n"+
		"V0=0x00 V1=0x00 V2=0x00 V3=0x00 V4=0x00 V5=0x00 V6=0x00 V7=0x00\n"+
		"V8=0x00 V9=0x00 VA=0x12 VB=0x00 VC=0x00 VD=0x00 VE=0x00 VF=0x00")
}
