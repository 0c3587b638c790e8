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

package hardware

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/keyboard"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
)

// Interpreter struct is the main container for the emulated components of the
// CHIP-8 interpreter.
type Interpreter struct {
	Instance *instance.Instance

	CPU      *cpu.CPU
	Mem      *memory.Memory
	Display  *display.Display
	Keyboard *keyboard.Keyboard

	// input from the host. key events should be pushed through Input when
	// they originate from a goroutine other than the emulation's goroutine
	Input *input.Input

	// the most recently loaded program. reloaded on every reset
	program []uint8
}

// NewInterpreter creates a new Interpreter and everything associated with the
// hardware. It is used for all aspects of emulation: debugging sessions, and
// regular play.
//
// The prefs argument can be nil, in which case the preferences are loaded
// from disk. Providing a non-nil value allows the preferences of more than one
// interpreter to be synchronised.
func NewInterpreter(label instance.Label, prefs *preferences.Preferences) (*Interpreter, error) {
	var err error

	itr := &Interpreter{}

	itr.Instance, err = instance.NewInstance(itr, prefs)
	if err != nil {
		return nil, curated.Errorf("interpreter: %v", err)
	}
	itr.Instance.Label = label

	itr.Mem = memory.NewMemory(itr.Instance)
	itr.Display = display.NewDisplay(itr.Instance)
	itr.Keyboard = keyboard.NewKeyboard(itr.Instance)
	itr.Input = input.NewInput(itr.Keyboard)
	itr.CPU = cpu.NewCPU(itr.Instance, itr.Mem, itr.Display, itr.Keyboard)

	err = itr.Reset()
	if err != nil {
		return nil, err
	}

	return itr, nil
}

// Instructions implements the random.Clock interface.
func (itr *Interpreter) Instructions() uint64 {
	if itr.CPU == nil {
		return 0
	}
	return itr.CPU.Instructions()
}

func (itr *Interpreter) String() string {
	return itr.CPU.String()
}

// LoadProgram installs the program image at the program origin and resets the
// interpreter. The image is remembered and reloaded on every subsequent reset.
func (itr *Interpreter) LoadProgram(data []uint8) error {
	if len(data) > memory.MaxProgramSize {
		return curated.Errorf("interpreter: %v", curated.Errorf(memory.ProgramTooLarge, len(data), memory.MaxProgramSize))
	}

	itr.program = make([]uint8, len(data))
	copy(itr.program, data)

	logger.Logf(itr.Instance, "interpreter", "program loaded (%d bytes)", len(data))

	return itr.Reset()
}

// Program returns a copy of the most recently loaded program.
func (itr *Interpreter) Program() []uint8 {
	p := make([]uint8, len(itr.program))
	copy(p, itr.program)
	return p
}

// Reset restores memory, the CPU, the display and the keyboard to their
// initial state and then reloads the most recently loaded program.
func (itr *Interpreter) Reset() error {
	itr.Instance.UpdateTiming()

	itr.Mem.Reset()
	itr.CPU.Reset()
	itr.Display.Reset()
	itr.Keyboard.Reset()
	itr.Input.Clear()

	err := itr.Mem.LoadProgram(itr.program)
	if err != nil {
		return curated.Errorf("interpreter: %v", err)
	}

	return nil
}

// KeyPressed marks the key as pressed. Must only be called from the
// emulation's goroutine. Use Input.PushEvent() otherwise.
func (itr *Interpreter) KeyPressed(key uint8) error {
	return itr.Input.HandleEvent(input.Event{Key: key, Pressed: true})
}

// KeyReleased marks the key as released. Must only be called from the
// emulation's goroutine. Use Input.PushEvent() otherwise.
func (itr *Interpreter) KeyReleased(key uint8) error {
	return itr.Input.HandleEvent(input.Event{Key: key, Pressed: false})
}

// InstructionStep executes exactly one instruction, or one poll of the keypad
// if the CPU is waiting for a key. Returns the time cost of the step in
// microseconds.
//
// Pushed input events are handled before the instruction is executed.
func (itr *Interpreter) InstructionStep() (int, error) {
	err := itr.Input.Handle()
	if err != nil {
		return 0, curated.Errorf("interpreter: %v", err)
	}

	cost, err := itr.CPU.ExecuteInstruction()
	if err != nil {
		return cost, curated.Errorf("interpreter: %v", err)
	}

	return cost, nil
}

// FrequencyStep decrements the delay and sound timers. Should be called sixty
// times a second.
func (itr *Interpreter) FrequencyStep() {
	itr.CPU.TimerTick()
}

// PixelStates returns a copy of the state of every pixel on the display.
func (itr *Interpreter) PixelStates() display.Pixels {
	return itr.Display.Pixels()
}

// SoundOn returns true if the beeper should be sounding.
func (itr *Interpreter) SoundOn() bool {
	return itr.CPU.SoundOn()
}
