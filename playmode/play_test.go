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

package playmode_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/playmode"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

type mockGUI struct {
	events chan chan userinput.Event
	states []govern.State
	faults []error
}

func newMockGUI() *mockGUI {
	return &mockGUI{
		events: make(chan chan userinput.Event, 1),
	}
}

func (g *mockGUI) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	switch request {
	case gui.ReqSetEventChan:
		g.events <- args[0].(chan userinput.Event)
	case gui.ReqState:
		g.states = append(g.states, args[0].(govern.State))
	case gui.ReqFault:
		if args[0] == nil {
			g.faults = append(g.faults, nil)
		} else {
			g.faults = append(g.faults, args[0].(error))
		}
	}
	return nil
}

func (g *mockGUI) SetFeatureNoError(request gui.FeatureReq, args ...gui.FeatureReqData) {
	_ = g.SetFeature(request, args...)
}

type mockRenderer struct {
	frames chan display.Pixels
}

func (r *mockRenderer) NewFrame(px display.Pixels) error {
	select {
	case r.frames <- px:
	default:
	}
	return nil
}

func (r *mockRenderer) wait(n int) {
	for i := 0; i < n; i++ {
		<-r.frames
	}
}

func newInterpreter(t *testing.T, program ...uint8) *hardware.Interpreter {
	t.Helper()
	test.TempWorkingDir(t)

	itr, err := hardware.NewInterpreter(instance.Test, nil)
	test.DemandSuccess(t, err)
	itr.Instance.Normalise()

	test.DemandSuccess(t, itr.LoadProgram(program))
	return itr
}

func key(k string) userinput.EventKeyboard {
	return userinput.EventKeyboard{Key: k, Down: true}
}

// play runs the script in a goroutine against the event channel given to the
// GUI and then runs the emulation.
func play(t *testing.T, itr *hardware.Interpreter, stepMode bool, script func(ch chan userinput.Event, r *mockRenderer)) *mockGUI {
	t.Helper()

	g := newMockGUI()
	r := &mockRenderer{frames: make(chan display.Pixels, 256)}

	go func() {
		ch := <-g.events
		script(ch, r)
	}()

	err := playmode.Play(itr, g, r, nil, stepMode)
	test.DemandSuccess(t, err)

	return g
}

func TestQuit(t *testing.T) {
	// JP $200
	itr := newInterpreter(t, 0x12, 0x00)

	g := play(t, itr, false, func(ch chan userinput.Event, r *mockRenderer) {
		r.wait(2)
		ch <- key(userinput.KeyQuit)
	})

	test.DemandEquality(t, len(g.states), 2)
	test.ExpectEquality(t, g.states[0], govern.Running)
	test.ExpectEquality(t, g.states[1], govern.Ending)
	test.ExpectInequality(t, itr.Instructions(), 0)
}

func TestStepMode(t *testing.T) {
	itr := newInterpreter(t,
		0x61, 0x0a, // LD V1, $0A
		0x62, 0x0b, // LD V2, $0B
	)

	g := play(t, itr, true, func(ch chan userinput.Event, r *mockRenderer) {
		r.wait(1)
		ch <- key(userinput.KeyStep)
		r.wait(2)
		ch <- userinput.EventQuit{}
	})

	test.ExpectEquality(t, g.states[0], govern.Paused)
	test.ExpectEquality(t, itr.CPU.V[1].Value(), 0x0a)
	test.ExpectEquality(t, itr.CPU.V[2].Value(), 0x00)
	test.ExpectEquality(t, itr.CPU.PC.Value(), 0x202)
}

func TestFaultAndReset(t *testing.T) {
	itr := newInterpreter(t, 0x00, 0x00)

	g := play(t, itr, false, func(ch chan userinput.Event, r *mockRenderer) {
		r.wait(2)
		ch <- key(userinput.KeyReset)
		r.wait(1)
		ch <- key(userinput.KeyQuit)
	})

	expected := []govern.State{govern.Running, govern.Halted, govern.Initialising, govern.Running}
	test.DemandSuccess(t, len(g.states) >= len(expected))
	for i, s := range expected {
		test.ExpectEquality(t, g.states[i], s, i)
	}
	test.ExpectEquality(t, g.states[len(g.states)-1], govern.Ending)

	var faulted bool
	for _, err := range g.faults {
		if err != nil {
			faulted = true
			test.ExpectSuccess(t, curated.Has(err, cpu.IllegalInstruction))
		}
	}
	test.ExpectSuccess(t, faulted)
}

func TestKeypadInput(t *testing.T) {
	itr := newInterpreter(t,
		0xf0, 0x0a, // LD V0, K
		0x12, 0x02, // JP $202
	)

	play(t, itr, false, func(ch chan userinput.Event, r *mockRenderer) {
		r.wait(1)
		ch <- key("G")
		r.wait(2)
		ch <- key(userinput.KeyQuit)
	})

	test.ExpectEquality(t, itr.CPU.V[0].Value(), 0x0e)
	test.ExpectEquality(t, itr.Keyboard.Peek(0xe), true)
}
