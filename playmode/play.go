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

package playmode

import (
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/audio"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/scheduler"
	"github.com/jetsetilly/gopher8/userinput"
)

type playmode struct {
	itr    *hardware.Interpreter
	scr    gui.GUI
	rnd    gui.FrameRenderer
	beeper *audio.Beeper
	sch    *scheduler.Scheduler

	controllers userinput.Controllers
	userinput   chan userinput.Event
	intChan     chan os.Signal

	stepMode bool
	state    govern.State
}

// Play sets the emulation running. The program must already have been loaded
// into the interpreter. The beeper can be nil.
func Play(itr *hardware.Interpreter, scr gui.GUI, rnd gui.FrameRenderer, beeper *audio.Beeper, stepMode bool) error {
	pl := &playmode{
		itr:       itr,
		scr:       scr,
		rnd:       rnd,
		beeper:    beeper,
		sch:       scheduler.NewScheduler(itr),
		userinput: make(chan userinput.Event, 64),
		intChan:   make(chan os.Signal, 1),
		stepMode:  stepMode,
		state:     govern.EmulatorStart,
	}

	if pl.beeper == nil {
		pl.beeper = audio.NewBeeper(nil)
	}

	err := scr.SetFeature(gui.ReqSetEventChan, pl.userinput)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	err = scr.SetFeature(gui.ReqSetVisibility, true)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	// ctrl-c ends the emulation gracefully
	signal.Notify(pl.intChan, os.Interrupt)
	defer signal.Stop(pl.intChan)

	pl.start()

	throttle := scheduler.NewThrottle()
	defer throttle.End()

	for pl.state != govern.Ending {
		elapsed := throttle.Wait()

		err = pl.eventHandler()
		if err != nil {
			return err
		}

		switch pl.state {
		case govern.Running, govern.Paused:
			err = pl.sch.Frame(elapsed)
			if err != nil {
				pl.halt(err)
			}
		}

		err = pl.rnd.NewFrame(pl.itr.PixelStates())
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}

		err = pl.beeper.Frame(pl.state != govern.Halted && pl.itr.SoundOn())
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}
	}

	err = pl.beeper.End()
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	return nil
}

// start or restart the emulation, in either the Running or Paused state
// depending on step mode.
func (pl *playmode) start() {
	pl.sch.Reset()
	pl.request(gui.ReqFault, nil)
	if pl.stepMode {
		pl.setState(govern.Paused)
	} else {
		pl.setState(govern.Running)
	}
}

func (pl *playmode) setState(state govern.State) {
	if !govern.Transition(pl.state, state) {
		logger.Logf(logger.Allow, "playmode", "illegal state transition (%s to %s)", pl.state, state)
		return
	}

	pl.state = state
	pl.sch.SetPaused(state == govern.Paused)
	pl.request(gui.ReqState, state)
}

func (pl *playmode) halt(err error) {
	logger.Log(logger.Allow, "playmode", err)
	pl.setState(govern.Halted)
	pl.request(gui.ReqFault, err)
}

// request a GUI feature. errors are logged and otherwise ignored. the order
// of requests is important so SetFeatureNoError() is not suitable
func (pl *playmode) request(request gui.FeatureReq, args ...gui.FeatureReqData) {
	err := pl.scr.SetFeature(request, args...)
	if err != nil {
		logger.Log(logger.Allow, "playmode", err)
	}
}
