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
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/hardware/clocks"
)

// PerformanceBrake is the number of calls to a continue check that can
// reasonably be skipped between expensive checks. Run() calls the check after
// every instruction.
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The timers are
// stepped every time the accumulated time cost of the instructions reaches the
// timer period.
func (itr *Interpreter) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var elapsed int
	var err error

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running:
			cost, err := itr.InstructionStep()
			if err != nil {
				return err
			}

			elapsed += cost
			for elapsed >= clocks.TimerPeriodMicro {
				elapsed -= clocks.TimerPeriodMicro
				itr.FrequencyStep()
			}
		case govern.Paused:
		default:
			return curated.Errorf("interpreter: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount sets the emulation running for the specified number of
// frames. A frame is one period of the timers. Useful for performance and
// regression tests.
func (itr *Interpreter) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	var elapsed int
	var frame int

	state := govern.Running
	for frame < numFrames && state != govern.Ending {
		cost, err := itr.InstructionStep()
		if err != nil {
			return err
		}

		elapsed += cost
		for elapsed >= clocks.TimerPeriodMicro {
			elapsed -= clocks.TimerPeriodMicro
			itr.FrequencyStep()
			frame++
		}

		state, err = continueCheck(frame)
		if err != nil {
			return err
		}
	}

	return nil
}
