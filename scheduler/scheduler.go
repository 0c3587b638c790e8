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

package scheduler

import (
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/clocks"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/performance/limiter"
)

// Stepper is the part of the interpreter required by the Scheduler.
type Stepper interface {
	// InstructionStep executes one instruction and returns the time cost of
	// the instruction in microseconds
	InstructionStep() (int, error)

	// FrequencyStep is called once per frame and steps the timers
	FrequencyStep()
}

// MaxStepsPerFrame is the number of instruction steps after which a frame is
// abandoned. Only reachable if instructions are configured to cost nothing.
const MaxStepsPerFrame = 100000

// Scheduler runs instructions in step with wall-clock time.
type Scheduler struct {
	stepper Stepper

	// the amount of wall time that has been accounted for and the amount of
	// emulated time that has been executed. the difference between the two
	// is carried from frame to frame
	wall     time.Duration
	emulated time.Duration

	// the number of frames and instruction steps since the scheduler was
	// created or reset
	frames int
	steps  int

	// while paused, frames step the timers but do not execute any
	// instructions. wall time does not accumulate while paused
	paused bool
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type.
func NewScheduler(stepper Stepper) *Scheduler {
	return &Scheduler{
		stepper: stepper,
	}
}

// Reset forgets any carried time.
func (sch *Scheduler) Reset() {
	sch.wall = 0
	sch.emulated = 0
	sch.frames = 0
	sch.steps = 0
}

// SetPaused stops or restarts instruction execution in Frame().
func (sch *Scheduler) SetPaused(paused bool) {
	sch.paused = paused
}

// Paused returns true if the scheduler is paused.
func (sch *Scheduler) Paused() bool {
	return sch.paused
}

// Frames returns the number of frames since the scheduler was created or reset.
func (sch *Scheduler) Frames() int {
	return sch.frames
}

// Steps returns the number of instruction steps since the scheduler was
// created or reset.
func (sch *Scheduler) Steps() int {
	return sch.steps
}

// Surplus returns the amount of emulated time that has been executed beyond
// wall time. It is never more than the cost of a single instruction.
func (sch *Scheduler) Surplus() time.Duration {
	return sch.emulated - sch.wall
}

// Resync discards any wall time that has not yet been caught up with. Used
// when the emulation restarts after being stopped part way through a frame.
func (sch *Scheduler) Resync() {
	sch.wall = sch.emulated
}

// Frame advances wall time by the elapsed duration and executes instructions
// until the emulated time has caught up. The timers are then stepped once.
//
// Errors from the interpreter end the frame early and are returned. The timers
// are not stepped in that case.
func (sch *Scheduler) Frame(elapsed time.Duration) error {
	if !sch.paused {
		sch.wall += elapsed

		var n int
		for sch.emulated < sch.wall {
			err := sch.step()
			if err != nil {
				return err
			}

			n++
			if n >= MaxStepsPerFrame {
				logger.Logf(logger.Allow, "scheduler", "frame abandoned after %d steps", n)
				sch.wall = sch.emulated
				break
			}
		}
	}

	sch.stepper.FrequencyStep()
	sch.frames++

	return nil
}

// Step executes a single instruction regardless of whether the scheduler is
// paused. Wall time is advanced by the same amount so that the step does not
// change the carried time.
func (sch *Scheduler) Step() error {
	before := sch.emulated
	err := sch.step()
	sch.wall += sch.emulated - before
	return err
}

func (sch *Scheduler) step() error {
	cost, err := sch.stepper.InstructionStep()
	if err != nil {
		return curated.Errorf("scheduler: %v", err)
	}
	sch.emulated += time.Duration(cost) * time.Microsecond
	sch.steps++
	return nil
}

// Throttle paces the host loop. Each call to Wait() blocks until the next
// frame is due and returns the wall time since the previous call.
type Throttle struct {
	lmtr *limiter.FpsLimiter
	last time.Time
}

// NewThrottle creates a Throttle running at the timer frequency.
func NewThrottle() *Throttle {
	return &Throttle{
		lmtr: limiter.NewFPSLimiter(clocks.TimerFrequency),
		last: time.Now(),
	}
}

// Wait for the next frame.
func (th *Throttle) Wait() time.Duration {
	th.lmtr.Wait()
	now := time.Now()
	elapsed := now.Sub(th.last)
	th.last = now
	return elapsed
}

// End stops the throttle.
func (th *Throttle) End() {
	th.lmtr.End()
}
