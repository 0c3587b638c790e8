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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/instance"
)

var timedOut = errors.New("performance timed out")

// Leadtime is the amount of time the interpreter runs before measurement
// begins.
var Leadtime = 2 * time.Second

// Check the performance of the interpreter with the program. The duration
// string is parsed with time.ParseDuration().
func Check(output io.Writer, profile Profile, program []uint8, duration string) error {
	itr, err := hardware.NewInterpreter(instance.Performance, nil)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	err = itr.LoadProgram(program)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	var startInstructions uint64
	var startTime time.Time
	var endTime time.Time

	// the accumulated time cost of the instructions executed since the
	// measurement began
	var emulated time.Duration

	// run for specified period of time
	runner := func() error {
		// setup trigger that expires when duration has elapsed. signals true
		// when duration has expired. signals false to indicate that
		// performance measurement should start
		//
		// buffered so that the timer goroutines do not block if the
		// interpreter returns early with an error
		timerChan := make(chan bool, 2)

		time.AfterFunc(Leadtime, func() {
			// signal parent function that the leadtime has elapsed
			timerChan <- false

			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		// only check for end of measurement period every PerformanceBrake
		// instructions. checking the timerChan is relatively expensive
		performanceBrake := 0

		// the measurement period has started
		measuring := false

		return itr.Run(func() (govern.State, error) {
			if measuring {
				emulated += time.Duration(itr.CPU.LastResult.Cost) * time.Microsecond
			}

			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0

				select {
				case v := <-timerChan:
					if v {
						endTime = time.Now()
						return govern.Ending, timedOut
					}

					// the leadtime has concluded and the measurement begins
					measuring = true
					startTime = time.Now()
					startInstructions = itr.Instructions()
				default:
				}
			}

			return govern.Running, nil
		})
	}

	// launch runner through the profiler. with ProfileNone the runner is
	// called directly
	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	instructions := itr.Instructions() - startInstructions
	wall := endTime.Sub(startTime)
	perSecond, ratio := CalcRate(instructions, emulated, wall)

	_, err = io.WriteString(output, fmt.Sprintf("%.0f instructions per second (%d instructions in %.2f seconds) %.1fx real time\n",
		perSecond, instructions, wall.Seconds(), ratio))
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	return nil
}
