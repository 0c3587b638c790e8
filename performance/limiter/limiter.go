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

package limiter

import (
	"time"
)

// this is a really rough attempt at frame rate limiting. probably only any
// good if base performance of the machine is well above the required rate.

// FpsLimiter will trigger every frames per second.
type FpsLimiter struct {
	secondsPerFrame chan time.Duration

	tick chan bool
	quit chan bool
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
func NewFPSLimiter(framesPerSecond int) *FpsLimiter {
	lim := &FpsLimiter{
		secondsPerFrame: make(chan time.Duration, 1),
		tick:            make(chan bool),
		quit:            make(chan bool),
	}
	lim.SetLimit(framesPerSecond)

	// run ticker concurrently
	go func() {
		period := <-lim.secondsPerFrame
		adjusted := period
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}

			select {
			case period = <-lim.secondsPerFrame:
				adjusted = period
			default:
			}

			time.Sleep(adjusted)
			nt := time.Now()
			adjusted -= nt.Sub(t) - period
			if adjusted < 0 {
				adjusted = 0
			}
			t = nt
		}
	}()

	return lim
}

// SetLimit changes the limit at which the FpsLimiter waits. Values of less than
// one are treated as one.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) {
	if framesPerSecond < 1 {
		framesPerSecond = 1
	}

	// replace any pending change that the ticker has yet to see
	select {
	case <-lim.secondsPerFrame:
	default:
	}
	lim.secondsPerFrame <- time.Second / time.Duration(framesPerSecond)
}

// Wait will block until trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}

// End stops the limiter. Wait() must not be called after End().
func (lim *FpsLimiter) End() {
	close(lim.quit)
}
