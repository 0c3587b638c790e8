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

// Package clocks defines the constant values that define the speed of the
// timers in the interpreter.
//
// The delay and sound timers are decremented at a fixed rate of 60Hz. The
// time cost of an instruction is measured in microseconds so the timer period
// is also given in microseconds.
package clocks

import "time"

// TimerFrequency is the frequency at which the delay and sound timers are
// decremented, in Hertz.
const TimerFrequency = 60

// TimerPeriod is the time between timer decrements.
const TimerPeriod = time.Second / TimerFrequency

// TimerPeriodMicro is the time between timer decrements in microseconds. This
// is the same unit as instruction time costs.
const TimerPeriodMicro = int(TimerPeriod / time.Microsecond)
