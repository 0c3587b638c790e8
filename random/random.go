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

// Package random supplies random numbers to the emulation. Numbers can be
// tied to the instruction count so that replaying the same instructions
// produces the same numbers.
package random

import (
	"math/rand/v2"
	"time"
)

// seed shared by every Random instance that is not using ZeroSeed.
var baseSeed = uint64(time.Now().UnixNano())

// Clock is the emulation's measure of time. The interpreter uses the number
// of instructions executed since reset.
type Clock interface {
	Instructions() uint64
}

// Random numbers for the emulation.
type Random struct {
	clock Clock

	// ZeroSeed makes every sequence of numbers the same on every run. Used by
	// normalised instances.
	ZeroSeed bool
}

func NewRandom(clock Clock) *Random {
	return &Random{clock: clock}
}

func (rnd *Random) generator() *rand.Rand {
	var seed uint64
	if !rnd.ZeroSeed {
		seed = baseSeed
	}
	return rand.New(rand.NewPCG(seed, rnd.clock.Instructions()))
}

// Rewindable returns a number in the range [0, n). The number only changes
// when the clock changes.
func (rnd *Random) Rewindable(n int) int {
	return rnd.generator().IntN(n)
}

// NoRewind returns a number in the range [0, n) that is independent of the
// clock. With ZeroSeed it behaves like Rewindable.
func (rnd *Random) NoRewind(n int) int {
	if rnd.ZeroSeed {
		return rnd.Rewindable(n)
	}
	return rand.IntN(n)
}
