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

package display_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/test"
)

func TestDrawAndCollision(t *testing.T) {
	dsp := display.NewDisplay(nil)

	collision := dsp.DrawSprite(0, 0, []uint8{0xff})
	test.ExpectFailure(t, collision)

	px := dsp.Pixels()
	for x := 0; x < 8; x++ {
		test.ExpectSuccess(t, px[x][0])
	}
	test.ExpectFailure(t, px[8][0])
	test.ExpectFailure(t, px[0][1])

	// drawing the same sprite again turns the pixels off
	collision = dsp.DrawSprite(0, 0, []uint8{0xff})
	test.ExpectSuccess(t, collision)

	px = dsp.Pixels()
	for x := 0; x < 8; x++ {
		test.ExpectFailure(t, px[x][0])
	}
}

func TestPartialOverlap(t *testing.T) {
	dsp := display.NewDisplay(nil)

	test.ExpectFailure(t, dsp.DrawSprite(0, 0, []uint8{0xf0}))
	test.ExpectFailure(t, dsp.DrawSprite(4, 0, []uint8{0xf0}))
	test.ExpectSuccess(t, dsp.DrawSprite(7, 0, []uint8{0x80}))

	px := dsp.Pixels()
	test.ExpectFailure(t, px[7][0])
	test.ExpectSuccess(t, px[6][0])
}

func TestClipping(t *testing.T) {
	dsp := display.NewDisplay(nil)

	// the right-most column of the sprite would be at x=64
	collision := dsp.DrawSprite(57, 0, []uint8{0xff})
	test.ExpectFailure(t, collision)

	px := dsp.Pixels()
	for x := 57; x < display.Width; x++ {
		test.ExpectSuccess(t, px[x][0])
	}

	// the clipped column did not wrap to the left edge
	test.ExpectFailure(t, px[0][0])

	// drawing again collides only with the visible pixels and does not panic
	collision = dsp.DrawSprite(57, 0, []uint8{0xff})
	test.ExpectSuccess(t, collision)

	// rows beyond the bottom edge are clipped
	collision = dsp.DrawSprite(0, 31, []uint8{0x80, 0x80, 0x80})
	test.ExpectFailure(t, collision)
	px = dsp.Pixels()
	test.ExpectSuccess(t, px[0][31])
	test.ExpectFailure(t, px[0][0])
	test.ExpectFailure(t, px[0][1])

	// a sprite entirely off the display does nothing
	test.ExpectFailure(t, dsp.DrawSprite(0xff, 0xff, []uint8{0xff, 0xff}))
	test.ExpectEquality(t, dsp.Pixels(), px)
}

func TestReset(t *testing.T) {
	dsp := display.NewDisplay(nil)
	dsp.DrawSprite(10, 10, []uint8{0xff, 0xff})
	dsp.Reset()
	test.ExpectEquality(t, dsp.Pixels(), display.Pixels{})
}

func TestString(t *testing.T) {
	dsp := display.NewDisplay(nil)
	dsp.DrawSprite(0, 0, []uint8{0xa0})

	s := dsp.Pixels().String()
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	test.ExpectEquality(t, len(lines), display.Height)
	test.ExpectEquality(t, len(lines[0]), display.Width)
	test.ExpectSuccess(t, strings.HasPrefix(lines[0], "#.#."))
}
