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

// Package display implements the 64x32 monochrome display of the interpreter.
//
// Sprites are drawn by toggling pixels. A pixel that is toggled from on to
// off is a collision. By default, the parts of a sprite that fall beyond the
// right or bottom edges of the display are clipped. Clipped pixels do not
// contribute to the collision result. If the wrap sprites preference is set
// then pixels beyond an edge wrap around to the opposite edge.
package display

import (
	"strings"

	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/logger"
)

// Dimensions of the display.
const (
	Width  = 64
	Height = 32
)

// SpriteWidth is the number of pixels in each row of a sprite.
const SpriteWidth = 8

// Pixels is the state of every pixel on the display. The state of a pixel is
// found with Pixels[x][y].
type Pixels [Width][Height]bool

// String returns an ASCII representation of the display.
func (p Pixels) String() string {
	s := strings.Builder{}
	s.Grow((Width + 1) * Height)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if p[x][y] {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}

// Display is the interpreter's display.
type Display struct {
	ins    *instance.Instance
	pixels Pixels
}

// NewDisplay is the preferred method of initialisation for the Display type.
// The instance argument can be nil, in which case sprites are always clipped
// and drawing is never logged.
func NewDisplay(ins *instance.Instance) *Display {
	return &Display{ins: ins}
}

// Reset turns off all pixels.
func (dsp *Display) Reset() {
	dsp.pixels = Pixels{}
}

// Pixels returns a copy of the current state of the display.
func (dsp *Display) Pixels() Pixels {
	return dsp.pixels
}

// DrawSprite draws the sprite with the top-left corner at the coordinates.
// Each byte of sprite data is one row of the sprite, with the most
// significant bit being the left-most pixel. Returns true if a pixel was
// turned off.
func (dsp *Display) DrawSprite(x uint8, y uint8, sprite []uint8) bool {
	wrap := dsp.ins != nil && dsp.ins.Prefs.Live.WrapSprites.Load()
	trace := dsp.ins != nil && dsp.ins.TraceAccess()

	var collision bool

	for row, d := range sprite {
		if trace {
			logger.Logf(dsp.ins, "display", "sprite %08b", d)
		}

		py := int(y) + row
		if wrap {
			py %= Height
		} else if py >= Height {
			break
		}

		for col := 0; col < SpriteWidth; col++ {
			if d&(0x80>>col) == 0 {
				continue
			}

			px := int(x) + col
			if wrap {
				px %= Width
			} else if px >= Width {
				break
			}

			if dsp.pixels[px][py] {
				collision = true
			}
			dsp.pixels[px][py] = !dsp.pixels[px][py]
		}
	}

	return collision
}
