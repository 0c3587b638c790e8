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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/display"
)

// Video is an implementation of the gui.FrameRenderer interface. It generates
// a SHA-1 value of the display every frame. It does not show the display
// anywhere.
//
// Note that the use of SHA-1 is fine for this application because this is not
// a cryptographic task.
type Video struct {
	digest [sha1.Size]byte

	// the previous digest value is stored at the head of the array
	pixels []byte

	frames int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{
		pixels: make([]byte, sha1.Size+display.Width*display.Height),
	}
}

// Hash implements the digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.frames = 0
}

// Frames returns the number of frames seen since the digest was reset.
func (dig *Video) Frames() int {
	return dig.frames
}

// NewFrame implements the gui.FrameRenderer interface.
func (dig *Video) NewFrame(px display.Pixels) error {
	copy(dig.pixels, dig.digest[:])

	i := sha1.Size
	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			if px[x][y] {
				dig.pixels[i] = 1
			} else {
				dig.pixels[i] = 0
			}
			i++
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++

	return nil
}
