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
)

// the length of the buffer isn't really important but it must be more than
// sha1.Size bytes in length
const audioBufferLength = 1024 + sha1.Size

// the previous digest value occupies the start of the buffer so that streams
// longer than the buffer can be hashed
const audioBufferStart = sha1.Size

// Audio is an implementation of the audio.Mixer interface. It generates a
// SHA-1 value of the sample stream.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{
		buffer:   make([]uint8, audioBufferLength),
		bufferCt: audioBufferStart,
	}
}

// Hash implements the digest.Digest interface. Samples that have not yet
// been flushed are not included in the hash.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Audio) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.bufferCt = audioBufferStart
}

// SetAudio implements the audio.Mixer interface. Samples are quantised to
// eight bits before hashing.
func (dig *Audio) SetAudio(samples []float32) error {
	for _, s := range samples {
		dig.buffer[dig.bufferCt] = uint8(int8(s * 127))
		dig.bufferCt++
		if dig.bufferCt >= audioBufferLength {
			dig.flush()
		}
	}
	return nil
}

// EndMixing implements the audio.Mixer interface. Any unflushed samples are
// included in the hash.
func (dig *Audio) EndMixing() error {
	if dig.bufferCt > audioBufferStart {
		dig.flush()
	}
	return nil
}

func (dig *Audio) flush() {
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
}
