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

package audio

// Tone is a square wave Source.
type Tone struct {
	phaseInc float32
	phase    float32
	volume   float32
}

// NewTone creates a square wave of the specified frequency. Volume is in the
// range 0.0 to 1.0.
func NewTone(freq float32, volume float32) *Tone {
	return &Tone{
		phaseInc: freq / SampleFreq,
		volume:   volume,
	}
}

// Fill implements the Source interface.
func (t *Tone) Fill(buf []float32) {
	for i := range buf {
		if t.phase <= 0.5 {
			buf[i] = t.volume
		} else {
			buf[i] = -t.volume
		}
		t.phase += t.phaseInc
		if t.phase >= 1.0 {
			t.phase -= 1.0
		}
	}
}

// Reset implements the Source interface.
func (t *Tone) Reset() {
	t.phase = 0
}
