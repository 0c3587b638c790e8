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

import (
	"github.com/jetsetilly/gopher8/hardware/clocks"
)

// SampleFreq is the number of samples per second produced by the beeper.
const SampleFreq = 44100

// SamplesPerFrame is the number of samples produced for each frame.
const SamplesPerFrame = SampleFreq / clocks.TimerFrequency

// Default values for the beeper tone.
const (
	ToneFreq   = 440.0
	ToneVolume = 0.25
)

// Source produces samples when the beeper is on.
type Source interface {
	// Fill the buffer with the next samples from the source
	Fill(buf []float32)

	// Reset the source to the beginning of the waveform
	Reset()
}

// Mixer receives the samples produced by the Beeper.
type Mixer interface {
	SetAudio(samples []float32) error
	EndMixing() error
}

// Beeper produces audio for the interpreter's sound timer.
type Beeper struct {
	src    Source
	mixers []Mixer

	buf []float32
	on  bool
}

// NewBeeper is the preferred method of initialisation for the Beeper type.
// The Source can be nil in which case a Tone with the default values is used.
func NewBeeper(src Source) *Beeper {
	if src == nil {
		src = NewTone(ToneFreq, ToneVolume)
	}
	return &Beeper{
		src: src,
		buf: make([]float32, SamplesPerFrame),
	}
}

// AddMixer adds a Mixer to the list of mixers that receive audio.
func (b *Beeper) AddMixer(m Mixer) {
	b.mixers = append(b.mixers, m)
}

// Frame produces one frame of audio. Silence is produced if on is false.
func (b *Beeper) Frame(on bool) error {
	if on {
		// a new beep starts from the start of the waveform
		if !b.on {
			b.src.Reset()
		}
		b.src.Fill(b.buf)
	} else {
		clear(b.buf)
	}
	b.on = on

	for _, m := range b.mixers {
		err := m.SetAudio(b.buf)
		if err != nil {
			return err
		}
	}

	return nil
}

// End audio production.
func (b *Beeper) End() error {
	for _, m := range b.mixers {
		err := m.EndMixing()
		if err != nil {
			return err
		}
	}
	return nil
}
