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

package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"

	beeper "github.com/jetsetilly/gopher8/audio"
)

// WriteError is the pattern for every error returned by the package.
const WriteError = "wavwriter: %v"

const (
	bitDepth = 16
	peak     = 1<<(bitDepth-1) - 1

	// format identifier for uncompressed PCM
	pcm = 1
)

// WavWriter collects the beeper's output and writes it to a mono sixteen bit
// WAV file when mixing ends.
type WavWriter struct {
	filename string
	samples  []int
}

// New does not create the file. Nothing is written until EndMixing().
func New(filename string) (*WavWriter, error) {
	return &WavWriter{filename: filename}, nil
}

// SetAudio implements the audio.Mixer interface.
func (aw *WavWriter) SetAudio(samples []float32) error {
	for _, s := range samples {
		aw.samples = append(aw.samples, max(-peak, min(peak, int(s*peak))))
	}
	return nil
}

// EndMixing implements the audio.Mixer interface. The collected samples are
// encoded and written to the file.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf(WriteError, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(WriteError, err)
		}
	}()

	enc := wav.NewEncoder(f, beeper.SampleFreq, bitDepth, 1, pcm)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: beeper.SampleFreq},
		Data:           aw.samples,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing %d samples to %s", len(aw.samples), aw.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf(WriteError, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(WriteError, err)
	}
	return nil
}

// Len is the number of samples collected so far.
func (aw *WavWriter) Len() int {
	return len(aw.samples)
}
