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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
)

// UnsupportedSample is returned by LoadSample when the file extension is not
// recognised.
const UnsupportedSample = "audio: unsupported sample file (%s)"

const sampleLogTag = "audio"

// Sample is a Source that loops a recorded sound.
type Sample struct {
	data []float32
	idx  int
}

// Fill implements the Source interface.
func (s *Sample) Fill(buf []float32) {
	if len(s.data) == 0 {
		clear(buf)
		return
	}
	for i := range buf {
		buf[i] = s.data[s.idx]
		s.idx++
		if s.idx >= len(s.data) {
			s.idx = 0
		}
	}
}

// Reset implements the Source interface.
func (s *Sample) Reset() {
	s.idx = 0
}

// Len returns the number of samples in the recording, after resampling.
func (s *Sample) Len() int {
	return len(s.data)
}

// LoadSample loads a WAV or MP3 file. The file type is decided by the file
// extension. Only the first channel of a multi-channel file is used. The
// samples are scaled by volume and resampled to SampleFreq.
func LoadSample(filename string, volume float32) (*Sample, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("audio: %v", err)
	}
	defer f.Close()

	var data []float32
	var sampleRate int

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		data, sampleRate, err = decodeWAV(f)
	case ".mp3":
		data, sampleRate, err = decodeMP3(f)
	default:
		return nil, curated.Errorf(UnsupportedSample, filename)
	}
	if err != nil {
		return nil, curated.Errorf("audio: %v", err)
	}

	logger.Logf(logger.Allow, sampleLogTag, "%s: %d samples at %dHz", filepath.Base(filename), len(data), sampleRate)

	data = resample(data, sampleRate, SampleFreq)
	for i := range data {
		data[i] *= volume
	}

	return &Sample{data: data}, nil
}

// decodeWAV returns the first channel of the file normalised to the range
// -1.0 to 1.0.
func decodeWAV(r io.ReadSeeker) ([]float32, int, error) {
	dec := wav.NewDecoder(r)
	if dec == nil {
		return nil, 0, fmt.Errorf("wav: error decoding")
	}

	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("wav: not a valid wav file")
	}

	// load all data at once
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("wav: %w", err)
	}
	floatBuf := buf.AsFloat32Buffer()

	numChans := int(dec.NumChans)
	if numChans < 1 {
		numChans = 1
	}
	bitDepth := int(dec.BitDepth)
	if bitDepth == 0 {
		bitDepth = 16
	}
	scale := float32(int(1) << (bitDepth - 1))

	// copy first channel only of data stream
	data := make([]float32, 0, len(floatBuf.Data)/numChans)
	for i := 0; i < len(floatBuf.Data); i += numChans {
		data = append(data, floatBuf.Data[i]/scale)
	}

	return data, int(dec.SampleRate), nil
}

// decodeMP3 returns the left channel of the stream normalised to the range
// -1.0 to 1.0.
//
// The decoded stream is always 16bit little endian with two channels, even if
// the source is single channel.
func decodeMP3(r io.Reader) ([]float32, int, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, 0, fmt.Errorf("mp3: %w", err)
	}

	var data []float32

	chunk := make([]byte, 4096)
	for err != io.EOF {
		var chunkLen int
		chunkLen, err = dec.Read(chunk)
		if err != nil && err != io.EOF {
			return nil, 0, fmt.Errorf("mp3: %w", err)
		}

		// four bytes per frame. the first two bytes are the left channel
		for i := 0; i+1 < chunkLen; i += 4 {
			f := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			data = append(data, float32(f)/32768.0)
		}
	}

	return data, dec.SampleRate(), nil
}

// resample using the nearest sample. the quality is adequate for a beep.
func resample(data []float32, from int, to int) []float32 {
	if from == to || from <= 0 || len(data) == 0 {
		return data
	}

	n := int(int64(len(data)) * int64(to) / int64(from))
	out := make([]float32, n)
	for i := range out {
		j := int(int64(i) * int64(from) / int64(to))
		if j >= len(data) {
			j = len(data) - 1
		}
		out[i] = data[j]
	}
	return out
}
