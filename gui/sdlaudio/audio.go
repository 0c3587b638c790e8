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

package sdlaudio

import (
	"encoding/binary"
	"math"

	"github.com/jetsetilly/gopher8/audio"
	"github.com/jetsetilly/gopher8/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// the number of sample frames in the SDL audio buffer. the precise value is
// not critical.
const bufferLength = 512

// the maximum amount of audio that can be queued before the queue is cleared.
// prevents lag building up if the emulation runs ahead of the audio device
const maxQueueFrames = 4

// Audio outputs sound using SDL. It implements the audio.Mixer interface.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// samples converted to the byte format expected by the audio device
	buffer []uint8
}

// NewAudio is the preferred method of initialisation for the Audio Type. The
// SDL audio subsystem must have been initialised.
func NewAudio() (*Audio, error) {
	aud := &Audio{}

	spec := &sdl.AudioSpec{
		Freq:     audio.SampleFreq,
		Format:   sdl.AUDIO_F32LSB,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, err
	}
	aud.spec = actualSpec

	logger.Logf(logger.Allow, "sdlaudio", "frequency: %d samples/sec", aud.spec.Freq)
	logger.Logf(logger.Allow, "sdlaudio", "buffer size: %d samples", aud.spec.Samples)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetAudio implements the audio.Mixer interface.
func (aud *Audio) SetAudio(samples []float32) error {
	if sdl.GetQueuedAudioSize(aud.id) > uint32(maxQueueFrames*audio.SamplesPerFrame*4) {
		sdl.ClearQueuedAudio(aud.id)
	}

	aud.buffer = aud.buffer[:0]
	for _, s := range samples {
		aud.buffer = binary.LittleEndian.AppendUint32(aud.buffer, math.Float32bits(s))
	}

	return sdl.QueueAudio(aud.id, aud.buffer)
}

// EndMixing implements the audio.Mixer interface.
func (aud *Audio) EndMixing() error {
	sdl.CloseAudioDevice(aud.id)
	return nil
}
