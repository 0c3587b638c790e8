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

package audio_test

import (
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher8/audio"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/wavwriter"
)

func TestTone(t *testing.T) {
	tone := audio.NewTone(audio.ToneFreq, audio.ToneVolume)

	// a 440Hz wave has a period of a little over 100 samples
	buf := make([]float32, 200)
	tone.Fill(buf)

	test.ExpectEquality(t, buf[0], float32(0.25))
	test.ExpectEquality(t, buf[49], float32(0.25))
	test.ExpectEquality(t, buf[51], float32(-0.25))
	test.ExpectEquality(t, buf[99], float32(-0.25))
	test.ExpectEquality(t, buf[101], float32(0.25))

	for _, v := range buf {
		if v != 0.25 && v != -0.25 {
			t.Fatalf("unexpected sample value (%f)", v)
		}
	}

	tone.Reset()
	tone.Fill(buf[:1])
	test.ExpectEquality(t, buf[0], float32(0.25))
}

type mockMixer struct {
	frames [][]float32
	ended  bool
}

func (m *mockMixer) SetAudio(samples []float32) error {
	f := make([]float32, len(samples))
	copy(f, samples)
	m.frames = append(m.frames, f)
	return nil
}

func (m *mockMixer) EndMixing() error {
	m.ended = true
	return nil
}

func TestBeeper(t *testing.T) {
	m := &mockMixer{}
	b := audio.NewBeeper(nil)
	b.AddMixer(m)

	test.ExpectSuccess(t, b.Frame(false))
	test.ExpectSuccess(t, b.Frame(true))
	test.ExpectSuccess(t, b.Frame(false))
	test.ExpectSuccess(t, b.End())

	test.ExpectSuccess(t, m.ended)
	test.DemandEquality(t, len(m.frames), 3)
	test.ExpectEquality(t, len(m.frames[0]), audio.SamplesPerFrame)
	test.ExpectEquality(t, audio.SamplesPerFrame, 735)

	test.ExpectEquality(t, m.frames[0][0], 0)
	test.ExpectEquality(t, m.frames[1][0], float32(audio.ToneVolume))
	test.ExpectEquality(t, m.frames[2][10], 0)
}

func TestLoadSampleWAV(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "beep.wav")

	aw, err := wavwriter.New(fn)
	test.DemandSuccess(t, err)

	b := audio.NewBeeper(nil)
	b.AddMixer(aw)
	test.DemandSuccess(t, b.Frame(true))
	test.DemandSuccess(t, b.Frame(true))
	test.DemandSuccess(t, b.End())

	smp, err := audio.LoadSample(fn, 1.0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, smp.Len(), audio.SamplesPerFrame*2)

	buf := make([]float32, 3)
	smp.Fill(buf)
	test.ExpectApproximate(t, buf[0], 0.25, 0.001)
	test.ExpectApproximate(t, buf[2], 0.25, 0.001)

	// the sample loops
	buf = make([]float32, smp.Len()+1)
	smp.Reset()
	smp.Fill(buf)
	test.ExpectEquality(t, buf[smp.Len()], buf[0])
}

func TestLoadSampleResample(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "half.wav")

	f, err := os.Create(fn)
	test.DemandSuccess(t, err)

	enc := wav.NewEncoder(f, audio.SampleFreq/2, 16, 2, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 2, SampleRate: audio.SampleFreq / 2},
		Data:           make([]int, 200),
		SourceBitDepth: 16,
	}

	// left channel is loud and right channel is silent
	for i := 0; i < len(buf.Data); i += 2 {
		buf.Data[i] = 16384
	}
	test.DemandSuccess(t, enc.Write(buf))
	test.DemandSuccess(t, enc.Close())
	test.DemandSuccess(t, f.Close())

	smp, err := audio.LoadSample(fn, 0.5)
	test.DemandSuccess(t, err)

	// one hundred frames at half the sample rate
	test.ExpectEquality(t, smp.Len(), 200)

	out := make([]float32, 2)
	smp.Fill(out)
	test.ExpectApproximate(t, out[0], 0.25, 0.001)
	test.ExpectApproximate(t, out[1], 0.25, 0.001)
}

func TestLoadSampleErrors(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "beep.ogg")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0}, 0644))

	_, err := audio.LoadSample(fn, 1.0)
	test.ExpectSuccess(t, curated.Is(err, audio.UnsupportedSample))

	_, err = audio.LoadSample(filepath.Join(t.TempDir(), "missing.wav"), 1.0)
	test.ExpectFailure(t, err)

	fn = filepath.Join(t.TempDir(), "bad.wav")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not a wav file"), 0644))
	_, err = audio.LoadSample(fn, 1.0)
	test.ExpectFailure(t, err)
}
