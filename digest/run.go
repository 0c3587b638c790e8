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
	"github.com/jetsetilly/gopher8/audio"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/hardware"
)

// RunForFrameCount runs the interpreter for the number of frames and returns
// the video and audio digests of the output. The interpreter should have a
// program loaded and be in its reset state.
func RunForFrameCount(itr *hardware.Interpreter, numFrames int) (*Video, *Audio, error) {
	vid := NewVideo()
	aud := NewAudio()

	beeper := audio.NewBeeper(nil)
	beeper.AddMixer(aud)

	var last int
	err := itr.RunForFrameCount(numFrames, func(frame int) (govern.State, error) {
		for ; last < frame; last++ {
			if err := vid.NewFrame(itr.PixelStates()); err != nil {
				return govern.Ending, err
			}
			if err := beeper.Frame(itr.SoundOn()); err != nil {
				return govern.Ending, err
			}
		}
		return govern.Running, nil
	})
	if err != nil {
		return nil, nil, curated.Errorf("digest: %v", err)
	}

	if err := beeper.End(); err != nil {
		return nil, nil, curated.Errorf("digest: %v", err)
	}

	return vid, aud, nil
}
