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

package sdlplay

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopher8/assert"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/gui/sdlaudio"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/jetsetilly/gopher8/version"

	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

// DefaultScale is the size of each interpreter pixel in window pixels.
const DefaultScale = 10.0

var windowTitle = version.String()

// SdlPlay is a simple SDL implementation of the gui.GUI and the
// gui.FrameRenderer interfaces.
type SdlPlay struct {
	// ReqFeature() hands off requests to the featureReq channel for servicing
	featureReq chan featureRequest
	featureErr chan error

	// the most recent frame from the emulation goroutine. only the most
	// recent frame is kept
	frames chan display.Pixels

	// connects the SDL event loop with the emulation
	events chan userinput.Event

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// Audio is the device used to play the beeper
	Audio *sdlaudio.Audio

	// pixels is the byte array that we copy to the texture before applying to
	// the renderer
	pixels []byte

	scale float32

	// emulation state and fault, shown in the window title
	state govern.State
	fault error

	// the goroutine that created the window. SDL functions must only be
	// called from this goroutine
	mainThread uint64
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay.
//
// Must only be called from the main thread.
func NewSdlPlay(scale float32) (*SdlPlay, error) {
	scr := &SdlPlay{
		featureReq: make(chan featureRequest, 1),
		featureErr: make(chan error, 1),
		frames:     make(chan display.Pixels, 1),
		pixels:     make([]byte, display.Width*display.Height*pixelDepth),
		state:      govern.EmulatorStart,
		mainThread: assert.GetGoRoutineID(),
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// SDL window - window size is set in setScale() function
	scr.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED),
		display.Width, display.Height,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// texture is the same size as the interpreter display. scaling is
	// applied when the texture is copied to the renderer
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		display.Width,
		display.Height)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// preset alpha channel - we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	if scale <= 0 {
		scale = DefaultScale
	}
	scr.setScale(scale)

	scr.Audio, err = sdlaudio.NewAudio()
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	setupService()

	return scr, nil
}

// Destroy closes the window and releases SDL.
//
// Must only be called from the main thread.
func (scr *SdlPlay) Destroy(output io.Writer) {
	err := scr.texture.Destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	err = scr.renderer.Destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	err = scr.window.Destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	sdl.Quit()
}

func (scr *SdlPlay) setScale(scale float32) {
	scr.scale = scale
	w := int32(float32(display.Width) * scale)
	h := int32(float32(display.Height) * scale)
	scr.window.SetSize(w, h)
}

func (scr *SdlPlay) showWindow(show bool) {
	if show {
		scr.window.Show()
	} else {
		scr.window.Hide()
	}
}

func (scr *SdlPlay) setTitle() {
	switch scr.state {
	case govern.Halted:
		if scr.fault != nil {
			scr.window.SetTitle(fmt.Sprintf("%s [fault: %v]", windowTitle, scr.fault))
		} else {
			scr.window.SetTitle(fmt.Sprintf("%s [halted]", windowTitle))
		}
	case govern.Paused, govern.Stepping:
		scr.window.SetTitle(fmt.Sprintf("%s [paused]", windowTitle))
	default:
		scr.window.SetTitle(windowTitle)
	}
}

// NewFrame implements the gui.FrameRenderer interface. Safe to call from any
// goroutine. The frame is drawn on the next call to Service().
func (scr *SdlPlay) NewFrame(px display.Pixels) error {
	// discard any frame that has not yet been drawn
	select {
	case <-scr.frames:
	default:
	}

	select {
	case scr.frames <- px:
	default:
	}

	return nil
}

// draw the frame to the window.
//
// Must only be called from the main thread.
func (scr *SdlPlay) draw(px display.Pixels) error {
	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			var v byte
			if px[x][y] {
				v = 255
			}
			i := (y*display.Width + x) * pixelDepth
			scr.pixels[i] = v
			scr.pixels[i+1] = v
			scr.pixels[i+2] = v
		}
	}

	bytes, pitch, err := scr.texture.Lock(nil)
	if err != nil {
		return err
	}
	for y := 0; y < display.Height; y++ {
		copy(bytes[y*pitch:], scr.pixels[y*display.Width*pixelDepth:(y+1)*display.Width*pixelDepth])
	}
	scr.texture.Unlock()

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return err
	}

	scr.renderer.Present()

	return nil
}
