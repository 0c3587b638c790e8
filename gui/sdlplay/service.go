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
	"github.com/jetsetilly/gopher8/assert"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

func setupService() {
	// MOUSEMOTION events fill up the event queue pretty quickly. we have no
	// use for them
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

// Service handles any pending feature request, SDL events and the most recent
// frame. It must be called from the goroutine that created the window.
func (scr *SdlPlay) Service() {
	assert.SameGoRoutine(scr.mainThread, "sdlplay.Service")

	// feature requests take priority. the requesting goroutine is blocked
	// until the request has been serviced
	select {
	case request := <-scr.featureReq:
		scr.serviceFeatureRequests(request)
	default:
	}

	// WaitEventTimeout() returns almost immediately if there are no events
	for ev := sdl.WaitEventTimeout(1); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.sendEvent(userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN && ev.Type != sdl.KEYUP {
				continue
			}
			scr.sendEvent(userinput.EventKeyboard{
				Key:    sdl.GetKeyName(ev.Keysym.Sym),
				Mod:    keyMod(sdl.GetModState()),
				Down:   ev.Type == sdl.KEYDOWN,
				Repeat: ev.Repeat != 0,
			})
		}
	}

	select {
	case px := <-scr.frames:
		err := scr.draw(px)
		if err != nil {
			logger.Log(logger.Allow, "sdlplay", err)
		}
	default:
	}
}

// the event channel is serviced by the emulation goroutine once per frame. if
// the channel is full the event is dropped rather than block the main thread
func (scr *SdlPlay) sendEvent(ev userinput.Event) {
	if scr.events == nil {
		return
	}

	select {
	case scr.events <- ev:
	default:
		logger.Logf(logger.Allow, "sdlplay", "user input dropped: %v", ev)
	}
}

// keyMod reduces the SDL modifier state to a single modifier. alt takes
// precedence over shift, which takes precedence over ctrl
func keyMod(state sdl.Keymod) userinput.KeyMod {
	switch {
	case state&sdl.KMOD_ALT != 0:
		return userinput.KeyModAlt
	case state&sdl.KMOD_SHIFT != 0:
		return userinput.KeyModShift
	case state&sdl.KMOD_CTRL != 0:
		return userinput.KeyModCtrl
	}
	return userinput.KeyModNone
}
