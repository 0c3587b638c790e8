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

// Package gui defines how the emulation talks to a graphical user interface.
// The sdlplay package is the only implementation.
package gui

import (
	"github.com/jetsetilly/gopher8/hardware/display"
)

// GUI accepts requests to change how the interface looks or behaves.
// Requests are serviced on the GUI's own goroutine.
type GUI interface {
	// SetFeature waits for the request to be serviced.
	SetFeature(request FeatureReq, args ...FeatureReqData) error

	// SetFeatureNoError queues the request and returns immediately. Any
	// error is lost.
	SetFeatureNoError(request FeatureReq, args ...FeatureReqData)
}

// FrameRenderer receives the display once per frame from the emulation's
// goroutine.
type FrameRenderer interface {
	NewFrame(px display.Pixels) error
}

// FeatureReq names a feature of the GUI.
type FeatureReq string

// FeatureReqData is an argument to a FeatureReq. The required type is given
// alongside each request below.
type FeatureReqData any

// List of valid feature requests.
const (
	// chan userinput.Event. user input is sent to the channel
	ReqSetEventChan FeatureReq = "ReqSetEventChan"

	// govern.State. the window title reflects the state
	ReqState FeatureReq = "ReqState"

	// error. the fault that halted the emulation, nil to clear
	ReqFault FeatureReq = "ReqFault"

	// bool
	ReqSetVisibility FeatureReq = "ReqSetVisibility"

	// float32. host pixels per interpreter pixel
	ReqSetScale FeatureReq = "ReqSetScale"
)

// UnsupportedGuiFeature is the pattern for the error returned for a request
// the GUI does not know.
const UnsupportedGuiFeature = "unsupported gui feature: %v"
