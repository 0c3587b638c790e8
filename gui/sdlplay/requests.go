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

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/userinput"
)

type featureRequest struct {
	request gui.FeatureReq
	args    []gui.FeatureReqData
}

// SetFeature implements gui.GUI interface.
func (scr *SdlPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	scr.featureReq <- featureRequest{request: request, args: args}
	return <-scr.featureErr
}

// SetFeatureNoError implements gui.GUI interface.
func (scr *SdlPlay) SetFeatureNoError(request gui.FeatureReq, args ...gui.FeatureReqData) {
	go func() {
		_ = scr.SetFeature(request, args...)
	}()
}

// featureRequests have been handed over to the featureReq channel. we service
// any requests on that channel here.
//
// Must only be called from the main thread.
func (scr *SdlPlay) serviceFeatureRequests(request featureRequest) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			scr.featureErr <- curated.Errorf("sdlplay: %v", fmt.Sprintf("%v", r))
		}
	}()

	var err error

	switch request.request {
	case gui.ReqSetEventChan:
		scr.events = request.args[0].(chan userinput.Event)

	case gui.ReqState:
		scr.state = request.args[0].(govern.State)
		scr.setTitle()

	case gui.ReqFault:
		if request.args[0] == nil {
			scr.fault = nil
		} else {
			scr.fault = request.args[0].(error)
		}
		scr.setTitle()

	case gui.ReqSetVisibility:
		scr.showWindow(request.args[0].(bool))

	case gui.ReqSetScale:
		scr.setScale(request.args[0].(float32))

	default:
		err = curated.Errorf(gui.UnsupportedGuiFeature, request.request)
	}

	scr.featureErr <- err
}
