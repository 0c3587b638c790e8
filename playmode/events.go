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

package playmode

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/userinput"
)

func (pl *playmode) userInputHandler(ev userinput.Event) error {
	err := pl.controllers.HandleUserInput(ev, pl.itr.Input)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	switch {
	case pl.controllers.Quit:
		pl.setState(govern.Ending)

	case pl.controllers.Reset:
		err = pl.itr.Reset()
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}

		// a reset is the only way out of the halted state
		pl.setState(govern.Initialising)
		pl.start()

	case pl.controllers.Step:
		if pl.state == govern.Paused {
			err = pl.sch.Step()
			if err != nil {
				pl.halt(err)
			}
		}
	}

	return nil
}

// eventHandler services all pending events.
func (pl *playmode) eventHandler() error {
	for {
		select {
		case <-pl.intChan:
			pl.setState(govern.Ending)

		case ev := <-pl.userinput:
			err := pl.userInputHandler(ev)
			if err != nil {
				return err
			}

		default:
			return nil
		}
	}
}
