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

package userinput

import (
	"github.com/jetsetilly/gopher8/hardware/input"
)

// Controllers interprets events from the GUI. Keypad events go to the
// interpreter. Emulator control events set one of the Quit, Reset or Step
// fields, which remain set until the next call to HandleUserInput().
type Controllers struct {
	Quit  bool
	Reset bool
	Step  bool

	// the most recent event was passed to the interpreter's keypad
	LastKeyHandled bool
}

// HandleUserInput acts on a single event. Events that are neither keypad nor
// control events are ignored.
func (c *Controllers) HandleUserInput(ev Event, handle HandleInput) error {
	*c = Controllers{}

	switch ev := ev.(type) {
	case EventQuit:
		c.Quit = true
	case EventKeyboard:
		return c.keyboard(ev, handle)
	}
	return nil
}

func (c *Controllers) keyboard(ev EventKeyboard, handle HandleInput) error {
	if ev.Repeat {
		return nil
	}

	plain := ev.Mod == KeyModNone

	if ev.Down && plain {
		switch ev.Key {
		case KeyQuit:
			c.Quit = true
			return nil
		case KeyReset:
			c.Reset = true
			return nil
		case KeyStep:
			c.Step = true
			return nil
		}
	}

	k, ok := Keypad(ev.Key)

	// a modifier stops a key press from reaching the keypad but not a key
	// release. a key is never left down
	if !ok || (ev.Down && !plain) {
		return nil
	}

	c.LastKeyHandled = true
	return handle.HandleEvent(input.Event{Key: k, Pressed: ev.Down})
}
