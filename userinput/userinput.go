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

// HandleInput conceptualises data being sent to the interpreter's keypad.
type HandleInput interface {
	HandleEvent(ev input.Event) error
}

// Event represents all the different type of events that can occur in the gui.
type Event interface{}

// KeyMod identifies the modifier keys held down during a keyboard event.
type KeyMod int

// List of valid key modifiers.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventQuit is sent when the window is closed.
type EventQuit struct{}

// EventKeyboard is sent on a keypress or release. Key is the name of the key
// as reported by the GUI framework.
type EventKeyboard struct {
	Key    string
	Down   bool
	Repeat bool
	Mod    KeyMod
}

// Keys that control the emulator rather than the interpreter.
const (
	KeyQuit  = "Escape"
	KeyReset = "Backspace"
	KeyStep  = "Space"
)

// keypad maps the names of host keys to interpreter keys.
var keypad = map[string]uint8{
	"2": 0x1, "3": 0x2, "4": 0x3, "5": 0xc,
	"W": 0x4, "E": 0x5, "R": 0x6, "T": 0xd,
	"S": 0x7, "D": 0x8, "F": 0x9, "G": 0xe,
	"X": 0xa, "C": 0x0, "V": 0xb, "B": 0xf,
}

// Keypad returns the interpreter key for the named host key. The name is
// case sensitive.
func Keypad(name string) (uint8, bool) {
	k, ok := keypad[name]
	return k, ok
}
