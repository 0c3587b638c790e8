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

// Package keyboard implements the sixteen key hexadecimal keypad.
//
// Reading a key from the keyboard clears the pressed state of that key. This
// means that a single key press is only ever seen once by the CPU, even if
// the key is still held down. The host must release and press the key again
// for the CPU to see another press.
package keyboard

import (
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/logger"
)

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

const keyNames = "0123456789ABCDEF"

// NoSuchKey is the sentinel error pattern for a key outside of the range 0x0
// to 0xf.
const NoSuchKey = "keyboard: no such key (%#02x)"

// Keyboard is the state of every key on the keypad.
type Keyboard struct {
	ins  *instance.Instance
	keys [NumKeys]bool
}

// NewKeyboard is the preferred method of initialisation for the Keyboard type.
// The instance argument can be nil, in which case key accesses are never
// logged.
func NewKeyboard(ins *instance.Instance) *Keyboard {
	return &Keyboard{ins: ins}
}

// String returns the list of pressed keys.
func (kb *Keyboard) String() string {
	s := strings.Builder{}
	for k, p := range kb.keys {
		if p {
			s.WriteString(keyNames[k : k+1])
		} else {
			s.WriteRune('-')
		}
	}
	return s.String()
}

func (kb *Keyboard) trace() bool {
	return kb.ins != nil && kb.ins.TraceAccess()
}

// Reset releases all keys.
func (kb *Keyboard) Reset() {
	kb.keys = [NumKeys]bool{}
}

// Press sets the key as pressed.
func (kb *Keyboard) Press(key uint8) error {
	if key >= NumKeys {
		return curated.Errorf(NoSuchKey, key)
	}
	if kb.trace() {
		logger.Logf(kb.ins, "keyboard", "press %X", key)
	}
	kb.keys[key] = true
	return nil
}

// Release sets the key as released.
func (kb *Keyboard) Release(key uint8) error {
	if key >= NumKeys {
		return curated.Errorf(NoSuchKey, key)
	}
	if kb.trace() {
		logger.Logf(kb.ins, "keyboard", "release %X", key)
	}
	kb.keys[key] = false
	return nil
}

// Read returns the state of the key. If the key is pressed then it is
// released as a side effect of the read.
func (kb *Keyboard) Read(key uint8) (bool, error) {
	if key >= NumKeys {
		return false, curated.Errorf(NoSuchKey, key)
	}
	state := kb.keys[key]
	if kb.trace() {
		logger.Logf(kb.ins, "keyboard", "read %X = %v", key, state)
	}
	kb.keys[key] = false
	return state, nil
}

// Peek returns the state of the key without side effects. Returns false for a
// key outside of the keypad.
func (kb *Keyboard) Peek(key uint8) bool {
	if key >= NumKeys {
		return false
	}
	return kb.keys[key]
}
