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

package input

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
)

// Sentinel error patterns.
const (
	QueueFull = "input: pushed event queue is full: input dropped"
)

// Event is a single change to the state of a key.
type Event struct {
	Key     uint8
	Pressed bool
}

func (ev Event) String() string {
	if ev.Pressed {
		return fmt.Sprintf("key %X pressed", ev.Key)
	}
	return fmt.Sprintf("key %X released", ev.Key)
}

// Keyboard defines the keyboard functions required by the Input system.
type Keyboard interface {
	Press(key uint8) error
	Release(key uint8) error
}

// the number of events that can be pushed before the queue is drained
const queueLength = 64

// Input handles all forms of input into the interpreter.
type Input struct {
	kb Keyboard

	// events pushed onto the input queue
	pushed chan Event
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput(kb Keyboard) *Input {
	return &Input{
		kb:     kb,
		pushed: make(chan Event, queueLength),
	}
}

// Clear discards pushed events that have not yet been handled. Safe to call
// from any goroutine.
func (inp *Input) Clear() {
	for {
		select {
		case <-inp.pushed:
		default:
			return
		}
	}
}

// HandleEvent forwards an input event to the keyboard immediately. Must only be
// called from the emulation's goroutine.
func (inp *Input) HandleEvent(ev Event) error {
	if ev.Pressed {
		return inp.kb.Press(ev.Key)
	}
	return inp.kb.Release(ev.Key)
}

// PushEvent pushes an Event onto the queue. Safe to call from any goroutine.
// Will drop the event and return an error if queue is full.
func (inp *Input) PushEvent(ev Event) error {
	select {
	case inp.pushed <- ev:
	default:
		return curated.Errorf(QueueFull)
	}
	return nil
}

// Handle all pushed events. Must only be called from the emulation's
// goroutine.
func (inp *Input) Handle() error {
	for {
		select {
		case ev := <-inp.pushed:
			err := inp.HandleEvent(ev)
			if err != nil {
				return curated.Errorf("input: %v", err)
			}
		default:
			return nil
		}
	}
}
