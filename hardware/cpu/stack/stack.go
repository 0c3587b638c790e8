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

// Package stack implements the return address stack used by the CALL and RET
// instructions.
package stack

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Size is the number of return addresses the stack can hold.
const Size = 16

// Sentinel error patterns.
const (
	Overflow  = "stack: overflow (push %#04x with depth %d)"
	Underflow = "stack: underflow"
)

// Stack is a fixed size LIFO store of addresses.
type Stack struct {
	slots [Size]uint16

	// the pointer is the index of the next free slot. it is also the number
	// of addresses currently on the stack
	ptr int
}

// NewStack is the preferred method of initialisation for the Stack type.
func NewStack() *Stack {
	return &Stack{}
}

func (stk *Stack) String() string {
	if stk.ptr == 0 {
		return "empty"
	}

	s := strings.Builder{}
	for i := stk.ptr - 1; i >= 0; i-- {
		s.WriteString(fmt.Sprintf("%#04x ", stk.slots[i]))
	}
	return strings.TrimSpace(s.String())
}

// Reset stack to the empty state.
func (stk *Stack) Reset() {
	stk.slots = [Size]uint16{}
	stk.ptr = 0
}

// Depth returns the number of addresses on the stack.
func (stk *Stack) Depth() int {
	return stk.ptr
}

// Push address onto the stack. Returns an error if the stack is full.
func (stk *Stack) Push(addr uint16) error {
	if stk.ptr >= Size {
		return curated.Errorf(Overflow, addr, stk.ptr)
	}
	stk.slots[stk.ptr] = addr
	stk.ptr++
	return nil
}

// Pop address from the stack. Returns an error if the stack is empty.
func (stk *Stack) Pop() (uint16, error) {
	if stk.ptr == 0 {
		return 0, curated.Errorf(Underflow)
	}
	stk.ptr--
	return stk.slots[stk.ptr], nil
}

// Peek returns the address at the top of the stack without removing it. The
// second return value is false if the stack is empty.
func (stk *Stack) Peek() (uint16, bool) {
	if stk.ptr == 0 {
		return 0, false
	}
	return stk.slots[stk.ptr-1], true
}
