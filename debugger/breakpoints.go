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

package debugger

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// Sentinal errors returned by breakpoints functions.
const (
	BreakpointExists   = "breakpoint already exists (%#04x)"
	BreakpointNotFound = "breakpoint does not exist (%#04x)"
	BreakpointInvalid  = "breakpoint address out of range (%#04x)"
)

// breakpoints is the list of addresses that will halt the interpreter when
// the program counter reaches them.
type breakpoints struct {
	addresses map[uint16]bool
}

func newBreakpoints() *breakpoints {
	return &breakpoints{
		addresses: make(map[uint16]bool),
	}
}

func (bp *breakpoints) add(address uint16) error {
	if address >= memory.Size {
		return curated.Errorf(BreakpointInvalid, address)
	}
	if bp.addresses[address] {
		return curated.Errorf(BreakpointExists, address)
	}
	bp.addresses[address] = true
	return nil
}

func (bp *breakpoints) drop(address uint16) error {
	if !bp.addresses[address] {
		return curated.Errorf(BreakpointNotFound, address)
	}
	delete(bp.addresses, address)
	return nil
}

func (bp *breakpoints) clear() {
	clear(bp.addresses)
}

// check returns true if the address is a breakpoint.
func (bp *breakpoints) check(address uint16) bool {
	return bp.addresses[address]
}

// list returns the breakpoints in address order.
func (bp *breakpoints) list() []uint16 {
	l := make([]uint16, 0, len(bp.addresses))
	for a := range bp.addresses {
		l = append(l, a)
	}
	sort.Slice(l, func(i, j int) bool { return l[i] < l[j] })
	return l
}

func (bp *breakpoints) String() string {
	if len(bp.addresses) == 0 {
		return "no breakpoints"
	}

	s := strings.Builder{}
	for i, a := range bp.list() {
		s.WriteString(fmt.Sprintf("% 2d: %#04x\n", i, a))
	}
	return strings.TrimRight(s.String(), "\n")
}
