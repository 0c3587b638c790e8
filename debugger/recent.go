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
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
)

// the number of recent execution results to keep.
const maxRecent = 100

// recent is a ring of the most recent execution results.
type recent struct {
	entries []execution.Result
	max     int

	// index of the next entry to be written. only meaningful once the ring
	// is full
	next int
}

func newRecent(max int) *recent {
	return &recent{
		entries: make([]execution.Result, 0, max),
		max:     max,
	}
}

func (r *recent) add(res execution.Result) {
	if len(r.entries) < r.max {
		r.entries = append(r.entries, res)
		return
	}
	r.entries[r.next] = res
	r.next = (r.next + 1) % r.max
}

func (r *recent) clear() {
	r.entries = r.entries[:0]
	r.next = 0
}

// last returns the n most recent results, oldest first.
func (r *recent) last(n int) []execution.Result {
	if n > len(r.entries) {
		n = len(r.entries)
	}

	l := make([]execution.Result, 0, n)
	for i := len(r.entries) - n; i < len(r.entries); i++ {
		l = append(l, r.entries[(r.next+i)%len(r.entries)])
	}
	return l
}
