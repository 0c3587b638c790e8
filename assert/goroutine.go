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

// Package assert contains checks for conditions that can not be expressed with
// the type system. A failed check is a programming error and causes a panic.
package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns the ID of the goroutine that calls the function. The
// ID is parsed from the first line of the stack trace, which is of the form:
//
//	goroutine 1 [running]:
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// SameGoRoutine panics if the calling goroutine is not the goroutine with the
// ID. The context string is included in the panic message.
func SameGoRoutine(id uint64, context string) {
	if c := GetGoRoutineID(); c != id {
		panic(fmt.Sprintf("%s: called from goroutine %d but expected goroutine %d", context, c, id))
	}
}
