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

package logger

import (
	"io"
)

// Permission is asked before an entry is added to a log. Emulation instances
// implement Permission so that logging can be suppressed for instances the
// user is not interested in.
type Permission interface {
	AllowLogging() bool
}

type always struct{}

func (always) AllowLogging() bool {
	return true
}

// Allow always permits logging.
var Allow Permission = always{}

// the application wide log used by the package level functions
var central = NewLogger(256)

// Log adds an entry to the central log. The detail is formatted according to
// its type. Errors and fmt.Stringers are handled specifically and other
// types are formatted with %v.
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central log.
func Logf(perm Permission, tag string, pattern string, args ...any) {
	central.Logf(perm, tag, pattern, args...)
}

func Clear() {
	central.Clear()
}

// Write every entry in the central log.
func Write(output io.Writer) {
	central.Write(output)
}

// WriteRecent writes the entries not already written by a previous call.
func WriteRecent(output io.Writer) {
	central.WriteRecent(output)
}

// Tail writes the most recent entries.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho writes new entries to output as they arrive. A nil output turns
// echoing off.
func SetEcho(output io.Writer, writeRecent bool) {
	central.SetEcho(output, writeRecent)
}

// BorrowLog calls f with the central log's entries. The log is locked for the
// duration of the call.
func BorrowLog(f func([]Entry)) {
	central.BorrowLog(f)
}
