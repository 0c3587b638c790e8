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

//go:build !windows

package easyterm

import (
	"os"

	"golang.org/x/sys/unix"
)

// SuspendProcess sends SIGTSTP to this process. A terminal in raw mode does
// not turn ctrl-z into a signal so the line editor must do it.
func SuspendProcess() {
	_ = unix.Kill(os.Getpid(), unix.SIGTSTP)
}
