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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". it provides
// some features not present in the third-party package, such as terminal
// geometry, and wraps termios methods in functions with friendlier names.
package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// TermGeometry is the size of the terminal in characters.
type TermGeometry struct {
	Rows uint16
	Cols uint16
}

// EasyTerm is the main container for posix terminals. Usually embedded in
// other struct types.
type EasyTerm struct {
	input  *os.File
	output *os.File

	// the size of the terminal. updated automatically when the terminal window
	// changes size
	Geometry TermGeometry

	canAttr    unix.Termios
	rawAttr    unix.Termios
	cbreakAttr unix.Termios

	// sig/ack channels to control signal handler
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool

	// public functions that are called from the signal handler are prefaced
	// with (to prevent race conditions, or worse):
	//		et.mu.Lock()
	//		defer et.mu.Unlock()
	mu sync.Mutex
}

// Initialise the fields in the EasyTerm struct.
func (et *EasyTerm) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return curated.Errorf("easyterm: input file required")
	}
	if outputFile == nil {
		return curated.Errorf("easyterm: output file required")
	}

	et.input = inputFile
	et.output = outputFile

	// prepare the attributes for the different terminal modes we'll be using.
	// raw and cbreak modes are derived from the canonical mode
	err := termios.Tcgetattr(et.input.Fd(), &et.canAttr)
	if err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	et.rawAttr = et.canAttr
	termios.Cfmakeraw(&et.rawAttr)
	et.cbreakAttr = et.canAttr
	termios.Cfmakecbreak(&et.cbreakAttr)

	_ = et.UpdateGeometry()

	// set up sig/ack channels for signal handler
	et.terminateHandlerSig = make(chan bool)
	et.terminateHandlerAck = make(chan bool)

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			et.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = et.UpdateGeometry()
			case <-et.terminateHandlerSig:
				return
			}
		}
	}()

	return nil
}

// CleanUp closes resources created in the Initialise() function.
func (et *EasyTerm) CleanUp() {
	et.CanonicalMode()
	et.terminateHandlerSig <- true
	<-et.terminateHandlerAck
}

// UpdateGeometry updates the Geometry field in the EasyTerm type.
func (et *EasyTerm) UpdateGeometry() error {
	et.mu.Lock()
	defer et.mu.Unlock()

	ws, err := unix.IoctlGetWinsize(int(et.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	et.Geometry.Rows = ws.Row
	et.Geometry.Cols = ws.Col

	return nil
}

// TermPrint writes string to the output file.
func (et *EasyTerm) TermPrint(s string) {
	et.output.WriteString(s)
}

// TermPrintf writes the formatted string to the output file.
func (et *EasyTerm) TermPrintf(s string, a ...interface{}) {
	et.output.WriteString(fmt.Sprintf(s, a...))
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (et *EasyTerm) CanonicalMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCIFLUSH, &et.canAttr)
}

// RawMode puts terminal into raw mode.
func (et *EasyTerm) RawMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCIFLUSH, &et.rawAttr)
}

// CBreakMode puts terminal into cbreak mode.
func (et *EasyTerm) CBreakMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCIFLUSH, &et.cbreakAttr)
}

// Flush makes sure the terminal's input/output buffers are empty.
func (et *EasyTerm) Flush() error {
	if err := termios.Tcflush(et.input.Fd(), termios.TCIFLUSH); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	if err := termios.Tcflush(et.output.Fd(), termios.TCOFLUSH); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	return nil
}
