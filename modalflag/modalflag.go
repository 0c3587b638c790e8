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

package modalflag

import (
	"errors"
	"flag"
	"io"
	"slices"
	"strings"
)

// Modes walks through a list of command line arguments one mode at a time.
// Each mode has its own set of flags and, optionally, a list of sub-modes.
type Modes struct {
	// help messages are written to Output. help is silently discarded if
	// Output is nil
	Output io.Writer

	args   []string
	cursor int

	// flags and sub-modes of the mode currently being prepared
	flags    *flag.FlagSet
	subModes []string

	// modes selected so far, outermost first
	path []string
}

// ParseResult says how the caller should proceed after a call to Parse().
type ParseResult int

// List of valid ParseResult values.
const (
	// carry on processing. the selected sub-mode, if there is one, is
	// available from Mode()
	ParseContinue ParseResult = iota

	// help was requested and has already been written to Output
	ParseHelp

	// the arguments could not be parsed. the error is returned alongside
	ParseError
)

func (md *Modes) String() string {
	return md.Path()
}

// Mode is the most recently selected mode. The empty string if no sub-modes
// have been parsed.
func (md *Modes) Mode() string {
	if n := len(md.path); n > 0 {
		return md.path[n-1]
	}
	return ""
}

// Path is every selected mode joined with a forward slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, "/")
}

// NewArgs starts over with a new list of arguments. Any previously selected
// modes remain in the path.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.cursor = 0
	md.NewMode()
}

// NewMode clears the flags and sub-modes ready for the next call to Parse().
// Arguments consumed by earlier calls to Parse() stay consumed.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.subModes = md.subModes[:0]
}

// AddSubModes for the next call to Parse(). The first sub-mode added is
// selected if no sub-mode is named in the arguments. Sub-modes are not case
// sensitive.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, s := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(s))
	}
}

// Parse consumes the flags for the current mode and then, if there are
// sub-modes, the name of the sub-mode.
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.cursor:])
	if errors.Is(err, flag.ErrHelp) {
		hw.help(md.Output, md.Path(), md.subModes)
		return ParseHelp, nil
	}

	if err != nil {
		// an unknown flag may belong to the default sub-mode
		if len(md.subModes) == 0 {
			return ParseError, err
		}
		md.path = append(md.path, md.subModes[0])
		return ParseContinue, nil
	}

	md.cursor = len(md.args) - md.flags.NArg()

	if len(md.subModes) > 0 {
		sel := strings.ToUpper(md.flags.Arg(0))
		if slices.Contains(md.subModes, sel) {
			md.cursor++
		} else {
			sel = md.subModes[0]
		}
		md.path = append(md.path, sel)
	}

	return ParseContinue, nil
}

// RemainingArgs are the arguments not consumed by Parse().
func (md *Modes) RemainingArgs() []string {
	return md.args[md.cursor:]
}

// GetArg returns the indexed entry of RemainingArgs() or the empty string if
// there is no such entry.
func (md *Modes) GetArg(i int) string {
	if r := md.RemainingArgs(); i >= 0 && i < len(r) {
		return r[i]
	}
	return ""
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddFloat64 flag for next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}
