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
	"fmt"
	"io"
	"strings"
)

// helpWriter captures the usage message written by the flag package.
type helpWriter struct {
	strings.Builder
}

// help writes the captured usage message to output, followed by the list of
// sub-modes. mode is the path of the mode that help was requested for.
func (hw *helpWriter) help(output io.Writer, mode string, subModes []string) {
	if output == nil {
		return
	}

	usage, flags, _ := strings.Cut(hw.String(), "\n")

	if flags == "" && len(subModes) == 0 {
		if mode == "" {
			fmt.Fprintln(output, "No help available")
		} else {
			fmt.Fprintf(output, "No help available for %s\n", mode)
		}
		return
	}

	if mode == "" {
		fmt.Fprintln(output, usage)
	} else {
		fmt.Fprintf(output, "%s for %s mode\n", usage, mode)
	}
	io.WriteString(output, flags)

	if len(subModes) == 0 {
		return
	}
	if flags != "" {
		fmt.Fprintln(output)
	}
	fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
	fmt.Fprintf(output, "    default: %s\n", subModes[0])
}
