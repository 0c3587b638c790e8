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

package terminal

import (
	"fmt"
	"strings"
)

// PromptType says what the interpreter is doing while the debugger waits for
// input.
type PromptType int

// List of prompt types.
const (
	PromptTypeStep PromptType = iota
	PromptTypeHalted
	PromptTypeWaiting
)

// the marker follows the prompt content
var promptMarkers = map[PromptType]string{
	PromptTypeStep:    ">>",
	PromptTypeHalted:  "!!",
	PromptTypeWaiting: "??",
}

// Prompt is shown to the user when input is requested. Terminals may style
// the prompt according to its type.
type Prompt struct {
	Type    PromptType
	Content string
}

// String is the prompt with plain text decoration.
func (p Prompt) String() string {
	return fmt.Sprintf("[ %s ] %s ", strings.TrimSpace(p.Content), promptMarkers[p.Type])
}
