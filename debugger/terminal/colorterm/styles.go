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

package colorterm

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jetsetilly/gopher8/debugger/terminal"
)

type styles struct {
	help         lipgloss.Style
	feedback     lipgloss.Style
	instruction  lipgloss.Style
	cpu          lipgloss.Style
	mem          lipgloss.Style
	breakpoint   lipgloss.Style
	log          lipgloss.Style
	prompt       lipgloss.Style
	promptHalted lipgloss.Style
	err          lipgloss.Style
}

// ANSI Color reference
// 0	Black
// 1	Red
// 2	Green
// 3	Yellow
// 4	Blue
// 5	Magenta
// 6	Cyan
// 7	White
// 8	Bright Black (Gray)
// 15	Bright White

func newStyles() styles {
	return styles{
		help:         lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)),
		feedback:     lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(7)),
		instruction:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		cpu:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(4)),
		mem:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(5)),
		breakpoint:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(4)),
		log:          lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(6)),
		prompt:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(15)),
		promptHalted: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(1)),
		err:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
	}
}

func (sty styles) style(style terminal.Style) lipgloss.Style {
	switch style {
	case terminal.StyleHelp:
		return sty.help
	case terminal.StyleInstruction:
		return sty.instruction
	case terminal.StyleCPU:
		return sty.cpu
	case terminal.StyleMem:
		return sty.mem
	case terminal.StyleBreakpoint:
		return sty.breakpoint
	case terminal.StyleLog:
		return sty.log
	case terminal.StylePrompt:
		return sty.prompt
	case terminal.StyleError:
		return sty.err
	}
	return sty.feedback
}

// render each line separately. rendering a multi-line string as a single
// block pads every line to the width of the longest
func (sty styles) render(style terminal.Style, s string) string {
	st := sty.style(style)
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = st.Render(lines[i])
	}
	return strings.Join(lines, "\n")
}

func (sty styles) renderPrompt(prompt terminal.Prompt) string {
	if prompt.Type == terminal.PromptTypeHalted {
		return sty.promptHalted.Render(prompt.String())
	}
	return sty.prompt.Render(prompt.String())
}
