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
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/commandline"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/paths"
)

// the number of bytes shown by the MEM command when only the from address is
// specified.
const memDumpLength = 16

// processTokens executes the validated command.
func (dbg *Debugger) processTokens(tokens *commandline.Tokens) error {
	command, ok := tokens.Get()
	if !ok {
		return nil
	}
	command = strings.ToUpper(command)

	switch command {
	default:
		return curated.Errorf("%s is not yet implemented", command)

	case cmdRun:
		return dbg.run()

	case cmdStep:
		count := 1
		if tok, ok := tokens.Get(); ok {
			v, err := parseNumber(tok)
			if err != nil {
				return err
			}
			if v < 1 {
				return curated.Errorf("step count must be at least one")
			}
			count = int(v)
		}
		return dbg.step(count)

	case cmdReset:
		err := dbg.reset()
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "interpreter reset")

	case cmdQuit:
		dbg.setState(govern.Ending)

	case cmdCPU:
		if arg, ok := tokens.Get(); ok && strings.ToUpper(arg) == "SET" {
			reg, _ := tokens.Get()
			tok, _ := tokens.Get()
			err := dbg.setRegister(strings.ToUpper(reg), tok)
			if err != nil {
				return err
			}
		}
		dbg.printLine(terminal.StyleCPU, dbg.itr.CPU.String())

	case cmdMem:
		from := uint16(memory.ProgramOrigin)
		to := uint16(memory.ProgramOrigin + len(dbg.itr.Program()) - 1)
		if len(dbg.itr.Program()) == 0 {
			to = from + memDumpLength - 1
		}

		if tok, ok := tokens.Get(); ok {
			v, err := parseNumber(tok)
			if err != nil {
				return err
			}
			from = v
			to = min(from+memDumpLength-1, memory.Size-1)

			if tok, ok := tokens.Get(); ok {
				to, err = parseNumber(tok)
				if err != nil {
					return err
				}
			}
		}

		s, err := dbg.itr.Mem.Dump(from, to)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleMem, s)

	case cmdPeek:
		tok, _ := tokens.Get()
		address, err := parseNumber(tok)
		if err != nil {
			return err
		}
		v, err := dbg.itr.Mem.Peek(address)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleMem, "%#04x -> %#02x", address, v)

	case cmdPoke:
		tok, _ := tokens.Get()
		address, err := parseNumber(tok)
		if err != nil {
			return err
		}
		tok, _ = tokens.Get()
		v, err := parseNumber(tok)
		if err != nil {
			return err
		}
		if v > 0xff {
			return curated.Errorf("poke value must be a single byte (%#x)", v)
		}
		err = dbg.itr.Mem.Poke(address, uint8(v))
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleMem, "%#04x <- %#02x", address, v)

	case cmdDisplay:
		dbg.printLine(terminal.StyleMem, dbg.itr.PixelStates().String())

	case cmdDisasm:
		var attr disassembly.WriteAttr
		if arg, ok := tokens.Get(); ok && strings.ToUpper(arg) == "BYTECODE" {
			attr.ByteCode = true
		}

		dsm, err := disassembly.FromProgram(dbg.itr.Program())
		if err != nil {
			return err
		}
		err = dsm.Write(dbg.printStyle(terminal.StyleFeedback), attr)
		if err != nil {
			return err
		}

	case cmdGrep:
		search, _ := tokens.Get()
		dsm, err := disassembly.FromProgram(dbg.itr.Program())
		if err != nil {
			return err
		}
		n, err := dsm.Grep(dbg.printStyle(terminal.StyleFeedback), disassembly.GrepAll, search, false)
		if err != nil {
			return err
		}
		if n == 0 {
			dbg.printLine(terminal.StyleFeedback, "no matches for %s", search)
		}

	case cmdMemViz:
		filename, ok := tokens.Get()
		if !ok {
			filename = fmt.Sprintf("%s.dot", paths.UniqueFilename("memviz", ""))
		}
		err := dbg.memviz(filename)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "interpreter structure written to %s", filename)

	case cmdKeys:
		dbg.printLine(terminal.StyleFeedback, dbg.itr.Keyboard.String())

	case cmdPress:
		tok, _ := tokens.Get()
		key, err := parseKey(tok)
		if err != nil {
			return err
		}
		err = dbg.itr.KeyPressed(key)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, dbg.itr.Keyboard.String())

	case cmdRelease:
		tok, _ := tokens.Get()
		if strings.ToUpper(tok) == "ALL" {
			for key := uint8(0); key < 16; key++ {
				err := dbg.itr.KeyReleased(key)
				if err != nil {
					return err
				}
			}
		} else {
			key, err := parseKey(tok)
			if err != nil {
				return err
			}
			err = dbg.itr.KeyReleased(key)
			if err != nil {
				return err
			}
		}
		dbg.printLine(terminal.StyleFeedback, dbg.itr.Keyboard.String())

	case cmdTimers:
		sound := "off"
		if dbg.itr.SoundOn() {
			sound = "on"
		}
		dbg.printLine(terminal.StyleFeedback, "%s %s sound=%s frames=%d",
			dbg.itr.CPU.DT, dbg.itr.CPU.ST, sound, dbg.sch.Frames())

	case cmdTick:
		count := 1
		if tok, ok := tokens.Get(); ok {
			v, err := parseNumber(tok)
			if err != nil {
				return err
			}
			count = int(v)
		}
		for i := 0; i < count; i++ {
			dbg.itr.FrequencyStep()
		}
		dbg.printLine(terminal.StyleFeedback, "%s %s", dbg.itr.CPU.DT, dbg.itr.CPU.ST)

	case cmdBreak:
		tok, ok := tokens.Get()
		if !ok {
			dbg.printLine(terminal.StyleFeedback, dbg.breakpoints.String())
			return nil
		}

		if strings.ToUpper(tok) == "DROP" {
			tok, _ = tokens.Get()
			if strings.ToUpper(tok) == "ALL" {
				dbg.breakpoints.clear()
				dbg.printLine(terminal.StyleFeedback, "all breakpoints dropped")
				return nil
			}

			address, err := parseNumber(tok)
			if err != nil {
				return err
			}
			err = dbg.breakpoints.drop(address)
			if err != nil {
				return err
			}
			dbg.printLine(terminal.StyleFeedback, "breakpoint at %#04x dropped", address)
			return nil
		}

		address, err := parseNumber(tok)
		if err != nil {
			return err
		}
		err = dbg.breakpoints.add(address)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "breakpoint added at %#04x", address)

	case cmdList:
		dbg.printLine(terminal.StyleFeedback, dbg.breakpoints.String())

	case cmdRecent:
		count := 10
		if tok, ok := tokens.Get(); ok {
			v, err := parseNumber(tok)
			if err != nil {
				return err
			}
			count = int(v)
		}
		if len(dbg.recent.last(count)) == 0 {
			dbg.printLine(terminal.StyleFeedback, "no instructions executed")
			return nil
		}
		dbg.printRecent(count)

	case cmdLog:
		count := 10
		if tok, ok := tokens.Get(); ok {
			if strings.ToUpper(tok) == "CLEAR" {
				logger.Clear()
				return nil
			}
			v, err := parseNumber(tok)
			if err != nil {
				return err
			}
			count = int(v)
		}
		logger.Tail(dbg.printStyle(terminal.StyleLog), count)

	case cmdPrefs:
		prefs := dbg.itr.Instance.Prefs

		arg, ok := tokens.Get()
		if !ok {
			dbg.printLine(terminal.StyleFeedback, prefs.String())
			return nil
		}

		switch strings.ToUpper(arg) {
		case "SET":
			key, _ := tokens.Get()
			value, _ := tokens.Get()
			err := prefs.Set(strings.ToLower(key), value)
			if err != nil {
				return err
			}
			dbg.itr.Instance.UpdateTiming()
		case "SAVE":
			err := prefs.Save()
			if err != nil {
				return err
			}
			dbg.printLine(terminal.StyleFeedback, "preferences saved")
		case "DEFAULT":
			prefs.SetDefaults()
			dbg.itr.Instance.UpdateTiming()
			dbg.printLine(terminal.StyleFeedback, "preferences reverted to defaults")
		}

	case cmdHelp:
		kw, ok := tokens.Get()
		if !ok {
			dbg.printLine(terminal.StyleHelp, dbg.cmds.HelpOverview())
			return nil
		}
		dbg.printLine(terminal.StyleHelp, dbg.cmds.Help(kw))
	}

	return nil
}

// setRegister loads the named register with the value in the token.
func (dbg *Debugger) setRegister(reg string, tok string) error {
	v, err := parseNumber(tok)
	if err != nil {
		return err
	}

	switch reg {
	case "PC":
		if v >= memory.Size {
			return curated.Errorf("PC value out of range (%#04x)", v)
		}
		dbg.itr.CPU.PC.Load(v)
	case "I":
		dbg.itr.CPU.I.Load(v)
	default:
		if v > 0xff {
			return curated.Errorf("%s value must be a single byte (%#x)", reg, v)
		}
		switch reg {
		case "DT":
			dbg.itr.CPU.DT.Load(uint8(v))
		case "ST":
			dbg.itr.CPU.ST.Load(uint8(v))
		default:
			n, err := strconv.ParseUint(strings.TrimPrefix(reg, "V"), 16, 4)
			if err != nil {
				return curated.Errorf("unknown register (%s)", reg)
			}
			dbg.itr.CPU.V[n].Load(uint8(v))
		}
	}

	return nil
}

// memviz writes a graphviz dot representation of the interpreter to the named
// file.
func (dbg *Debugger) memviz(filename string) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("memviz: %v", err)
		}
	}()

	// memviz panics on some types that it can not traverse
	defer func() {
		if r := recover(); r != nil {
			rerr = curated.Errorf("memviz: %v", r)
		}
	}()

	memviz.Map(f, dbg.itr)

	return nil
}

// parseNumber parses an address or value token. the token can be in decimal,
// octal or hexadecimal notation.
func parseNumber(tok string) (uint16, error) {
	v, err := strconv.ParseUint(tok, 0, 16)
	if err != nil {
		return 0, curated.Errorf("not a valid number (%s)", tok)
	}
	return uint16(v), nil
}

// parseKey parses a keypad key token. keys are always interpreted as
// hexadecimal.
func parseKey(tok string) (uint8, error) {
	s := strings.TrimPrefix(strings.ToLower(tok), "0x")
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil || v > 0xf {
		return 0, curated.Errorf("not a valid key (%s)", tok)
	}
	return uint8(v), nil
}
