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
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/scheduler"
)

// InterpreterHalted is returned by commands that can not proceed while the
// interpreter is in the halted state.
const InterpreterHalted = "interpreter halted: RESET to continue"

// run the interpreter in real time until a breakpoint is reached, a fault
// occurs, the run is interrupted or the user quits.
func (dbg *Debugger) run() error {
	if dbg.state == govern.Halted {
		return curated.Errorf(InterpreterHalted)
	}

	// discard stale interrupts
	select {
	case <-dbg.intChan:
	default:
	}

	dbg.setState(govern.Running)
	dbg.sch.Resync()

	throttle := scheduler.NewThrottle()
	defer throttle.End()

	for dbg.state == govern.Running {
		elapsed := throttle.Wait()

		select {
		case <-dbg.intChan:
			dbg.printLine(terminal.StyleFeedback, "run interrupted")
			dbg.setState(govern.Paused)
			continue // for loop
		default:
		}

		dbg.handleUserInput()
		if dbg.state != govern.Running {
			continue // for loop
		}

		err := dbg.sch.Frame(elapsed)
		if err != nil {
			dbg.stepError(err)
		}

		dbg.render()
		dbg.sound()
	}

	// silence beeper now that the interpreter is no longer running
	dbg.sound()

	if dbg.state != govern.Ending {
		dbg.printRecent(10)
		dbg.printLine(terminal.StyleCPU, dbg.itr.CPU.String())
	}

	return nil
}

// step the interpreter by count instructions. stepping stops early if a
// breakpoint is reached or if a fault occurs.
func (dbg *Debugger) step(count int) error {
	if dbg.state == govern.Halted {
		return curated.Errorf(InterpreterHalted)
	}

	dbg.setState(govern.Stepping)

	var ct int
	for dbg.state == govern.Stepping && ct < count {
		select {
		case <-dbg.intChan:
			dbg.printLine(terminal.StyleFeedback, "step interrupted")
			dbg.setState(govern.Paused)
			continue // for loop
		default:
		}

		err := dbg.sch.Step()
		ct++
		if err != nil {
			dbg.stepError(err)
		}
	}

	if dbg.state == govern.Stepping {
		dbg.setState(govern.Paused)
	}

	if ct > 1 {
		dbg.printLine(terminal.StyleFeedback, "%d instructions stepped", ct)
	}

	dbg.printRecent(1)
	dbg.printLine(terminal.StyleCPU, dbg.itr.CPU.String())
	dbg.render()

	return nil
}

// stepError handles errors returned by the scheduler. a breakpoint pauses the
// interpreter and any other error halts it.
func (dbg *Debugger) stepError(err error) {
	if curated.Has(err, BreakpointReached) {
		dbg.printLine(terminal.StyleBreakpoint, BreakpointReached, dbg.itr.CPU.PC.Value())
		dbg.setState(govern.Paused)
		return
	}

	dbg.printLine(terminal.StyleError, "%s", err)
	dbg.halt(err)
}

func (dbg *Debugger) printRecent(n int) {
	for _, r := range dbg.recent.last(n) {
		dbg.printLine(terminal.StyleInstruction, r.String())
	}
}
