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
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopher8/audio"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/commandline"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/scheduler"
	"github.com/jetsetilly/gopher8/userinput"
)

// BreakpointReached is returned by the stepper when the program counter
// reaches a breakpoint.
const BreakpointReached = "breakpoint reached at %#04x"

// Debugger is the basic debugging frontend for the interpreter.
type Debugger struct {
	itr *hardware.Interpreter

	// the terminal is the debugger's primary user interface
	term terminal.Terminal

	// optional display window. both will be nil or both will be non-nil
	scr gui.GUI
	rnd gui.FrameRenderer

	// beeper is driven while the interpreter is running. it is silenced when
	// the debugger is waiting for input
	beeper *audio.Beeper

	// the command template and tab completion
	cmds          *commandline.Commands
	tabCompletion *commandline.TabCompletion

	// the scheduler steps the interpreter through the debugger's stepper
	// type, which checks for breakpoints after every instruction
	sch *scheduler.Scheduler

	// user input from the display window
	controllers userinput.Controllers
	userinput   chan userinput.Event

	// interrupt signals from the operating system
	intChan    chan os.Signal
	readEvents *terminal.ReadEvents

	state govern.State

	// the fault that caused the Halted state
	fault error

	breakpoints *breakpoints
	recent      *recent

	// buffer for terminal input
	input []byte
}

// NewDebugger creates a new Debugger for the interpreter. The program should
// already be loaded into the interpreter.
//
// The GUI and FrameRenderer arguments can be nil, in which case the debugger
// will be terminal only. The beeper can also be nil.
func NewDebugger(itr *hardware.Interpreter, term terminal.Terminal, scr gui.GUI, rnd gui.FrameRenderer, beeper *audio.Beeper) (*Debugger, error) {
	if scr == nil || rnd == nil {
		scr = nil
		rnd = nil
	}

	dbg := &Debugger{
		itr:         itr,
		term:        term,
		scr:         scr,
		rnd:         rnd,
		beeper:      beeper,
		userinput:   make(chan userinput.Event, 64),
		intChan:     make(chan os.Signal, 1),
		state:       govern.EmulatorStart,
		breakpoints: newBreakpoints(),
		recent:      newRecent(maxRecent),
		input:       make([]byte, 255),
	}

	dbg.readEvents = &terminal.ReadEvents{
		IntEvents: dbg.intChan,
	}

	dbg.sch = scheduler.NewScheduler(&stepper{dbg: dbg})

	var err error

	dbg.cmds, err = commandline.ParseCommandTemplate(commandTemplate)
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}
	err = dbg.cmds.AddHelp(cmdHelp, helps)
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}
	dbg.tabCompletion = commandline.NewTabCompletion(dbg.cmds)

	return dbg, nil
}

// Start the debugger. The function returns when the user quits the debugger.
func (dbg *Debugger) Start() error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(dbg.tabCompletion)

	if dbg.scr != nil {
		err = dbg.scr.SetFeature(gui.ReqSetEventChan, dbg.userinput)
		if err != nil {
			return curated.Errorf("debugger: %v", err)
		}
		err = dbg.scr.SetFeature(gui.ReqSetVisibility, true)
		if err != nil {
			return curated.Errorf("debugger: %v", err)
		}
	}

	signal.Notify(dbg.intChan, os.Interrupt)
	defer signal.Stop(dbg.intChan)

	dbg.setState(govern.Initialising)
	dbg.setState(govern.Paused)
	dbg.render()

	err = dbg.inputLoop()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	if dbg.beeper != nil {
		err = dbg.beeper.End()
		if err != nil {
			return curated.Errorf("debugger: %v", err)
		}
	}

	return nil
}

// inputLoop reads commands from the terminal until the Ending state is
// reached.
func (dbg *Debugger) inputLoop() error {
	for dbg.state != govern.Ending {
		n, err := dbg.term.TermRead(dbg.input, dbg.buildPrompt(), dbg.readEvents)
		if err != nil {
			if err == io.EOF || curated.Is(err, terminal.UserInterrupt) || curated.Is(err, terminal.UserAbort) {
				dbg.setState(govern.Ending)
				continue // for loop
			}
			return err
		}

		// user input from the display window may have arrived while we were
		// waiting for the terminal
		dbg.handleUserInput()
		if dbg.state == govern.Ending {
			continue // for loop
		}

		err = dbg.parseInput(string(dbg.input[:n]))
		if err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	return nil
}

// parseInput validates and executes a single line of input. More than one
// command can be specified by separating them with a semi-colon.
func (dbg *Debugger) parseInput(input string) error {
	for _, s := range strings.Split(input, ";") {
		tokens := commandline.TokeniseInput(s)
		if tokens.Len() == 0 {
			continue // for loop
		}

		err := dbg.cmds.ValidateTokens(tokens)
		if err != nil {
			return err
		}

		dbg.printLine(terminal.StyleEcho, "%s", tokens)

		tokens.Reset()
		err = dbg.processTokens(tokens)
		if err != nil {
			return err
		}

		if dbg.state == govern.Ending {
			return nil
		}
	}

	return nil
}

func (dbg *Debugger) buildPrompt() terminal.Prompt {
	p := terminal.Prompt{
		Type: terminal.PromptTypeStep,
	}

	// the next instruction to be executed. peeking memory so that the prompt
	// does not appear in the trace log
	p.Content = dbg.itr.CPU.PC.String()
	pc := dbg.itr.CPU.PC.Value()
	hi, err := dbg.itr.Mem.Peek(pc)
	if err == nil {
		lo, err := dbg.itr.Mem.Peek(pc + 1)
		if err == nil {
			p.Content = fmt.Sprintf("%s %s", p.Content, instructions.DecodeBytes(hi, lo))
		}
	}

	if waiting, _ := dbg.itr.CPU.Waiting(); waiting {
		p.Type = terminal.PromptTypeWaiting
	}

	if dbg.state == govern.Halted {
		p.Type = terminal.PromptTypeHalted
	}

	return p
}

func (dbg *Debugger) setState(state govern.State) {
	if !govern.Transition(dbg.state, state) {
		logger.Logf(logger.Allow, "debugger", "illegal state transition (%s to %s)", dbg.state, state)
		return
	}

	dbg.state = state
	dbg.request(gui.ReqState, state)
}

// halt the interpreter because of a fault. only a reset will allow the
// interpreter to continue.
func (dbg *Debugger) halt(err error) {
	dbg.fault = err
	logger.Log(logger.Allow, "debugger", err)
	dbg.setState(govern.Halted)
	dbg.request(gui.ReqFault, err)
}

func (dbg *Debugger) reset() error {
	err := dbg.itr.Reset()
	if err != nil {
		return err
	}

	dbg.sch.Reset()
	dbg.recent.clear()
	dbg.fault = nil

	dbg.setState(govern.Initialising)
	dbg.request(gui.ReqFault, nil)
	dbg.setState(govern.Paused)
	dbg.render()

	return nil
}

// request a GUI feature if a GUI is attached. errors are logged and
// otherwise ignored.
func (dbg *Debugger) request(request gui.FeatureReq, args ...gui.FeatureReqData) {
	if dbg.scr == nil {
		return
	}
	err := dbg.scr.SetFeature(request, args...)
	if err != nil {
		logger.Log(logger.Allow, "debugger", err)
	}
}

// render the current state of the display to the attached window.
func (dbg *Debugger) render() {
	if dbg.rnd == nil {
		return
	}
	err := dbg.rnd.NewFrame(dbg.itr.PixelStates())
	if err != nil {
		logger.Log(logger.Allow, "debugger", err)
	}
}

// sound the beeper if the interpreter is running.
func (dbg *Debugger) sound() {
	if dbg.beeper == nil {
		return
	}
	err := dbg.beeper.Frame(dbg.state == govern.Running && dbg.itr.SoundOn())
	if err != nil {
		logger.Log(logger.Allow, "debugger", err)
	}
}

// stepper implements the scheduler.Stepper interface. every instruction is
// recorded and checked against the list of breakpoints.
type stepper struct {
	dbg *Debugger
}

// InstructionStep implements the scheduler.Stepper interface.
func (stp *stepper) InstructionStep() (int, error) {
	cost, err := stp.dbg.itr.InstructionStep()
	if stp.dbg.itr.CPU.LastResult.Final {
		stp.dbg.recent.add(stp.dbg.itr.CPU.LastResult)
	}
	if err != nil {
		return cost, err
	}

	pc := stp.dbg.itr.CPU.PC.Value()
	if stp.dbg.breakpoints.check(pc) {
		return cost, curated.Errorf(BreakpointReached, pc)
	}

	return cost, nil
}

// FrequencyStep implements the scheduler.Stepper interface.
func (stp *stepper) FrequencyStep() {
	stp.dbg.itr.FrequencyStep()
}
