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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/jetsetilly/gopher8/audio"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopher8/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/sdlplay"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/playmode"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/programloader"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/version"
	"github.com/jetsetilly/gopher8/wavwriter"
)

// mainThreadGUI is a GUI that must be created, serviced and destroyed on the
// main thread. SDL has this requirement.
type mainThreadGUI interface {
	// Service handles pending window events and returns. It is called
	// continuously by the main thread
	Service()

	Destroy(io.Writer)
}

type guiResult struct {
	gui mainThreadGUI
	err error
}

type guiRequest struct {
	create func() (mainThreadGUI, error)
	result chan guiResult
}

// mainThread is the launch goroutine's view of the main thread.
type mainThread struct {
	gui      chan guiRequest
	quit     chan int
	noIntSig chan struct{}
}

func newMainThread() *mainThread {
	return &mainThread{
		gui:      make(chan guiRequest),
		quit:     make(chan int),
		noIntSig: make(chan struct{}),
	}
}

// createGUI runs the create function on the main thread. Any GUI created
// previously is destroyed first.
func (mt *mainThread) createGUI(create func() (mainThreadGUI, error)) (mainThreadGUI, error) {
	req := guiRequest{create: create, result: make(chan guiResult)}
	mt.gui <- req
	res := <-req.result
	return res.gui, res.err
}

// exit the program with the status code.
func (mt *mainThread) exit(code int) {
	mt.quit <- code
}

// releaseInterrupt stops the main thread from ending the program on ctrl-c.
// The debugger and the play loop install their own handlers.
func (mt *mainThread) releaseInterrupt() {
	mt.noIntSig <- struct{}{}
}

func main() {
	mt := newMainThread()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	go launch(mt, os.Args[1:])

	var current mainThreadGUI
	destroy := func() {
		if current != nil {
			current.Destroy(os.Stderr)
			current = nil
		}
	}

	var code int

loop:
	for {
		select {
		case <-interrupt:
			fmt.Println("\r")
			break loop

		case req := <-mt.gui:
			destroy()
			g, err := req.create()
			if err == nil {
				current = g
			}
			req.result <- guiResult{gui: g, err: err}

		case code = <-mt.quit:
			break loop

		case <-mt.noIntSig:
			signal.Reset(os.Interrupt)

		default:
			if current != nil {
				current.Service()
			}
		}
	}

	destroy()
	fmt.Print("\r")
	os.Exit(code)
}

// launch parses the command line and runs the selected mode. It runs in its
// own goroutine and must finish by calling mt.exit().
func launch(mt *mainThread, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "PLAY", "DEBUG", "DISASM", "PERFORMANCE", "DIGEST", "VERSION")

	stats := md.AddBool("statsview", false, "run stats server (only available with statsview build tag)")
	prefsArg := md.AddString("prefs", "", "preference overrides in the form \"key::value; key::value\"")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		mt.exit(0)
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		mt.exit(10)
		return
	}

	if *stats {
		if statsview.Available() {
			stop := statsview.Launch(os.Stdout)
			defer stop()
		} else {
			fmt.Println("! statsview not available in this build")
		}
	}

	// preferences specified on the command line take priority over the
	// values on disk
	if *prefsArg != "" {
		prefs.PushCommandLineStack(*prefsArg)
	}

	logger.Logf(logger.Allow, "gopher8", "%s (%s)", version.String(), runtime.Version())

	switch md.Mode() {
	case "RUN":
		fallthrough

	case "PLAY":
		err = play(md, mt)

	case "DEBUG":
		err = debug(md, mt)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)

	case "DIGEST":
		err = videoDigest(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		mt.exit(20)
		return
	}

	mt.exit(0)
}

// verbosity levels for the -verbosity flag.
const (
	verbosityNone  = ""
	verbosityInfo  = "INFO"
	verbosityDebug = "DEBUG"
	verbosityTrace = "TRACE"
)

// setLogging sets up logging for the interpreter according to the -log and
// -verbosity flags.
func setLogging(itr *hardware.Interpreter, log bool, verbosity string) error {
	verbosity = strings.ToUpper(strings.TrimSpace(verbosity))

	switch verbosity {
	case verbosityNone:
	case verbosityInfo:
	case verbosityDebug:
		itr.Instance.Prefs.Live.TraceInstructions.Store(true)
	case verbosityTrace:
		itr.Instance.Prefs.Live.TraceInstructions.Store(true)
		itr.Instance.Prefs.Live.TraceAccess.Store(true)
	default:
		return curated.Errorf("unknown verbosity level (%s)", verbosity)
	}

	if log || verbosity != verbosityNone {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	return nil
}

// loadProgram loads the program named in the remaining arguments of the mode.
func loadProgram(md *modalflag.Modes) (programloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return programloader.Loader{}, curated.Errorf("CHIP-8 program required for %s mode", md)
	case 1:
		ld := programloader.NewLoader(md.GetArg(0))
		err := ld.Load()
		if err != nil {
			return programloader.Loader{}, err
		}
		return ld, nil
	}
	return programloader.Loader{}, curated.Errorf("too many arguments for %s mode", md)
}

// newInterpreter creates the main interpreter and loads the program.
func newInterpreter(ld programloader.Loader) (*hardware.Interpreter, error) {
	itr, err := hardware.NewInterpreter(instance.Main, nil)
	if err != nil {
		return nil, err
	}

	err = itr.LoadProgram(ld.Data)
	if err != nil {
		return nil, err
	}

	return itr, nil
}

// createWindow opens the SDL window on the main thread.
func createWindow(mt *mainThread, scale float64) (*sdlplay.SdlPlay, error) {
	g, err := mt.createGUI(func() (mainThreadGUI, error) {
		return sdlplay.NewSdlPlay(float32(scale))
	})
	if err != nil {
		return nil, err
	}
	return g.(*sdlplay.SdlPlay), nil
}

// newBeeper creates the beeper with the tone or sample source. the beeper is
// mixed to the window's audio device and optionally to a WAV file.
func newBeeper(scr *sdlplay.SdlPlay, beep string, wav string) (*audio.Beeper, error) {
	var src audio.Source

	if beep != "" {
		smp, err := audio.LoadSample(beep, audio.ToneVolume)
		if err != nil {
			return nil, err
		}
		src = smp
	}

	beeper := audio.NewBeeper(src)

	if scr != nil && scr.Audio != nil {
		beeper.AddMixer(scr.Audio)
	}

	if wav != "" {
		aw, err := wavwriter.New(wav)
		if err != nil {
			return nil, err
		}
		beeper.AddMixer(aw)
	}

	return beeper, nil
}

func play(md *modalflag.Modes, mt *mainThread) error {
	md.NewMode()

	scale := md.AddFloat64("scale", sdlplay.DefaultScale, "display scaling")
	step := md.AddBool("step", false, "start paused. SPACE steps a single instruction")
	beep := md.AddString("beep", "", "WAV or MP3 file to use for the beeper")
	wav := md.AddString("wav", "", "record audio to wav file")
	record := md.AddBool("record", false, "record audio to a wav file with a generated name")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	verbosity := md.AddString("verbosity", "", "logging verbosity: INFO, DEBUG, TRACE")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ld, err := loadProgram(md)
	if err != nil {
		return err
	}

	if *record && *wav == "" {
		*wav = fmt.Sprintf("%s.wav", paths.UniqueFilename("audio", ld.Filename))
	}

	itr, err := newInterpreter(ld)
	if err != nil {
		return err
	}

	err = setLogging(itr, *log, *verbosity)
	if err != nil {
		return err
	}

	scr, err := createWindow(mt, *scale)
	if err != nil {
		return err
	}

	beeper, err := newBeeper(scr, *beep, *wav)
	if err != nil {
		return err
	}

	// ctrl-c is handled by the play loop from here on
	mt.releaseInterrupt()

	logger.Logf(logger.Allow, "gopher8", "playing %s (%s)", ld.ShortName(), ld.Hash)

	return playmode.Play(itr, scr, scr, beeper, *step)
}

func debug(md *modalflag.Modes, mt *mainThread) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	display := md.AddBool("display", true, "show the interpreter display in a window")
	scale := md.AddFloat64("scale", sdlplay.DefaultScale, "display scaling (only valid if -display=true)")
	beep := md.AddString("beep", "", "WAV or MP3 file to use for the beeper (only valid if -display=true)")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	verbosity := md.AddString("verbosity", "", "logging verbosity: INFO, DEBUG, TRACE")
	profile := md.AddString("profile", "NONE", "run debugger through profiler: NONE, CPU, MEM, TRACE, ALL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	ld, err := loadProgram(md)
	if err != nil {
		return err
	}

	itr, err := newInterpreter(ld)
	if err != nil {
		return err
	}

	err = setLogging(itr, *log, *verbosity)
	if err != nil {
		return err
	}

	var term terminal.Terminal = &plainterm.PlainTerminal{}
	switch t := strings.ToUpper(*termType); t {
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	case "PLAIN":
	default:
		fmt.Printf("! %s is not a terminal type. using PLAIN\n", t)
	}

	var scr gui.GUI
	var rnd gui.FrameRenderer
	var beeper *audio.Beeper

	if *display {
		win, err := createWindow(mt, *scale)
		if err != nil {
			return err
		}
		scr = win
		rnd = win

		beeper, err = newBeeper(win, *beep, "")
		if err != nil {
			return err
		}
	}

	// ctrl-c interrupts a RUN command in the debugger rather than ending
	// the program
	mt.releaseInterrupt()

	dbg, err := debugger.NewDebugger(itr, term, scr, rnd, beeper)
	if err != nil {
		return err
	}

	return performance.RunProfiler(prf, "debugger", dbg.Start)
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ld, err := loadProgram(md)
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromProgram(ld.Data)
	if err != nil {
		return err
	}

	return dsm.Write(md.Output, disassembly.WriteAttr{
		ByteCode: *bytecode,
	})
}

// videoDigest runs the program without a display and prints the digests of
// the video and audio output. The interpreter is normalised so that the
// digests are the same on every run.
func videoDigest(md *modalflag.Modes) error {
	md.NewMode()

	frames := md.AddInt("frames", 60, "number of frames to run for")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *frames < 1 {
		return curated.Errorf("digest: frame count must be at least one")
	}

	ld, err := loadProgram(md)
	if err != nil {
		return err
	}

	itr, err := newInterpreter(ld)
	if err != nil {
		return err
	}

	itr.Instance.Normalise()
	err = itr.Reset()
	if err != nil {
		return err
	}

	vid, aud, err := digest.RunForFrameCount(itr, *frames)
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "video: %s\n", vid.Hash())
	fmt.Fprintf(md.Output, "audio: %s\n", aud.Hash())

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "NONE", "produce profiling reports: NONE, CPU, MEM, TRACE, ALL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	ld, err := loadProgram(md)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, ld.Data, *duration)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(md.Output, r)
	}

	return nil
}
