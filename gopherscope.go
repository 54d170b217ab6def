// This file is part of Gopherscope.
//
// Gopherscope is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherscope is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherscope.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherscope/bench"
	"github.com/jetsetilly/gopherscope/logger"
	"github.com/jetsetilly/gopherscope/modalflag"
	"github.com/jetsetilly/gopherscope/notifications"
	"github.com/jetsetilly/gopherscope/paths"
	"github.com/jetsetilly/gopherscope/performance"
	"github.com/jetsetilly/gopherscope/statsview"
	"github.com/jetsetilly/gopherscope/terminal"
	"github.com/jetsetilly/gopherscope/version"
	"github.com/jetsetilly/gopherscope/waveform"
)

// exit values
const (
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "VIEW", "LIST", "DUMP", "WAVE", "PERFORMANCE")
	showVersion := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(exitParseError)
	}

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	logger.Log(logger.Allow, "main", version.String())

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "VIEW":
		err = view(md)

	case "LIST":
		err = list(md)

	case "DUMP":
		err = dump(md)

	case "WAVE":
		err = wave(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(exitModeError)
	}
}

// benchArgs are the flags used by every mode that builds a bench
type benchArgs struct {
	experiment *string
	file       *string
	set        *string
	log        *bool
	statsview  *string
}

func addBenchArgs(md *modalflag.Modes) benchArgs {
	return benchArgs{
		experiment: md.AddString("experiment", "", "experiment to build (overrides the bench file)"),
		file:       md.AddString("bench", "", "bench file to load (default is bench.yaml in the resource directory)"),
		set:        md.AddString("set", "", "control assignments: \"name::value; name::value\""),
		log:        md.AddBool("log", false, "echo debugging log to stdout"),
		statsview:  md.AddString("statsview", "", "launch the runtime stats server at the address (eg. localhost:12800)"),
	}
}

// prepare acts on the flags that are not specific to the bench
func (a benchArgs) prepare() {
	if *a.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *a.statsview != "" {
		if statsview.Available() {
			statsview.Launch(os.Stdout, *a.statsview)
		} else {
			fmt.Println("! statsview not available in this build")
		}
	}
}

// config returns the bench configuration described by the flags
func (a benchArgs) config() (*bench.Config, error) {
	var cfg *bench.Config
	var err error

	if *a.file != "" {
		cfg, err = bench.LoadFromFile(*a.file)
	} else {
		cfg, err = bench.Load()
	}
	if err != nil {
		return nil, err
	}

	if *a.experiment != "" {
		cfg.Experiment = *a.experiment
	}

	if *a.set != "" {
		if strings.TrimSpace(cfg.Set) != "" {
			cfg.Set = fmt.Sprintf("%s; %s", cfg.Set, *a.set)
		} else {
			cfg.Set = *a.set
		}
	}

	return cfg, nil
}

// build the bench and wait for the circuit models to settle
func (a benchArgs) build(notify notifications.Notify) (*bench.Bench, *bench.Config, error) {
	cfg, err := a.config()
	if err != nil {
		return nil, nil, err
	}

	b, err := cfg.Build(notify)
	if err != nil {
		return nil, nil, err
	}
	b.Queue().Wait()

	return b, cfg, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	args := addBenchArgs(md)
	duration := md.AddDuration("duration", 5*time.Second, "run duration (interrupt ends the run early)")
	snapshot := md.AddBool("snapshot", false, "save a PNG of the screen at the end of the run")
	caption := md.AddString("caption", "", "snapshot caption (default is the experiment name)")
	profile := md.AddString("profile", "none", "run through the profiler: cpu, mem, trace, all (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	args.prepare()

	b, cfg, err := args.build(nil)
	if err != nil {
		return err
	}
	defer b.Close()

	sc := b.Scope()
	if err := sc.Power.Set(true); err != nil {
		return err
	}

	err = performance.RunProfiler(prf, "run", func() error {
		intChan := make(chan os.Signal, 1)
		signal.Notify(intChan, os.Interrupt)
		defer signal.Stop(intChan)

		select {
		case <-time.After(*duration):
		case <-intChan:
			fmt.Println("\r")
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s: %.1f ticks per second\n", sc, sc.TickRate())

	if *snapshot {
		c := *caption
		if c == "" {
			c = cfg.Experiment
		}
		fn := fmt.Sprintf("%s.png", paths.UniqueFilename("snapshot", cfg.Experiment))
		if err := sc.Screen().SavePNG(fn, c); err != nil {
			return err
		}
		fmt.Printf("* snapshot saved to %s\n", fn)
	}

	return nil
}

func view(md *modalflag.Modes) error {
	md.NewMode()

	args := addBenchArgs(md)
	device := md.AddString("tty", "/dev/tty", "terminal device for key input")
	cols := md.AddInt("cols", 0, "width of view in characters (default is terminal width)")
	rows := md.AddInt("rows", 0, "height of view in characters (default is terminal height)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	args.prepare()

	notices := notifications.NewChannel(16)
	b, _, err := args.build(notices)
	if err != nil {
		return err
	}
	defer b.Close()

	tty, err := terminal.Open(*device)
	if err != nil {
		return err
	}
	defer tty.Close()

	if *cols <= 0 || *rows <= 0 {
		c, r, err := tty.Geometry()
		if err != nil {
			return err
		}
		if *cols <= 0 {
			*cols = c
		}
		if *rows <= 0 {
			*rows = r
		}
	}

	v, err := terminal.NewView(b.Scope(), notices, tty.Output, *cols, *rows)
	if err != nil {
		return err
	}

	if err := b.Scope().Power.Set(true); err != nil {
		return err
	}

	quit := make(chan struct{})
	defer close(quit)

	return v.Run(tty.Keys(quit))
}

func list(md *modalflag.Modes) error {
	md.NewMode()

	args := addBenchArgs(md)
	controls := md.AddBool("controls", false, "list the controls and wires of the bench")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	args.prepare()

	if !*controls {
		for _, e := range bench.Experiments() {
			fmt.Fprintf(md.Output, "%-10s %s\n", e.Name, e.Description)
		}
		return nil
	}

	b, _, err := args.build(nil)
	if err != nil {
		return err
	}
	defer b.Close()

	for _, ins := range b.Instruments() {
		fmt.Fprintf(md.Output, "%s: in %v out %v\n", ins, ins.Inputs(), ins.Outputs())
	}
	for _, w := range b.Wires() {
		fmt.Fprintf(md.Output, "%s\n", w)
	}

	r := b.Registry()
	for _, n := range r.Names() {
		c, err := r.Lookup(n)
		if err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "%s::%s\n", n, c)
	}

	return nil
}

func dump(md *modalflag.Modes) error {
	md.NewMode()

	args := addBenchArgs(md)
	full := md.AddBool("full", false, "dump the entire bench and not just the panel settings and wiring")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	args.prepare()

	b, _, err := args.build(nil)
	if err != nil {
		return err
	}
	defer b.Close()

	if *full {
		memviz.Map(md.Output, b)
	} else {
		settings := b.Scope().Settings()
		memviz.Map(md.Output, &settings, b.Wires())
	}

	return nil
}

func wave(md *modalflag.Modes) error {
	md.NewMode()

	args := addBenchArgs(md)
	connector := md.AddString("connector", "gen1.out", "output connector to export")
	output := md.AddString("output", "", "filename of WAV file (default is a unique filename)")
	periods := md.AddInt("periods", waveform.DefaultExport.Periods, "number of periods to write")
	rate := md.AddInt("rate", waveform.DefaultExport.SampleRate, "sample rate")
	fullScale := md.AddFloat64("fullscale", waveform.DefaultExport.FullScale, "voltage at full scale")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	args.prepare()

	b, cfg, err := args.build(nil)
	if err != nil {
		return err
	}
	defer b.Close()

	name, conn, ok := strings.Cut(*connector, ".")
	if !ok {
		return fmt.Errorf("connector %q should be of the form instrument.output", *connector)
	}
	ins, err := b.Instrument(name)
	if err != nil {
		return err
	}
	out, err := ins.Output(conn)
	if err != nil {
		return err
	}

	fn := *output
	if fn == "" {
		fn = fmt.Sprintf("%s.wav", paths.UniqueFilename(strings.ReplaceAll(*connector, ".", "_"), cfg.Experiment))
	}

	export := waveform.Export{
		SampleRate: *rate,
		Periods:    *periods,
		FullScale:  *fullScale,
	}
	if err := export.WriteFile(fn, out.Signal()); err != nil {
		return err
	}
	fmt.Printf("* %s written to %s\n", *connector, fn)

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	args := addBenchArgs(md)
	duration := md.AddDuration("duration", 5*time.Second, "run duration (interrupt ends the run early)")
	profile := md.AddString("profile", "none", "run through the profiler: cpu, mem, trace, all (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	args.prepare()

	b, _, err := args.build(nil)
	if err != nil {
		return err
	}
	defer b.Close()

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	stop := make(chan struct{})
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-intChan:
			fmt.Println("\r")
			close(stop)
		case <-done:
		}
	}()

	return performance.RunProfiler(prf, "performance", func() error {
		_, err := performance.Check(md.Output, b.Scope(), *duration, stop)
		return err
	})
}
