// main.go - Main entry point for the ZSynth sound chip

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// Version is overridden at link time with -ldflags "-X main.Version=...".
var Version = "dev"

func boilerPlate() {
	fmt.Println("\n\033[38;2;255;20;147m ▒███████▒  ██████▓██   ██▓ ███▄    █ ▄▄▄█████▓ ██░ ██\033[0m")
	fmt.Println("\033[38;2;255;110;147m ▒ ▒ ▒ ▄▀░▒██    ▒ ▒██  ██▒ ██ ▀█   █ ▓  ██▒ ▓▒▓██░ ██▒\033[0m")
	fmt.Println("\033[38;2;255;200;147m ░ ▒ ▄▀▒░ ░ ▓██▄    ▒██ ██░▓██  ▀█ ██▒▒ ▓██░ ▒░▒██▀▀██░\033[0m")
	fmt.Println("\033[38;2;255;255;147m   ▄▀▒   ░  ▒   ██▒ ░ ▐██▓░▓██▒  ▐▌██▒░ ▓██▓ ░ ░▓█ ░██\033[0m")
	fmt.Println("\nA software sound chip: legacy pulse bank, polyphonic synth, voices and effects.")
	fmt.Println("(c) 2024 - 2026 Zayn Otley")
	fmt.Println("License: GPLv3 or later")
}

type options struct {
	gui        bool
	tui        bool
	render     string
	seconds    float64
	script     string
	midi       bool
	midiDevice int
	midiList   bool
	sample     string
	patch      string
	volume     float64
	features   bool
	verbose    bool
}

func parseOptions(args []string) (options, error) {
	var opts options
	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.BoolVar(&opts.gui, "gui", false, "Open the sound-test window")
	flagSet.BoolVar(&opts.tui, "tui", false, "Run the terminal sound test (default on a TTY)")
	flagSet.StringVar(&opts.render, "render", "", "Render to a WAV file instead of the audio device")
	flagSet.Float64Var(&opts.seconds, "seconds", 5, "Render length in seconds")
	flagSet.StringVar(&opts.script, "script", "", "Lua cartridge driving the chip")
	flagSet.BoolVar(&opts.midi, "midi", false, "Play the poly synth from a MIDI input")
	flagSet.IntVar(&opts.midiDevice, "midi-device", -1, "MIDI input device id (-1 for the default)")
	flagSet.BoolVar(&opts.midiList, "midi-list", false, "List MIDI inputs and exit")
	flagSet.StringVar(&opts.sample, "sample", "", "WAV file loaded into the sample player")
	flagSet.StringVar(&opts.patch, "patch", "", "JSON patch applied at startup")
	flagSet.Float64Var(&opts.volume, "volume", -1, "Master volume 0-1 (overrides the patch)")
	flagSet.BoolVar(&opts.features, "features", false, "Print compiled features and exit")
	flagSet.BoolVar(&opts.verbose, "v", false, "Print engine status once a second")
	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: ./zsynth [-gui|-tui] [-render out.wav -seconds 5] [-script cart.lua] [-midi] [-patch p.json] [-sample s.wav]")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			flagSet.Usage()
		}
		return opts, err
	}
	if flagSet.NArg() > 0 && opts.script == "" {
		opts.script = flagSet.Arg(0)
	}
	if opts.gui && opts.tui {
		return opts, errors.New("select at most one of -gui and -tui")
	}
	if opts.render != "" && (opts.gui || opts.tui || opts.midi) {
		return opts, errors.New("-render cannot be combined with -gui, -tui or -midi")
	}
	if opts.volume > 1 {
		return opts, fmt.Errorf("volume %v out of range 0-1", opts.volume)
	}
	return opts, nil
}

// configureConsole applies the patch, sample and volume options.
func configureConsole(c *Console, opts options) error {
	if opts.patch != "" {
		p, err := LoadPatchFile(opts.patch)
		if err != nil {
			return err
		}
		c.Do(func(e *ZSynthEngine) { e.ApplyPatch(p) })
	}
	if opts.sample != "" {
		data, err := LoadWAVSample(opts.sample)
		if err != nil {
			return err
		}
		c.Do(func(e *ZSynthEngine) { e.LoadSample(data, SAMPLE_SOURCE_RATE) })
	}
	if opts.volume >= 0 {
		c.Do(func(e *ZSynthEngine) { e.SetMasterVolume(float32(opts.volume)) })
	}
	return nil
}

func render(c *Console, opts options, cart *Cartridge) error {
	f, err := os.Create(opts.render)
	if err != nil {
		return fmt.Errorf("create %s: %w", opts.render, err)
	}
	defer f.Close()

	var hooks []func(uint64) error
	if cart == nil {
		c.Do(func(e *ZSynthEngine) {
			e.EnterSoundTestMode()
			e.SetMelodyEnabled(true)
		})
	} else {
		hooks = append(hooks, cart.Frame)
	}
	report, err := RenderWAV(f, c, opts.seconds, hooks...)
	if err != nil {
		return err
	}
	fmt.Printf("Rendered %s: %s\n", opts.render, report)
	return nil
}

func run(opts options) error {
	if opts.midiList {
		return ListMIDIInputs()
	}

	console := NewConsole()
	if err := configureConsole(console, opts); err != nil {
		return err
	}

	var cart *Cartridge
	if opts.script != "" {
		cart = NewCartridge(console)
		defer cart.Close()
		if err := cart.LoadFile(opts.script); err != nil {
			return err
		}
	}

	if opts.render != "" {
		return render(console, opts, cart)
	}

	output, err := NewAudioOutput(SAMPLE_RATE, console)
	if err != nil {
		return err
	}
	defer output.Close()
	output.Start()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	var hooks []func(uint64) error
	if cart != nil {
		hooks = append(hooks, cart.Frame)
	}
	if opts.verbose {
		hooks = append(hooks, func(frame uint64) error {
			if frame%ZS_FPS == 0 {
				fmt.Println(console.Status())
			}
			return nil
		})
	}
	g.Go(func() error {
		return RunFrameClock(gctx, console, ZS_FPS, hooks...)
	})

	if opts.midi {
		host, err := OpenMIDIHost(console, opts.midiDevice)
		if err != nil {
			stop()
			_ = g.Wait()
			return err
		}
		defer host.Close()
		fmt.Printf("MIDI input: %s\n", host.Name())
		g.Go(func() error {
			return host.Run(gctx)
		})
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	switch {
	case opts.gui:
		err = RunGUI(gctx, console)
		stop()
	case opts.tui || (interactive && cart == nil && !opts.midi && !opts.verbose):
		width := 80
		if w, _, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
			width = w
		}
		err = RunSoundTestTUI(console, width)
		stop()
	default:
		if cart == nil && !opts.midi {
			console.Do(func(e *ZSynthEngine) { e.EnterSoundTestMode() })
		}
		fmt.Println("Playing. Press Ctrl+C to stop.")
		<-gctx.Done()
	}

	if waitErr := g.Wait(); err == nil {
		err = waitErr
	}
	return err
}

func main() {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if opts.features {
		printFeatures()
		return
	}

	boilerPlate()
	if err := run(opts); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
