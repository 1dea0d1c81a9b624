package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestParseOptions_Defaults(t *testing.T) {
	opts, err := parseOptions(nil)
	if err != nil {
		t.Fatal(err)
	}
	if opts.gui || opts.tui || opts.midi || opts.render != "" {
		t.Errorf("unexpected modes: %+v", opts)
	}
	if opts.seconds != 5 || opts.midiDevice != -1 || opts.volume != -1 {
		t.Errorf("unexpected defaults: %+v", opts)
	}
}

func TestParseOptions_ScriptPositional(t *testing.T) {
	opts, err := parseOptions([]string{"-v", "cart.lua"})
	if err != nil {
		t.Fatal(err)
	}
	if opts.script != "cart.lua" || !opts.verbose {
		t.Errorf("expected script from positional arg, got %+v", opts)
	}
}

func TestParseOptions_Conflicts(t *testing.T) {
	for _, args := range [][]string{
		{"-gui", "-tui"},
		{"-render", "out.wav", "-gui"},
		{"-render", "out.wav", "-midi"},
		{"-volume", "1.5"},
		{"-unknown"},
	} {
		if _, err := parseOptions(args); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestParseOptions_Help(t *testing.T) {
	_, err := parseOptions([]string{"-h"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("expected flag.ErrHelp, got %v", err)
	}
}

func TestConfigureConsole_PatchAndVolume(t *testing.T) {
	p := NewZSynthEngine().Patch()
	p.FilterEnabled = true
	p.FilterCutoff = 0.3
	p.MasterVolume = 0.7
	data, err := EncodePatch(p)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "patch.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	c := NewConsole()
	if err := configureConsole(c, options{patch: path, volume: 0.2}); err != nil {
		t.Fatal(err)
	}
	var got Patch
	c.Do(func(e *ZSynthEngine) { got = e.Patch() })
	if !got.FilterEnabled || got.FilterCutoff != 0.3 {
		t.Errorf("patch not applied: %+v", got)
	}
	if got.MasterVolume != 0.2 {
		t.Errorf("-volume should override the patch, got %v", got.MasterVolume)
	}
}

func TestConfigureConsole_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	c := NewConsole()
	if err := configureConsole(c, options{patch: filepath.Join(dir, "nope.json"), volume: -1}); err == nil {
		t.Error("expected error for missing patch")
	}
	if err := configureConsole(c, options{sample: filepath.Join(dir, "nope.wav"), volume: -1}); err == nil {
		t.Error("expected error for missing sample")
	}
}

func TestRender_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "melody.wav")
	c := NewConsole()
	if err := render(c, options{render: path, seconds: 0.25}, nil); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() <= 44 {
		t.Errorf("rendered file has no audio: %d bytes", info.Size())
	}
	if !c.Status().MelodyEnabled {
		t.Error("render without a cartridge should play the demo melody")
	}
}
