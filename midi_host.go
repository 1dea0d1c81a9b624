//go:build !headless

// midi_host.go - PortMidi input feeding the polyphonic synth

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
	"fmt"
	"os"
	"time"

	"github.com/rakyll/portmidi"
)

func init() {
	compiledFeatures = append(compiledFeatures, "midi:portmidi")
}

const (
	MIDI_BUFFER_SIZE   = 1024
	MIDI_POLL_INTERVAL = 2 * time.Millisecond
)

// MIDIHost reads a PortMidi input and forwards messages to a Console.
type MIDIHost struct {
	console *Console
	stream  *portmidi.Stream
	name    string
}

// ListMIDIInputs prints the available input devices.
func ListMIDIInputs() error {
	if err := portmidi.Initialize(); err != nil {
		return fmt.Errorf("portmidi: %w", err)
	}
	defer portmidi.Terminate()

	for i := 0; i < portmidi.CountDevices(); i++ {
		info := portmidi.Info(portmidi.DeviceID(i))
		if info != nil && info.IsInputAvailable {
			fmt.Printf("  %d: %s (%s)\n", i, info.Name, info.Interface)
		}
	}
	return nil
}

// OpenMIDIHost opens device id, or the default input when id is negative.
func OpenMIDIHost(c *Console, id int) (*MIDIHost, error) {
	if err := portmidi.Initialize(); err != nil {
		return nil, fmt.Errorf("portmidi: %w", err)
	}
	dev := portmidi.DeviceID(id)
	if id < 0 {
		dev = portmidi.DefaultInputDeviceID()
	}
	info := portmidi.Info(dev)
	if info == nil || !info.IsInputAvailable {
		portmidi.Terminate()
		return nil, fmt.Errorf("portmidi: device %d is not an input", dev)
	}

	stream, err := portmidi.NewInputStream(dev, MIDI_BUFFER_SIZE)
	if err != nil {
		portmidi.Terminate()
		return nil, fmt.Errorf("portmidi: open %s: %w", info.Name, err)
	}
	return &MIDIHost{console: c, stream: stream, name: info.Name}, nil
}

func (m *MIDIHost) Name() string {
	return m.name
}

// Run polls the stream until ctx is cancelled.
func (m *MIDIHost) Run(ctx context.Context) error {
	ticker := time.NewTicker(MIDI_POLL_INTERVAL)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		events, err := m.stream.Read(MIDI_BUFFER_SIZE)
		if err != nil {
			fmt.Fprintf(os.Stderr, "midi: read from %s failed: %v\n", m.name, err)
			return fmt.Errorf("midi read: %w", err)
		}
		if len(events) == 0 {
			continue
		}
		m.console.Do(func(e *ZSynthEngine) {
			for _, ev := range events {
				applyMIDI(e, decodeMIDI(ev.Status, ev.Data1, ev.Data2))
			}
		})
	}
}

func (m *MIDIHost) Close() {
	if m.stream != nil {
		m.stream.Close()
		m.stream = nil
	}
	portmidi.Terminate()
}
