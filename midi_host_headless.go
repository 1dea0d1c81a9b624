//go:build headless

package main

import (
	"context"
	"errors"
)

func init() {
	compiledFeatures = append(compiledFeatures, "midi:headless")
}

type MIDIHost struct{}

func ListMIDIInputs() error {
	return errors.New("midi: not available in headless build")
}

func OpenMIDIHost(c *Console, id int) (*MIDIHost, error) {
	return nil, errors.New("midi: not available in headless build")
}

func (m *MIDIHost) Name() string { return "" }

func (m *MIDIHost) Run(ctx context.Context) error { return nil }

func (m *MIDIHost) Close() {}
