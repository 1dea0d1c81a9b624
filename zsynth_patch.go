// zsynth_patch.go - Serializable sound configuration

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
	"encoding/json"
	"fmt"
	"os"
)

// Patch captures every user-adjustable engine parameter.
type Patch struct {
	MasterVolume float32 `json:"master_volume"`
	PolyVolume   float32 `json:"poly_volume"`
	VoiceVolume  float32 `json:"voice_volume"`

	FilterEnabled   bool       `json:"filter_enabled"`
	FilterType      FilterType `json:"filter_type"`
	FilterCutoff    float32    `json:"filter_cutoff"`
	FilterResonance float32    `json:"filter_resonance"`

	DelayEnabled  bool    `json:"delay_enabled"`
	DelayTime     float32 `json:"delay_time"`
	DelayFeedback float32 `json:"delay_feedback"`
	DelayMix      float32 `json:"delay_mix"`

	SynthWaveform Waveform `json:"synth_waveform"`
	TestWaveform  Waveform `json:"test_waveform"`
	TestNote      int      `json:"test_note"`
	PulseWidth    float32  `json:"pulse_width"`
	Detune        float32  `json:"detune"`
	MelodyTempo   float32  `json:"melody_tempo"`
}

// Patch returns the engine's current parameters.
func (e *ZSynthEngine) Patch() Patch {
	g := e.global
	return Patch{
		MasterVolume:    e.masterVolume,
		PolyVolume:      e.poly.volume,
		VoiceVolume:     e.voices.volume,
		FilterEnabled:   g.filterEnabled,
		FilterType:      g.filterType,
		FilterCutoff:    g.filterCutoff,
		FilterResonance: g.filterResonance,
		DelayEnabled:    g.delayEnabled,
		DelayTime:       g.delayTime,
		DelayFeedback:   g.delayFeedback,
		DelayMix:        g.delayMix,
		SynthWaveform:   e.poly.patch.waveform,
		TestWaveform:    e.testWave,
		TestNote:        e.testNote,
		PulseWidth:      e.test.pulseWidth,
		Detune:          e.test.detune,
		MelodyTempo:     e.melody.tempo,
	}
}

// ApplyPatch routes every field through the public setters so clamping applies.
func (e *ZSynthEngine) ApplyPatch(p Patch) {
	e.SetMasterVolume(p.MasterVolume)
	e.SetPolyVolume(p.PolyVolume)
	e.SetVoiceVolume(p.VoiceVolume)

	e.SetFilterType(p.FilterType)
	e.SetFilterCutoff(p.FilterCutoff)
	e.SetFilterResonance(p.FilterResonance)
	e.SetFilterEnabled(p.FilterEnabled)

	e.SetDelayTime(p.DelayTime)
	e.SetDelayFeedback(p.DelayFeedback)
	e.SetDelayMix(p.DelayMix)
	e.SetDelayEnabled(p.DelayEnabled)

	e.SetSynthWaveform(p.SynthWaveform)
	e.ChangeWaveform(p.TestWaveform)
	e.ChangeNote(p.TestNote)
	e.SetPulseWidth(p.PulseWidth)
	e.SetDetune(p.Detune)
	e.SetMelodyTempo(p.MelodyTempo)
}

func EncodePatch(p Patch) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// DecodePatch parses a patch. Missing fields keep the engine defaults.
func DecodePatch(data []byte) (Patch, error) {
	p := NewZSynthEngine().Patch()
	if err := json.Unmarshal(data, &p); err != nil {
		return Patch{}, fmt.Errorf("decode patch: %w", err)
	}
	return p, nil
}

func LoadPatchFile(path string) (Patch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Patch{}, fmt.Errorf("read patch %s: %w", path, err)
	}
	return DecodePatch(data)
}
