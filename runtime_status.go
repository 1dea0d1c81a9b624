// runtime_status.go - Engine status snapshots shared with frontends

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
	"fmt"
	"strings"
	"sync"
)

// ZSynthStatus is a point-in-time view of the engine for UI display.
type ZSynthStatus struct {
	Steps           uint64
	Running         bool
	SoundTest       bool
	Waveform        Waveform
	Note            int
	MelodyEnabled   bool
	MelodyStep      int
	MelodyTempo     float32
	SFXActive       bool
	VoiceFXActive   bool
	SamplePlaying   bool
	VoiceBankActive bool
	LegacyActive    bool
	ActiveNotes     []int
	MasterVolume    float32
}

// Status captures the engine's current state.
func (e *ZSynthEngine) Status() ZSynthStatus {
	return ZSynthStatus{
		Steps:           e.frameCount,
		SoundTest:       e.soundTest,
		Waveform:        e.testWave,
		Note:            e.testNote,
		MelodyEnabled:   e.melody.enabled,
		MelodyStep:      e.melody.step,
		MelodyTempo:     e.melody.tempo,
		SFXActive:       e.sfx.active,
		VoiceFXActive:   e.voiceFX.Active(),
		SamplePlaying:   e.sample.Active(),
		VoiceBankActive: e.voices.Active(),
		LegacyActive:    e.legacy.Active(),
		ActiveNotes:     e.poly.ActiveNotes(),
		MasterVolume:    e.masterVolume,
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (s ZSynthStatus) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "steps=%d test=%s wave=%s note=%d", s.Steps, onOff(s.SoundTest), s.Waveform, s.Note)
	fmt.Fprintf(&sb, " melody=%s step=%d tempo=%.1f", onOff(s.MelodyEnabled), s.MelodyStep, s.MelodyTempo)
	fmt.Fprintf(&sb, " sfx=%s vfx=%s pcm=%s voices=%s legacy=%s",
		onOff(s.SFXActive), onOff(s.VoiceFXActive), onOff(s.SamplePlaying), onOff(s.VoiceBankActive), onOff(s.LegacyActive))
	fmt.Fprintf(&sb, " poly=%v vol=%.2f", s.ActiveNotes, s.MasterVolume)
	return sb.String()
}

const SCOPE_SAMPLES = 512

type runtimeStatusSnapshot struct {
	status ZSynthStatus
	scope  [SCOPE_SAMPLES]float32 // Most recent output, oldest first
}

type runtimeStatusStore struct {
	mu sync.RWMutex
	runtimeStatusSnapshot
	scopePos int
}

func (s *runtimeStatusStore) setStatus(status ZSynthStatus) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}

// pushScope appends rendered samples to the oscilloscope ring.
func (s *runtimeStatusStore) pushScope(samples []float32) {
	s.mu.Lock()
	for _, v := range samples {
		s.scope[s.scopePos] = v
		s.scopePos = (s.scopePos + 1) % SCOPE_SAMPLES
	}
	s.mu.Unlock()
}

func (s *runtimeStatusStore) snapshot() runtimeStatusSnapshot {
	s.mu.RLock()
	snap := s.runtimeStatusSnapshot
	pos := s.scopePos
	s.mu.RUnlock()

	// Rotate so the oldest sample comes first
	var ordered [SCOPE_SAMPLES]float32
	n := copy(ordered[:], snap.scope[pos:])
	copy(ordered[n:], snap.scope[:pos])
	snap.scope = ordered
	return snap
}

var runtimeStatus = &runtimeStatusStore{}
