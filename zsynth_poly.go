// zsynth_poly.go - Dynamically allocated polyphonic voice bank

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

import "sort"

// voicePatch is the shared filter/delay/shape setup that seeds new voices
// and is broadcast to live ones.
type voicePatch struct {
	waveform Waveform

	filterEnabled   bool
	filterType      FilterType
	filterCutoff    float32
	filterResonance float32

	delayEnabled  bool
	delayTime     float32
	delayFeedback float32
	delayMix      float32
}

func defaultVoicePatch() voicePatch {
	return voicePatch{
		waveform:      WAVE_SAWTOOTH,
		filterType:    FILTER_LOWPASS,
		filterCutoff:  DEFAULT_FILTER_CUTOFF,
		delayTime:     0.25,
		delayFeedback: 0.3,
		delayMix:      0.3,
	}
}

func (p *voicePatch) applyFilter(osc *Oscillator) {
	osc.filter.configure(p.filterEnabled, p.filterType, p.filterCutoff, p.filterResonance)
}

func (p *voicePatch) applyDelay(osc *Oscillator) {
	osc.delay.configure(p.delayEnabled, p.delayTime, p.delayFeedback, p.delayMix)
}

// PolyBank allocates one Oscillator per held note. The bank is enabled
// exactly when at least one note is held.
type PolyBank struct {
	voices map[int]*Oscillator
	order  []int // Held notes, ascending; fixes summation order
	patch  voicePatch
	volume float32
	bend   float32 // Detune applied to every voice
}

func NewPolyBank() *PolyBank {
	return &PolyBank{
		voices: make(map[int]*Oscillator),
		patch:  defaultVoicePatch(),
		volume: DEFAULT_POLY_VOLUME,
	}
}

// NoteOn starts a voice for note. A note already held keeps its voice.
func (b *PolyBank) NoteOn(note int) {
	if _, ok := b.voices[note]; ok {
		return
	}
	osc := NewOscillator(b.patch.waveform, midiToFrequency(float32(note)))
	b.patch.applyFilter(osc)
	b.patch.applyDelay(osc)
	osc.detune = b.bend
	osc.enabled = true
	b.voices[note] = osc

	i := sort.SearchInts(b.order, note)
	b.order = append(b.order, 0)
	copy(b.order[i+1:], b.order[i:])
	b.order[i] = note
}

// NoteOff releases note. Unknown notes are ignored.
func (b *PolyBank) NoteOff(note int) {
	if _, ok := b.voices[note]; !ok {
		return
	}
	delete(b.voices, note)
	i := sort.SearchInts(b.order, note)
	b.order = append(b.order[:i], b.order[i+1:]...)
}

// SetEnabled(false) drops every held note. Enabling is implicit on NoteOn.
func (b *PolyBank) SetEnabled(enabled bool) {
	if !enabled {
		clear(b.voices)
		b.order = b.order[:0]
	}
}

func (b *PolyBank) Enabled() bool {
	return len(b.voices) > 0
}

func (b *PolyBank) ActiveNoteCount() int {
	return len(b.voices)
}

// ActiveNotes returns the held notes in ascending order.
func (b *PolyBank) ActiveNotes() []int {
	return append([]int(nil), b.order...)
}

func (b *PolyBank) SetWaveform(w Waveform) {
	b.patch.waveform = w
	for _, osc := range b.voices {
		osc.waveform = w
	}
}

func (b *PolyBank) setBend(detune float32) {
	b.bend = detune
	for _, osc := range b.voices {
		osc.detune = detune
	}
}

func (b *PolyBank) setFilter(enabled bool, filterType FilterType, cutoff, resonance float32) {
	b.patch.filterEnabled = enabled
	b.patch.filterType = filterType
	b.patch.filterCutoff = cutoff
	b.patch.filterResonance = resonance
	for _, osc := range b.voices {
		b.patch.applyFilter(osc)
	}
}

func (b *PolyBank) setDelay(enabled bool, delayTime, feedback, mix float32) {
	b.patch.delayEnabled = enabled
	b.patch.delayTime = delayTime
	b.patch.delayFeedback = feedback
	b.patch.delayMix = mix
	for _, osc := range b.voices {
		b.patch.applyDelay(osc)
	}
}

// GenerateSample sums every held voice under the bank volume.
func (b *PolyBank) GenerateSample() float32 {
	if len(b.voices) == 0 {
		return 0
	}
	var sum float32
	for _, note := range b.order {
		if osc := b.voices[note]; osc.enabled {
			sum += osc.GenerateSample()
		}
	}
	return sum * b.volume
}
