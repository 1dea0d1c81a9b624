// zsynth_oscillator.go - Phase-accumulating oscillator shared by every voice bank

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

import "math"

// Oscillator is one playable voice: waveform generator, filter, delay, volume.
type Oscillator struct {
	enabled    bool
	frequency  float32  // Hz
	waveform   Waveform // Shape selector
	phase      float32  // Normalized [0, 1)
	pulseWidth float32  // Pulse duty 0..1
	volume     float32  // 0..1
	detune     float32  // Fractional frequency offset
	noiseSR    uint16   // 16-bit LFSR, never zero
	noiseRate  float32  // LFSR clocks per second; 0 clocks once per sample
	noisePhase float32  // Fractional LFSR clock accumulator

	filter ResonantFilter
	delay  FeedbackDelay
}

// NewOscillator returns a disabled oscillator with default settings.
func NewOscillator(waveform Waveform, frequency float32) *Oscillator {
	return &Oscillator{
		frequency:  frequency,
		waveform:   waveform,
		pulseWidth: DEFAULT_PULSE_WIDTH,
		volume:     DEFAULT_OSC_VOLUME,
		noiseSR:    NOISE_LFSR_SEED,
		filter:     newResonantFilter(),
		delay:      newFeedbackDelay(),
	}
}

// stepLFSR clocks a 16-bit Galois noise register once.
func stepLFSR(sr uint16) uint16 {
	feedback := (sr ^ (sr >> 1)) & 1
	sr >>= 1
	if feedback != 0 {
		sr |= NOISE_LFSR_FEEDBACK
	}
	return sr
}

func lfsrLevel(sr uint16) float32 {
	if sr&1 != 0 {
		return 1
	}
	return -1
}

// waveformAt evaluates the non-noise shapes at a phase without advancing.
func waveformAt(waveform Waveform, phase, pulseWidth float32) float32 {
	switch waveform {
	case WAVE_PULSE:
		if phase < pulseWidth {
			return 1
		}
		return -1
	case WAVE_SAWTOOTH:
		return 2*phase - 1
	case WAVE_TRIANGLE:
		if phase < 0.5 {
			return 4*phase - 1
		}
		return 3 - 4*phase
	case WAVE_SINE:
		return fastSinPhase(phase)
	}
	return 0
}

// wrapPhase folds p into [0, 1). Frequencies above the sample rate and
// negative detune both land here.
func wrapPhase(p float32) float32 {
	if p >= 1 || p < 0 {
		p -= float32(math.Floor(float64(p)))
		if p >= 1 {
			p = 0
		}
	}
	if p != p {
		p = 0
	}
	return p
}

// generateWaveform advances phase and returns a raw sample in [-1, 1].
// Unknown waveforms produce silence.
func (osc *Oscillator) generateWaveform() float32 {
	osc.phase += osc.frequency * (1 + osc.detune) / SAMPLE_RATE
	osc.phase = wrapPhase(osc.phase)

	if osc.waveform == WAVE_NOISE {
		osc.clockNoise()
		return lfsrLevel(osc.noiseSR)
	}
	return waveformAt(osc.waveform, osc.phase, osc.pulseWidth)
}

func (osc *Oscillator) clockNoise() {
	if osc.noiseRate <= 0 {
		osc.noiseSR = stepLFSR(osc.noiseSR)
		return
	}
	// Several LFSR steps per sample when the clock outruns the sample rate
	osc.noisePhase += osc.noiseRate / SAMPLE_RATE
	steps := int(osc.noisePhase)
	osc.noisePhase -= float32(steps)
	for i := 0; i < steps; i++ {
		osc.noiseSR = stepLFSR(osc.noiseSR)
	}
}

// GenerateSample runs generate, filter, delay, volume in that order.
func (osc *Oscillator) GenerateSample() float32 {
	raw := osc.generateWaveform()
	filtered := osc.filter.process(raw)
	delayed := osc.delay.process(filtered)
	return delayed * osc.volume
}

// setNote tunes the oscillator to a MIDI note.
func (osc *Oscillator) setNote(note float32) {
	osc.frequency = midiToFrequency(note)
}

func (osc *Oscillator) resetPhase() {
	osc.phase = 0
}
