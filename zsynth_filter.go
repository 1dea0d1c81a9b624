// zsynth_filter.go - Biquad resonant filter for ZSynth oscillators

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

// ResonantFilter is a direct-form-I biquad. Coefficients are derived from
// cutoff/resonance on every sample, so parameter sweeps take effect immediately.
type ResonantFilter struct {
	enabled    bool
	filterType FilterType
	cutoff     float32 // Normalized 0..1 (30 Hz - 20 kHz)
	resonance  float32 // Caller-clamped, see SetResonance call sites

	x1, x2 float32 // Input history
	y1, y2 float32 // Output history

	a0, a1, a2 float32 // Feed-forward coefficients
	b1, b2     float32 // Feedback coefficients
}

func newResonantFilter() ResonantFilter {
	f := ResonantFilter{
		filterType: FILTER_LOWPASS,
		cutoff:     DEFAULT_FILTER_CUTOFF,
	}
	f.updateCoefficients()
	return f
}

// cutoffHz maps the normalized cutoff onto the audible range.
func (f *ResonantFilter) cutoffHz() float64 {
	return FILTER_MIN_HZ + float64(f.cutoff)*(FILTER_MAX_HZ-FILTER_MIN_HZ)
}

func (f *ResonantFilter) updateCoefficients() {
	omega := 2 * math.Pi * f.cutoffHz() / SAMPLE_RATE
	sinW, cosW := math.Sincos(omega)
	q := FILTER_Q_BASE + float64(f.resonance)*FILTER_Q_SCALE
	alpha := sinW / (2 * q)
	norm := 1 + alpha

	var a0, a1, a2 float64
	switch f.filterType {
	case FILTER_HIGHPASS:
		a0 = (1 + cosW) / 2
		a1 = -(1 + cosW)
		a2 = (1 + cosW) / 2
	case FILTER_BANDPASS:
		a0 = alpha
		a1 = 0
		a2 = -alpha
	case FILTER_NOTCH:
		a0 = 1
		a1 = -2 * cosW
		a2 = 1
	default: // Lowpass, and the response for unknown kinds
		a0 = (1 - cosW) / 2
		a1 = 1 - cosW
		a2 = (1 - cosW) / 2
	}

	f.a0 = float32(a0 / norm)
	f.a1 = float32(a1 / norm)
	f.a2 = float32(a2 / norm)
	f.b1 = float32(-2 * cosW / norm)
	f.b2 = float32((1 - alpha) / norm)
}

// process filters one sample. A disabled filter returns x untouched and
// leaves its history alone.
func (f *ResonantFilter) process(x float32) float32 {
	if !f.enabled {
		return x
	}
	f.updateCoefficients()

	y := f.a0*x + f.a1*f.x1 + f.a2*f.x2 - f.b1*f.y1 - f.b2*f.y2
	if y != y { // NaN
		f.clearHistory()
		return 0
	}
	if y > FILTER_OUTPUT_LIMIT {
		y = FILTER_OUTPUT_LIMIT
	} else if y < -FILTER_OUTPUT_LIMIT {
		y = -FILTER_OUTPUT_LIMIT
	}

	f.x2, f.x1 = f.x1, x
	f.y2, f.y1 = f.y1, y
	return y
}

func (f *ResonantFilter) clearHistory() {
	f.x1, f.x2, f.y1, f.y2 = 0, 0, 0, 0
}

// configure copies the shared filter parameters and refreshes coefficients.
func (f *ResonantFilter) configure(enabled bool, filterType FilterType, cutoff, resonance float32) {
	f.enabled = enabled
	f.filterType = filterType
	f.cutoff = cutoff
	f.resonance = resonance
	f.updateCoefficients()
}
