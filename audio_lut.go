// audio_lut.go - Lookup tables for the ZSynth oscillators

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

// Lookup table sizes
const (
	sinLUTSize = 8192           // 8192 entries per cycle
	sinLUTMask = sinLUTSize - 1 // Mask for fast modulo
)

// sinLUT holds one sine cycle indexed by normalized phase [0, 1)
var sinLUT [sinLUTSize]float32

// noteFreqLUT holds equal-tempered frequencies for MIDI notes 0-127
var noteFreqLUT [MAX_NOTE + 1]float32

func init() {
	for i := 0; i < sinLUTSize; i++ {
		sinLUT[i] = float32(math.Sin(float64(i) * 2 * math.Pi / float64(sinLUTSize)))
	}
	for n := range noteFreqLUT {
		noteFreqLUT[n] = float32(MIDI_A4_FREQ * math.Pow(2, float64(n-MIDI_A4_NOTE)/12))
	}
}

// fastSinPhase returns sin(2π·phase) using linear interpolation.
// Phase is in cycles; values outside [0, 1) are wrapped.
//
//go:nosplit
func fastSinPhase(phase float32) float32 {
	if phase < 0 || phase >= 1 {
		phase -= float32(math.Floor(float64(phase)))
	}

	indexF := phase * sinLUTSize
	index := int(indexF)
	frac := indexF - float32(index)

	index &= sinLUTMask
	nextIndex := (index + 1) & sinLUTMask

	return sinLUT[index] + frac*(sinLUT[nextIndex]-sinLUT[index])
}

// midiToFrequency converts a (possibly fractional) MIDI note to Hz.
func midiToFrequency(note float32) float32 {
	if note == float32(int(note)) && note >= 0 && note <= MAX_NOTE {
		return noteFreqLUT[int(note)]
	}
	return float32(MIDI_A4_FREQ * math.Pow(2, float64(note-MIDI_A4_NOTE)/12))
}
