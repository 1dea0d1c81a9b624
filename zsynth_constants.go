// zsynth_constants.go - Constants and enumerations for the ZSynth audio chip

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

const (
	SAMPLE_RATE = 44100

	ZS_FPS             = 60                                  // Host frame rate
	ZS_STEPS_PER_FRAME = 4                                   // Step() calls per video frame
	ZS_STEP_TIME       = 1.0 / (ZS_STEPS_PER_FRAME * ZS_FPS) // Seconds advanced by one Step()
)

// MIDI tuning reference
const (
	MIDI_A4_NOTE = 69
	MIDI_A4_FREQ = 440.0
)

// NES-style legacy bank clock and register layout
const (
	NES_CPU_CLOCK         = 1789773 // 2A03 CPU clock (Hz)
	LEGACY_PULSE_CHANNELS = 2

	LEGACY_REG_CTRL    = 0 // Duty (bits 6-7) + volume (bits 0-3)
	LEGACY_REG_SWEEP   = 1 // Sweep unit (not emulated)
	LEGACY_REG_FREQ_LO = 2 // Period low 8 bits
	LEGACY_REG_FREQ_HI = 3 // Period high 3 bits, enables the channel

	LEGACY_PERIOD_MASK = 0x7FF
	LEGACY_VOLUME_MAX  = 15.0

	LEGACY_TRIANGLE_GAIN = 0.5
	LEGACY_NOISE_GAIN    = 0.5
)

// Pulse duty table indexed by CTRL bits 6-7
var legacyDutyTable = [4]float32{0.125, 0.25, 0.5, 0.75}

// NES noise period table (CPU cycles per LFSR clock)
var legacyNoisePeriods = [16]uint16{
	4, 8, 16, 32, 64, 96, 128, 160, 202, 254, 380, 508, 762, 1016, 2034, 4068,
}

// Noise shift register
const (
	NOISE_LFSR_SEED     = 0x0001
	NOISE_LFSR_FEEDBACK = 0x4000 // Bit 14 set when feedback is high
)

// Resonant filter
const (
	FILTER_MIN_HZ       = 30.0
	FILTER_MAX_HZ       = 20000.0
	FILTER_Q_BASE       = 0.5
	FILTER_Q_SCALE      = 15.0
	FILTER_OUTPUT_LIMIT = 2.0

	FILTER_MAX_RESONANCE       = 1.0  // Global/poly path
	VOICE_FILTER_MAX_RESONANCE = 10.0 // 3-voice path
)

// Feedback delay
const (
	DELAY_BUFFER_SIZE  = SAMPLE_RATE // One second
	DELAY_MAX_MS       = 1000.0
	DELAY_MAX_FEEDBACK = 0.95
	DELAY_DAMPING      = 0.8 // One-pole low-pass coefficient on the repeat path
	DELAY_OUTPUT_LIMIT = 1.5
)

// Engine defaults
const (
	DEFAULT_MASTER_VOLUME = 0.5
	DEFAULT_POLY_VOLUME   = 0.5
	DEFAULT_VOICE_VOLUME  = 0.5
	DEFAULT_OSC_VOLUME    = 0.5
	DEFAULT_PULSE_WIDTH   = 0.5
	DEFAULT_TEST_NOTE     = 60
	DEFAULT_MELODY_TEMPO  = 4.0 // Steps per second
	DEFAULT_FILTER_CUTOFF = 1.0

	MIN_MELODY_TEMPO = 0.5
	MAX_MELODY_TEMPO = 32.0
	MIN_DETUNE       = -0.5
	MAX_DETUNE       = 0.5
	MIN_NOTE         = 0
	MAX_NOTE         = 127
	MAX_SFX_DURATION = 10.0 // Seconds
	MAX_PITCH_BEND   = 2.0  // Semitones either side

	MELODY_STEPS = 16
)

// Sample player
const (
	SAMPLE_SOURCE_RATE = 5512 // Native rate of 8-bit clips
	SAMPLE_MAX_LENGTH  = 11024
	SAMPLE_MIN_PITCH   = 0.25
	SAMPLE_MAX_PITCH   = 4.0
)

// Waveform selects an oscillator shape.
type Waveform uint8

const (
	WAVE_PULSE Waveform = iota
	WAVE_SAWTOOTH
	WAVE_TRIANGLE
	WAVE_SINE
	WAVE_NOISE

	WAVE_COUNT = 5
)

func (w Waveform) String() string {
	switch w {
	case WAVE_PULSE:
		return "pulse"
	case WAVE_SAWTOOTH:
		return "sawtooth"
	case WAVE_TRIANGLE:
		return "triangle"
	case WAVE_SINE:
		return "sine"
	case WAVE_NOISE:
		return "noise"
	}
	return "unknown"
}

// FilterType selects the biquad response.
type FilterType uint8

const (
	FILTER_LOWPASS FilterType = iota
	FILTER_HIGHPASS
	FILTER_BANDPASS
	FILTER_NOTCH
)

func (f FilterType) String() string {
	switch f {
	case FILTER_LOWPASS:
		return "lowpass"
	case FILTER_HIGHPASS:
		return "highpass"
	case FILTER_BANDPASS:
		return "bandpass"
	case FILTER_NOTCH:
		return "notch"
	}
	return "unknown"
}

// VoiceEffect selects a canned vocal effect.
type VoiceEffect uint8

const (
	FX_LAUGH VoiceEffect = iota
	FX_GASP
	FX_GRUNT
)

func (v VoiceEffect) String() string {
	switch v {
	case FX_LAUGH:
		return "laugh"
	case FX_GASP:
		return "gasp"
	case FX_GRUNT:
		return "grunt"
	}
	return "unknown"
}
