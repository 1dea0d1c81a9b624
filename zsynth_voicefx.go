// zsynth_voicefx.go - Timed vocal effects (laugh, gasp, grunt)

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

// Laugh timing: alternating tone and silence stages
const (
	LAUGH_SYLLABLES     = 4
	LAUGH_STAGES        = LAUGH_SYLLABLES * 2
	LAUGH_TONE_TIME     = 0.09
	LAUGH_SILENCE_TIME  = 0.06
	LAUGH_START_NOTE    = 72
	LAUGH_NOTE_STEP     = 2 // Semitones lower per syllable
	LAUGH_START_VOLUME  = 0.8
	LAUGH_VOLUME_STEP   = 0.15 // Quieter per syllable
	LAUGH_PULSE_WIDTH   = 0.3
	LAUGH_FILTER_CUTOFF = 0.15

	GASP_DURATION   = 0.4
	GASP_CUTOFF_LO  = 0.05
	GASP_CUTOFF_HI  = 0.3
	GASP_RESONANCE  = 0.4
	GASP_MAX_VOLUME = 0.6

	GRUNT_DURATION   = 0.25
	GRUNT_FREQ_START = 110.0
	GRUNT_FREQ_END   = 70.0
	GRUNT_CUTOFF     = 0.08
	GRUNT_RESONANCE  = 0.3
	GRUNT_MAX_VOLUME = 0.8
)

// VoiceEffectPlayer runs one canned effect on its own oscillator.
// Transitions are driven purely by elapsed time.
type VoiceEffectPlayer struct {
	osc          *Oscillator
	active       bool
	kind         VoiceEffect
	stage        int
	stageElapsed float64
	elapsed      float64
}

func NewVoiceEffectPlayer() *VoiceEffectPlayer {
	return &VoiceEffectPlayer{osc: NewOscillator(WAVE_PULSE, 0)}
}

// Play starts kind, replacing whatever effect is running. Unknown kinds stop playback.
func (v *VoiceEffectPlayer) Play(kind VoiceEffect) {
	v.Stop()
	osc := v.osc
	osc.resetPhase()
	osc.filter.clearHistory()
	osc.detune = 0

	switch kind {
	case FX_LAUGH:
		osc.waveform = WAVE_PULSE
		osc.pulseWidth = LAUGH_PULSE_WIDTH
		osc.filter.configure(true, FILTER_LOWPASS, LAUGH_FILTER_CUTOFF, 0)
	case FX_GASP:
		osc.waveform = WAVE_NOISE
		osc.filter.configure(true, FILTER_BANDPASS, GASP_CUTOFF_LO, GASP_RESONANCE)
		osc.frequency = 1
	case FX_GRUNT:
		osc.waveform = WAVE_SAWTOOTH
		osc.frequency = GRUNT_FREQ_START
		osc.filter.configure(true, FILTER_LOWPASS, GRUNT_CUTOFF, GRUNT_RESONANCE)
	default:
		return
	}

	v.kind = kind
	v.active = true
	v.enterStage()
}

func (v *VoiceEffectPlayer) Stop() {
	v.active = false
	v.stage = 0
	v.stageElapsed = 0
	v.elapsed = 0
	v.osc.enabled = false
}

func (v *VoiceEffectPlayer) Active() bool {
	return v.active
}

// laughStageTime returns the length of a laugh stage.
func laughStageTime(stage int) float64 {
	if stage%2 == 0 {
		return LAUGH_TONE_TIME
	}
	return LAUGH_SILENCE_TIME
}

// enterStage programs the oscillator for the current stage.
func (v *VoiceEffectPlayer) enterStage() {
	switch v.kind {
	case FX_LAUGH:
		if v.stage%2 == 1 {
			v.osc.enabled = false
			return
		}
		syllable := v.stage / 2
		v.osc.setNote(float32(LAUGH_START_NOTE - syllable*LAUGH_NOTE_STEP))
		v.osc.volume = LAUGH_START_VOLUME - float32(syllable)*LAUGH_VOLUME_STEP
		v.osc.enabled = true
	default:
		v.shape(0)
		v.osc.enabled = true
	}
}

// shape applies progress-based interpolation for the continuous effects.
func (v *VoiceEffectPlayer) shape(p float64) {
	switch v.kind {
	case FX_GASP:
		v.osc.filter.cutoff = float32(GASP_CUTOFF_LO + (GASP_CUTOFF_HI-GASP_CUTOFF_LO)*p)
		v.osc.volume = float32(GASP_MAX_VOLUME * math.Sin(math.Pi*p))
	case FX_GRUNT:
		v.osc.frequency = float32(GRUNT_FREQ_START + (GRUNT_FREQ_END-GRUNT_FREQ_START)*p)
		v.osc.volume = float32(GRUNT_MAX_VOLUME * (1 - p))
	}
}

func continuousDuration(kind VoiceEffect) float64 {
	if kind == FX_GASP {
		return GASP_DURATION
	}
	return GRUNT_DURATION
}

// advance moves the state machine forward by dt seconds.
func (v *VoiceEffectPlayer) advance(dt float64) {
	if !v.active {
		return
	}
	v.elapsed += dt
	v.stageElapsed += dt

	if v.kind == FX_LAUGH {
		if v.stageElapsed+stepEpsilon < laughStageTime(v.stage) {
			return
		}
		v.stage++
		v.stageElapsed = 0
		if v.stage >= LAUGH_STAGES {
			v.Stop()
			return
		}
		v.enterStage()
		return
	}

	p := v.elapsed / continuousDuration(v.kind)
	if p >= 1 {
		v.Stop()
		return
	}
	v.shape(p)
}

func (v *VoiceEffectPlayer) GenerateSample() float32 {
	if !v.active || !v.osc.enabled {
		return 0
	}
	return v.osc.GenerateSample()
}
