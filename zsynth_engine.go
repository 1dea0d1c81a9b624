// zsynth_engine.go - ZSynth audio chip: voice banks, sequencers and mixer

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

// ZSynthEngine owns every voice bank and sequencer. It is not safe for
// concurrent use; Console serializes access for real-time hosts.
type ZSynthEngine struct {
	legacy  *LegacyBank
	test    *Oscillator
	poly    *PolyBank
	voices  *VoiceBank
	voiceFX *VoiceEffectPlayer
	sample  *SamplePlayer

	melody MelodySequencer
	sfx    SoundEffect

	global       voicePatch // Filter/delay shared by test oscillator and poly bank
	masterVolume float32
	soundTest    bool
	testNote     int
	testWave     Waveform
	frameCount   uint64 // Step() calls
}

// NewZSynthEngine creates an engine in its power-on state.
func NewZSynthEngine() *ZSynthEngine {
	e := &ZSynthEngine{}
	e.Reset()
	return e
}

func clampF32(v, lo, hi float32) float32 {
	if v != v { // NaN
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampNote(note int) int {
	if note < MIN_NOTE {
		return MIN_NOTE
	}
	if note > MAX_NOTE {
		return MAX_NOTE
	}
	return note
}

// SampleRate is fixed; runtime resampling is not supported.
func (e *ZSynthEngine) SampleRate() int {
	return SAMPLE_RATE
}

// Step advances every time-driven sequencer by one tick (1/240 s).
func (e *ZSynthEngine) Step() {
	const dt = ZS_STEP_TIME
	e.frameCount++

	if e.sfx.active && e.sfx.advance(dt, e.test) {
		e.endSoundEffect()
	}
	e.melody.advance(dt, e.test, e.soundTest && !e.sfx.active)
	e.voiceFX.advance(dt)
}

// endSoundEffect hands the test oscillator back once a sweep finishes.
// The frequency reached by the sweep is left in place.
func (e *ZSynthEngine) endSoundEffect() {
	e.test.waveform = e.testWave
	if e.soundTest && e.melody.enabled {
		e.melody.apply(e.test)
		return
	}
	e.test.enabled = false
}

// GenerateSample mixes one output sample. The result is not clamped.
func (e *ZSynthEngine) GenerateSample() float32 {
	var out float32

	switch {
	case e.sfx.active, e.soundTest:
		if e.test.enabled {
			out += e.test.GenerateSample()
		}
	default:
		out += e.legacy.GenerateSample()
	}

	out += e.poly.GenerateSample()
	out += e.voices.GenerateSample()
	out += e.voiceFX.GenerateSample()
	out += e.sample.GenerateSample()

	return out * e.masterVolume
}

// GenerateDebugSamples renders count samples without stepping sequencers.
func (e *ZSynthEngine) GenerateDebugSamples(count int) []float32 {
	if count <= 0 {
		return nil
	}
	out := make([]float32, count)
	for i := range out {
		out[i] = e.GenerateSample()
	}
	return out
}

// --- Legacy registers ---

func (e *ZSynthEngine) WritePulseChannelRegister(channel, reg int, value uint8) {
	e.legacy.WritePulseRegister(channel, reg, value)
}

func (e *ZSynthEngine) WriteTriangleRegister(reg int, value uint8) {
	e.legacy.WriteTriangleRegister(reg, value)
}

func (e *ZSynthEngine) WriteNoiseRegister(reg int, value uint8) {
	e.legacy.WriteNoiseRegister(reg, value)
}

// --- Polyphonic synth ---

func (e *ZSynthEngine) SynthNoteOn(note int) {
	e.poly.NoteOn(clampNote(note))
}

func (e *ZSynthEngine) SynthNoteOff(note int) {
	e.poly.NoteOff(clampNote(note))
}

func (e *ZSynthEngine) SetSynthEnabled(enabled bool) {
	e.poly.SetEnabled(enabled)
}

func (e *ZSynthEngine) GetSynthActiveNoteCount() int {
	return e.poly.ActiveNoteCount()
}

func (e *ZSynthEngine) GetSynthActiveNotes() []int {
	return e.poly.ActiveNotes()
}

func (e *ZSynthEngine) SetSynthWaveform(w Waveform) {
	e.poly.SetWaveform(w)
}

func (e *ZSynthEngine) GetSynthWaveform() Waveform {
	return e.poly.patch.waveform
}

// SetSynthPitchBend bends every held and future poly note by semitones,
// clamped to +/-MAX_PITCH_BEND. NaN recentres the bend.
func (e *ZSynthEngine) SetSynthPitchBend(semitones float32) {
	if semitones != semitones {
		semitones = 0
	}
	s := clampF32(semitones, -MAX_PITCH_BEND, MAX_PITCH_BEND)
	e.poly.setBend(float32(math.Exp2(float64(s)/12)) - 1)
}

// GetSynthPitchBend returns the current bend in semitones.
func (e *ZSynthEngine) GetSynthPitchBend() float32 {
	return float32(12 * math.Log2(1+float64(e.poly.bend)))
}

// --- 3-voice bank ---

func (e *ZSynthEngine) VoicePlayNote(voice, note int, w Waveform) {
	e.voices.PlayNote(voice, clampNote(note), w)
}

func (e *ZSynthEngine) VoiceStop(voice int) {
	e.voices.Stop(voice)
}

func (e *ZSynthEngine) Voice1PlayNote(note int, w Waveform) { e.VoicePlayNote(1, note, w) }
func (e *ZSynthEngine) Voice2PlayNote(note int, w Waveform) { e.VoicePlayNote(2, note, w) }
func (e *ZSynthEngine) Voice3PlayNote(note int, w Waveform) { e.VoicePlayNote(3, note, w) }

func (e *ZSynthEngine) Voice1Stop() { e.VoiceStop(1) }
func (e *ZSynthEngine) Voice2Stop() { e.VoiceStop(2) }
func (e *ZSynthEngine) Voice3Stop() { e.VoiceStop(3) }

func (e *ZSynthEngine) StopAllVoices() {
	e.voices.StopAll()
}

func (e *ZSynthEngine) IsVoiceBankActive() bool {
	return e.voices.Active()
}

// SetVoiceFilter configures the shared 3-voice filter. Resonance is 0..10 here.
func (e *ZSynthEngine) SetVoiceFilter(mask uint8, filterType FilterType, cutoff, resonance float32) {
	e.voices.SetFilter(mask, normalizeFilterType(filterType), cutoff, resonance)
}

// --- Effects ---

// PlaySoundEffect sweeps the test oscillator from startNote to endNote over
// duration seconds. Ignored while another sweep is running. A NaN or
// non-positive duration jumps straight to endNote on the next Step.
func (e *ZSynthEngine) PlaySoundEffect(startNote, endNote int, w Waveform, duration float32) {
	e.sfx.start(float32(clampNote(startNote)), float32(clampNote(endNote)), w,
		clampF32(duration, 0, MAX_SFX_DURATION), e.test)
}

func (e *ZSynthEngine) StopSoundEffect() {
	if !e.sfx.active {
		return
	}
	e.sfx.cancel()
	e.endSoundEffect()
}

func (e *ZSynthEngine) IsSoundEffectActive() bool {
	return e.sfx.active
}

func (e *ZSynthEngine) PlayVoiceEffect(kind VoiceEffect) {
	e.voiceFX.Play(kind)
}

func (e *ZSynthEngine) StopVoiceEffect() {
	e.voiceFX.Stop()
}

func (e *ZSynthEngine) IsVoiceEffectActive() bool {
	return e.voiceFX.Active()
}

func (e *ZSynthEngine) PlaySample() {
	e.sample.Play()
}

func (e *ZSynthEngine) StopSample() {
	e.sample.Stop()
}

func (e *ZSynthEngine) IsSamplePlaying() bool {
	return e.sample.Active()
}

// LoadSample replaces the PCM clip with unsigned 8-bit data at rate Hz.
func (e *ZSynthEngine) LoadSample(data []uint8, rate int) {
	e.sample.Load(data, rate)
}

func (e *ZSynthEngine) SetSamplePitch(pitch float32) {
	e.sample.pitch = clampF32(pitch, SAMPLE_MIN_PITCH, SAMPLE_MAX_PITCH)
}

func (e *ZSynthEngine) SetSampleVolume(volume float32) {
	e.sample.volume = clampF32(volume, 0, 1)
}

// StopAll silences every bank and sequencer. Parameters are kept.
func (e *ZSynthEngine) StopAll() {
	e.sfx.cancel()
	e.melody.stop()
	e.test.enabled = false
	e.test.waveform = e.testWave
	e.legacy.Silence()
	e.poly.SetEnabled(false)
	e.voices.StopAll()
	e.voiceFX.Stop()
	e.sample.Stop()
}

// --- Sound test and melody ---

// EnterSoundTestMode routes the test oscillator to the output in place of
// the legacy bank and starts the steady test tone.
func (e *ZSynthEngine) EnterSoundTestMode() {
	e.soundTest = true
	if e.sfx.active {
		return
	}
	e.test.waveform = e.testWave
	if e.melody.enabled {
		e.melody.apply(e.test)
		return
	}
	e.test.setNote(float32(e.testNote))
	e.test.enabled = true
}

// ExitSoundTestMode clears melody, sweep and test tone state.
func (e *ZSynthEngine) ExitSoundTestMode() {
	e.soundTest = false
	e.melody.stop()
	e.sfx.cancel()
	e.test.enabled = false
	e.test.waveform = e.testWave
	e.test.resetPhase()
}

func (e *ZSynthEngine) IsSoundTestMode() bool {
	return e.soundTest
}

func (e *ZSynthEngine) SetMelodyEnabled(enabled bool) {
	if !enabled {
		e.melody.stop()
		if e.soundTest && !e.sfx.active {
			e.test.setNote(float32(e.testNote))
			e.test.enabled = true
		}
		return
	}
	if e.soundTest && !e.sfx.active {
		e.melody.start(e.test)
		return
	}
	e.melody.enabled = true
	e.melody.step = 0
	e.melody.elapsed = 0
}

func (e *ZSynthEngine) GetMelodyEnabled() bool {
	return e.melody.enabled
}

func (e *ZSynthEngine) GetMelodyStep() int {
	return e.melody.step
}

// SetMelodyTempo sets steps per second.
func (e *ZSynthEngine) SetMelodyTempo(tempo float32) {
	e.melody.tempo = clampF32(tempo, MIN_MELODY_TEMPO, MAX_MELODY_TEMPO)
}

func (e *ZSynthEngine) GetMelodyTempo() float32 {
	return e.melody.tempo
}

func (e *ZSynthEngine) ChangeWaveform(w Waveform) {
	e.testWave = w
	if !e.sfx.active {
		e.test.waveform = w
	}
}

func (e *ZSynthEngine) GetCurrentWaveform() Waveform {
	return e.testWave
}

func (e *ZSynthEngine) ChangeNote(note int) {
	e.testNote = clampNote(note)
	if !e.sfx.active && !e.melody.enabled {
		e.test.setNote(float32(e.testNote))
	}
}

func (e *ZSynthEngine) GetCurrentNote() int {
	return e.testNote
}

func (e *ZSynthEngine) SetPulseWidth(width float32) {
	e.test.pulseWidth = clampF32(width, 0, 1)
}

func (e *ZSynthEngine) SetDetune(detune float32) {
	e.test.detune = clampF32(detune, MIN_DETUNE, MAX_DETUNE)
}

// --- Levels ---

func (e *ZSynthEngine) SetMasterVolume(v float32) {
	e.masterVolume = clampF32(v, 0, 1)
}

func (e *ZSynthEngine) MasterVolume() float32 {
	return e.masterVolume
}

func (e *ZSynthEngine) SetPolyVolume(v float32) {
	e.poly.volume = clampF32(v, 0, 1)
}

func (e *ZSynthEngine) SetVoiceVolume(v float32) {
	e.voices.volume = clampF32(v, 0, 1)
}

// --- Global filter and delay (test oscillator + poly bank) ---

func normalizeFilterType(t FilterType) FilterType {
	if t > FILTER_NOTCH {
		return FILTER_LOWPASS
	}
	return t
}

func (e *ZSynthEngine) applyGlobalFilter() {
	g := &e.global
	g.applyFilter(e.test)
	e.poly.setFilter(g.filterEnabled, g.filterType, g.filterCutoff, g.filterResonance)
}

func (e *ZSynthEngine) applyGlobalDelay() {
	g := &e.global
	g.applyDelay(e.test)
	e.poly.setDelay(g.delayEnabled, g.delayTime, g.delayFeedback, g.delayMix)
}

func (e *ZSynthEngine) SetFilterEnabled(enabled bool) {
	e.global.filterEnabled = enabled
	e.applyGlobalFilter()
}

func (e *ZSynthEngine) SetFilterType(t FilterType) {
	e.global.filterType = normalizeFilterType(t)
	e.applyGlobalFilter()
}

func (e *ZSynthEngine) SetFilterCutoff(cutoff float32) {
	e.global.filterCutoff = clampF32(cutoff, 0, 1)
	e.applyGlobalFilter()
}

// SetFilterResonance clamps to 0..1, unlike SetVoiceFilter's 0..10.
func (e *ZSynthEngine) SetFilterResonance(resonance float32) {
	e.global.filterResonance = clampF32(resonance, 0, FILTER_MAX_RESONANCE)
	e.applyGlobalFilter()
}

func (e *ZSynthEngine) SetDelayEnabled(enabled bool) {
	e.global.delayEnabled = enabled
	e.applyGlobalDelay()
}

func (e *ZSynthEngine) SetDelayTime(t float32) {
	e.global.delayTime = clampF32(t, 0, 1)
	e.applyGlobalDelay()
}

func (e *ZSynthEngine) SetDelayFeedback(fb float32) {
	e.global.delayFeedback = clampF32(fb, 0, DELAY_MAX_FEEDBACK)
	e.applyGlobalDelay()
}

func (e *ZSynthEngine) SetDelayMix(mix float32) {
	e.global.delayMix = clampF32(mix, 0, 1)
	e.applyGlobalDelay()
}

func (e *ZSynthEngine) FrameCount() uint64 {
	return e.frameCount
}
