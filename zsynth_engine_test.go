// zsynth_engine_test.go - Mixer, polyphony and sequencer tests

package main

import (
	"math"
	"testing"
)

func stepSeconds(e *ZSynthEngine, seconds float64) {
	n := int(math.Round(seconds / ZS_STEP_TIME))
	for i := 0; i < n; i++ {
		e.Step()
	}
}

func TestPolyphonyBookkeeping(t *testing.T) {
	e := NewZSynthEngine()
	e.SynthNoteOn(60)
	e.SynthNoteOn(64)
	if got := e.GetSynthActiveNoteCount(); got != 2 {
		t.Fatalf("expected 2 active notes, got %d", got)
	}
	e.SynthNoteOn(64)
	if got := e.GetSynthActiveNoteCount(); got != 2 {
		t.Errorf("repeated note-on should not allocate, got %d", got)
	}
	e.SynthNoteOff(60)
	if got := e.GetSynthActiveNoteCount(); got != 1 {
		t.Errorf("expected 1 active note, got %d", got)
	}
	e.SynthNoteOff(99)
	if got := e.GetSynthActiveNoteCount(); got != 1 {
		t.Errorf("note-off for unheld note changed count to %d", got)
	}
	if !e.poly.Enabled() {
		t.Error("expected bank enabled while notes are held")
	}
	e.SetSynthEnabled(false)
	if got := e.GetSynthActiveNoteCount(); got != 0 {
		t.Errorf("expected 0 active notes after disable, got %d", got)
	}
	if e.poly.Enabled() {
		t.Error("expected bank disabled once empty")
	}
}

func TestPolyActiveNotesSorted(t *testing.T) {
	e := NewZSynthEngine()
	for _, n := range []int{72, 60, 67, 64} {
		e.SynthNoteOn(n)
	}
	e.SynthNoteOff(67)
	got := e.GetSynthActiveNotes()
	want := []int{60, 64, 72}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestPolyVoicesFollowGlobalFilter(t *testing.T) {
	e := NewZSynthEngine()
	e.SetFilterEnabled(true)
	e.SetFilterType(FILTER_HIGHPASS)
	e.SetFilterCutoff(0.3)
	e.SynthNoteOn(60)

	osc := e.poly.voices[60]
	if !osc.filter.enabled || osc.filter.filterType != FILTER_HIGHPASS || osc.filter.cutoff != 0.3 {
		t.Fatalf("new voice not seeded from global filter: %+v", osc.filter)
	}

	e.SetFilterCutoff(0.7)
	e.SetFilterResonance(0.5)
	ref := newResonantFilter()
	ref.configure(true, FILTER_HIGHPASS, 0.7, 0.5)
	if osc.filter.cutoff != 0.7 || osc.filter.a0 != ref.a0 || osc.filter.b1 != ref.b1 {
		t.Errorf("live voice not updated: cutoff %v a0 %v (want %v)", osc.filter.cutoff, osc.filter.a0, ref.a0)
	}
}

func TestResonanceClampRanges(t *testing.T) {
	e := NewZSynthEngine()
	e.SetFilterResonance(5)
	if e.global.filterResonance != 1 {
		t.Errorf("global resonance: expected clamp to 1, got %v", e.global.filterResonance)
	}

	e.SetVoiceFilter(0x07, FILTER_LOWPASS, 0.5, 5)
	if r := e.voices.voices[0].filter.resonance; r != 5 {
		t.Errorf("voice resonance: expected 5, got %v", r)
	}
	e.SetVoiceFilter(0x07, FILTER_LOWPASS, 0.5, 20)
	if r := e.voices.voices[2].filter.resonance; r != 10 {
		t.Errorf("voice resonance: expected clamp to 10, got %v", r)
	}
}

func TestVoiceFilterMask(t *testing.T) {
	e := NewZSynthEngine()
	e.SetVoiceFilter(0x05, FILTER_BANDPASS, 0.4, 0.2)
	want := []bool{true, false, true}
	for i, w := range want {
		if got := e.voices.voices[i].filter.enabled; got != w {
			t.Errorf("voice %d: filter enabled %v, want %v", i+1, got, w)
		}
	}
}

func TestVoiceBankActiveFlag(t *testing.T) {
	e := NewZSynthEngine()
	e.Voice1PlayNote(60, WAVE_PULSE)
	e.Voice2PlayNote(64, WAVE_SAWTOOTH)
	if !e.IsVoiceBankActive() {
		t.Fatal("expected bank active")
	}
	if f := e.voices.voices[1].frequency; math.Abs(float64(f-midiToFrequency(64))) > 1e-3 {
		t.Errorf("voice 2 frequency %v", f)
	}
	e.Voice1Stop()
	if !e.IsVoiceBankActive() {
		t.Error("bank should stay active while voice 2 plays")
	}
	e.Voice2Stop()
	if e.IsVoiceBankActive() {
		t.Error("bank should be inactive once every voice stops")
	}
	e.Voice3PlayNote(50, WAVE_TRIANGLE)
	e.StopAllVoices()
	if e.IsVoiceBankActive() {
		t.Error("StopAllVoices left the bank active")
	}
	e.VoicePlayNote(4, 60, WAVE_PULSE)
	if e.IsVoiceBankActive() {
		t.Error("out-of-range voice should be ignored")
	}
}

func TestMelodyStepping(t *testing.T) {
	e := NewZSynthEngine()
	e.EnterSoundTestMode()
	e.SetMelodyTempo(3)
	e.SetMelodyEnabled(true)

	// 1/3 s is 80 ticks of 1/240 s
	for i := 0; i < 79; i++ {
		e.Step()
	}
	if got := e.GetMelodyStep(); got != 0 {
		t.Fatalf("expected step 0 before 1/3s, got %d", got)
	}
	e.Step()
	if got := e.GetMelodyStep(); got != 1 {
		t.Fatalf("expected step 1 after 1/3s, got %d", got)
	}
	if f := e.test.frequency; f != midiToFrequency(float32(melodyPattern[1])) {
		t.Errorf("expected test oscillator on step 1 note, got %v Hz", f)
	}

	restStep := -1
	for i, n := range melodyPattern {
		if n == 0 {
			restStep = i
			break
		}
	}
	for e.GetMelodyStep() != restStep {
		e.Step()
	}
	if e.test.enabled {
		t.Error("expected rest to disable the test oscillator")
	}
	for i := 0; i < 80; i++ {
		e.Step()
	}
	if !e.test.enabled {
		t.Error("expected the step after a rest to re-enable the test oscillator")
	}
}

func TestMelodyWrapsAfterSixteenSteps(t *testing.T) {
	e := NewZSynthEngine()
	e.EnterSoundTestMode()
	e.SetMelodyTempo(24) // 10 ticks per step
	e.SetMelodyEnabled(true)
	for i := 0; i < 10*MELODY_STEPS; i++ {
		e.Step()
	}
	if got := e.GetMelodyStep(); got != 0 {
		t.Errorf("expected wrap to step 0, got %d", got)
	}
}

func TestSoundEffectCompletion(t *testing.T) {
	e := NewZSynthEngine()
	e.PlaySoundEffect(60, 72, WAVE_PULSE, 0.1)
	if !e.IsSoundEffectActive() {
		t.Fatal("expected sound effect to start")
	}

	ticks := 0
	var last float32
	for e.IsSoundEffectActive() && ticks < 1000 {
		e.Step()
		last = e.test.frequency
		ticks++
	}
	if e.IsSoundEffectActive() {
		t.Fatal("sound effect never finished")
	}
	if ticks < 24 || ticks > 25 {
		t.Errorf("expected completion after ~0.1s (24-25 ticks), took %d", ticks)
	}
	if want := midiToFrequency(72); last != want {
		t.Errorf("expected final frequency %v, got %v", want, last)
	}
	if e.test.enabled {
		t.Error("expected test oscillator silenced with no melody running")
	}
}

func TestSoundEffectIsNotInterrupted(t *testing.T) {
	e := NewZSynthEngine()
	e.PlaySoundEffect(60, 72, WAVE_PULSE, 0.5)
	e.Step()
	e.PlaySoundEffect(30, 40, WAVE_NOISE, 0.1)
	if e.sfx.startNote != 60 || e.sfx.waveform != WAVE_PULSE {
		t.Errorf("running effect was replaced: start %v wave %s", e.sfx.startNote, e.sfx.waveform)
	}
}

func TestSoundEffectRevertsToMelody(t *testing.T) {
	e := NewZSynthEngine()
	e.EnterSoundTestMode()
	e.ChangeWaveform(WAVE_TRIANGLE)
	e.SetMelodyEnabled(true)
	e.PlaySoundEffect(40, 50, WAVE_SAWTOOTH, 0.05)
	if e.test.waveform != WAVE_SAWTOOTH {
		t.Fatalf("sweep waveform not applied")
	}
	stepSeconds(e, 0.1)
	if e.IsSoundEffectActive() {
		t.Fatal("sweep should be finished")
	}
	if e.test.waveform != WAVE_TRIANGLE {
		t.Errorf("expected test waveform restored, got %s", e.test.waveform)
	}
	if !e.test.enabled {
		t.Error("expected melody to drive the test oscillator again")
	}
}

func TestExitSoundTestClearsState(t *testing.T) {
	e := NewZSynthEngine()
	e.EnterSoundTestMode()
	e.SetMelodyEnabled(true)
	e.PlaySoundEffect(60, 72, WAVE_PULSE, 1)
	e.ExitSoundTestMode()
	if e.IsSoundTestMode() || e.GetMelodyEnabled() || e.IsSoundEffectActive() || e.test.enabled {
		t.Errorf("state left behind: %s", e.Status())
	}
}

func TestMixerRoutesLegacyOutsideSoundTest(t *testing.T) {
	e := NewZSynthEngine()
	e.SetMasterVolume(1)
	e.WritePulseChannelRegister(0, LEGACY_REG_CTRL, 0xBF)
	e.WritePulseChannelRegister(0, LEGACY_REG_FREQ_LO, 0xFD)
	e.WritePulseChannelRegister(0, LEGACY_REG_FREQ_HI, 0x00)

	if s := e.GenerateSample(); s != 1 {
		t.Fatalf("expected legacy pulse at full volume, got %v", s)
	}

	e.EnterSoundTestMode()
	e.test.enabled = false
	for i := 0; i < 100; i++ {
		if s := e.GenerateSample(); s != 0 {
			t.Fatalf("legacy bank audible in sound test mode: %v", s)
		}
	}

	e.ExitSoundTestMode()
	e.PlaySoundEffect(60, 60, WAVE_PULSE, 1)
	e.test.volume = 0
	for i := 0; i < 100; i++ {
		if s := e.GenerateSample(); s != 0 {
			t.Fatalf("legacy bank audible during sound effect: %v", s)
		}
	}
}

func TestNoTopLevelClamp(t *testing.T) {
	e := NewZSynthEngine()
	e.SetMasterVolume(1)
	e.SetPolyVolume(1)
	e.SetVoiceVolume(1)
	e.SetSynthWaveform(WAVE_PULSE)
	for _, n := range []int{48, 52, 55, 60} {
		e.SynthNoteOn(n)
	}
	e.Voice1PlayNote(36, WAVE_PULSE)
	e.Voice2PlayNote(40, WAVE_PULSE)
	e.Voice3PlayNote(43, WAVE_PULSE)

	peak := float32(0)
	for i := 0; i < 64; i++ {
		if s := float32(math.Abs(float64(e.GenerateSample()))); s > peak {
			peak = s
		}
	}
	if peak <= 1 {
		t.Errorf("expected summed banks to exceed unity, peak %v", peak)
	}
}

func TestSetterClamping(t *testing.T) {
	e := NewZSynthEngine()
	e.SetMasterVolume(2)
	if e.MasterVolume() != 1 {
		t.Errorf("master volume: expected 1, got %v", e.MasterVolume())
	}
	e.SetMasterVolume(-1)
	if e.MasterVolume() != 0 {
		t.Errorf("master volume: expected 0, got %v", e.MasterVolume())
	}
	e.SetDelayFeedback(2)
	if e.global.delayFeedback != DELAY_MAX_FEEDBACK {
		t.Errorf("delay feedback: expected %v, got %v", DELAY_MAX_FEEDBACK, e.global.delayFeedback)
	}
	e.SetDetune(3)
	if e.test.detune != MAX_DETUNE {
		t.Errorf("detune: expected %v, got %v", MAX_DETUNE, e.test.detune)
	}
	e.SetFilterType(FilterType(9))
	if e.global.filterType != FILTER_LOWPASS {
		t.Errorf("unknown filter type should fall back to lowpass, got %s", e.global.filterType)
	}
	e.ChangeNote(500)
	if e.GetCurrentNote() != MAX_NOTE {
		t.Errorf("note: expected %d, got %d", MAX_NOTE, e.GetCurrentNote())
	}
	e.SetMelodyTempo(0)
	if e.GetMelodyTempo() != MIN_MELODY_TEMPO {
		t.Errorf("tempo: expected %v, got %v", MIN_MELODY_TEMPO, e.GetMelodyTempo())
	}
}

func TestTriggerInputsClamped(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	sweeps := []struct {
		name     string
		duration float32
		want     float64 // Stored duration
	}{
		{"NaN", nan, 0},
		{"negative", -1, 0},
		{"zero", 0, 0},
		{"negative infinity", -inf, 0},
		{"infinity", inf, MAX_SFX_DURATION},
		{"too long", 1e6, MAX_SFX_DURATION},
		{"in range", 0.25, 0.25},
	}
	for _, tt := range sweeps {
		t.Run("sweep duration "+tt.name, func(t *testing.T) {
			e := NewZSynthEngine()
			e.PlaySoundEffect(60, 72, WAVE_PULSE, tt.duration)
			if !e.IsSoundEffectActive() {
				t.Fatal("expected sweep to start")
			}
			if e.sfx.duration != tt.want {
				t.Fatalf("duration = %v, want %v", e.sfx.duration, tt.want)
			}
			if tt.want > 0 {
				return
			}
			e.Step()
			if e.IsSoundEffectActive() {
				t.Fatal("zero-length sweep should finish on the first step")
			}
			if f := e.test.frequency; f != midiToFrequency(72) {
				t.Errorf("expected end frequency %v, got %v", midiToFrequency(72), f)
			}
			for i := 0; i < 4; i++ {
				if s := e.GenerateSample(); s != s {
					t.Fatalf("sample %d is NaN", i)
				}
			}

			e.PlaySoundEffect(40, 52, WAVE_SAWTOOTH, 0.05)
			if !e.IsSoundEffectActive() || e.sfx.startNote != 40 {
				t.Fatal("a new sweep should start once the first one ends")
			}
			stepSeconds(e, 0.1)
			if e.IsSoundEffectActive() {
				t.Error("second sweep never finished")
			}
		})
	}

	notes := []struct {
		name string
		note int
		held int
	}{
		{"above range", 200, MAX_NOTE},
		{"below range", -5, MIN_NOTE},
		{"in range", 64, 64},
	}
	for _, tt := range notes {
		t.Run("note pair "+tt.name, func(t *testing.T) {
			e := NewZSynthEngine()
			e.SynthNoteOn(tt.note)
			held := e.GetSynthActiveNotes()
			if len(held) != 1 || held[0] != tt.held {
				t.Fatalf("note-on %d held %v, want [%d]", tt.note, held, tt.held)
			}
			e.SynthNoteOff(tt.note)
			if got := e.GetSynthActiveNoteCount(); got != 0 {
				t.Errorf("note-off %d left %d notes", tt.note, got)
			}
		})
	}

	t.Run("unknown voice effect", func(t *testing.T) {
		e := NewZSynthEngine()
		e.PlayVoiceEffect(VoiceEffect(99))
		if e.IsVoiceEffectActive() {
			t.Error("unknown kind should not start a voice effect")
		}
		e.PlayVoiceEffect(FX_GASP)
		e.PlayVoiceEffect(VoiceEffect(99))
		if e.IsVoiceEffectActive() {
			t.Error("unknown kind should stop the running effect")
		}
		if s := e.GenerateSample(); s != 0 {
			t.Errorf("expected silence, got %v", s)
		}
	})
}

func TestSynthPitchBend(t *testing.T) {
	e := NewZSynthEngine()
	e.SynthNoteOn(60)
	e.SetSynthPitchBend(2)
	want := float32(math.Exp2(2.0/12)) - 1
	if d := e.poly.voices[60].detune; math.Abs(float64(d-want)) > 1e-6 {
		t.Errorf("held voice detune %v, want %v", d, want)
	}
	e.SynthNoteOn(67)
	if d := e.poly.voices[67].detune; math.Abs(float64(d-want)) > 1e-6 {
		t.Errorf("new voice detune %v, want %v", d, want)
	}

	tests := []struct {
		in, want float32
	}{
		{12, MAX_PITCH_BEND},
		{-12, -MAX_PITCH_BEND},
		{-1, -1},
		{float32(math.NaN()), 0},
		{0, 0},
	}
	for _, tt := range tests {
		e.SetSynthPitchBend(tt.in)
		if got := e.GetSynthPitchBend(); math.Abs(float64(got-tt.want)) > 1e-4 {
			t.Errorf("SetSynthPitchBend(%v): got %v, want %v", tt.in, got, tt.want)
		}
	}

	e.SetSynthPitchBend(1)
	e.Reset()
	if got := e.GetSynthPitchBend(); got != 0 {
		t.Errorf("Reset left bend at %v", got)
	}
}

func TestStopAllSilences(t *testing.T) {
	e := NewZSynthEngine()
	e.SetMasterVolume(1)
	e.SynthNoteOn(60)
	e.Voice1PlayNote(60, WAVE_SAWTOOTH)
	e.PlayVoiceEffect(FX_GRUNT)
	e.PlaySample()
	e.PlaySoundEffect(60, 72, WAVE_PULSE, 1)
	e.WritePulseChannelRegister(1, LEGACY_REG_CTRL, 0x8F)
	e.WritePulseChannelRegister(1, LEGACY_REG_FREQ_HI, 0x01)

	e.StopAll()
	for i := 0; i < 256; i++ {
		if s := e.GenerateSample(); s != 0 {
			t.Fatalf("expected silence after StopAll, got %v", s)
		}
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	e := NewZSynthEngine()
	e.SetMasterVolume(0.9)
	e.SynthNoteOn(60)
	e.EnterSoundTestMode()
	e.Step()
	e.Reset()

	if e.MasterVolume() != DEFAULT_MASTER_VOLUME || e.GetSynthActiveNoteCount() != 0 || e.IsSoundTestMode() || e.FrameCount() != 0 {
		t.Errorf("reset left state behind: %s", e.Status())
	}
}

func TestGenerateDebugSamples(t *testing.T) {
	e := NewZSynthEngine()
	e.EnterSoundTestMode()
	got := e.GenerateDebugSamples(128)
	if len(got) != 128 {
		t.Fatalf("expected 128 samples, got %d", len(got))
	}
	if e.FrameCount() != 0 {
		t.Error("debug rendering should not step sequencers")
	}
	if e.GenerateDebugSamples(0) != nil {
		t.Error("expected nil for zero count")
	}
}
