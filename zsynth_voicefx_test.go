// zsynth_voicefx_test.go - Voice effect state machine and sample player tests

package main

import (
	"math"
	"testing"
)

func TestLaughStages(t *testing.T) {
	v := NewVoiceEffectPlayer()
	v.Play(FX_LAUGH)
	if !v.Active() || !v.osc.enabled {
		t.Fatal("laugh should start on a tone stage")
	}
	if v.osc.frequency != midiToFrequency(LAUGH_START_NOTE) {
		t.Errorf("expected start pitch %v, got %v", midiToFrequency(LAUGH_START_NOTE), v.osc.frequency)
	}

	// 0.09s tone = 21.6 ticks
	for i := 0; i < 21; i++ {
		v.advance(ZS_STEP_TIME)
	}
	if v.stage != 0 {
		t.Fatalf("expected stage 0 after 21 ticks, got %d", v.stage)
	}
	v.advance(ZS_STEP_TIME)
	if v.stage != 1 || v.osc.enabled {
		t.Fatalf("expected silent stage 1, got stage %d enabled %v", v.stage, v.osc.enabled)
	}

	for v.stage != 2 {
		v.advance(ZS_STEP_TIME)
	}
	if want := midiToFrequency(LAUGH_START_NOTE - LAUGH_NOTE_STEP); v.osc.frequency != want {
		t.Errorf("expected second syllable at %v Hz, got %v", want, v.osc.frequency)
	}
	if v.osc.volume >= LAUGH_START_VOLUME {
		t.Errorf("expected quieter second syllable, got %v", v.osc.volume)
	}
}

func TestLaughTerminates(t *testing.T) {
	v := NewVoiceEffectPlayer()
	v.Play(FX_LAUGH)
	ticks := 0
	for v.Active() && ticks < 1000 {
		v.advance(ZS_STEP_TIME)
		ticks++
	}
	total := LAUGH_SYLLABLES * (LAUGH_TONE_TIME + LAUGH_SILENCE_TIME)
	if math.Abs(float64(ticks)*ZS_STEP_TIME-total) > 8*ZS_STEP_TIME {
		t.Errorf("laugh lasted %d ticks, expected about %.2fs", ticks, total)
	}
	if v.osc.enabled {
		t.Error("terminal state must disable the oscillator")
	}
}

func TestGaspEnvelope(t *testing.T) {
	v := NewVoiceEffectPlayer()
	v.Play(FX_GASP)
	if v.osc.waveform != WAVE_NOISE || v.osc.filter.filterType != FILTER_BANDPASS {
		t.Fatal("gasp should be bandpassed noise")
	}
	for i := 0; i < 48; i++ { // 0.2s
		v.advance(ZS_STEP_TIME)
	}
	if math.Abs(float64(v.osc.volume)-GASP_MAX_VOLUME) > 0.01 {
		t.Errorf("expected peak volume near %v at midpoint, got %v", GASP_MAX_VOLUME, v.osc.volume)
	}
	mid := (GASP_CUTOFF_LO + GASP_CUTOFF_HI) / 2
	if math.Abs(float64(v.osc.filter.cutoff)-mid) > 0.01 {
		t.Errorf("expected cutoff near %v, got %v", mid, v.osc.filter.cutoff)
	}
	for i := 0; i < 60; i++ {
		v.advance(ZS_STEP_TIME)
	}
	if v.Active() || v.osc.enabled {
		t.Error("gasp should finish after 0.4s")
	}
}

func TestGruntFalls(t *testing.T) {
	v := NewVoiceEffectPlayer()
	v.Play(FX_GRUNT)
	prevFreq, prevVol := v.osc.frequency, v.osc.volume
	for v.Active() {
		v.advance(ZS_STEP_TIME)
		if !v.Active() {
			break
		}
		if v.osc.frequency > prevFreq || v.osc.volume > prevVol {
			t.Fatalf("grunt should fall: freq %v->%v vol %v->%v", prevFreq, v.osc.frequency, prevVol, v.osc.volume)
		}
		prevFreq, prevVol = v.osc.frequency, v.osc.volume
	}
	if prevFreq < GRUNT_FREQ_END {
		t.Errorf("grunt undershot end frequency: %v", prevFreq)
	}
}

func TestVoiceEffectReplaces(t *testing.T) {
	v := NewVoiceEffectPlayer()
	v.Play(FX_LAUGH)
	for i := 0; i < 30; i++ {
		v.advance(ZS_STEP_TIME)
	}
	v.Play(FX_GRUNT)
	if v.kind != FX_GRUNT || v.stage != 0 || v.elapsed != 0 {
		t.Errorf("expected fresh grunt, got kind %s stage %d elapsed %v", v.kind, v.stage, v.elapsed)
	}
	v.Play(VoiceEffect(9))
	if v.Active() {
		t.Error("unknown effect should leave the player stopped")
	}
}

func TestEngineAdvancesVoiceEffect(t *testing.T) {
	e := NewZSynthEngine()
	e.PlayVoiceEffect(FX_GRUNT)
	stepSeconds(e, 0.3)
	if e.IsVoiceEffectActive() {
		t.Error("grunt should be done after 0.3s of steps")
	}
}

func TestBuiltinClip(t *testing.T) {
	if len(builtinLaughClip) == 0 || len(builtinLaughClip) > SAMPLE_MAX_LENGTH {
		t.Fatalf("unexpected built-in clip length %d", len(builtinLaughClip))
	}
	quiet := true
	for _, s := range builtinLaughClip {
		if s < 100 || s > 156 {
			quiet = false
			break
		}
	}
	if quiet {
		t.Error("built-in clip looks silent")
	}
}

func TestSamplePlaybackLength(t *testing.T) {
	sp := NewSamplePlayer()
	sp.Play()
	n := 0
	for sp.Active() && n < SAMPLE_RATE*10 {
		sp.GenerateSample()
		n++
	}
	want := float64(len(builtinLaughClip)) * SAMPLE_RATE / SAMPLE_SOURCE_RATE
	if math.Abs(float64(n)-want) > 2 {
		t.Errorf("expected ~%.0f output samples, got %d", want, n)
	}

	sp.pitch = 2
	sp.Play()
	n2 := 0
	for sp.Active() {
		sp.GenerateSample()
		n2++
	}
	if math.Abs(float64(n2)-want/2) > 2 {
		t.Errorf("pitch 2: expected ~%.0f samples, got %d", want/2, n2)
	}
}

func TestSampleConversion(t *testing.T) {
	sp := NewSamplePlayer()
	sp.Load([]uint8{0, 128, 255}, SAMPLE_RATE)
	sp.Play()
	want := []float32{-1, 0, 127.0 / 128}
	for i, w := range want {
		if got := sp.GenerateSample(); got != w {
			t.Errorf("sample %d: expected %v, got %v", i, w, got)
		}
	}
	if sp.Active() {
		t.Error("expected player to stop past the end of the clip")
	}
	if s := sp.GenerateSample(); s != 0 {
		t.Errorf("expected silence after end, got %v", s)
	}

	sp.Load(nil, SAMPLE_RATE)
	if len(sp.data) != 3 {
		t.Error("empty load should be ignored")
	}
}
