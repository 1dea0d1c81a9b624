// audio_render_test.go - Offline render, spectrum and WAV sample loader tests

package main

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDominantFrequency_Sine(t *testing.T) {
	for _, freq := range []float64{220, 1000, 5000} {
		samples := make([]float32, 4096)
		for i := range samples {
			samples[i] = float32(0.5 * math.Sin(2*math.Pi*freq*float64(i)/SAMPLE_RATE))
		}
		got := DominantFrequency(samples, SAMPLE_RATE)
		if math.Abs(got-freq) > 6 {
			t.Errorf("%v Hz sine: dominant frequency %v", freq, got)
		}
	}
}

func TestDominantFrequency_Silence(t *testing.T) {
	if got := DominantFrequency(make([]float32, 1024), SAMPLE_RATE); got != 0 {
		t.Errorf("expected 0 for silence, got %v", got)
	}
	if got := DominantFrequency(nil, SAMPLE_RATE); got != 0 {
		t.Errorf("expected 0 for empty input, got %v", got)
	}
}

func renderToFile(t *testing.T, c *Console, seconds float64) (string, RenderReport) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	report, err := RenderWAV(f, c, seconds)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return path, report
}

func TestRenderWAV_SoundTestTone(t *testing.T) {
	c := NewConsole()
	c.Do(func(e *ZSynthEngine) {
		e.ChangeWaveform(WAVE_SINE)
		e.ChangeNote(69)
		e.EnterSoundTestMode()
	})

	path, report := renderToFile(t, c, 0.5)
	if report.Samples != SAMPLE_RATE/2 {
		t.Errorf("expected %d samples, got %d", SAMPLE_RATE/2, report.Samples)
	}
	if math.Abs(report.DominantHz-440) > 6 {
		t.Errorf("expected dominant near 440 Hz, got %v", report.DominantHz)
	}
	want := DEFAULT_OSC_VOLUME * DEFAULT_MASTER_VOLUME
	if math.Abs(report.Peak-want) > 0.01 {
		t.Errorf("expected peak near %v, got %v", want, report.Peak)
	}
	if report.Clipped != 0 {
		t.Errorf("unexpected clipping: %d", report.Clipped)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	// 44-byte header plus 16-bit mono PCM
	if info.Size() < int64(report.Samples*2) {
		t.Errorf("wav too small: %d bytes", info.Size())
	}
}

func TestRenderWAV_StepsSequencers(t *testing.T) {
	c := NewConsole()
	c.Do(func(e *ZSynthEngine) {
		e.EnterSoundTestMode()
		e.SetMelodyEnabled(true)
	})
	renderToFile(t, c, 1)

	// One second of audio steps 59 whole frames; the 60th lands after the last sample
	var step int
	c.Do(func(e *ZSynthEngine) { step = e.GetMelodyStep() })
	if step != 3 {
		t.Errorf("after one second at %v steps/s, melody step = %d, want 3", DEFAULT_MELODY_TEMPO, step)
	}
}

func TestRenderWAV_HookError(t *testing.T) {
	c := NewConsole()
	boom := errors.New("cartridge failed")
	f, err := os.Create(filepath.Join(t.TempDir(), "hook.wav"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	_, err = RenderWAV(f, c, 1, func(frame uint64) error {
		if frame == 10 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected hook error, got %v", err)
	}
}

func TestRenderWAV_RejectsBadDuration(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "bad.wav"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := RenderWAV(f, NewConsole(), 0); err == nil {
		t.Error("expected error for zero duration")
	}
}

func TestDecodeWAVSample_RoundTrip(t *testing.T) {
	c := NewConsole()
	c.Do(func(e *ZSynthEngine) {
		e.ChangeWaveform(WAVE_TRIANGLE)
		e.ChangeNote(57)
		e.EnterSoundTestMode()
	})
	path, _ := renderToFile(t, c, 0.5)

	data, err := LoadWAVSample(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := SAMPLE_SOURCE_RATE / 2
	if d := len(data) - want; d < -16 || d > 16 {
		t.Errorf("expected about %d resampled bytes, got %d", want, len(data))
	}

	var lo, hi uint8 = 255, 0
	for _, v := range data {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if lo >= 128 || hi <= 128 {
		t.Errorf("expected a signal around the 128 midpoint, got range %d..%d", lo, hi)
	}

	c.Do(func(e *ZSynthEngine) {
		e.LoadSample(data, SAMPLE_SOURCE_RATE)
		e.PlaySample()
	})
	var playing bool
	c.Do(func(e *ZSynthEngine) { playing = e.IsSamplePlaying() })
	if !playing {
		t.Error("loaded sample should play")
	}
}

func TestLoadWAVSample_Missing(t *testing.T) {
	if _, err := LoadWAVSample(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Error("expected error for missing file")
	}
}
