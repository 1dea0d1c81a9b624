// zsynth_console_test.go - Console locking, frame clock and status tests

package main

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestConsole_StepFrameCounts(t *testing.T) {
	c := NewConsole()
	for i := 1; i <= 3; i++ {
		if got := c.StepFrame(); got != uint64(i) {
			t.Fatalf("frame %d: StepFrame returned %d", i, got)
		}
	}
	var steps uint64
	c.Do(func(e *ZSynthEngine) { steps = e.FrameCount() })
	if steps != 3*ZS_STEPS_PER_FRAME {
		t.Errorf("expected %d engine steps, got %d", 3*ZS_STEPS_PER_FRAME, steps)
	}
}

func TestConsole_StoppedIsSilent(t *testing.T) {
	c := NewConsole()
	c.Do(func(e *ZSynthEngine) {
		e.SynthNoteOn(69)
	})
	c.Stop()
	if c.IsRunning() {
		t.Fatal("console should report stopped")
	}

	buf := make([]float32, 256)
	for i := range buf {
		buf[i] = 1
	}
	c.ReadSamples(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("sample %d: expected silence while stopped, got %v", i, v)
		}
	}
	if v := c.ReadSample(); v != 0 {
		t.Errorf("ReadSample while stopped = %v", v)
	}

	before := c.StepFrame()
	if after := c.StepFrame(); after != before {
		t.Errorf("stopped console advanced from frame %d to %d", before, after)
	}

	c.Start()
	var nonZero bool
	c.ReadSamples(buf)
	for _, v := range buf {
		if v != 0 {
			nonZero = true
			break
		}
	}
	if !nonZero {
		t.Error("restarted console produced only silence")
	}
}

func TestConsole_ResetKeepsRunState(t *testing.T) {
	c := NewConsole()
	c.Do(func(e *ZSynthEngine) {
		e.SynthNoteOn(60)
		e.SetMasterVolume(0.9)
	})
	c.StepFrame()
	c.Stop()
	c.Reset()

	s := c.Status()
	if s.Running {
		t.Error("Reset should not restart a stopped console")
	}
	if len(s.ActiveNotes) != 0 {
		t.Errorf("expected no active notes after reset, got %v", s.ActiveNotes)
	}
	if s.MasterVolume != DEFAULT_MASTER_VOLUME {
		t.Errorf("master volume = %v, want %v", s.MasterVolume, DEFAULT_MASTER_VOLUME)
	}
	if s.Steps != 0 {
		t.Errorf("steps = %d after reset", s.Steps)
	}
}

func TestConsole_ConcurrentAccess(t *testing.T) {
	c := NewConsole()
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		buf := make([]float32, SAMPLES_PER_FRAME)
		for i := 0; i < 50; i++ {
			c.ReadSamples(buf)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			c.StepFrame()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			note := 48 + i%24
			c.Do(func(e *ZSynthEngine) { e.SynthNoteOn(note) })
			c.Do(func(e *ZSynthEngine) { e.SynthNoteOff(note) })
		}
	}()
	wg.Wait()

	if n := len(c.Status().ActiveNotes); n != 0 {
		t.Errorf("expected all notes released, %d still active", n)
	}
}

func TestRunFrameClock_StopsOnCancel(t *testing.T) {
	c := NewConsole()
	ctx, cancel := context.WithCancel(context.Background())

	frames := make(chan uint64, 1024)
	done := make(chan error, 1)
	go func() {
		done <- RunFrameClock(ctx, c, 240, func(frame uint64) error {
			frames <- frame
			return nil
		})
	}()

	select {
	case <-frames:
	case <-time.After(2 * time.Second):
		t.Fatal("frame clock never ticked")
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected nil on cancel, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("frame clock did not stop after cancel")
	}
}

func TestRunFrameClock_HookErrorStops(t *testing.T) {
	c := NewConsole()
	boom := errors.New("boom")
	err := RunFrameClock(context.Background(), c, 240, func(frame uint64) error {
		if frame >= 2 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected hook error, got %v", err)
	}
}

func TestRuntimeStatus_ScopeOrdering(t *testing.T) {
	var store runtimeStatusStore
	first := make([]float32, SCOPE_SAMPLES)
	for i := range first {
		first[i] = -1
	}
	store.pushScope(first)
	store.pushScope([]float32{0.25, 0.5})

	snap := store.snapshot()
	if snap.scope[SCOPE_SAMPLES-2] != 0.25 || snap.scope[SCOPE_SAMPLES-1] != 0.5 {
		t.Errorf("newest samples should be last, got %v %v", snap.scope[SCOPE_SAMPLES-2], snap.scope[SCOPE_SAMPLES-1])
	}
	if snap.scope[0] != -1 {
		t.Errorf("oldest sample should be first, got %v", snap.scope[0])
	}
}
