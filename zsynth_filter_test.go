// zsynth_filter_test.go - Resonant filter and feedback delay tests

package main

import (
	"math"
	"testing"
)

func sineBlock(freq float64, n int, amp float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = amp * float32(math.Sin(2*math.Pi*freq*float64(i)/SAMPLE_RATE))
	}
	return out
}

func rms(samples []float32) float64 {
	var sum float64
	for _, s := range samples {
		sum += float64(s) * float64(s)
	}
	return math.Sqrt(sum / float64(len(samples)))
}

func TestFilterBypassIsExact(t *testing.T) {
	f := newResonantFilter()
	f.x1, f.x2, f.y1, f.y2 = 0.3, -0.7, 1.5, -1.9
	for _, x := range []float32{0, 1, -1, 0.123456, 7.5, -3} {
		if got := f.process(x); got != x {
			t.Errorf("bypass: expected %v, got %v", x, got)
		}
	}
	if f.x1 != 0.3 || f.x2 != -0.7 || f.y1 != 1.5 || f.y2 != -1.9 {
		t.Errorf("bypass modified history: %v %v %v %v", f.x1, f.x2, f.y1, f.y2)
	}
}

func TestFilterResponses(t *testing.T) {
	high := sineBlock(12000, 8192, 1)
	low := sineBlock(100, 8192, 1)

	run := func(ft FilterType, cutoff float32, in []float32) float64 {
		f := newResonantFilter()
		f.configure(true, ft, cutoff, 0)
		out := make([]float32, len(in))
		for i, x := range in {
			out[i] = f.process(x)
		}
		return rms(out[2048:])
	}

	if g := run(FILTER_LOWPASS, 0.01, high); g > 0.05 {
		t.Errorf("lowpass at ~230Hz should reject 12kHz, rms %v", g)
	}
	if g := run(FILTER_LOWPASS, 0.01, low); g < 0.4 {
		t.Errorf("lowpass at ~230Hz should pass 100Hz, rms %v", g)
	}
	if g := run(FILTER_HIGHPASS, 0.2, low); g > 0.05 {
		t.Errorf("highpass at ~4kHz should reject 100Hz, rms %v", g)
	}
	if g := run(FILTER_HIGHPASS, 0.2, high); g < 0.4 {
		t.Errorf("highpass at ~4kHz should pass 12kHz, rms %v", g)
	}
}

func TestFilterLowpassUnityDCGain(t *testing.T) {
	f := newResonantFilter()
	f.configure(true, FILTER_LOWPASS, 0.1, 0.2)
	var y float32
	for i := 0; i < 20000; i++ {
		y = f.process(1)
	}
	if math.Abs(float64(y)-1) > 1e-3 {
		t.Errorf("expected DC gain 1, got %v", y)
	}
}

func TestFilterOutputClamped(t *testing.T) {
	f := newResonantFilter()
	f.configure(true, FILTER_BANDPASS, 0.02, 1)
	for i := 0; i < 44100; i++ {
		x := float32(5)
		if (i/40)%2 == 1 {
			x = -5
		}
		y := f.process(x)
		if y > FILTER_OUTPUT_LIMIT || y < -FILTER_OUTPUT_LIMIT || y != y {
			t.Fatalf("sample %d: output %v outside [-2,2]", i, y)
		}
	}
}

func TestFilterRecomputesEverySample(t *testing.T) {
	f := newResonantFilter()
	f.configure(true, FILTER_LOWPASS, 0.1, 0)
	f.process(0.5)
	before := f.a0

	f.cutoff = 0.6
	f.process(0.5)
	if f.a0 == before {
		t.Error("expected coefficients to follow cutoff without an explicit update")
	}
}

func TestDelayBypassIsExact(t *testing.T) {
	d := newFeedbackDelay()
	for _, x := range []float32{0, 1, -1, 3.25, -0.001} {
		if got := d.process(x); got != x {
			t.Errorf("bypass: expected %v, got %v", x, got)
		}
	}
	if d.buffer != nil {
		t.Error("expected disabled delay to leave its buffer unallocated")
	}
}

func TestDelaySampleClamp(t *testing.T) {
	d := newFeedbackDelay()
	d.delayTime = 0
	if n := d.delaySamples(); n != 1 {
		t.Errorf("expected minimum delay 1, got %d", n)
	}
	d.delayTime = 1
	if n := d.delaySamples(); n != DELAY_BUFFER_SIZE-1 {
		t.Errorf("expected maximum delay %d, got %d", DELAY_BUFFER_SIZE-1, n)
	}
}

func TestDelayEchoTiming(t *testing.T) {
	d := newFeedbackDelay()
	d.configure(true, 0.01, 0, 1)
	n := d.delaySamples()

	for i := 0; i < n*3; i++ {
		in := float32(0)
		if i == 0 {
			in = 1
		}
		out := d.process(in)
		want := float32(0)
		if i == n {
			want = 1
		}
		if out != want {
			t.Fatalf("sample %d: expected %v, got %v (delay %d)", i, want, out, n)
		}
		if d.writePos != (i+1)%DELAY_BUFFER_SIZE {
			t.Fatalf("write cursor %d after %d calls", d.writePos, i+1)
		}
	}
}

func TestDelayFeedbackStaysBounded(t *testing.T) {
	d := newFeedbackDelay()
	d.configure(true, 0.05, DELAY_MAX_FEEDBACK, 0.5)
	for i := 0; i < SAMPLE_RATE*5; i++ {
		out := d.process(1)
		if out > DELAY_OUTPUT_LIMIT || out < -DELAY_OUTPUT_LIMIT || out != out {
			t.Fatalf("sample %d: output %v out of bounds", i, out)
		}
	}
}
