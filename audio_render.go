// audio_render.go - Offline WAV rendering through beep

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

import (
	"fmt"
	"io"
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

const RENDER_ANALYSIS_SAMPLES = 8192

// RenderReport summarizes an offline render.
type RenderReport struct {
	Samples    int
	Peak       float64
	Clipped    int     // Samples beyond [-1, 1] before WAV quantization
	DominantHz float64 // Strongest partial in the final analysis window
}

func (r RenderReport) String() string {
	return fmt.Sprintf("%d samples, peak %.3f, %d clipped, dominant %.1f Hz", r.Samples, r.Peak, r.Clipped, r.DominantHz)
}

// consoleStreamer pulls mono samples from a Console as a beep.Streamer,
// stepping one frame every SAMPLES_PER_FRAME samples.
type consoleStreamer struct {
	console    *Console
	remaining  int
	sinceFrame int
	buf        []float32
	report     RenderReport
	tail       []float32 // Ring of the last RENDER_ANALYSIS_SAMPLES samples
	tailPos    int
	hooks      []func(frame uint64) error
	err        error
}

func newConsoleStreamer(c *Console, total int, hooks ...func(uint64) error) *consoleStreamer {
	return &consoleStreamer{
		console:   c,
		remaining: total,
		tail:      make([]float32, 0, RENDER_ANALYSIS_SAMPLES),
		hooks:     hooks,
	}
}

func (s *consoleStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.remaining <= 0 || s.err != nil {
		return 0, false
	}
	if len(samples) > s.remaining {
		samples = samples[:s.remaining]
	}

	for n < len(samples) {
		if s.sinceFrame == SAMPLES_PER_FRAME {
			frame := s.console.StepFrame()
			s.sinceFrame = 0
			for _, hook := range s.hooks {
				if err := hook(frame); err != nil {
					s.err = err
					s.remaining -= n
					return n, n > 0
				}
			}
		}
		chunk := min(len(samples)-n, SAMPLES_PER_FRAME-s.sinceFrame)
		if cap(s.buf) < chunk {
			s.buf = make([]float32, chunk)
		}
		buf := s.buf[:chunk]
		s.console.ReadSamples(buf)

		for i, v := range buf {
			samples[n+i][0] = float64(v)
			samples[n+i][1] = float64(v)
			s.observe(v)
		}
		n += chunk
		s.sinceFrame += chunk
	}
	s.remaining -= n
	return n, true
}

func (s *consoleStreamer) Err() error {
	return s.err
}

func (s *consoleStreamer) observe(v float32) {
	s.report.Samples++
	a := math.Abs(float64(v))
	if a > s.report.Peak {
		s.report.Peak = a
	}
	if a > 1 {
		s.report.Clipped++
	}
	if len(s.tail) < RENDER_ANALYSIS_SAMPLES {
		s.tail = append(s.tail, v)
		return
	}
	s.tail[s.tailPos] = v
	s.tailPos = (s.tailPos + 1) % RENDER_ANALYSIS_SAMPLES
}

// analysisWindow returns the tail ring oldest-first.
func (s *consoleStreamer) analysisWindow() []float32 {
	out := make([]float32, 0, len(s.tail))
	out = append(out, s.tail[s.tailPos:]...)
	return append(out, s.tail[:s.tailPos]...)
}

// RenderWAV renders seconds of console output as 16-bit mono WAV. Hooks
// run after each frame step, as with RunFrameClock.
func RenderWAV(w io.WriteSeeker, c *Console, seconds float64, hooks ...func(uint64) error) (RenderReport, error) {
	if seconds <= 0 {
		return RenderReport{}, fmt.Errorf("render: duration must be positive, got %v", seconds)
	}
	total := int(seconds * SAMPLE_RATE)
	s := newConsoleStreamer(c, total, hooks...)

	format := beep.Format{
		SampleRate:  SAMPLE_RATE,
		NumChannels: 1,
		Precision:   2,
	}
	if err := wav.Encode(w, s, format); err != nil {
		return s.report, fmt.Errorf("render: %w", err)
	}
	if s.err != nil {
		return s.report, fmt.Errorf("render: %w", s.err)
	}

	s.report.DominantHz = DominantFrequency(s.analysisWindow(), SAMPLE_RATE)
	return s.report, nil
}
