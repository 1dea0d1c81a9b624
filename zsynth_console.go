// zsynth_console.go - Thread-safe host wrapper around the ZSynth engine

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
	"context"
	"sync"
	"time"
)

const SAMPLES_PER_FRAME = SAMPLE_RATE / ZS_FPS

// Console serializes control calls, frame steps and sample pulls so the
// engine can be driven from the audio callback, the frame clock and input
// handlers at once.
type Console struct {
	mutex   sync.Mutex
	engine  *ZSynthEngine
	running bool
	frame   uint64
}

func NewConsole() *Console {
	return &Console{engine: NewZSynthEngine(), running: true}
}

// Do runs fn with exclusive access to the engine.
func (c *Console) Do(fn func(e *ZSynthEngine)) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	fn(c.engine)
}

// StepFrame advances sequencers by one video frame, publishes status and
// returns the number of frames stepped so far.
func (c *Console) StepFrame() uint64 {
	c.mutex.Lock()
	if c.running {
		for i := 0; i < ZS_STEPS_PER_FRAME; i++ {
			c.engine.Step()
		}
		c.frame++
	}
	frame := c.frame
	status := c.engine.Status()
	status.Running = c.running
	c.mutex.Unlock()

	runtimeStatus.setStatus(status)
	return frame
}

// ReadSample returns the next output sample, or silence while stopped.
func (c *Console) ReadSample() float32 {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if !c.running {
		return 0
	}
	return c.engine.GenerateSample()
}

// ReadSamples fills buf under a single lock and feeds the scope.
func (c *Console) ReadSamples(buf []float32) {
	c.mutex.Lock()
	if c.running {
		for i := range buf {
			buf[i] = c.engine.GenerateSample()
		}
	} else {
		clear(buf)
	}
	c.mutex.Unlock()

	if len(buf) > SCOPE_SAMPLES {
		runtimeStatus.pushScope(buf[len(buf)-SCOPE_SAMPLES:])
	} else {
		runtimeStatus.pushScope(buf)
	}
}

func (c *Console) Start() {
	c.mutex.Lock()
	c.running = true
	c.mutex.Unlock()
}

func (c *Console) Stop() {
	c.mutex.Lock()
	c.running = false
	c.mutex.Unlock()
}

func (c *Console) IsRunning() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.running
}

// Reset restores the engine defaults. The run state is kept.
func (c *Console) Reset() {
	c.mutex.Lock()
	c.engine.Reset()
	c.frame = 0
	c.mutex.Unlock()
}

func (c *Console) Status() ZSynthStatus {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	s := c.engine.Status()
	s.Running = c.running
	return s
}

// RunFrameClock steps the console at fps until ctx is cancelled. Hooks run
// after each frame, outside the console lock.
func RunFrameClock(ctx context.Context, c *Console, fps int, hooks ...func(frame uint64) error) error {
	if fps <= 0 {
		fps = ZS_FPS
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			frame := c.StepFrame()
			for _, hook := range hooks {
				if err := hook(frame); err != nil {
					return err
				}
			}
		}
	}
}
