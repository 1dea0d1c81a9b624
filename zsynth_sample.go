// zsynth_sample.go - Fixed-rate 8-bit PCM sample player

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

// SamplePlayer streams an unsigned 8-bit clip recorded at rate Hz,
// resampled to SAMPLE_RATE by a fractional read position.
type SamplePlayer struct {
	data     []uint8 // Immutable once loaded
	rate     int
	position float64
	active   bool
	volume   float32
	pitch    float32 // Playback speed factor
}

func NewSamplePlayer() *SamplePlayer {
	return &SamplePlayer{
		data:   builtinLaughClip,
		rate:   SAMPLE_SOURCE_RATE,
		volume: 1,
		pitch:  1,
	}
}

// Load replaces the clip. Empty data or a non-positive rate is ignored.
func (sp *SamplePlayer) Load(data []uint8, rate int) {
	if len(data) == 0 || rate <= 0 {
		return
	}
	if len(data) > SAMPLE_MAX_LENGTH {
		data = data[:SAMPLE_MAX_LENGTH]
	}
	sp.data = append([]uint8(nil), data...)
	sp.rate = rate
	sp.active = false
	sp.position = 0
}

// Play restarts the clip from the beginning.
func (sp *SamplePlayer) Play() {
	if len(sp.data) == 0 {
		return
	}
	sp.position = 0
	sp.active = true
}

func (sp *SamplePlayer) Stop() {
	sp.active = false
	sp.position = 0
}

func (sp *SamplePlayer) Active() bool {
	return sp.active
}

func (sp *SamplePlayer) increment() float64 {
	return float64(sp.rate) / SAMPLE_RATE * float64(sp.pitch)
}

// GenerateSample reads the clip at the current position and advances it.
func (sp *SamplePlayer) GenerateSample() float32 {
	if !sp.active {
		return 0
	}
	idx := int(sp.position)
	if idx >= len(sp.data) {
		sp.active = false
		return 0
	}
	s := (float32(sp.data[idx]) - 128) / 128

	sp.position += sp.increment()
	if sp.position >= float64(len(sp.data)) {
		sp.active = false
	}
	return s * sp.volume
}

// pcm8 quantizes a [-1, 1] sample to unsigned 8-bit.
func pcm8(s float64) uint8 {
	v := math.Round(s*127 + 128)
	if v < 0 {
		v = 0
	} else if v > 255 {
		v = 255
	}
	return uint8(v)
}

// builtinLaughClip is a short "ha-ha-ha" synthesized once at startup.
var builtinLaughClip = synthesizeLaughClip()

func synthesizeLaughClip() []uint8 {
	const (
		syllables = 3
		rate      = SAMPLE_SOURCE_RATE
	)
	toneTime, gapTime := 0.14, 0.09
	toneLen := int(toneTime * rate)
	gapLen := int(gapTime * rate)
	clip := make([]uint8, 0, syllables*(toneLen+gapLen))

	phase := 0.0
	for s := 0; s < syllables; s++ {
		f0 := 240.0 - 20*float64(s)
		for i := 0; i < toneLen; i++ {
			t := float64(i) / float64(toneLen)
			freq := f0 * (1 - 0.2*t)
			phase += freq / rate
			phase -= math.Floor(phase)

			// Glottal-ish buzz with a formant around 700 Hz
			buzz := 2*phase - 1
			formant := math.Sin(2 * math.Pi * 700 * float64(i) / rate)
			env := math.Sin(math.Pi * t)
			clip = append(clip, pcm8(0.8*env*(0.6*buzz+0.4*buzz*formant)))
		}
		for i := 0; i < gapLen; i++ {
			clip = append(clip, pcm8(0))
		}
	}
	return clip
}
