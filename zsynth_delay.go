// zsynth_delay.go - Feedback delay line with damped repeats

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

// FeedbackDelay is a one-second circular echo. The repeat path runs through a
// one-pole low-pass before the feedback gain so repeats darken as they decay.
type FeedbackDelay struct {
	enabled   bool
	delayTime float32 // 0..1 of DELAY_MAX_MS
	feedback  float32 // 0..DELAY_MAX_FEEDBACK
	mix       float32 // Dry/wet, 0..1

	buffer   []float32 // Allocated on first enabled use
	writePos int
	lpState  float32 // Repeat-path low-pass
}

func newFeedbackDelay() FeedbackDelay {
	return FeedbackDelay{
		delayTime: 0.25,
		feedback:  0.3,
		mix:       0.3,
	}
}

// delaySamples converts delayTime to a slot count in [1, DELAY_BUFFER_SIZE-1].
func (d *FeedbackDelay) delaySamples() int {
	n := int(d.delayTime * DELAY_MAX_MS * SAMPLE_RATE / 1000)
	if n < 1 {
		n = 1
	}
	if n > DELAY_BUFFER_SIZE-1 {
		n = DELAY_BUFFER_SIZE - 1
	}
	return n
}

func (d *FeedbackDelay) readPos() int {
	pos := d.writePos - d.delaySamples()
	if pos < 0 {
		pos += DELAY_BUFFER_SIZE
	}
	return pos
}

// process runs one sample through the delay. Disabled delays are a pass-through.
func (d *FeedbackDelay) process(input float32) float32 {
	if !d.enabled {
		return input
	}
	if d.buffer == nil {
		d.buffer = make([]float32, DELAY_BUFFER_SIZE)
	}

	delayed := d.buffer[d.readPos()]

	// Filter, then scale, then write back
	d.lpState = d.lpState*DELAY_DAMPING + delayed*(1-DELAY_DAMPING)
	fb := d.lpState * d.feedback
	d.buffer[d.writePos] = input + fb
	d.writePos++
	if d.writePos >= DELAY_BUFFER_SIZE {
		d.writePos = 0
	}

	out := input*(1-d.mix) + delayed*d.mix
	if out > DELAY_OUTPUT_LIMIT {
		out = DELAY_OUTPUT_LIMIT
	} else if out < -DELAY_OUTPUT_LIMIT {
		out = -DELAY_OUTPUT_LIMIT
	}
	return out
}

func (d *FeedbackDelay) configure(enabled bool, delayTime, feedback, mix float32) {
	d.enabled = enabled
	d.delayTime = delayTime
	d.feedback = feedback
	d.mix = mix
}

// clear zeroes the line without releasing it.
func (d *FeedbackDelay) clear() {
	for i := range d.buffer {
		d.buffer[i] = 0
	}
	d.writePos = 0
	d.lpState = 0
}
