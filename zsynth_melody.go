// zsynth_melody.go - 16-step melody sequencer and sweep sound-effect envelope

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

// Step pattern for the sound-test melody. 0 is a rest.
var melodyPattern = [MELODY_STEPS]int{
	60, 64, 67, 72, 67, 64, 60, 0,
	62, 65, 69, 74, 69, 65, 62, 0,
}

// stepEpsilon absorbs float drift when summing ZS_STEP_TIME.
const stepEpsilon = 1e-9

// MelodySequencer walks melodyPattern at tempo steps per second.
type MelodySequencer struct {
	enabled bool
	step    int
	elapsed float64
	tempo   float32
}

func newMelodySequencer() MelodySequencer {
	return MelodySequencer{tempo: DEFAULT_MELODY_TEMPO}
}

// start rewinds to step 0 and plays it on osc.
func (m *MelodySequencer) start(osc *Oscillator) {
	m.enabled = true
	m.step = 0
	m.elapsed = 0
	m.apply(osc)
}

func (m *MelodySequencer) stop() {
	m.enabled = false
	m.step = 0
	m.elapsed = 0
}

// apply programs osc for the current step.
func (m *MelodySequencer) apply(osc *Oscillator) {
	note := melodyPattern[m.step]
	if note == 0 {
		osc.enabled = false
		return
	}
	osc.setNote(float32(note))
	osc.enabled = true
}

// advance accumulates dt and moves to the next step once 1/tempo has passed.
// When drive is false the step still advances but osc is left alone.
func (m *MelodySequencer) advance(dt float64, osc *Oscillator, drive bool) {
	if !m.enabled {
		return
	}
	m.elapsed += dt
	if m.elapsed+stepEpsilon < 1/float64(m.tempo) {
		return
	}
	m.elapsed = 0
	m.step = (m.step + 1) % MELODY_STEPS
	if drive {
		m.apply(osc)
	}
}

// SoundEffect sweeps the test oscillator from startNote to endNote.
type SoundEffect struct {
	active    bool
	elapsed   float64
	duration  float64
	startNote float32
	endNote   float32
	waveform  Waveform
}

// start arms the sweep. An effect already running is never interrupted.
func (fx *SoundEffect) start(startNote, endNote float32, waveform Waveform, duration float32, osc *Oscillator) bool {
	if fx.active {
		return false
	}
	fx.active = true
	fx.elapsed = 0
	fx.duration = float64(duration)
	fx.startNote = startNote
	fx.endNote = endNote
	fx.waveform = waveform

	osc.waveform = waveform
	osc.setNote(startNote)
	osc.enabled = true
	return true
}

func (fx *SoundEffect) progress() float64 {
	if !(fx.duration > 0) {
		return 1
	}
	p := fx.elapsed / fx.duration
	if p > 1 {
		p = 1
	}
	return p
}

// advance moves the sweep forward and reports whether it just finished.
// On completion osc holds the end note's frequency.
func (fx *SoundEffect) advance(dt float64, osc *Oscillator) bool {
	if !fx.active {
		return false
	}
	fx.elapsed += dt
	p := fx.progress()
	osc.setNote(fx.startNote + (fx.endNote-fx.startNote)*float32(p))
	if p >= 1 {
		fx.active = false
		return true
	}
	return false
}

func (fx *SoundEffect) cancel() {
	fx.active = false
	fx.elapsed = 0
}
