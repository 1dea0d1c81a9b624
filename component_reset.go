// component_reset.go - Reset() methods for ZSynth components (hard reset support)

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

// LegacyBank.Reset restores power-on register state.
func (b *LegacyBank) Reset() {
	for i := range b.pulse {
		osc := NewOscillator(WAVE_PULSE, 440)
		osc.pulseWidth = legacyDutyTable[0]
		osc.volume = 0
		b.pulse[i] = osc
		b.pulsePeriod[i] = 0
	}
	b.triangle = NewOscillator(WAVE_TRIANGLE, 220)
	b.triangle.volume = LEGACY_TRIANGLE_GAIN
	b.trianglePeriod = 0

	b.noise = NewOscillator(WAVE_NOISE, 0)
	b.noise.volume = 0
	b.noise.noiseRate = NES_CPU_CLOCK / float32(legacyNoisePeriods[0])
}

// VoiceBank.Reset stops all voices and clears the shared filter.
func (b *VoiceBank) Reset() {
	for i := range b.voices {
		b.voices[i] = NewOscillator(WAVE_PULSE, midiToFrequency(DEFAULT_TEST_NOTE))
	}
	b.active = false
	b.volume = DEFAULT_VOICE_VOLUME
	b.filtMsk = 0
}

// PolyBank.Reset drops held notes and restores the default patch.
func (b *PolyBank) Reset() {
	clear(b.voices)
	b.order = b.order[:0]
	b.patch = defaultVoicePatch()
	b.volume = DEFAULT_POLY_VOLUME
	b.bend = 0
}

// VoiceEffectPlayer.Reset stops playback and rebuilds the oscillator.
func (v *VoiceEffectPlayer) Reset() {
	v.Stop()
	v.osc = NewOscillator(WAVE_PULSE, 0)
	v.kind = FX_LAUGH
}

// SamplePlayer.Reset reloads the built-in clip at unity pitch and volume.
func (sp *SamplePlayer) Reset() {
	sp.data = builtinLaughClip
	sp.rate = SAMPLE_SOURCE_RATE
	sp.position = 0
	sp.active = false
	sp.volume = 1
	sp.pitch = 1
}

// ZSynthEngine.Reset restores every bank and sequencer to constructor defaults.
func (e *ZSynthEngine) Reset() {
	if e.legacy == nil {
		e.legacy = NewLegacyBank()
		e.poly = NewPolyBank()
		e.voices = NewVoiceBank()
		e.voiceFX = NewVoiceEffectPlayer()
		e.sample = NewSamplePlayer()
	} else {
		e.legacy.Reset()
		e.poly.Reset()
		e.voices.Reset()
		e.voiceFX.Reset()
		e.sample.Reset()
	}

	e.testNote = DEFAULT_TEST_NOTE
	e.testWave = WAVE_PULSE
	e.test = NewOscillator(e.testWave, midiToFrequency(DEFAULT_TEST_NOTE))

	e.melody = newMelodySequencer()
	e.sfx = SoundEffect{}
	e.global = defaultVoicePatch()
	e.masterVolume = DEFAULT_MASTER_VOLUME
	e.soundTest = false
	e.frameCount = 0
}
