// zsynth_voices.go - Fixed 3-voice bank modelled on a SID-style synthesizer

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

const VOICE_COUNT = 3

// VoiceBank holds three independently played voices that share one filter
// setup. Each voice can be routed through or around the filter via a mask.
type VoiceBank struct {
	voices  [VOICE_COUNT]*Oscillator
	active  bool    // Any voice enabled
	volume  float32 // Bank level 0..1
	filtMsk uint8   // Bit n routes voice n+1 through the filter
}

func NewVoiceBank() *VoiceBank {
	b := &VoiceBank{}
	b.Reset()
	return b
}

// PlayNote tunes voice (1-3) to note with the given waveform and starts it.
func (b *VoiceBank) PlayNote(voice, note int, waveform Waveform) {
	osc := b.voice(voice)
	if osc == nil {
		return
	}
	osc.setNote(float32(note))
	osc.waveform = waveform
	osc.enabled = true
	b.active = true
}

// Stop silences voice (1-3) and recomputes the bank's active flag.
func (b *VoiceBank) Stop(voice int) {
	if osc := b.voice(voice); osc != nil {
		osc.enabled = false
	}
	b.refreshActive()
}

func (b *VoiceBank) StopAll() {
	for _, osc := range b.voices {
		osc.enabled = false
	}
	b.active = false
}

func (b *VoiceBank) refreshActive() {
	b.active = false
	for _, osc := range b.voices {
		if osc.enabled {
			b.active = true
			return
		}
	}
}

func (b *VoiceBank) voice(n int) *Oscillator {
	if n < 1 || n > VOICE_COUNT {
		return nil
	}
	return b.voices[n-1]
}

func (b *VoiceBank) Active() bool {
	return b.active
}

// SetFilter broadcasts one filter setup to all voices. Resonance on this path
// accepts 0..10, wider than the global filter's 0..1.
func (b *VoiceBank) SetFilter(mask uint8, filterType FilterType, cutoff, resonance float32) {
	cutoff = clampF32(cutoff, 0, 1)
	resonance = clampF32(resonance, 0, VOICE_FILTER_MAX_RESONANCE)
	b.filtMsk = mask & 0x07
	for i, osc := range b.voices {
		osc.filter.configure(b.filtMsk&(1<<i) != 0, filterType, cutoff, resonance)
	}
}

func (b *VoiceBank) FilterMask() uint8 {
	return b.filtMsk
}

func (b *VoiceBank) GenerateSample() float32 {
	if !b.active {
		return 0
	}
	var sum float32
	for _, osc := range b.voices {
		if osc.enabled {
			sum += osc.GenerateSample()
		}
	}
	return sum * b.volume
}
