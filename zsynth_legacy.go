// zsynth_legacy.go - Register-driven 4-channel chip-tune bank (2 pulse, triangle, noise)

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

// LegacyBank emulates a 2A03-style APU on top of shared Oscillators.
// Channels are created once and only change through register writes.
type LegacyBank struct {
	pulse    [LEGACY_PULSE_CHANNELS]*Oscillator
	triangle *Oscillator
	noise    *Oscillator

	pulsePeriod    [LEGACY_PULSE_CHANNELS]uint16 // Raw 11-bit periods
	trianglePeriod uint16
}

func NewLegacyBank() *LegacyBank {
	b := &LegacyBank{}
	b.Reset()
	return b
}

func pulsePeriodToHz(raw uint16) float32 {
	return NES_CPU_CLOCK / (16 * (float32(raw) + 1))
}

func trianglePeriodToHz(raw uint16) float32 {
	return NES_CPU_CLOCK / (32 * (float32(raw) + 1))
}

// WritePulseRegister handles writes to a pulse channel's four registers.
// Out-of-range channels and registers are ignored.
func (b *LegacyBank) WritePulseRegister(channel, reg int, value uint8) {
	if channel < 0 || channel >= LEGACY_PULSE_CHANNELS {
		return
	}
	osc := b.pulse[channel]

	switch reg {
	case LEGACY_REG_CTRL:
		osc.pulseWidth = legacyDutyTable[(value>>6)&3]
		osc.volume = float32(value&0x0F) / LEGACY_VOLUME_MAX
	case LEGACY_REG_SWEEP:
		// Sweep unit not emulated
	case LEGACY_REG_FREQ_LO:
		b.pulsePeriod[channel] = (b.pulsePeriod[channel] & 0x700) | uint16(value)
		osc.frequency = pulsePeriodToHz(b.pulsePeriod[channel])
	case LEGACY_REG_FREQ_HI:
		b.pulsePeriod[channel] = (uint16(value&7) << 8) | (b.pulsePeriod[channel] & 0xFF)
		osc.frequency = pulsePeriodToHz(b.pulsePeriod[channel])
		osc.enabled = true
		osc.resetPhase()
	}
}

// WriteTriangleRegister: reg0 bit 7 gates the channel, reg2/reg3 set the period.
func (b *LegacyBank) WriteTriangleRegister(reg int, value uint8) {
	osc := b.triangle
	switch reg {
	case LEGACY_REG_CTRL:
		osc.enabled = value&0x80 != 0
	case LEGACY_REG_FREQ_LO:
		b.trianglePeriod = (b.trianglePeriod & 0x700) | uint16(value)
		osc.frequency = trianglePeriodToHz(b.trianglePeriod)
	case LEGACY_REG_FREQ_HI:
		b.trianglePeriod = (uint16(value&7) << 8) | (b.trianglePeriod & 0xFF)
		osc.frequency = trianglePeriodToHz(b.trianglePeriod)
		osc.enabled = true
		osc.resetPhase()
	}
}

// WriteNoiseRegister: reg0 volume, reg2 period index, reg3 enables.
func (b *LegacyBank) WriteNoiseRegister(reg int, value uint8) {
	osc := b.noise
	switch reg {
	case LEGACY_REG_CTRL:
		osc.volume = float32(value&0x0F) / LEGACY_VOLUME_MAX * LEGACY_NOISE_GAIN
	case LEGACY_REG_FREQ_LO:
		osc.noiseRate = NES_CPU_CLOCK / float32(legacyNoisePeriods[value&0x0F])
	case LEGACY_REG_FREQ_HI:
		osc.enabled = true
	}
}

// PulseFrequency reports the current pulse channel pitch in Hz.
func (b *LegacyBank) PulseFrequency(channel int) float32 {
	if channel < 0 || channel >= LEGACY_PULSE_CHANNELS {
		return 0
	}
	return b.pulse[channel].frequency
}

func (b *LegacyBank) channels() [4]*Oscillator {
	return [4]*Oscillator{b.pulse[0], b.pulse[1], b.triangle, b.noise}
}

// Active reports whether any channel is sounding.
func (b *LegacyBank) Active() bool {
	for _, osc := range b.channels() {
		if osc.enabled {
			return true
		}
	}
	return false
}

// Silence disables all four channels without touching their registers.
func (b *LegacyBank) Silence() {
	for _, osc := range b.channels() {
		osc.enabled = false
	}
}

func (b *LegacyBank) GenerateSample() float32 {
	var sum float32
	for _, osc := range b.channels() {
		if osc.enabled {
			sum += osc.GenerateSample()
		}
	}
	return sum
}
