// zsynth_legacy_test.go - Legacy 4-channel register tests

package main

import (
	"math"
	"testing"
)

func TestPulseRegisterWrites(t *testing.T) {
	b := NewLegacyBank()
	b.WritePulseRegister(0, LEGACY_REG_CTRL, 0xBF)
	if b.pulse[0].pulseWidth != 0.5 || b.pulse[0].volume != 1 {
		t.Errorf("ctrl: expected duty 0.5 volume 1, got %v %v", b.pulse[0].pulseWidth, b.pulse[0].volume)
	}
	if b.pulse[0].enabled {
		t.Error("channel should stay disabled until the high byte is written")
	}

	b.WritePulseRegister(0, LEGACY_REG_FREQ_LO, 0xFD)
	b.pulse[0].phase = 0.4
	b.WritePulseRegister(0, LEGACY_REG_FREQ_HI, 0x00)
	want := 1789773.0 / (16 * 254.0)
	if got := b.PulseFrequency(0); math.Abs(float64(got)-want) > 0.01 {
		t.Errorf("expected %.2f Hz, got %.2f", want, got)
	}
	if !b.pulse[0].enabled || b.pulse[0].phase != 0 {
		t.Error("high byte write should enable and reset phase")
	}
}

func TestPulsePeriodBytesCombine(t *testing.T) {
	b := NewLegacyBank()
	b.WritePulseRegister(1, LEGACY_REG_FREQ_HI, 0x07)
	b.WritePulseRegister(1, LEGACY_REG_FREQ_LO, 0xFF)
	if b.pulsePeriod[1] != 0x7FF {
		t.Fatalf("expected period 0x7FF, got 0x%03X", b.pulsePeriod[1])
	}
	b.WritePulseRegister(1, LEGACY_REG_FREQ_HI, 0x01)
	if b.pulsePeriod[1] != 0x1FF {
		t.Errorf("expected period 0x1FF, got 0x%03X", b.pulsePeriod[1])
	}
}

func TestPulseDutyTable(t *testing.T) {
	b := NewLegacyBank()
	for i, want := range legacyDutyTable {
		b.WritePulseRegister(0, LEGACY_REG_CTRL, uint8(i<<6))
		if got := b.pulse[0].pulseWidth; got != want {
			t.Errorf("duty %d: expected %v, got %v", i, want, got)
		}
	}
}

func TestPulseIgnoresBadWrites(t *testing.T) {
	b := NewLegacyBank()
	before := *b.pulse[0]
	b.WritePulseRegister(0, LEGACY_REG_SWEEP, 0xFF)
	b.WritePulseRegister(0, 7, 0xFF)
	b.WritePulseRegister(2, LEGACY_REG_FREQ_HI, 0x03)
	b.WritePulseRegister(-1, LEGACY_REG_CTRL, 0xFF)
	after := *b.pulse[0]
	if before.frequency != after.frequency || before.volume != after.volume || after.enabled {
		t.Error("ignored writes changed channel 0")
	}
	if b.Active() {
		t.Error("no channel should be active")
	}
}

func TestTriangleRegisters(t *testing.T) {
	b := NewLegacyBank()
	b.WriteTriangleRegister(LEGACY_REG_FREQ_LO, 0xFD)
	b.WriteTriangleRegister(LEGACY_REG_FREQ_HI, 0x00)
	want := 1789773.0 / (32 * 254.0)
	if got := b.triangle.frequency; math.Abs(float64(got)-want) > 0.01 {
		t.Errorf("expected %.2f Hz, got %.2f", want, got)
	}
	if !b.triangle.enabled {
		t.Fatal("expected triangle enabled")
	}
	for i := 0; i < 1000; i++ {
		s := b.GenerateSample()
		if s > LEGACY_TRIANGLE_GAIN || s < -LEGACY_TRIANGLE_GAIN {
			t.Fatalf("triangle sample %v exceeds gain", s)
		}
	}
	b.WriteTriangleRegister(LEGACY_REG_CTRL, 0x00)
	if b.triangle.enabled {
		t.Error("ctrl without bit 7 should mute the triangle")
	}
}

func TestNoiseRegisters(t *testing.T) {
	b := NewLegacyBank()
	b.WriteNoiseRegister(LEGACY_REG_CTRL, 0x0F)
	b.WriteNoiseRegister(LEGACY_REG_FREQ_LO, 0x03)
	b.WriteNoiseRegister(LEGACY_REG_FREQ_HI, 0x00)

	if want := float32(NES_CPU_CLOCK) / 32; b.noise.noiseRate != want {
		t.Errorf("expected noise clock %v, got %v", want, b.noise.noiseRate)
	}
	highs, lows := 0, 0
	for i := 0; i < 4096; i++ {
		switch s := b.GenerateSample(); s {
		case LEGACY_NOISE_GAIN:
			highs++
		case -LEGACY_NOISE_GAIN:
			lows++
		default:
			t.Fatalf("unexpected noise level %v", s)
		}
	}
	if highs == 0 || lows == 0 {
		t.Errorf("expected both noise levels, got %d/%d", highs, lows)
	}
}

func TestLegacySilenceKeepsRegisters(t *testing.T) {
	b := NewLegacyBank()
	b.WritePulseRegister(0, LEGACY_REG_CTRL, 0x8F)
	b.WritePulseRegister(0, LEGACY_REG_FREQ_HI, 0x02)
	freq := b.PulseFrequency(0)
	b.Silence()
	if b.Active() {
		t.Error("expected no active channels")
	}
	if b.PulseFrequency(0) != freq {
		t.Error("silence should not change frequency")
	}
}
