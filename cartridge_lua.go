// cartridge_lua.go - Lua cartridge scripting bound to the ZSynth control surface

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

	lua "github.com/yuin/gopher-lua"
)

// Cartridge runs a Lua script against a Console. Scripts drive the engine
// through global functions and may define on_frame(frame).
type Cartridge struct {
	L       *lua.LState
	console *Console
}

func NewCartridge(c *Console) *Cartridge {
	cart := &Cartridge{L: lua.NewState(), console: c}
	cart.register()
	return cart
}

func (cart *Cartridge) LoadFile(path string) error {
	if err := cart.L.DoFile(path); err != nil {
		return fmt.Errorf("cartridge %s: %w", path, err)
	}
	return nil
}

func (cart *Cartridge) LoadString(src string) error {
	if err := cart.L.DoString(src); err != nil {
		return fmt.Errorf("cartridge: %w", err)
	}
	return nil
}

// Frame calls on_frame(frame) if the script defines it.
func (cart *Cartridge) Frame(frame uint64) error {
	fn := cart.L.GetGlobal("on_frame")
	if fn.Type() != lua.LTFunction {
		return nil
	}
	err := cart.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, lua.LNumber(frame))
	if err != nil {
		return fmt.Errorf("cartridge on_frame: %w", err)
	}
	return nil
}

func (cart *Cartridge) Close() {
	cart.L.Close()
}

// do wraps fn as a Lua function with exclusive engine access.
func (cart *Cartridge) do(fn func(L *lua.LState, e *ZSynthEngine) int) lua.LGFunction {
	return func(L *lua.LState) int {
		var n int
		cart.console.Do(func(e *ZSynthEngine) {
			n = fn(L, e)
		})
		return n
	}
}

func checkF32(L *lua.LState, n int) float32 {
	return float32(L.CheckNumber(n))
}

func checkU8(L *lua.LState, n int) uint8 {
	return uint8(L.CheckInt(n) & 0xFF)
}

func (cart *Cartridge) register() {
	L := cart.L

	consts := map[string]int{
		"WAVE_PULSE":      int(WAVE_PULSE),
		"WAVE_SAWTOOTH":   int(WAVE_SAWTOOTH),
		"WAVE_TRIANGLE":   int(WAVE_TRIANGLE),
		"WAVE_SINE":       int(WAVE_SINE),
		"WAVE_NOISE":      int(WAVE_NOISE),
		"FILTER_LOWPASS":  int(FILTER_LOWPASS),
		"FILTER_HIGHPASS": int(FILTER_HIGHPASS),
		"FILTER_BANDPASS": int(FILTER_BANDPASS),
		"FILTER_NOTCH":    int(FILTER_NOTCH),
		"FX_LAUGH":        int(FX_LAUGH),
		"FX_GASP":         int(FX_GASP),
		"FX_GRUNT":        int(FX_GRUNT),
	}
	for name, v := range consts {
		L.SetGlobal(name, lua.LNumber(v))
	}

	funcs := map[string]func(L *lua.LState, e *ZSynthEngine) int{
		"note_on": func(L *lua.LState, e *ZSynthEngine) int {
			e.SynthNoteOn(L.CheckInt(1))
			return 0
		},
		"note_off": func(L *lua.LState, e *ZSynthEngine) int {
			e.SynthNoteOff(L.CheckInt(1))
			return 0
		},
		"synth_enabled": func(L *lua.LState, e *ZSynthEngine) int {
			e.SetSynthEnabled(L.CheckBool(1))
			return 0
		},
		"active_notes": func(L *lua.LState, e *ZSynthEngine) int {
			L.Push(lua.LNumber(e.GetSynthActiveNoteCount()))
			return 1
		},
		"voice_play": func(L *lua.LState, e *ZSynthEngine) int {
			e.VoicePlayNote(L.CheckInt(1), L.CheckInt(2), Waveform(checkU8(L, 3)))
			return 0
		},
		"voice_stop": func(L *lua.LState, e *ZSynthEngine) int {
			e.VoiceStop(L.CheckInt(1))
			return 0
		},
		"stop_all_voices": func(L *lua.LState, e *ZSynthEngine) int {
			e.StopAllVoices()
			return 0
		},
		"sound_effect": func(L *lua.LState, e *ZSynthEngine) int {
			e.PlaySoundEffect(L.CheckInt(1), L.CheckInt(2), Waveform(checkU8(L, 3)), checkF32(L, 4))
			return 0
		},
		"voice_effect": func(L *lua.LState, e *ZSynthEngine) int {
			e.PlayVoiceEffect(VoiceEffect(checkU8(L, 1)))
			return 0
		},
		"play_sample": func(L *lua.LState, e *ZSynthEngine) int {
			e.PlaySample()
			return 0
		},
		"melody": func(L *lua.LState, e *ZSynthEngine) int {
			e.SetMelodyEnabled(L.CheckBool(1))
			return 0
		},
		"tempo": func(L *lua.LState, e *ZSynthEngine) int {
			e.SetMelodyTempo(checkF32(L, 1))
			return 0
		},
		"sound_test": func(L *lua.LState, e *ZSynthEngine) int {
			if L.CheckBool(1) {
				e.EnterSoundTestMode()
			} else {
				e.ExitSoundTestMode()
			}
			return 0
		},
		"waveform": func(L *lua.LState, e *ZSynthEngine) int {
			e.ChangeWaveform(Waveform(checkU8(L, 1)))
			return 0
		},
		"note": func(L *lua.LState, e *ZSynthEngine) int {
			e.ChangeNote(L.CheckInt(1))
			return 0
		},
		"pulse_width": func(L *lua.LState, e *ZSynthEngine) int {
			e.SetPulseWidth(checkF32(L, 1))
			return 0
		},
		"detune": func(L *lua.LState, e *ZSynthEngine) int {
			e.SetDetune(checkF32(L, 1))
			return 0
		},
		"master_volume": func(L *lua.LState, e *ZSynthEngine) int {
			e.SetMasterVolume(checkF32(L, 1))
			return 0
		},
		"poly_volume": func(L *lua.LState, e *ZSynthEngine) int {
			e.SetPolyVolume(checkF32(L, 1))
			return 0
		},
		"voice_volume": func(L *lua.LState, e *ZSynthEngine) int {
			e.SetVoiceVolume(checkF32(L, 1))
			return 0
		},
		// Arguments are checked before any setter runs so a bad call
		// leaves the patch untouched.
		"filter": func(L *lua.LState, e *ZSynthEngine) int {
			enabled := L.CheckBool(1)
			kind := FilterType(checkU8(L, 2))
			cutoff := checkF32(L, 3)
			resonance := checkF32(L, 4)
			e.SetFilterType(kind)
			e.SetFilterCutoff(cutoff)
			e.SetFilterResonance(resonance)
			e.SetFilterEnabled(enabled)
			return 0
		},
		"delay": func(L *lua.LState, e *ZSynthEngine) int {
			enabled := L.CheckBool(1)
			delayTime := checkF32(L, 2)
			feedback := checkF32(L, 3)
			mix := checkF32(L, 4)
			e.SetDelayTime(delayTime)
			e.SetDelayFeedback(feedback)
			e.SetDelayMix(mix)
			e.SetDelayEnabled(enabled)
			return 0
		},
		"pitch_bend": func(L *lua.LState, e *ZSynthEngine) int {
			e.SetSynthPitchBend(checkF32(L, 1))
			return 0
		},
		"pulse_reg": func(L *lua.LState, e *ZSynthEngine) int {
			e.WritePulseChannelRegister(L.CheckInt(1), L.CheckInt(2), checkU8(L, 3))
			return 0
		},
		"triangle_reg": func(L *lua.LState, e *ZSynthEngine) int {
			e.WriteTriangleRegister(L.CheckInt(1), checkU8(L, 2))
			return 0
		},
		"noise_reg": func(L *lua.LState, e *ZSynthEngine) int {
			e.WriteNoiseRegister(L.CheckInt(1), checkU8(L, 2))
			return 0
		},
	}
	for name, fn := range funcs {
		L.SetGlobal(name, L.NewFunction(cart.do(fn)))
	}
}
