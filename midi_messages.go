// midi_messages.go - MIDI channel message decoding and engine routing

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

// MIDI status nibbles and controller numbers
const (
	MIDI_NOTE_OFF       = 0x80
	MIDI_NOTE_ON        = 0x90
	MIDI_CONTROL_CHANGE = 0xB0
	MIDI_PITCH_BEND     = 0xE0

	MIDI_CC_VOLUME        = 7
	MIDI_CC_RESONANCE     = 71
	MIDI_CC_CUTOFF        = 74
	MIDI_CC_DELAY_MIX     = 91
	MIDI_CC_ALL_NOTES_OFF = 123

	MIDI_PITCH_BEND_CENTER = 8192 // 14-bit wheel at rest
)

type midiKind int

const (
	midiIgnored midiKind = iota
	midiNoteOn
	midiNoteOff
	midiControl
	midiPitchBend
)

type midiMessage struct {
	kind    midiKind
	channel int
	data1   int // Note, controller or bend LSB
	data2   int // Velocity, value or bend MSB
}

// decodeMIDI classifies a short message. Note-on with velocity 0 is a note-off.
func decodeMIDI(status, data1, data2 int64) midiMessage {
	msg := midiMessage{
		channel: int(status & 0x0F),
		data1:   int(data1 & 0x7F),
		data2:   int(data2 & 0x7F),
	}
	switch status & 0xF0 {
	case MIDI_NOTE_ON:
		msg.kind = midiNoteOn
		if msg.data2 == 0 {
			msg.kind = midiNoteOff
		}
	case MIDI_NOTE_OFF:
		msg.kind = midiNoteOff
	case MIDI_CONTROL_CHANGE:
		msg.kind = midiControl
	case MIDI_PITCH_BEND:
		msg.kind = midiPitchBend
	}
	return msg
}

// applyMIDI routes a decoded message to the polyphonic bank and global effects.
func applyMIDI(e *ZSynthEngine, msg midiMessage) {
	switch msg.kind {
	case midiNoteOn:
		e.SynthNoteOn(msg.data1)
	case midiNoteOff:
		e.SynthNoteOff(msg.data1)
	case midiPitchBend:
		wheel := msg.data1 | msg.data2<<7
		e.SetSynthPitchBend(float32(wheel-MIDI_PITCH_BEND_CENTER) / MIDI_PITCH_BEND_CENTER * MAX_PITCH_BEND)
	case midiControl:
		v := float32(msg.data2) / 127
		switch msg.data1 {
		case MIDI_CC_CUTOFF:
			e.SetFilterEnabled(true)
			e.SetFilterCutoff(v)
		case MIDI_CC_RESONANCE:
			e.SetFilterResonance(v)
		case MIDI_CC_DELAY_MIX:
			e.SetDelayEnabled(v > 0)
			e.SetDelayMix(v)
		case MIDI_CC_VOLUME:
			e.SetPolyVolume(v)
		case MIDI_CC_ALL_NOTES_OFF:
			e.SetSynthEnabled(false)
		}
	}
}
