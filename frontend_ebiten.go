//go:build !headless

// frontend_ebiten.go - Ebiten sound-test window for ZSynth

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
	"errors"
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

const (
	GUI_WIDTH       = 640
	GUI_HEIGHT      = 360
	GUI_SCALE       = 2
	GUI_BASE_OCTAVE = 48 // C3 on the lower piano row
	GUI_PATCH_LIMIT = 16384
)

func init() {
	compiledFeatures = append(compiledFeatures, "gui:ebiten")
}

// Lower row plays the base octave, upper row the octave above.
var pianoKeys = map[ebiten.Key]int{
	ebiten.KeyZ: 0, ebiten.KeyS: 1, ebiten.KeyX: 2, ebiten.KeyD: 3,
	ebiten.KeyC: 4, ebiten.KeyV: 5, ebiten.KeyG: 6, ebiten.KeyB: 7,
	ebiten.KeyH: 8, ebiten.KeyN: 9, ebiten.KeyJ: 10, ebiten.KeyM: 11,

	ebiten.KeyQ: 12, ebiten.KeyDigit2: 13, ebiten.KeyW: 14, ebiten.KeyDigit3: 15,
	ebiten.KeyE: 16, ebiten.KeyR: 17, ebiten.KeyDigit5: 18, ebiten.KeyT: 19,
	ebiten.KeyDigit6: 20, ebiten.KeyY: 21, ebiten.KeyDigit7: 22, ebiten.KeyU: 23,
}

func pianoNoteForKey(key ebiten.Key, base int) (int, bool) {
	offset, ok := pianoKeys[key]
	if !ok {
		return 0, false
	}
	note := base + offset
	if note < MIN_NOTE || note > MAX_NOTE {
		return 0, false
	}
	return note, true
}

// EbitenFrontend renders the oscilloscope and status bar and turns the
// keyboard into a two-octave piano.
type EbitenFrontend struct {
	console *Console
	ctx     context.Context

	width      int
	height     int
	fullscreen bool
	base       int
	held       map[ebiten.Key]int

	clipboardOnce sync.Once
	clipboardOK   bool
	showStatusBar bool
	message       string
}

func NewEbitenFrontend(c *Console) *EbitenFrontend {
	return &EbitenFrontend{
		console:       c,
		width:         GUI_WIDTH,
		height:        GUI_HEIGHT,
		base:          GUI_BASE_OCTAVE,
		held:          make(map[ebiten.Key]int),
		showStatusBar: true,
	}
}

// Run opens the window and blocks until it is closed or ctx is cancelled.
// Ebiten requires this to be called from the main goroutine.
func (f *EbitenFrontend) Run(ctx context.Context) error {
	f.ctx = ctx
	ebiten.SetWindowSize(f.width*GUI_SCALE, f.height*GUI_SCALE)
	ebiten.SetWindowTitle("ZSynth")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ZS_FPS)

	err := ebiten.RunGame(f)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func RunGUI(ctx context.Context, c *Console) error {
	return NewEbitenFrontend(c).Run(ctx)
}

func (f *EbitenFrontend) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	if f.ctx != nil {
		select {
		case <-f.ctx.Done():
			return ebiten.Termination
		default:
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		f.fullscreen = !f.fullscreen
		ebiten.SetFullscreen(f.fullscreen)
		if !f.fullscreen {
			ebiten.SetWindowSize(f.width*GUI_SCALE, f.height*GUI_SCALE)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		f.showStatusBar = !f.showStatusBar
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF10) {
		f.releaseAll()
		f.console.Reset()
		f.message = "reset"
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	if ctrl && shift {
		if inpututil.IsKeyJustPressed(ebiten.KeyC) {
			f.copyPatch()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyV) {
			f.pastePatch()
		}
		return nil
	}

	f.handleFunctionKeys()
	f.handlePiano()
	return nil
}

func (f *EbitenFrontend) handleFunctionKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		f.console.Do(func(e *ZSynthEngine) {
			if e.IsSoundTestMode() {
				e.ExitSoundTestMode()
			} else {
				e.EnterSoundTestMode()
			}
		})
	case inpututil.IsKeyJustPressed(ebiten.KeyF2):
		f.console.Do(func(e *ZSynthEngine) {
			e.SetMelodyEnabled(!e.GetMelodyEnabled())
		})
	case inpututil.IsKeyJustPressed(ebiten.KeyF3):
		f.console.Do(func(e *ZSynthEngine) { e.PlayVoiceEffect(FX_LAUGH) })
	case inpututil.IsKeyJustPressed(ebiten.KeyF4):
		f.console.Do(func(e *ZSynthEngine) { e.PlayVoiceEffect(FX_GASP) })
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		f.console.Do(func(e *ZSynthEngine) { e.PlayVoiceEffect(FX_GRUNT) })
	case inpututil.IsKeyJustPressed(ebiten.KeyF6):
		f.console.Do(func(e *ZSynthEngine) {
			e.PlaySoundEffect(48, 84, e.GetCurrentWaveform(), 0.4)
		})
	case inpututil.IsKeyJustPressed(ebiten.KeyF7):
		f.console.Do(func(e *ZSynthEngine) { e.PlaySample() })
	case inpututil.IsKeyJustPressed(ebiten.KeyF8):
		f.console.Do(func(e *ZSynthEngine) {
			e.SetSynthWaveform((e.GetSynthWaveform() + 1) % WAVE_COUNT)
		})
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		f.shiftOctave(12)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		f.shiftOctave(-12)
	}
}

func (f *EbitenFrontend) shiftOctave(delta int) {
	base := f.base + delta
	if base < MIN_NOTE || base+23 > MAX_NOTE {
		return
	}
	f.releaseAll()
	f.base = base
	f.message = fmt.Sprintf("octave C%d", base/12-1)
}

func (f *EbitenFrontend) handlePiano() {
	for key := range pianoKeys {
		if inpututil.IsKeyJustPressed(key) {
			note, ok := pianoNoteForKey(key, f.base)
			if !ok {
				continue
			}
			f.held[key] = note
			f.console.Do(func(e *ZSynthEngine) { e.SynthNoteOn(note) })
		}
		if inpututil.IsKeyJustReleased(key) {
			note, ok := f.held[key]
			if !ok {
				continue
			}
			delete(f.held, key)
			f.console.Do(func(e *ZSynthEngine) { e.SynthNoteOff(note) })
		}
	}
}

func (f *EbitenFrontend) releaseAll() {
	f.console.Do(func(e *ZSynthEngine) {
		for key, note := range f.held {
			e.SynthNoteOff(note)
			delete(f.held, key)
		}
	})
}

func (f *EbitenFrontend) initClipboard() bool {
	f.clipboardOnce.Do(func() {
		f.clipboardOK = clipboard.Init() == nil
	})
	return f.clipboardOK
}

func (f *EbitenFrontend) copyPatch() {
	if !f.initClipboard() {
		f.message = "clipboard unavailable"
		return
	}
	var p Patch
	f.console.Do(func(e *ZSynthEngine) { p = e.Patch() })
	data, err := EncodePatch(p)
	if err != nil {
		f.message = err.Error()
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	f.message = "patch copied"
}

func (f *EbitenFrontend) pastePatch() {
	if !f.initClipboard() {
		f.message = "clipboard unavailable"
		return
	}
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return
	}
	if len(data) > GUI_PATCH_LIMIT {
		f.message = "clipboard too large for a patch"
		return
	}
	p, err := DecodePatch(data)
	if err != nil {
		f.message = err.Error()
		return
	}
	f.console.Do(func(e *ZSynthEngine) { e.ApplyPatch(p) })
	f.message = "patch applied"
}

func (f *EbitenFrontend) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{8, 10, 24, 255})
	s := runtimeStatus.snapshot()
	f.drawScope(screen, s.scope[:])

	face := basicfont.Face7x13
	title := fmt.Sprintf("ZSYNTH  %s  note %d  octave C%d", s.status.Waveform, s.status.Note, f.base/12-1)
	text.Draw(screen, title, face, 6, 14, color.RGBA{0, 200, 220, 255})
	if f.message != "" {
		text.Draw(screen, f.message, face, 6, 28, color.RGBA{220, 200, 0, 255})
	}

	if f.showStatusBar {
		f.drawRuntimeStatusBar(screen, s)
	}
}

func (f *EbitenFrontend) drawScope(screen *ebiten.Image, scope []float32) {
	top := 36
	h := f.height - top - 50
	if h <= 0 {
		return
	}
	mid := float64(top + h/2)
	ebitenutil.DrawRect(screen, 0, mid, float64(f.width), 1, color.RGBA{40, 40, 70, 255})

	trace := color.RGBA{255, 220, 0, 255}
	for x := 0; x < f.width; x++ {
		v := scope[x*len(scope)/f.width]
		v = clampF32(v, -1, 1)
		y := mid - float64(v)*float64(h/2)
		ebitenutil.DrawRect(screen, float64(x), y, 1, 2, trace)
	}
}

func (f *EbitenFrontend) Layout(_, _ int) (int, int) {
	return f.width, f.height
}

type statusToken struct {
	name    string
	enabled bool
}

func drawStatusLine(screen *ebiten.Image, x, baselineY int, label string, tokens []statusToken) {
	face := basicfont.Face7x13
	labelColor := color.RGBA{190, 190, 190, 255}
	offColor := color.RGBA{120, 120, 120, 255}
	onColor := color.RGBA{0, 220, 90, 255}

	text.Draw(screen, label, face, x, baselineY, labelColor)
	cursorX := x + text.BoundString(face, label).Dx() + 6

	for _, token := range tokens {
		c := offColor
		if token.enabled {
			c = onColor
		}
		text.Draw(screen, token.name, face, cursorX, baselineY, c)
		cursorX += text.BoundString(face, token.name).Dx() + 8
	}
}

func (f *EbitenFrontend) drawRuntimeStatusBar(screen *ebiten.Image, s runtimeStatusSnapshot) {
	st := s.status
	barHeight := 44
	if barHeight >= f.height {
		return
	}
	y := f.height - barHeight
	ebitenutil.DrawRect(screen, 0, float64(y), float64(f.width), float64(barHeight), color.RGBA{0, 0, 0, 180})

	drawStatusLine(screen, 6, y+13, "SRC  ", []statusToken{
		{name: "LEGACY", enabled: st.LegacyActive && !st.SoundTest},
		{name: "|", enabled: false},
		{name: "TEST", enabled: st.SoundTest},
		{name: "|", enabled: false},
		{name: "POLY", enabled: len(st.ActiveNotes) > 0},
		{name: "|", enabled: false},
		{name: "VOICES", enabled: st.VoiceBankActive},
		{name: "|", enabled: false},
		{name: "SFX", enabled: st.SFXActive},
		{name: "|", enabled: false},
		{name: "VFX", enabled: st.VoiceFXActive},
		{name: "|", enabled: false},
		{name: "PCM", enabled: st.SamplePlaying},
	})

	peak := DominantFrequency(s.scope[:], SAMPLE_RATE)
	drawStatusLine(screen, 6, y+26, "SEQ  ", []statusToken{
		{name: "MELODY", enabled: st.MelodyEnabled},
		{name: fmt.Sprintf("step %2d", st.MelodyStep), enabled: st.MelodyEnabled},
		{name: fmt.Sprintf("%.1f/s", st.MelodyTempo), enabled: st.MelodyEnabled},
		{name: "|", enabled: false},
		{name: fmt.Sprintf("peak %.0fHz", peak), enabled: peak > 0},
	})

	legendColor := color.RGBA{160, 160, 160, 255}
	legend := "F1 Test F2 Melody F3-5 Voice F6 SFX F7 PCM F8 Wave F10 Reset F12 Bar"
	legendOpts := &ebiten.DrawImageOptions{}
	legendOpts.GeoM.Translate(6, float64(y+39))
	legendOpts.ColorScale.ScaleWithColor(legendColor)
	text.DrawWithOptions(screen, legend, basicfont.Face7x13, legendOpts)
}
