// soundtest_tui.go - Terminal sound-test console (bubbletea)

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
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	TUI_SCOPE_ROWS     = 9
	TUI_SCOPE_MAX_COLS = 96
	TUI_TEMPO_STEP     = 0.5
)

var (
	tuiTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	tuiOnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	tuiOffStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	tuiScopeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	tuiHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// SoundTestModel is the bubbletea model for the terminal sound test.
type SoundTestModel struct {
	console *Console
	width   int
	status  ZSynthStatus
	scope   [SCOPE_SAMPLES]float32
	message string
}

func NewSoundTestModel(c *Console, width int) SoundTestModel {
	if width <= 0 {
		width = 80
	}
	c.Do(func(e *ZSynthEngine) {
		e.EnterSoundTestMode()
	})
	return SoundTestModel{console: c, width: width, status: c.Status()}
}

type tuiTickMsg struct{}

func tuiTick() tea.Cmd {
	return tea.Tick(time.Second/ZS_FPS, func(_ time.Time) tea.Msg {
		return tuiTickMsg{}
	})
}

// Init implements tea.Model
func (m SoundTestModel) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, tuiTick())
}

// Update implements tea.Model
func (m SoundTestModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tuiTickMsg:
		snap := runtimeStatus.snapshot()
		m.scope = snap.scope
		m.status = m.console.Status()
		return m, tuiTick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m SoundTestModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "q" || key == "ctrl+c" {
		return m, tea.Quit
	}

	m.console.Do(func(e *ZSynthEngine) {
		switch key {
		case "up":
			e.ChangeNote(e.GetCurrentNote() + 1)
		case "down":
			e.ChangeNote(e.GetCurrentNote() - 1)
		case "right":
			e.ChangeWaveform((e.GetCurrentWaveform() + 1) % WAVE_COUNT)
		case "left":
			e.ChangeWaveform((e.GetCurrentWaveform() + WAVE_COUNT - 1) % WAVE_COUNT)
		case "m":
			e.SetMelodyEnabled(!e.GetMelodyEnabled())
		case "+", "=":
			e.SetMelodyTempo(e.GetMelodyTempo() + TUI_TEMPO_STEP)
		case "-":
			e.SetMelodyTempo(e.GetMelodyTempo() - TUI_TEMPO_STEP)
		case "1":
			e.PlayVoiceEffect(FX_LAUGH)
		case "2":
			e.PlayVoiceEffect(FX_GASP)
		case "3":
			e.PlayVoiceEffect(FX_GRUNT)
		case "s":
			e.PlaySoundEffect(e.GetCurrentNote(), e.GetCurrentNote()+12, e.GetCurrentWaveform(), 0.3)
		case "p":
			e.PlaySample()
		case "f":
			p := e.Patch()
			e.SetFilterEnabled(!p.FilterEnabled)
		case "d":
			p := e.Patch()
			e.SetDelayEnabled(!p.DelayEnabled)
		case "t":
			if e.IsSoundTestMode() {
				e.ExitSoundTestMode()
			} else {
				e.EnterSoundTestMode()
			}
		}
		m.status = e.Status()
		p := e.Patch()
		m.message = fmt.Sprintf("filter %s  delay %s", onOff(p.FilterEnabled), onOff(p.DelayEnabled))
	})
	return m, nil
}

func tuiFlag(label string, on bool) string {
	if on {
		return tuiOnStyle.Render(label)
	}
	return tuiOffStyle.Render(label)
}

// View implements tea.Model
func (m SoundTestModel) View() string {
	var b strings.Builder
	s := m.status

	b.WriteString(tuiTitleStyle.Render("ZSYNTH SOUND TEST"))
	fmt.Fprintf(&b, " │ step %d │ note %d (%.1f Hz) │ %s\n", s.Steps, s.Note, midiToFrequency(float32(s.Note)), s.Waveform)
	fmt.Fprintf(&b, "%s step %2d tempo %.1f  %s %s %s %s %s\n",
		tuiFlag("MELODY", s.MelodyEnabled), s.MelodyStep, s.MelodyTempo,
		tuiFlag("TEST", s.SoundTest), tuiFlag("SFX", s.SFXActive), tuiFlag("VFX", s.VoiceFXActive),
		tuiFlag("PCM", s.SamplePlaying), tuiFlag("VOICES", s.VoiceBankActive))
	b.WriteString(tuiScopeStyle.Render(m.scopeView()))
	b.WriteString("\n")
	if m.message != "" {
		b.WriteString(m.message + "\n")
	}
	b.WriteString(tuiHelpStyle.Render("↑↓ note  ←→ wave  m melody  +/- tempo  1-3 voice fx  s sweep  p sample  f filter  d delay  t test  q quit"))
	return b.String()
}

// scopeView draws the most recent output as a character oscilloscope.
func (m SoundTestModel) scopeView() string {
	cols := m.width - 2
	if cols > TUI_SCOPE_MAX_COLS {
		cols = TUI_SCOPE_MAX_COLS
	}
	if cols < 8 {
		cols = 8
	}

	grid := make([][]byte, TUI_SCOPE_ROWS)
	for r := range grid {
		grid[r] = []byte(strings.Repeat(" ", cols))
	}
	mid := TUI_SCOPE_ROWS / 2
	for c := 0; c < cols; c++ {
		grid[mid][c] = '-'
	}
	for c := 0; c < cols; c++ {
		v := clampF32(m.scope[c*SCOPE_SAMPLES/cols], -1, 1)
		row := int((1-v)/2*float32(TUI_SCOPE_ROWS-1) + 0.5)
		grid[row][c] = '*'
	}

	lines := make([]string, len(grid))
	for r, line := range grid {
		lines[r] = string(line)
	}
	return strings.Join(lines, "\n")
}

// RunSoundTestTUI runs the terminal console until the user quits.
func RunSoundTestTUI(c *Console, width int) error {
	p := tea.NewProgram(NewSoundTestModel(c, width))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("sound test: %w", err)
	}
	return nil
}
