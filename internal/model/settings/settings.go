package settings

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/linwalk/internal/state"
	"github.com/vinser/linwalk/internal/style"
)

const width = 80

const (
	selectedSpriteSize = iota
	selectedSpeed
	selectedTheme
	selectedMute
	selectedReset
	numSettings
)

// Speeds are the step periods in milliseconds the settings page cycles through.
var Speeds = []int{50, 100, 150, 300, 600, 1000}

type Model struct {
	spriteSize string // small, medium or large
	speed      int    // ms per step
	theme      string // auto, day or night
	mute       bool
	reset      bool

	selectedSetting int
}

type SaveSettingsMsg struct {
	SpriteSize string
	Speed      int
	Theme      string
	Mute       bool
	Reset      bool
}

func saveSettingsCmd(m Model) tea.Cmd {
	return func() tea.Msg {
		return SaveSettingsMsg{
			SpriteSize: m.spriteSize,
			Speed:      m.speed,
			Theme:      m.theme,
			Mute:       m.mute,
			Reset:      m.reset,
		}
	}
}

type DiscardSettingsMsg struct{}

func discardSettingsCmd() tea.Cmd {
	return func() tea.Msg {
		return DiscardSettingsMsg{}
	}
}

func New(st *state.State) Model {
	return Model{
		spriteSize: st.SpriteSize,
		speed:      st.Speed,
		theme:      st.Theme,
		mute:       st.Mute,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			return m, saveSettingsCmd(m)
		case "esc":
			return m, discardSettingsCmd()
		case "up", "k":
			if m.selectedSetting > 0 {
				m.selectedSetting--
			}
		case "down", "j":
			if m.selectedSetting < numSettings-1 {
				m.selectedSetting++
			}
		case "enter", " ":
			switch m.selectedSetting {
			case selectedSpriteSize:
				m.spriteSize = next([]string{state.SpriteSmall, state.SpriteMedium, state.SpriteLarge}, m.spriteSize)
			case selectedSpeed:
				m.speed = next(Speeds, m.speed)
			case selectedTheme:
				m.theme = next([]string{state.ThemeAuto, state.ThemeDay, state.ThemeNight}, m.theme)
			case selectedMute:
				m.mute = !m.mute
			case selectedReset:
				m.reset = !m.reset
			}
		}
	}
	return m, nil
}

// next returns the option after current, wrapping around. Unknown values
// restart the cycle.
func next[T comparable](options []T, current T) T {
	i := slices.Index(options, current)
	return options[(i+1)%len(options)]
}

func (m Model) View() string {
	options := [numSettings][2]string{
		{"Sprite size", m.spriteSize},
		{"Step period", fmt.Sprintf("%d ms", m.speed)},
		{"Theme", m.theme},
		{"Mute all sounds", fmt.Sprintf("%v", m.mute)},
		{"Forget walk records", fmt.Sprintf("%v", m.reset)},
	}

	var b strings.Builder
	title := style.SettingsTitle.Render("Settings")
	b.WriteString("\n" + centerText(title) + "\n\n")

	for i, opt := range options {
		prefix := "  "
		if i == m.selectedSetting {
			prefix = "➤ "
		}
		line := fmt.Sprintf("%s%s: %s", prefix, opt[0], opt[1])
		if i == m.selectedSetting {
			b.WriteString(centerText(style.SettingsItemSelected.Render(line)))
		} else {
			b.WriteString(centerText(style.SettingsItem.Render(line)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n\n\n\n" + centerText("↑ ↓ — select, space — change, s — save, esc — cancel") + "\n")
	return b.String()
}

func centerText(text string) string {
	padding := max(0, (width-lipgloss.Width(text))/2)
	return strings.Repeat(" ", padding) + text
}
