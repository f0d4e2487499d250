// Package tips scrolls short hints across the walk footer while the walk is
// paused.
package tips

import (
	"encoding/json"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/linwalk/internal/embeddata"
)

const tickInterval = 200 * time.Millisecond

type Model struct {
	msgs       []string
	style      lipgloss.Style
	frameWidth int
	repeats    int
	interval   time.Duration

	current   []rune
	offset    int
	doneCount int
	lastShown time.Time
	rng       *rand.Rand
}

type TickMsg struct{}

func Tick() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

type tipsDocument struct {
	Tips []string `json:"tips"`
}

// Load returns the embedded tips, or a single fallback line.
func Load() []string {
	var msgs []string
	b, err := embeddata.ReadTips()
	if err == nil {
		var doc tipsDocument
		if json.Unmarshal(b, &doc) == nil {
			msgs = doc.Tips
		}
	}
	if len(msgs) == 0 {
		msgs = []string{"Space pauses the walk."}
	}
	return msgs
}

// New scrolls each message repeats times through a frame of frameWidth
// cells, then waits interval before picking the next one.
func New(msgs []string, frameWidth, repeats int, interval time.Duration, seed int64) Model {
	if len(msgs) == 0 {
		msgs = Load()
	}
	rng := rand.New(rand.NewSource(seed))
	return Model{
		msgs:       msgs,
		style:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		frameWidth: frameWidth,
		repeats:    repeats,
		interval:   interval,
		current:    []rune(msgs[rng.Intn(len(msgs))]),
		lastShown:  time.Now(),
		rng:        rng,
	}
}

func (m Model) Init() tea.Cmd {
	return Tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg.(type) {
	case TickMsg:
		m.advance(time.Now())
		return m, Tick()
	}
	return m, nil
}

func (m *Model) advance(now time.Time) {
	if m.doneCount >= m.repeats {
		if now.Sub(m.lastShown) >= m.interval {
			m.current = []rune(m.msgs[m.rng.Intn(len(m.msgs))])
			m.lastShown = now
			m.doneCount = 0
			m.offset = 0
		}
		return
	}
	m.offset++
	if m.offset >= len(m.current)+m.frameWidth {
		m.offset = 0
		m.doneCount++
		m.lastShown = now
	}
}

// Current is the message being scrolled.
func (m Model) Current() string {
	return string(m.current)
}

func (m Model) View() string {
	if m.frameWidth <= 0 {
		return ""
	}
	pad := []rune(strings.Repeat(" ", m.frameWidth))
	text := append(append(append([]rune{}, pad...), m.current...), pad...)
	start := min(m.offset, len(text))
	end := min(start+m.frameWidth, len(text))
	return m.style.Render(string(text[start:end]))
}

func (m *Model) SetWidth(width int) {
	m.frameWidth = width
}
