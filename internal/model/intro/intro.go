// Package intro shows a short summary card of a path before its walk starts.
package intro

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/linwalk/internal/render"
	"github.com/vinser/linwalk/internal/state"
	"github.com/vinser/linwalk/internal/walker"
)

const introPeriod = 2 * time.Second

type Model struct {
	width      int
	height     int
	termWidth  int
	termHeight int

	name       string
	path       *walker.Path
	record     state.Record
	hasRecord  bool
	introUntil time.Time
}

// TickMsg is a tick message for periodic updates.
type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// TimedoutMsg ends the card.
type TimedoutMsg struct{}

func timedoutCmd() tea.Cmd {
	return func() tea.Msg {
		return TimedoutMsg{}
	}
}

// New describes path p loaded from name. rec is the outcome of the previous
// walk of the same file when ok is set.
func New(name string, p *walker.Path, rec state.Record, ok bool, width, height int) Model {
	if width < lipgloss.Width(footer) {
		width = lipgloss.Width(footer)
	}
	return Model{
		width:      width,
		height:     height,
		name:       name,
		path:       p,
		record:     rec,
		hasRecord:  ok,
		introUntil: time.Now().Add(introPeriod),
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case " ", "enter":
			return m, timedoutCmd()
		}
		return m, nil
	case TickMsg:
		if time.Time(msg).After(m.introUntil) {
			return m, timedoutCmd()
		}
		return m, tick()
	}
	return m, nil
}

const footer = "space — start now"

func (m Model) View() string {
	return render.Page(m.name, m.renderContent(), footer, m.width, m.height, m.termWidth, m.termHeight)
}

func (m Model) renderContent() string {
	b := m.path.Bounds()
	rows := [][2]string{
		{"points", fmt.Sprint(len(m.path.Points()))},
		{"bounds", fmt.Sprintf("(%d,%d)-(%d,%d), %dx%d", b.MinX, b.MinY, b.MaxX, b.MaxY, b.Width(), b.Height())},
		{"start", m.path.Start().String()},
	}
	if m.hasRecord {
		rows = append(rows,
			[2]string{"last walk", fmt.Sprintf("%s after %d steps", m.record.Final, m.record.Steps)},
			[2]string{"longest", fmt.Sprintf("%d steps", m.record.Best)},
		)
	}
	return "\n" + render.Fields(rows...) + "\n\nGet ready...\n"
}
