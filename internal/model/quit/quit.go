package quit

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/linwalk/internal/render"
	"github.com/vinser/linwalk/internal/style"
)

const quitPeriod = 1500 * time.Millisecond

type Model struct {
	width      int
	height     int
	termWidth  int
	termHeight int

	summary   string
	quitUntil time.Time
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type TimedoutMsg struct{}

func timedoutCmd() tea.Cmd {
	return func() tea.Msg {
		return TimedoutMsg{}
	}
}

// New shows the farewell page. summary is a one-line account of the last
// walk and may be empty.
func New(summary string, width, height int) Model {
	return Model{
		width:     width,
		height:    height,
		summary:   summary,
		quitUntil: time.Now().Add(quitPeriod),
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
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, timedoutCmd()
		}
	case TickMsg:
		if time.Time(msg).After(m.quitUntil) {
			return m, timedoutCmd()
		}
	}
	return m, tick()
}

func (m Model) View() string {
	content := "\nEnd of the line. Bye!\n"
	if m.summary != "" {
		content = "\n" + style.Success.Render(m.summary) + content
	}
	return render.Page("linwalk", content, "", m.width, m.height, m.termWidth, m.termHeight)
}
