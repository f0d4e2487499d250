// Package result reports how a walk ended.
package result

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/linwalk/internal/render"
	"github.com/vinser/linwalk/internal/style"
	"github.com/vinser/linwalk/internal/tally"
	"github.com/vinser/linwalk/internal/walker"
)

type Model struct {
	width      int
	height     int
	termWidth  int
	termHeight int

	name   string
	state  walker.State
	err    error
	cursor walker.Cursor
	tally  *tally.Tally
	best   int // longest walk before this one
}

// RestartMsg asks to walk the same path again.
type RestartMsg struct{}

func restartCmd() tea.Cmd {
	return func() tea.Msg {
		return RestartMsg{}
	}
}

// OpenAnotherMsg asks for another path file.
type OpenAnotherMsg struct{}

func openAnotherCmd() tea.Cmd {
	return func() tea.Msg {
		return OpenAnotherMsg{}
	}
}

// QuitMsg is sent when the user quits from the result page.
type QuitMsg struct{}

func quitCmd() tea.Cmd {
	return func() tea.Msg {
		return QuitMsg{}
	}
}

// New summarizes the finished walk p of file name. best is the longest walk
// recorded for the file before this one.
func New(name string, p *walker.Path, t *tally.Tally, best, width, height int) Model {
	if width < lipgloss.Width(footer) {
		width = lipgloss.Width(footer)
	}
	return Model{
		width:  width,
		height: height,
		name:   name,
		state:  p.State(),
		err:    p.Err(),
		cursor: p.Cursor(),
		tally:  t,
		best:   best,
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r", "enter":
			return m, restartCmd()
		case "o":
			return m, openAnotherCmd()
		case "q":
			return m, quitCmd()
		}
	}
	return m, nil
}

const footer = "r — walk again, o — open, s — settings, q — quit"

func (m Model) View() string {
	return render.Page(m.title(), m.renderContent(), footer, m.width, m.height, m.termWidth, m.termHeight)
}

func (m Model) title() string {
	switch m.state {
	case walker.Branch:
		return "Branch!"
	case walker.Halted:
		return "End of the line"
	case walker.Failed:
		return "Walk failed"
	}
	return m.state.String()
}

// Summary is a one-line account of the walk.
func (m Model) Summary() string {
	return fmt.Sprintf("%s: %s after %d steps at %v", m.name, m.state, m.tally.Steps(), m.cursor.Pos)
}

// NewBest reports whether this walk is the longest seen for the file.
func (m Model) NewBest() bool {
	return m.best > 0 && m.tally.Steps() > m.best
}

func (m Model) renderContent() string {
	var content []string
	switch {
	case m.err != nil:
		content = append(content, style.Error.Width(m.width).Render(m.err.Error()))
	case m.NewBest():
		content = append(content, style.Success.Render(fmt.Sprintf("New longest walk for %s!", m.name)))
	default:
		content = append(content, style.Success.Render(m.Summary()))
	}
	content = append(content, "")

	best := "—"
	if m.best > 0 {
		best = fmt.Sprintf("%d", m.best)
	}
	content = append(content, render.Fields(
		[2]string{"stopped at", m.cursor.String()},
		[2]string{"steps", fmt.Sprintf("%d", m.tally.Steps())},
		[2]string{"turns", fmt.Sprintf("%d", m.tally.Turns())},
		[2]string{"diagonal", fmt.Sprintf("%d", m.tally.Diagonal())},
		[2]string{"longest run", fmt.Sprintf("%d", m.tally.Longest())},
		[2]string{"revisits", fmt.Sprintf("%d", m.tally.Revisits())},
		[2]string{"previous best", best},
	))
	return lipgloss.JoinVertical(lipgloss.Left, content...)
}
