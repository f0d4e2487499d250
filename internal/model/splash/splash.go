package splash

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/linwalk/internal/style"
)

const (
	cursorOpen = `
██▄▄
██████▄▄
█████████▶
██████▀▀
██▀▀
`
	cursorClosed = `

██▄▄▄▄▄▄
█████████▶
██▀▀▀▀▀▀

`
	title = `
█    █ █▄  █ █   █ ▄▀▀▄ █    █ ▄▀
█    █ █ ▀▄█ █ █ █ █▄▄█ █    █▀▄
█▄▄▄ █ █   █ ▀▄▀▄▀ █  █ █▄▄▄ █  █
`
)

const (
	spriteWidth  = 11
	spriteHeight = 5

	middlePause      = 2 * time.Second
	moveTickDuration = 60 * time.Millisecond
	blinkDuration    = 400 * time.Millisecond

	dot   = '·'
	trail = '━'
)

type Model struct {
	width  int
	height int

	pos        int
	open       bool
	pauseUntil time.Time
	paused     bool // the middle pause was taken
	trail      []bool

	grid [][]rune
	sb   *strings.Builder
}

type MoveMsg struct{}

func moveCmd() tea.Cmd {
	return tea.Tick(moveTickDuration, func(t time.Time) tea.Msg {
		return MoveMsg{}
	})
}

type BlinkMsg struct{}

func blinkCmd() tea.Cmd {
	return tea.Tick(blinkDuration, func(t time.Time) tea.Msg {
		return BlinkMsg{}
	})
}

type MakeSettingsMsg struct{}

func makeSettingsCmd() tea.Cmd {
	return func() tea.Msg {
		return MakeSettingsMsg{}
	}
}

type ShowAboutMsg struct{}

func showAboutCmd() tea.Cmd {
	return func() tea.Msg {
		return ShowAboutMsg{}
	}
}

type TimedoutMsg struct{}

func timedoutCmd() tea.Cmd {
	return func() tea.Msg {
		return TimedoutMsg{}
	}
}

func New(width, height int) Model {
	width = max(width, lipgloss.Width(title))
	height = max(height, spriteHeight+lipgloss.Height(title)+2)
	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
	}
	return Model{
		width:  width,
		height: height,
		pos:    -spriteWidth,
		open:   true,
		trail:  make([]bool, width),
		grid:   grid,
		sb:     &strings.Builder{},
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(moveCmd(), blinkCmd())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MoveMsg:
		return m.move(time.Now())
	case BlinkMsg:
		if m.pauseUntil.IsZero() {
			m.open = !m.open
		}
		return m, blinkCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			return m, makeSettingsCmd()
		case "?":
			return m, showAboutCmd()
		case "enter", "esc", " ":
			return m, timedoutCmd()
		}
	}
	return m, nil
}

func (m Model) move(now time.Time) (Model, tea.Cmd) {
	if !m.pauseUntil.IsZero() {
		if now.Before(m.pauseUntil) {
			return m, moveCmd()
		}
		m.pauseUntil = time.Time{}
	}
	if !m.paused && m.pos == m.width/2-spriteWidth/2 {
		m.paused = true
		m.pauseUntil = now.Add(middlePause)
		return m, moveCmd()
	}
	m.pos++
	if tail := m.pos; tail >= 0 && tail < len(m.trail) {
		m.trail[tail] = true
	}
	if m.pos > m.width {
		return m, timedoutCmd()
	}
	return m, moveCmd()
}

// --- View ---

func (m Model) View() string {
	m.clearGrid()
	m.drawLine()
	m.drawCursor()
	return m.renderGrid()
}

func (m *Model) clearGrid() {
	for i := range m.grid {
		for j := range m.grid[i] {
			m.grid[i][j] = ' '
		}
	}
}

func (m *Model) spriteY() int {
	return (m.height-spriteHeight)/2 + 1
}

func (m *Model) drawLine() {
	y := m.spriteY() + spriteHeight/2 + 1
	if y < 0 || y >= m.height {
		return
	}
	for x := 0; x < m.width; x++ {
		switch {
		case m.trail[x]:
			m.grid[y][x] = trail
		case x%3 == 0:
			m.grid[y][x] = dot
		}
	}
}

func (m *Model) drawCursor() {
	sprite := cursorOpen
	if !m.open {
		sprite = cursorClosed
	}
	for i, line := range strings.Split(sprite, "\n") {
		y := m.spriteY() + i
		if y < 0 || y >= m.height {
			continue
		}
		for x, r := range []rune(line) {
			sx := m.pos + x
			if sx >= 0 && sx < m.width && r != ' ' {
				m.grid[y][sx] = r
			}
		}
	}
}

func (m *Model) renderGrid() string {
	m.sb.Reset()
	banner := strings.Trim(title, "\n")
	if !m.pauseUntil.IsZero() {
		m.sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, style.SplashTitle.Render(banner)))
		m.sb.WriteRune('\n')
	} else {
		m.sb.WriteString(strings.Repeat("\n", lipgloss.Height(banner)))
	}
	for _, row := range m.grid {
		for _, r := range row {
			switch r {
			case dot, trail:
				m.sb.WriteString(style.SplashPath.Render(string(r)))
			case ' ':
				m.sb.WriteRune(' ')
			default:
				m.sb.WriteString(style.SplashCursor.Render(string(r)))
			}
		}
		m.sb.WriteRune('\n')
	}
	m.sb.WriteString("s — settings, ? — about, space — skip, q — quit\n")
	return m.sb.String()
}
