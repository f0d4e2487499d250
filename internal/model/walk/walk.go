// Package walk animates a path walk on the terminal.
package walk

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/linwalk/internal/board"
	"github.com/vinser/linwalk/internal/flags"
	"github.com/vinser/linwalk/internal/model/tips"
	"github.com/vinser/linwalk/internal/render"
	"github.com/vinser/linwalk/internal/sound"
	"github.com/vinser/linwalk/internal/state"
	"github.com/vinser/linwalk/internal/style"
	"github.com/vinser/linwalk/internal/tally"
	"github.com/vinser/linwalk/internal/walker"
)

// TerminalDimensions holds the terminal size information
type TerminalDimensions struct {
	Width  int
	Height int
}

// Rows taken by everything but the board: top bar, two header lines, tips
// and help.
const chromeRows = 5

type Model struct {
	name    string
	path    *walker.Path
	board   *board.Board
	tally   *tally.Tally
	sound   *sound.Manager
	period  time.Duration
	paused  bool
	gen     int // ticks of older generations are dropped
	keys    keyMap
	help    help.Model
	tips    tips.Model
	sprite  string
	started bool

	terminal TerminalDimensions
	sb       *strings.Builder
}

// StepMsg asks for the next step of the walk generation Gen.
type StepMsg struct {
	Gen int
}

func (m Model) stepCmd() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.period, func(time.Time) tea.Msg {
		return StepMsg{Gen: gen}
	})
}

// FinishedMsg is sent once the walk reaches a terminal state.
type FinishedMsg struct {
	State walker.State
	Err   error
	Steps int
}

func finishedCmd(p *walker.Path) tea.Cmd {
	return func() tea.Msg {
		return FinishedMsg{State: p.State(), Err: p.Err(), Steps: p.Steps()}
	}
}

// SpeedChangedMsg reports a new step period in milliseconds.
type SpeedChangedMsg struct {
	Speed int
}

func speedChangedCmd(ms int) tea.Cmd {
	return func() tea.Msg {
		return SpeedChangedMsg{Speed: ms}
	}
}

// WindowSizeMsg is a message sent when the terminal is resized.
type WindowSizeMsg struct {
	Width  int
	Height int
}

// New returns a walk of p named name. best is the longest earlier walk of the
// same file.
func New(name string, p *walker.Path, st *state.State, palette style.Palette, best int) Model {
	t := tally.New()
	t.Start(p.Cursor())
	t.SetBest(best)

	h := help.New()
	h.ShortSeparator = "  "

	m := Model{
		name:     name,
		path:     p,
		board:    board.New(p.Points(), st.SpriteSize, palette),
		tally:    t,
		sound:    st.SoundManager,
		period:   time.Duration(st.Speed) * time.Millisecond,
		keys:     Keys,
		help:     h,
		tips:     tips.New(tips.Load(), 40, 1, time.Minute, time.Now().UnixNano()),
		sprite:   st.SpriteSize,
		terminal: TerminalDimensions{Width: 80, Height: 24},
		sb:       &strings.Builder{},
	}
	m.keys.Step.SetEnabled(false)
	return m
}

func (m Model) Init() tea.Cmd {
	return m.stepCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(tips.TickMsg); ok {
		if !m.paused {
			return m, nil
		}
		var cmd tea.Cmd
		m.tips, cmd = m.tips.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case WindowSizeMsg:
		m.terminal = TerminalDimensions(msg)
		m.help.Width = msg.Width
		m.tips.SetWidth(msg.Width)
		return m, nil
	case StepMsg:
		if msg.Gen != m.gen || m.paused {
			return m, nil
		}
		return m.step()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Pause):
		if m.path.State().Terminal() {
			return m, nil
		}
		m.paused = !m.paused
		m.keys.Step.SetEnabled(m.paused)
		m.gen++
		if m.paused {
			return m, m.tips.Init()
		}
		return m, m.stepCmd()
	case key.Matches(msg, m.keys.Step):
		if m.paused {
			return m.step()
		}
	case key.Matches(msg, m.keys.Restart):
		m.Restart()
		return m, m.stepCmd()
	case key.Matches(msg, m.keys.Faster):
		return m.setPeriod(m.period / 2)
	case key.Matches(msg, m.keys.Slower):
		return m.setPeriod(m.period * 2)
	case key.Matches(msg, m.keys.Sprite):
		m.sprite = nextSprite(m.sprite)
		m.board.SetSpriteSize(m.sprite)
	}
	return m, nil
}

func nextSprite(size string) string {
	sizes := []string{state.SpriteSmall, state.SpriteMedium, state.SpriteLarge}
	return sizes[(slices.Index(sizes, size)+1)%len(sizes)]
}

func (m Model) setPeriod(d time.Duration) (Model, tea.Cmd) {
	ms := int(d / time.Millisecond)
	ms = min(max(ms, flags.MinSpeed), flags.MaxSpeed)
	m.period = time.Duration(ms) * time.Millisecond
	return m, speedChangedCmd(ms)
}

// step moves the cursor once and schedules the next tick while running.
func (m Model) step() (Model, tea.Cmd) {
	if !m.started {
		m.started = true
		m.sound.Play(sound.START)
	}
	prev := m.path.Cursor()
	st, _ := m.path.Step()
	switch st {
	case walker.Running:
		next := m.path.Cursor()
		m.tally.Observe(prev, next)
		if next.Heading != prev.Heading {
			m.sound.Play(sound.TURN)
		} else {
			m.sound.Play(sound.STEP)
		}
		if m.paused {
			return m, nil
		}
		return m, m.stepCmd()
	case walker.Branch:
		m.sound.Play(sound.BRANCH)
	case walker.Halted:
		m.sound.Play(sound.HALT)
	case walker.Failed:
		m.sound.Play(sound.FAIL)
	}
	m.paused = false
	m.keys.Step.SetEnabled(false)
	return m, finishedCmd(m.path)
}

// Restart rewinds the walk to its first cursor and resumes it.
func (m *Model) Restart() {
	m.path.Rewind()
	m.tally.Start(m.path.Cursor())
	m.paused = false
	m.started = false
	m.keys.Step.SetEnabled(false)
	m.gen++
}

// Resume schedules the next step after the walk was left for another screen.
func (m *Model) Resume() tea.Cmd {
	if m.paused || m.path.State().Terminal() {
		return nil
	}
	m.gen++
	return m.stepCmd()
}

// Apply takes over changed settings.
func (m *Model) Apply(st *state.State, palette style.Palette) {
	m.sprite = st.SpriteSize
	m.board.SetSpriteSize(st.SpriteSize)
	m.board.SetPalette(palette)
	m.period = time.Duration(st.Speed) * time.Millisecond
	m.sound = st.SoundManager
}

// SetPalette recolors the board.
func (m *Model) SetPalette(p style.Palette) {
	m.board.SetPalette(p)
}

func (m Model) Path() *walker.Path { return m.path }
func (m Model) Tally() *tally.Tally { return m.tally }
func (m Model) Name() string { return m.name }
func (m Model) Paused() bool { return m.paused }

// Speed returns the step period in milliseconds.
func (m Model) Speed() int { return int(m.period / time.Millisecond) }

// View returns the complete screen: header, board, tips and help.
func (m Model) View() string {
	m.sb.Reset()
	width := m.terminal.Width

	m.sb.WriteString(style.TopPattern.Render(render.Pattern(width)))
	m.sb.WriteString("\n")
	m.sb.WriteString(style.WalkHeader.Render(m.headerText()))
	m.sb.WriteString("\n")

	rows := max(1, m.terminal.Height-chromeRows)
	area := m.board.Render(m.path.Cursor(), m.tally.Visited, width, rows)
	m.sb.WriteString(lipgloss.Place(width, rows, lipgloss.Center, lipgloss.Center, area))
	m.sb.WriteString("\n")

	if m.paused {
		m.sb.WriteString(m.tips.View())
	}
	m.sb.WriteString("\n")
	m.sb.WriteString(m.help.View(m.keys))
	return m.sb.String()
}

// headerText always spans two lines.
func (m Model) headerText() string {
	c := m.path.Cursor()
	status := m.path.State().String()
	if m.paused {
		status = "PAUSED"
	}
	return fmt.Sprintf("%s  %s  %d ms/step\nstep %d  turns %d  at %v  heading %v  best %d",
		m.name, status, m.Speed(),
		m.tally.Steps(), m.tally.Turns(), c.Pos, c.Heading, m.tally.Best())
}
