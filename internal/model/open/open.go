// Package open prompts for the path file to walk.
package open

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/linwalk/internal/embeddata"
	"github.com/vinser/linwalk/internal/pathfile"
	"github.com/vinser/linwalk/internal/render"
	"github.com/vinser/linwalk/internal/style"
)

// DemoPrefix marks an embedded demo in the prompt, as in "demo:spiral".
const DemoPrefix = "demo:"

type Model struct {
	width      int
	height     int
	termWidth  int
	termHeight int

	textInput textinput.Model
	err       error
}

// OpenFileMsg asks to load and walk Target, a file path or a demo name with
// DemoPrefix.
type OpenFileMsg struct {
	Target string
}

func openFileCmd(target string) tea.Cmd {
	return func() tea.Msg {
		return OpenFileMsg{Target: target}
	}
}

// CancelOpenMsg is sent when the prompt is left without a choice.
type CancelOpenMsg struct{}

func cancelOpenCmd() tea.Cmd {
	return func() tea.Msg {
		return CancelOpenMsg{}
	}
}

// New returns a focused prompt prefilled with last, the previously opened
// target. Files with the .lin extension in dir and the embedded demos are
// offered as completions.
func New(last, dir string, width, height int) Model {
	if width < lipgloss.Width(footer) {
		width = lipgloss.Width(footer)
	}

	ti := textinput.New()
	ti.Prompt = "Path: "
	ti.Placeholder = "file.lin or demo:spiral"
	ti.CharLimit = 512
	ti.Width = width - lipgloss.Width(ti.Prompt) - 1
	ti.ShowSuggestions = true
	ti.SetSuggestions(Suggestions(dir))
	ti.SetValue(last)
	ti.Focus()

	return Model{
		width:     width,
		height:    height,
		textInput: ti,
	}
}

// Suggestions lists the demo targets and the .lin files found in dir.
func Suggestions(dir string) []string {
	var s []string
	for _, name := range embeddata.Demos() {
		s = append(s, DemoPrefix+name)
	}
	if dir == "" {
		return s
	}
	files, _ := filepath.Glob(filepath.Join(dir, "*"+pathfile.Ext))
	return append(s, files...)
}

// SetError shows why the last target could not be opened.
func (m *Model) SetError(err error) {
	m.err = err
}

// Err returns the error shown on the prompt, if any.
func (m Model) Err() error {
	return m.err
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			if m.textInput.Value() == "" {
				return m, nil
			}
			m.err = nil
			return m, openFileCmd(m.textInput.Value())
		case tea.KeyEsc:
			return m, cancelOpenCmd()
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

const footer = "enter — open, tab — complete, esc — back"

func (m Model) View() string {
	content := "\n" + m.textInput.View() + "\n"
	if m.err != nil {
		content += "\n" + style.Error.Width(m.width).Render(m.err.Error()) + "\n"
	}
	return render.Page("Open a path", content, footer, m.width, m.height, m.termWidth, m.termHeight)
}
