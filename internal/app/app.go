package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/linwalk/internal/ambilite"
	"github.com/vinser/linwalk/internal/embeddata"
	"github.com/vinser/linwalk/internal/geoip"
	"github.com/vinser/linwalk/internal/model/about"
	"github.com/vinser/linwalk/internal/model/intro"
	"github.com/vinser/linwalk/internal/model/open"
	"github.com/vinser/linwalk/internal/model/quit"
	"github.com/vinser/linwalk/internal/model/result"
	"github.com/vinser/linwalk/internal/model/settings"
	"github.com/vinser/linwalk/internal/model/splash"
	"github.com/vinser/linwalk/internal/model/walk"
	"github.com/vinser/linwalk/internal/pathfile"
	"github.com/vinser/linwalk/internal/state"
	"github.com/vinser/linwalk/internal/style"
	"github.com/vinser/linwalk/internal/walker"
)

type status uint

const (
	statusStartSplash status = iota
	statusDoSettings
	statusAbout
	statusOpenFile
	statusPathIntro
	statusWalking
	statusResult
	statusQuitting
)

const (
	pageWidth  = 64
	pageHeight = 20

	lightRefresh  = time.Minute
	lookupTimeout = 5 * time.Second
)

type Model struct {
	status status
	back   status // screen to return to from settings, about and open
	state  *state.State
	light  float64 // ambient light for the auto theme, 1 is full day

	target  string // file path or demo target of the current walk
	digest  string
	hasWalk bool

	// models
	splash   splash.Model
	settings settings.Model
	about    about.Model
	open     open.Model
	intro    intro.Model
	walk     walk.Model
	result   result.Model
	quit     quit.Model
	// terminal size cache
	termWidth  int
	termHeight int
}

// New starts at the splash screen. target is walked after the splash and may
// be empty, in which case the open prompt asks for one.
func New(st *state.State, target string) Model {
	return Model{
		status: statusStartSplash,
		state:  st,
		light:  1,
		target: target,
		splash: splash.New(pageWidth, pageHeight),
	}
}

// LightMsg carries a fresh ambient light reading for the auto theme.
type LightMsg struct {
	Light    float64
	Location *geoip.LocationInfo
}

// lightCmd locates the user once per run and reads the sun altitude there.
func lightCmd(known *geoip.LocationInfo, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		loc := known
		if loc == nil {
			ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
			defer cancel()
			var err error
			if loc, err = geoip.Lookup(ctx); err != nil {
				log.Printf("geoip: %v, using %s", err, geoip.Fallback.City)
				loc = &geoip.Fallback
			}
		}
		return LightMsg{Light: ambilite.Intensity(t, loc.Lat, loc.Lon), Location: loc}
	})
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.splash.Init()}
	if m.state.Theme == state.ThemeAuto {
		cmds = append(cmds, lightCmd(m.state.LocationInfo, 0))
	}
	return tea.Batch(cmds...)
}

func (m Model) palette() style.Palette {
	return style.PaletteFor(m.state.Theme, m.light)
}

// load reads a target: an embedded demo when it has the demo prefix, a file
// otherwise.
func load(target string) (name string, data []byte, err error) {
	if demo, ok := strings.CutPrefix(target, open.DemoPrefix); ok {
		data, err = embeddata.Demo(demo)
		return demo, data, err
	}
	data, err = os.ReadFile(target)
	return filepath.Base(target), data, err
}

// startWalk decodes target and shows its intro card, or returns to the open
// prompt with the error.
func (m Model) startWalk(target string) (Model, tea.Cmd) {
	name, data, err := load(target)
	var p *walker.Path
	if err == nil {
		var f *pathfile.File
		if f, err = pathfile.Decode(data); err == nil {
			p, err = walker.Open(f)
		}
	}
	if err != nil {
		log.Printf("open %s: %v", target, err)
		m.open = open.New(target, ".", pageWidth, pageHeight)
		m.open.SetError(fmt.Errorf("%s: %w", name, err))
		m.open.SetSize(m.termWidth, m.termHeight)
		m.status = statusOpenFile
		return m, m.open.Init()
	}

	m.target = target
	m.digest = state.Digest(data)
	m.state.LastFile = target
	rec, ok := m.state.Record(m.digest)

	m.walk = walk.New(name, p, m.state, m.palette(), rec.Best)
	m.walk, _ = m.walk.Update(walk.WindowSizeMsg{Width: m.termWidth, Height: m.termHeight})
	m.hasWalk = true
	m.intro = intro.New(name, p, rec, ok, pageWidth, pageHeight)
	m.intro.SetSize(m.termWidth, m.termHeight)
	m.status = statusPathIntro
	return m, m.intro.Init()
}

func (m Model) showOpen(back status) (Model, tea.Cmd) {
	m.back = back
	m.open = open.New(m.state.LastFile, ".", pageWidth, pageHeight)
	m.open.SetSize(m.termWidth, m.termHeight)
	m.status = statusOpenFile
	return m, m.open.Init()
}

func (m Model) showSettings(back status) (Model, tea.Cmd) {
	m.back = back
	m.settings = settings.New(m.state)
	m.status = statusDoSettings
	return m, nil
}

func (m Model) showAbout(back status) (Model, tea.Cmd) {
	m.back = back
	m.about = about.New(pageWidth, pageHeight, m.light >= 0.5)
	m.about.SetSize(m.termWidth, m.termHeight)
	m.status = statusAbout
	return m, nil
}

func (m Model) showQuit() (Model, tea.Cmd) {
	summary := ""
	if m.status == statusResult {
		summary = m.result.Summary()
	}
	m.state.SoundManager.StopAll()
	m.quit = quit.New(summary, pageWidth, pageHeight)
	m.quit.SetSize(m.termWidth, m.termHeight)
	m.status = statusQuitting
	return m, m.quit.Init()
}

// goBack returns to the screen that opened settings, about or open and
// restarts its ticks.
func (m Model) goBack() (Model, tea.Cmd) {
	m.status = m.back
	switch m.back {
	case statusStartSplash:
		return m, m.splash.Init()
	case statusWalking:
		return m, m.walk.Resume()
	}
	return m, nil
}

func (m *Model) saveSettings(msg settings.SaveSettingsMsg) {
	m.state.SpriteSize = msg.SpriteSize
	m.state.Speed = msg.Speed
	m.state.Theme = msg.Theme
	m.state.SetMute(msg.Mute)
	if msg.Reset {
		m.state.Records = make(map[string]state.Record)
	}
	if err := m.state.Save(); err != nil {
		log.Printf("save settings: %v", err)
	}
	if m.hasWalk {
		m.walk.Apply(m.state, m.palette())
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.about.SetSize(msg.Width, msg.Height)
		m.open.SetSize(msg.Width, msg.Height)
		m.intro.SetSize(msg.Width, msg.Height)
		m.result.SetSize(msg.Width, msg.Height)
		m.quit.SetSize(msg.Width, msg.Height)
		if m.hasWalk {
			m.walk, _ = m.walk.Update(walk.WindowSizeMsg{Width: msg.Width, Height: msg.Height})
		}
		return m, nil
	case LightMsg:
		m.light = msg.Light
		m.state.LocationInfo = msg.Location
		if m.hasWalk {
			m.walk.SetPalette(m.palette())
		}
		if m.state.Theme != state.ThemeAuto {
			return m, nil
		}
		return m, lightCmd(msg.Location, lightRefresh)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			if m.status == statusQuitting {
				return m, tea.Quit
			}
			return m.showQuit()
		}
		if msg.String() == "q" {
			switch m.status {
			case statusStartSplash, statusAbout, statusPathIntro, statusWalking:
				return m.showQuit()
			}
		}
	}

	switch m.status {
	case statusStartSplash:
		switch msg := msg.(type) {
		case splash.MakeSettingsMsg:
			return m.showSettings(statusStartSplash)
		case splash.ShowAboutMsg:
			return m.showAbout(statusStartSplash)
		case splash.TimedoutMsg:
			if m.target != "" {
				return m.startWalk(m.target)
			}
			return m.showOpen(statusStartSplash)
		default:
			m.splash, cmd = m.splash.Update(msg)
		}
		cmds = append(cmds, cmd)
	case statusDoSettings:
		switch msg := msg.(type) {
		case settings.SaveSettingsMsg:
			m.saveSettings(msg)
			if msg.Theme == state.ThemeAuto {
				cmds = append(cmds, lightCmd(m.state.LocationInfo, 0))
			}
			m, cmd = m.goBack()
		case settings.DiscardSettingsMsg:
			m, cmd = m.goBack()
		default:
			m.settings, cmd = m.settings.Update(msg)
		}
		cmds = append(cmds, cmd)
	case statusAbout:
		switch msg := msg.(type) {
		case about.CloseAboutMsg:
			m, cmd = m.goBack()
		default:
			m.about, cmd = m.about.Update(msg)
		}
		cmds = append(cmds, cmd)
	case statusOpenFile:
		switch msg := msg.(type) {
		case open.OpenFileMsg:
			return m.startWalk(msg.Target)
		case open.CancelOpenMsg:
			if !m.hasWalk || m.back == statusStartSplash {
				return m.showQuit()
			}
			m, cmd = m.goBack()
		default:
			m.open, cmd = m.open.Update(msg)
		}
		cmds = append(cmds, cmd)
	case statusPathIntro:
		switch msg := msg.(type) {
		case intro.TimedoutMsg:
			m.status = statusWalking
			cmd = m.walk.Init()
		default:
			m.intro, cmd = m.intro.Update(msg)
		}
		cmds = append(cmds, cmd)
	case statusWalking:
		switch msg := msg.(type) {
		case walk.FinishedMsg:
			return m.finish(msg)
		case walk.SpeedChangedMsg:
			m.state.Speed = msg.Speed
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, walk.Keys.Open):
				return m.showOpen(statusWalking)
			case key.Matches(msg, walk.Keys.Settings):
				return m.showSettings(statusWalking)
			case key.Matches(msg, walk.Keys.About):
				return m.showAbout(statusWalking)
			}
			m.walk, cmd = m.walk.Update(msg)
		default:
			m.walk, cmd = m.walk.Update(msg)
		}
		cmds = append(cmds, cmd)
	case statusResult:
		switch msg := msg.(type) {
		case result.RestartMsg:
			m.walk.Restart()
			m.status = statusWalking
			cmd = m.walk.Resume()
		case result.OpenAnotherMsg:
			return m.showOpen(statusResult)
		case result.QuitMsg:
			return m.showQuit()
		case tea.KeyMsg:
			switch msg.String() {
			case "s":
				return m.showSettings(statusResult)
			case "?":
				return m.showAbout(statusResult)
			}
			m.result, cmd = m.result.Update(msg)
		default:
			m.result, cmd = m.result.Update(msg)
		}
		cmds = append(cmds, cmd)
	case statusQuitting:
		switch msg := msg.(type) {
		case quit.TimedoutMsg:
			if err := m.state.Save(); err != nil {
				log.Printf("save state: %v", err)
			}
			return m, tea.Quit
		default:
			m.quit, cmd = m.quit.Update(msg)
		}
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// finish records the outcome of the walk and shows the result page.
func (m Model) finish(msg walk.FinishedMsg) (Model, tea.Cmd) {
	prev, _ := m.state.Record(m.digest)
	t := m.walk.Tally()
	rec := state.Record{Steps: msg.Steps, Turns: t.Turns(), Final: msg.State.String()}
	if err := m.state.UpdateAndSave(m.digest, rec); err != nil {
		log.Printf("save record: %v", err)
	}
	log.Printf("%s: %s after %d steps", m.walk.Name(), msg.State, msg.Steps)
	m.result = result.New(m.walk.Name(), m.walk.Path(), t, prev.Best, pageWidth, pageHeight)
	m.result.SetSize(m.termWidth, m.termHeight)
	m.status = statusResult
	return m, nil
}

func (m Model) View() string {
	switch m.status {
	case statusStartSplash:
		return m.splash.View()
	case statusDoSettings:
		return m.settings.View()
	case statusAbout:
		return m.about.View()
	case statusOpenFile:
		return m.open.View()
	case statusPathIntro:
		return m.intro.View()
	case statusWalking:
		return m.walk.View()
	case statusResult:
		return m.result.View()
	case statusQuitting:
		return m.quit.View()
	}
	return ""
}
