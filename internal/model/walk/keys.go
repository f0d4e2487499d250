package walk

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Pause    key.Binding
	Step     key.Binding
	Restart  key.Binding
	Faster   key.Binding
	Slower   key.Binding
	Sprite   key.Binding
	Open     key.Binding
	Settings key.Binding
	About    key.Binding
	Quit     key.Binding
}

// Keys are the walk screen bindings. Open, Settings, About and Quit are
// handled by the application around the walk.
var Keys = keyMap{
	Pause:    key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "pause")),
	Step:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "step")),
	Restart:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
	Faster:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
	Slower:   key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "slower")),
	Sprite:   key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "zoom")),
	Open:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open")),
	Settings: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
	About:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "about")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Step, k.Restart, k.Faster, k.Slower, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Step, k.Restart},
		{k.Faster, k.Slower, k.Sprite},
		{k.Open, k.Settings, k.About, k.Quit},
	}
}
