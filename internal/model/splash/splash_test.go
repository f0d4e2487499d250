package splash

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestCrossesAndTimesOut(t *testing.T) {
	m := New(40, 12)
	now := time.Now()
	var cmd tea.Cmd
	for i := 0; i < 200; i++ {
		m, cmd = m.move(now)
		if m.pos > m.width {
			break
		}
		if !m.pauseUntil.IsZero() {
			if m.pos != m.width/2-spriteWidth/2 {
				t.Fatalf("paused at %d", m.pos)
			}
			if !strings.Contains(ansi.Strip(m.View()), "█▄▄▄ █") {
				t.Error("title not shown during the pause")
			}
			now = now.Add(middlePause + time.Millisecond)
		}
	}
	if _, done := cmd().(TimedoutMsg); !done {
		t.Fatal("splash never finished")
	}
	if !m.paused {
		t.Error("splash skipped the middle pause")
	}
	for x, seen := range m.trail {
		if !seen {
			t.Fatalf("column %d has no trail", x)
		}
	}
}

func TestKeys(t *testing.T) {
	m := New(40, 12)
	tests := []struct {
		key  tea.KeyMsg
		want tea.Msg
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}, MakeSettingsMsg{}},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")}, ShowAboutMsg{}},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, TimedoutMsg{}},
		{tea.KeyMsg{Type: tea.KeyEnter}, TimedoutMsg{}},
	}
	for _, tt := range tests {
		_, cmd := m.Update(tt.key)
		if cmd == nil || cmd() != tt.want {
			t.Errorf("%q: got %v", tt.key.String(), cmd)
		}
	}
}

func TestViewSize(t *testing.T) {
	m := New(10, 3)
	lines := strings.Split(strings.TrimSuffix(ansi.Strip(m.View()), "\n"), "\n")
	// banner rows, grid rows, key line
	if want := 3 + m.height + 1; len(lines) != want {
		t.Errorf("view has %d lines, want %d", len(lines), want)
	}
	for _, l := range lines[3 : 3+m.height] {
		if w := ansi.StringWidth(l); w != m.width {
			t.Errorf("grid row width %d, want %d", w, m.width)
		}
	}
}
