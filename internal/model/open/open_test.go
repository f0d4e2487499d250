package open

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestSuggestions(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.lin", "b.lin", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte{1}, 0o600); err != nil {
			t.Fatal(err)
		}
	}
	got := Suggestions(dir)
	for _, want := range []string{"demo:spiral", "demo:fork", filepath.Join(dir, "a.lin"), filepath.Join(dir, "b.lin")} {
		if !slices.Contains(got, want) {
			t.Errorf("suggestions %v miss %q", got, want)
		}
	}
	if slices.Contains(got, filepath.Join(dir, "notes.txt")) {
		t.Error("non-path file suggested")
	}
}

func TestEnterOpensTarget(t *testing.T) {
	m := New("", "", 60, 10)
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatal("empty prompt should not open anything")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("demo:loop")})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter returned no command")
	}
	msg, ok := cmd().(OpenFileMsg)
	if !ok || msg.Target != "demo:loop" {
		t.Errorf("enter sent %#v", cmd())
	}
}

func TestPrefilledAndCancel(t *testing.T) {
	m := New("last.lin", "", 60, 10)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if msg, ok := cmd().(OpenFileMsg); !ok || msg.Target != "last.lin" {
		t.Errorf("enter sent %#v", cmd())
	}
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := cmd().(CancelOpenMsg); !ok {
		t.Errorf("esc sent %#v", cmd())
	}
}

func TestErrorIsShown(t *testing.T) {
	m := New("", "", 60, 10)
	m.SetError(errors.New("pathfile: malformed stream"))
	if v := ansi.Strip(m.View()); !strings.Contains(v, "malformed stream") {
		t.Errorf("error missing from view:\n%s", v)
	}
}
