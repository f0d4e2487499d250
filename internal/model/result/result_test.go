package result

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/vinser/linwalk/internal/compass"
	"github.com/vinser/linwalk/internal/grid"
	"github.com/vinser/linwalk/internal/tally"
	"github.com/vinser/linwalk/internal/walker"
)

// walk runs points from the first point heading east and returns the
// finished path with its tally.
func walk(t *testing.T, points ...grid.Point) (*walker.Path, *tally.Tally) {
	t.Helper()
	p, err := walker.New(points, walker.Cursor{Pos: points[0].Pos, Heading: compass.East})
	if err != nil {
		t.Fatal(err)
	}
	tl := tally.New()
	tl.Start(p.Cursor())
	for !p.State().Terminal() {
		prev := p.Cursor()
		if st, _ := p.Step(); st == walker.Running {
			tl.Observe(prev, p.Cursor())
		}
	}
	return p, tl
}

func TestHalted(t *testing.T) {
	p, tl := walk(t,
		grid.Point{Pos: grid.Position{X: 0, Y: 0}, Dirs: compass.East.Mask()},
		grid.Point{Pos: grid.Position{X: 1, Y: 0}, Dirs: compass.West.Mask() | compass.North.Mask()},
		grid.Point{Pos: grid.Position{X: 1, Y: 1}, Dirs: compass.South.Mask()},
	)
	m := New("hook.lin", p, tl, 0, 50, 16)
	v := ansi.Strip(m.View())
	for _, want := range []string{"End of the line", "halted after 2 steps", "turns", "(1,1) N"} {
		if !strings.Contains(v, want) {
			t.Errorf("view misses %q:\n%s", want, v)
		}
	}
	if m.NewBest() {
		t.Error("first walk reported as a new best")
	}
}

func TestFailedShowsError(t *testing.T) {
	p, tl := walk(t, grid.Point{Pos: grid.Position{X: 0, Y: 0}, Dirs: compass.East.Mask()})
	m := New("gap.lin", p, tl, 0, 50, 16)
	if !errors.Is(p.Err(), walker.ErrPointNotFound) {
		t.Fatalf("err = %v", p.Err())
	}
	if v := ansi.Strip(m.View()); !strings.Contains(v, "no point under cursor") {
		t.Errorf("error missing from view:\n%s", v)
	}
}

func TestNewBest(t *testing.T) {
	p, tl := walk(t,
		grid.Point{Pos: grid.Position{X: 0, Y: 0}, Dirs: compass.East.Mask()},
		grid.Point{Pos: grid.Position{X: 1, Y: 0}, Dirs: compass.West.Mask() | compass.East.Mask()},
		grid.Point{Pos: grid.Position{X: 2, Y: 0}, Dirs: compass.West.Mask()},
	)
	if m := New("line.lin", p, tl, 1, 50, 16); !m.NewBest() {
		t.Error("two steps over a best of one is a new best")
	}
	if m := New("line.lin", p, tl, 2, 50, 16); m.NewBest() {
		t.Error("equal walk is not a new best")
	}
}

func TestKeys(t *testing.T) {
	p, tl := walk(t, grid.Point{Pos: grid.Position{X: 0, Y: 0}})
	m := New("dot.lin", p, tl, 0, 50, 16)
	tests := []struct {
		key  string
		want tea.Msg
	}{
		{"r", RestartMsg{}},
		{"o", OpenAnotherMsg{}},
		{"q", QuitMsg{}},
	}
	for _, tt := range tests {
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.key)})
		if cmd == nil || cmd() != tt.want {
			t.Errorf("%s: got %v", tt.key, cmd)
		}
	}
}
