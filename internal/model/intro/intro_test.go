package intro

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/vinser/linwalk/internal/compass"
	"github.com/vinser/linwalk/internal/grid"
	"github.com/vinser/linwalk/internal/state"
	"github.com/vinser/linwalk/internal/walker"
)

func newPath(t *testing.T) *walker.Path {
	t.Helper()
	points := []grid.Point{
		{Pos: grid.Position{X: 0, Y: 0}, Dirs: compass.East.Mask()},
		{Pos: grid.Position{X: 1, Y: 0}, Dirs: compass.West.Mask()},
	}
	p, err := walker.New(points, walker.Cursor{Pos: points[0].Pos, Heading: compass.East})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func timedout(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(TimedoutMsg)
	return ok
}

func TestTimesOut(t *testing.T) {
	m := New("two.lin", newPath(t), state.Record{}, false, 40, 12)
	if _, cmd := m.Update(TickMsg(time.Now())); timedout(cmd) {
		t.Fatal("card closed too early")
	}
	if _, cmd := m.Update(TickMsg(time.Now().Add(introPeriod + time.Second))); !timedout(cmd) {
		t.Fatal("card did not close")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}); !timedout(cmd) {
		t.Fatal("space did not skip the card")
	}
}

func TestViewShowsSummary(t *testing.T) {
	rec := state.Record{Steps: 12, Final: "halted", Best: 30}
	v := ansi.Strip(New("two.lin", newPath(t), rec, true, 40, 14).View())
	for _, want := range []string{"two.lin", "points", "2x1", "halted after 12 steps", "30 steps"} {
		if !strings.Contains(v, want) {
			t.Errorf("view misses %q:\n%s", want, v)
		}
	}
}
