package tally

import (
	"testing"

	"github.com/vinser/linwalk/internal/compass"
	"github.com/vinser/linwalk/internal/grid"
	"github.com/vinser/linwalk/internal/walker"
)

func cur(x, y int64, h compass.Heading) walker.Cursor {
	return walker.Cursor{Pos: grid.Position{X: x, Y: y}, Heading: h}
}

func TestObserve(t *testing.T) {
	moves := []walker.Cursor{
		cur(0, 0, compass.East),
		cur(1, 0, compass.East),
		cur(2, 0, compass.East),
		cur(3, 1, compass.NorthEast),
		cur(3, 2, compass.North),
		cur(2, 2, compass.West),
		cur(2, 1, compass.South),
		cur(2, 0, compass.South), // back on a visited cell
	}
	tl := New()
	tl.Start(moves[0])
	for i := 1; i < len(moves); i++ {
		tl.Observe(moves[i-1], moves[i])
	}
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"steps", tl.Steps(), 7},
		{"turns", tl.Turns(), 4},
		{"diagonal", tl.Diagonal(), 1},
		{"longest", tl.Longest(), 2},
		{"revisits", tl.Revisits(), 1},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
	if !tl.Visited(grid.Position{X: 3, Y: 2}) || tl.Visited(grid.Position{X: 9, Y: 9}) {
		t.Error("Visited() mismatch")
	}
}

func TestBest(t *testing.T) {
	tl := New()
	tl.SetBest(5)
	tl.Start(cur(0, 0, compass.East))
	if tl.Best() != 5 {
		t.Errorf("Best() = %d, want 5", tl.Best())
	}
	for i := int64(0); i < 8; i++ {
		tl.Observe(cur(i, 0, compass.East), cur(i+1, 0, compass.East))
	}
	if tl.Best() != 8 || tl.Longest() != 8 {
		t.Errorf("Best, Longest = %d, %d, want 8, 8", tl.Best(), tl.Longest())
	}
	tl.Reset()
	if tl.Steps() != 0 || tl.Revisits() != 0 || tl.Best() != 5 {
		t.Errorf("after Reset steps=%d best=%d", tl.Steps(), tl.Best())
	}
}
