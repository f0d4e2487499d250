package walker

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vinser/linwalk/internal/compass"
	"github.com/vinser/linwalk/internal/grid"
	"github.com/vinser/linwalk/internal/pathfile"
)

func at(x, y int64) grid.Position {
	return grid.Position{X: x, Y: y}
}

func pt(x, y int64, dirs compass.Mask) grid.Point {
	return grid.Point{Pos: at(x, y), Dirs: dirs}
}

// mustNew starts a walk at the first point facing east.
func mustNew(t *testing.T, points ...grid.Point) *Path {
	t.Helper()
	p, err := New(points, Cursor{Pos: points[0].Pos, Heading: compass.East})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return p
}

func TestStepOutcomes(t *testing.T) {
	const (
		e  = compass.Mask(1 << compass.East)
		ne = compass.Mask(1 << compass.NorthEast)
		n  = compass.Mask(1 << compass.North)
		nw = compass.Mask(1 << compass.NorthWest)
		w  = compass.Mask(1 << compass.West)
		sw = compass.Mask(1 << compass.SouthWest)
		s  = compass.Mask(1 << compass.South)
		se = compass.Mask(1 << compass.SouthEast)
	)
	tests := []struct {
		name   string
		points []grid.Point
		state  State
		err    error
		cursor Cursor
		steps  int
	}{
		{
			name:   "straight line halts at the end",
			points: []grid.Point{pt(0, 0, e), pt(1, 0, e|w), pt(2, 0, w)},
			state:  Halted,
			cursor: Cursor{Pos: at(2, 0), Heading: compass.East},
			steps:  2,
		},
		{
			name:   "left turn changes heading",
			points: []grid.Point{pt(0, 0, e), pt(1, 0, w|n), pt(1, 1, s)},
			state:  Halted,
			cursor: Cursor{Pos: at(1, 1), Heading: compass.North},
			steps:  2,
		},
		{
			name:   "ahead wins over side turns",
			points: []grid.Point{pt(0, 0, e|n|s), pt(1, 0, w)},
			state:  Halted,
			cursor: Cursor{Pos: at(1, 0), Heading: compass.East},
			steps:  1,
		},
		{
			name:   "veer wins over side turns",
			points: []grid.Point{pt(0, 0, ne|n|s), pt(1, 1, sw)},
			state:  Halted,
			cursor: Cursor{Pos: at(1, 1), Heading: compass.NorthEast},
			steps:  1,
		},
		{
			name:   "right veer alone",
			points: []grid.Point{pt(0, 0, se), pt(1, -1, nw)},
			state:  Halted,
			cursor: Cursor{Pos: at(1, -1), Heading: compass.SouthEast},
			steps:  1,
		},
		{
			name:   "side turns branch",
			points: []grid.Point{pt(0, 0, e), pt(1, 0, w|n|s)},
			state:  Branch,
			cursor: Cursor{Pos: at(1, 0), Heading: compass.East},
			steps:  1,
		},
		{
			name:   "both veers fail",
			points: []grid.Point{pt(0, 0, e), pt(1, 0, w|ne|se)},
			state:  Failed,
			err:    ErrForwardDiagonalBranch,
			cursor: Cursor{Pos: at(1, 0), Heading: compass.East},
			steps:  1,
		},
		{
			name:   "both back turns fail",
			points: []grid.Point{pt(0, 0, e), pt(1, 0, w|nw|sw)},
			state:  Failed,
			err:    ErrBackwardDiagonalBranch,
			cursor: Cursor{Pos: at(1, 0), Heading: compass.East},
			steps:  1,
		},
		{
			name:   "back left turn",
			points: []grid.Point{pt(0, 0, e), pt(1, 0, w|nw), pt(0, 1, se)},
			state:  Halted,
			cursor: Cursor{Pos: at(0, 1), Heading: compass.NorthWest},
			steps:  2,
		},
		{
			name:   "edge into nowhere",
			points: []grid.Point{pt(0, 0, e)},
			state:  Failed,
			err:    ErrPointNotFound,
			cursor: Cursor{Pos: at(1, 0), Heading: compass.East},
			steps:  1,
		},
		{
			name:   "isolated point halts",
			points: []grid.Point{pt(0, 0, 0)},
			state:  Halted,
			cursor: Cursor{Pos: at(0, 0), Heading: compass.East},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustNew(t, tt.points...)
			tr := p.Run(100)
			if tr.State != tt.state {
				t.Errorf("state = %v, want %v", tr.State, tt.state)
			}
			if tt.err == nil && tr.Err != nil {
				t.Errorf("err = %v, want nil", tr.Err)
			}
			if tt.err != nil && !errors.Is(tr.Err, tt.err) {
				t.Errorf("err = %v, want %v", tr.Err, tt.err)
			}
			if p.Cursor() != tt.cursor {
				t.Errorf("cursor = %v, want %v", p.Cursor(), tt.cursor)
			}
			if p.Steps() != tt.steps {
				t.Errorf("steps = %d, want %d", p.Steps(), tt.steps)
			}
		})
	}
}

func TestHeadingRotatesMask(t *testing.T) {
	// Facing west the south-west edge is a left veer.
	points := []grid.Point{
		pt(5, 5, compass.West.Mask()),
		pt(4, 5, compass.East.Mask()|compass.SouthWest.Mask()),
		pt(3, 4, compass.NorthEast.Mask()),
	}
	p, err := New(points, Cursor{Pos: at(5, 5), Heading: compass.West})
	if err != nil {
		t.Fatal(err)
	}
	tr := p.Run(0)
	want := []Cursor{
		{at(5, 5), compass.West},
		{at(4, 5), compass.West},
		{at(3, 4), compass.SouthWest},
	}
	if !reflect.DeepEqual(tr.Cursors, want) {
		t.Errorf("trace = %v, want %v", tr.Cursors, want)
	}
	if tr.State != Halted {
		t.Errorf("state = %v, want halted", tr.State)
	}
}

func TestTerminalIsSticky(t *testing.T) {
	p := mustNew(t, pt(0, 0, compass.East.Mask()))
	if s, err := p.Step(); s != Running || err != nil {
		t.Fatalf("first Step() = %v, %v", s, err)
	}
	s, err := p.Step()
	if s != Failed || !errors.Is(err, ErrPointNotFound) {
		t.Fatalf("second Step() = %v, %v", s, err)
	}
	c := p.Cursor()
	for i := 0; i < 3; i++ {
		s2, err2 := p.Step()
		if s2 != s || err2 != err {
			t.Errorf("Step() after failure = %v, %v", s2, err2)
		}
		if p.Cursor() != c || p.Steps() != 1 {
			t.Errorf("cursor moved after failure: %v", p.Cursor())
		}
	}
}

func TestDeterminism(t *testing.T) {
	// A closed square loop never terminates, so both runs hit the limit.
	points := []grid.Point{
		pt(0, 0, compass.East.Mask()|compass.North.Mask()),
		pt(1, 0, compass.West.Mask()|compass.North.Mask()),
		pt(1, 1, compass.South.Mask()|compass.West.Mask()),
		pt(0, 1, compass.East.Mask()|compass.South.Mask()),
	}
	start := Cursor{Pos: at(0, 0), Heading: compass.East}
	a, _ := New(points, start)
	b, _ := New(points, start)
	ta, tb := a.Run(50), b.Run(50)
	if !reflect.DeepEqual(ta, tb) {
		t.Fatal("two runs over the same input diverged")
	}
	if ta.Len() != 51 || ta.State != Running {
		t.Errorf("got %d cursors in state %v, want 51 running", ta.Len(), ta.State)
	}
	// The lap closes facing south at the corner, then repeats from (1,0).
	if ta.Cursors[5] != ta.Cursors[1] || ta.Cursors[4].Pos != start.Pos {
		t.Errorf("lap = %v, want a period of 4 moves", ta.Cursors[:6])
	}
	for _, c := range ta.Cursors {
		if !a.Bounds().Contains(c.Pos) {
			t.Errorf("cursor %v left bounds %+v", c, a.Bounds())
		}
	}
}

func TestRestart(t *testing.T) {
	points := []grid.Point{
		pt(0, 0, compass.East.Mask()),
		pt(1, 0, compass.West.Mask()|compass.East.Mask()),
		pt(2, 0, compass.West.Mask()),
	}
	p := mustNew(t, points...)
	first := p.Run(0)

	p.Rewind()
	if p.State() != Running || p.Steps() != 0 || p.Err() != nil {
		t.Fatalf("after Rewind state=%v steps=%d err=%v", p.State(), p.Steps(), p.Err())
	}
	if again := p.Run(0); !reflect.DeepEqual(first, again) {
		t.Errorf("rewound run = %+v, want %+v", again, first)
	}

	// Walking back from the far end.
	p.Restart(Cursor{Pos: at(2, 0), Heading: compass.West})
	tr := p.Run(0)
	if tr.State != Halted || p.Cursor().Pos != at(0, 0) {
		t.Errorf("reverse run ended %v at %v", tr.State, p.Cursor())
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(nil, Cursor{}); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("New(nil) error = %v, want ErrEmptyPath", err)
	}
	if _, err := New([]grid.Point{pt(0, 0, 0)}, Cursor{Heading: 9}); !errors.Is(err, ErrInvalidHeading) {
		t.Errorf("New(heading 9) error = %v, want ErrInvalidHeading", err)
	}
	if _, err := Open(&pathfile.File{Heading: compass.North}); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("Open(empty) error = %v, want ErrEmptyPath", err)
	}
}

func TestOpenDecoded(t *testing.T) {
	// Cursor north, (0,0) N, (0,1) S.
	f, err := pathfile.Decode([]byte{0x04, 0x00, 0x00, 0x04, 0x00, 0x01, 0x40})
	if err != nil {
		t.Fatal(err)
	}
	p, err := Open(f)
	if err != nil {
		t.Fatal(err)
	}
	tr := p.Run(0)
	if tr.State != Halted || tr.Len() != 2 || p.Cursor().Pos != at(0, 1) {
		t.Errorf("run = %+v", tr)
	}
}

func TestPointsAreCopied(t *testing.T) {
	points := []grid.Point{pt(0, 0, compass.East.Mask()), pt(1, 0, compass.West.Mask())}
	p := mustNew(t, points...)
	points[1].Dirs = compass.North.Mask()
	if tr := p.Run(0); tr.State != Halted {
		t.Errorf("caller mutation leaked into the walk: %v", tr.State)
	}
}
