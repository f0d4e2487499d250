// Package walker runs the deterministic cursor automaton over a decoded path.
//
// A Path owns its own copy of the points and a single mutable Cursor. Each
// Step looks up the point under the cursor, turns its edge mask into
// cursor-relative space and lets compass.Choose pick the move. The first
// terminal outcome sticks until Restart.
package walker

import (
	"errors"
	"fmt"

	"github.com/vinser/linwalk/internal/compass"
	"github.com/vinser/linwalk/internal/grid"
	"github.com/vinser/linwalk/internal/pathfile"
)

// State of a walk.
type State uint8

const (
	Running State = iota
	// Branch means both 90° turns are open and the walk cannot pick one.
	Branch
	// Halted means only the way back is left.
	Halted
	// Failed means the graph is invalid under the cursor, see Err.
	Failed
)

var stateNames = [...]string{"running", "branch", "halted", "failed"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Terminal reports whether s ends the walk.
func (s State) Terminal() bool {
	return s != Running
}

var (
	ErrEmptyPath              = errors.New("walker: path has no points")
	ErrInvalidHeading         = errors.New("walker: invalid heading")
	ErrPointNotFound          = errors.New("walker: no point under cursor")
	ErrForwardDiagonalBranch  = errors.New("walker: illegal forward diagonal branch")
	ErrBackwardDiagonalBranch = errors.New("walker: illegal backward diagonal branch")
)

// Cursor is the walker position and facing.
type Cursor struct {
	Pos     grid.Position
	Heading compass.Heading
}

func (c Cursor) String() string {
	return fmt.Sprintf("%v %v", c.Pos, c.Heading)
}

// Path is one walk session over a fixed set of points.
// It must not be stepped from more than one goroutine.
type Path struct {
	points []grid.Point
	bounds grid.Bounds
	start  Cursor
	cursor Cursor
	state  State
	err    error
	steps  int
}

// New starts a walk at start. The points are copied.
func New(points []grid.Point, start Cursor) (*Path, error) {
	if len(points) == 0 {
		return nil, ErrEmptyPath
	}
	if !start.Heading.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHeading, start.Heading)
	}
	p := &Path{
		points: append([]grid.Point(nil), points...),
		bounds: grid.BoundsOf(points),
	}
	p.Restart(start)
	return p, nil
}

// Open starts a walk at the first point of f facing its cursor byte heading.
func Open(f *pathfile.File) (*Path, error) {
	pos, heading, ok := f.Start()
	if !ok {
		return nil, ErrEmptyPath
	}
	return New(f.Points, Cursor{Pos: pos, Heading: heading})
}

// Restart resets the session to a fresh walk from c over the same points.
func (p *Path) Restart(c Cursor) {
	p.start = c
	p.cursor = c
	p.state = Running
	p.err = nil
	p.steps = 0
}

// Rewind restarts from the cursor the session was started with.
func (p *Path) Rewind() {
	p.Restart(p.start)
}

// Step advances the cursor by one move. On a terminal outcome the cursor is
// left where it is and every later call reports the same state and error.
func (p *Path) Step() (State, error) {
	if p.state.Terminal() {
		return p.state, p.err
	}
	pt, ok := p.Current()
	if !ok {
		return p.fail(fmt.Errorf("%w at %v", ErrPointNotFound, p.cursor.Pos))
	}
	rel := compass.Relative(pt.Dirs, p.cursor.Heading)
	dir, verdict := compass.Choose(rel)
	switch verdict {
	case compass.Move:
		dx, dy, next := compass.Advance(p.cursor.Heading, dir)
		p.cursor = Cursor{Pos: p.cursor.Pos.Add(dx, dy), Heading: next}
		p.steps++
	case compass.Branch:
		p.state = Branch
	case compass.Halt:
		p.state = Halted
	case compass.ForwardDiagonal:
		return p.fail(fmt.Errorf("%w at %v (mask %v)", ErrForwardDiagonalBranch, p.cursor.Pos, pt.Dirs))
	case compass.BackwardDiagonal:
		return p.fail(fmt.Errorf("%w at %v (mask %v)", ErrBackwardDiagonalBranch, p.cursor.Pos, pt.Dirs))
	}
	return p.state, p.err
}

func (p *Path) fail(err error) (State, error) {
	p.state = Failed
	p.err = err
	return p.state, p.err
}

// Current returns the point under the cursor, first match wins.
func (p *Path) Current() (grid.Point, bool) {
	i, ok := grid.Find(p.points, p.cursor.Pos)
	if !ok {
		return grid.Point{}, false
	}
	return p.points[i], true
}

func (p *Path) Cursor() Cursor { return p.cursor }
func (p *Path) Start() Cursor { return p.start }
func (p *Path) State() State { return p.state }
func (p *Path) Err() error { return p.err }
func (p *Path) Steps() int { return p.steps }
func (p *Path) Bounds() grid.Bounds { return p.bounds }
func (p *Path) Points() []grid.Point { return p.points }
