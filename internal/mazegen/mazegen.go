// Package mazegen turns the solution of a generated maze into a .lin path.
// The walker follows the result from the maze entrance and halts at the exit.
package mazegen

import (
	"errors"
	"fmt"

	"github.com/vinser/linwalk/internal/compass"
	"github.com/vinser/linwalk/internal/grid"
	"github.com/vinser/linwalk/internal/pathfile"
	"github.com/vinser/maze"
)

const (
	Width  = 21
	Height = 15
	// Central den left free by the generator
	DenWidth  = 5
	DenHeight = 3
	// Bias defines maze complexity
	Bias = 0.2
)

var (
	ErrNoSolution  = errors.New("mazegen: maze has no solution")
	ErrShortRoute  = errors.New("mazegen: route needs at least two positions")
	ErrBrokenRoute = errors.New("mazegen: route positions are not neighbours")
	ErrRevisit     = errors.New("mazegen: route visits a position twice")
)

// Options select the maze. Zero sizes use Width and Height.
type Options struct {
	Width, Height int
	Seed          int64
	// Smooth cuts staircase corners into diagonal moves.
	Smooth bool
}

// Generate builds a maze, solves it and encodes the solution route.
func Generate(o Options) (*pathfile.File, error) {
	if o.Width == 0 {
		o.Width = Width
	}
	if o.Height == 0 {
		o.Height = Height
	}
	m, err := maze.New(o.Width, o.Height, DenWidth, DenHeight)
	if err != nil {
		return nil, err
	}
	m.Generate(o.Seed, nil, nil, nil, "top", Bias)
	solution, ok := m.Solve()
	if !ok {
		return nil, fmt.Errorf("%w: width=%d, height=%d, seed=%d", ErrNoSolution, o.Width, o.Height, o.Seed)
	}
	// Maze rows grow downward, path y grows upward.
	route := make([]grid.Position, len(solution))
	for i, p := range solution {
		route[i] = grid.Position{X: int64(p.X), Y: int64(m.Height() - 1 - p.Y)}
	}
	return FromRoute(route, o.Smooth)
}

// FromRoute encodes a self-avoiding route of king-move neighbours. Every
// position gets the edges to its predecessor and successor, and the cursor
// starts on the first position facing the second.
func FromRoute(route []grid.Position, smooth bool) (*pathfile.File, error) {
	if len(route) < 2 {
		return nil, ErrShortRoute
	}
	if smooth {
		route = cutCorners(route)
	}
	seen := make(map[grid.Position]bool, len(route))
	points := make([]grid.Point, len(route))
	var heading compass.Heading
	for i, pos := range route {
		if seen[pos] {
			return nil, fmt.Errorf("%w: %v", ErrRevisit, pos)
		}
		seen[pos] = true
		points[i].Pos = pos
		if i+1 < len(route) {
			h, ok := direction(pos, route[i+1])
			if !ok {
				return nil, fmt.Errorf("%w: %v to %v", ErrBrokenRoute, pos, route[i+1])
			}
			points[i].Dirs |= h.Mask()
			if i == 0 {
				heading = h
			}
		}
		if i > 0 {
			h, _ := direction(pos, route[i-1])
			points[i].Dirs |= h.Mask()
		}
	}
	return &pathfile.File{Heading: heading, Points: points}, nil
}

// direction returns the heading that steps from a onto b.
func direction(a, b grid.Position) (compass.Heading, bool) {
	for h := compass.East; h <= compass.SouthEast; h++ {
		if a.Step(h.Mask()) == b {
			return h, true
		}
	}
	return 0, false
}

// cutCorners drops every position whose neighbours along the route already
// touch diagonally.
func cutCorners(route []grid.Position) []grid.Position {
	out := []grid.Position{route[0]}
	for i := 1; i < len(route)-1; i++ {
		prev, next := out[len(out)-1], route[i+1]
		if dx, dy := next.X-prev.X, next.Y-prev.Y; (dx == 1 || dx == -1) && (dy == 1 || dy == -1) {
			continue
		}
		out = append(out, route[i])
	}
	return append(out, route[len(route)-1])
}
