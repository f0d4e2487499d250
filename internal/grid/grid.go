// Package grid holds the integer grid types shared by the decoder, the walker
// and the renderers.
package grid

import (
	"fmt"

	"github.com/vinser/linwalk/internal/compass"
)

// Position represents coordinates on the path grid. Y grows upward.
type Position struct {
	X, Y int64
}

// Add returns the position moved by dx, dy.
func (p Position) Add(dx, dy int64) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Step returns the neighbour of p in the given world direction.
func (p Position) Step(world compass.Mask) Position {
	dx, dy := compass.Delta(world)
	return p.Add(dx, dy)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Point is a graph node: a position plus the directions of its edges.
type Point struct {
	Pos  Position
	Dirs compass.Mask
}

// Find returns the index of the first point at pos.
func Find(points []Point, pos Position) (int, bool) {
	for i, p := range points {
		if p.Pos == pos {
			return i, true
		}
	}
	return -1, false
}
