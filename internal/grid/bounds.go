package grid

import "math"

// Bounds is the inclusive bounding rectangle of a point set.
// The zero value describes the empty set.
type Bounds struct {
	MinX, MinY, MaxX, MaxY int64
}

// BoundsOf folds all point positions into their bounding rectangle.
func BoundsOf(points []Point) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{MinX: math.MaxInt64, MinY: math.MaxInt64, MaxX: math.MinInt64, MaxY: math.MinInt64}
	for _, p := range points {
		b.MinX = min(b.MinX, p.Pos.X)
		b.MinY = min(b.MinY, p.Pos.Y)
		b.MaxX = max(b.MaxX, p.Pos.X)
		b.MaxY = max(b.MaxY, p.Pos.Y)
	}
	return b
}

// Contains reports whether pos lies inside b.
func (b Bounds) Contains(pos Position) bool {
	return b.MinX <= pos.X && pos.X <= b.MaxX && b.MinY <= pos.Y && pos.Y <= b.MaxY
}

// Width is the number of grid columns covered by b.
func (b Bounds) Width() int64 {
	return b.MaxX - b.MinX + 1
}

// Height is the number of grid rows covered by b.
func (b Bounds) Height() int64 {
	return b.MaxY - b.MinY + 1
}

// Normalize maps pos to a column and row relative to the top-left corner.
// Rows are flipped so that a larger y lands higher on screen.
func (b Bounds) Normalize(pos Position) (col, row int64, ok bool) {
	if !b.Contains(pos) {
		return 0, 0, false
	}
	return pos.X - b.MinX, b.MaxY - pos.Y, true
}
