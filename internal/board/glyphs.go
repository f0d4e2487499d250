package board

import "github.com/vinser/linwalk/internal/compass"

// axisGlyphs is indexed by the axis edges E=1, N=2, W=4, S=8.
var axisGlyphs = [16]string{
	"·", "╶", "╵", "└",
	"╴", "─", "┘", "┴",
	"╷", "┌", "│", "├",
	"┐", "┬", "┤", "┼",
}

var arrows = [8]string{"→", "↗", "↑", "↖", "←", "↙", "↓", "↘"}

// Arrow returns the cursor sprite for a heading.
func Arrow(h compass.Heading) string {
	if !h.Valid() {
		return "?"
	}
	return arrows[h]
}

// Glyph returns a one-cell picture of a point's edges. Axis edges use box
// drawing; a point with only diagonal edges shows its slant.
func Glyph(m compass.Mask) string {
	axis := 0
	for i, h := range []compass.Heading{compass.East, compass.North, compass.West, compass.South} {
		if m.Has(h.Mask()) {
			axis |= 1 << i
		}
	}
	if axis != 0 {
		return axisGlyphs[axis]
	}
	rising := m.Has(compass.NorthEast.Mask()) || m.Has(compass.SouthWest.Mask())
	falling := m.Has(compass.NorthWest.Mask()) || m.Has(compass.SouthEast.Mask())
	switch {
	case rising && falling:
		return "╳"
	case rising:
		return "╱"
	case falling:
		return "╲"
	}
	return "·"
}
