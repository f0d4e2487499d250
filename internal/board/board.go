// Package board draws a path and its cursor on the terminal with lipgloss.
//
// One grid position becomes a sprite cell whose size depends on the sprite
// setting. Larger sprites have room for the connectors between points.
package board

import (
	"strings"

	"github.com/vinser/linwalk/internal/compass"
	"github.com/vinser/linwalk/internal/grid"
	"github.com/vinser/linwalk/internal/state"
	"github.com/vinser/linwalk/internal/style"
	"github.com/vinser/linwalk/internal/walker"
)

type Board struct {
	points map[grid.Position]compass.Mask
	bounds grid.Bounds
	size   string
	cellW  int
	cellH  int
	styles style.Board
}

// New indexes the points for drawing. Later duplicates are ignored so the
// board shows what the walker sees.
func New(points []grid.Point, spriteSize string, p style.Palette) *Board {
	b := &Board{
		points: make(map[grid.Position]compass.Mask, len(points)),
		bounds: grid.BoundsOf(points),
		styles: style.BoardStyles(p),
	}
	for _, pt := range points {
		if _, dup := b.points[pt.Pos]; !dup {
			b.points[pt.Pos] = pt.Dirs
		}
	}
	b.SetSpriteSize(spriteSize)
	return b
}

// SetSpriteSize switches between the small, medium and large sprites.
func (b *Board) SetSpriteSize(size string) {
	b.size = size
	switch size {
	case state.SpriteSmall:
		b.cellW, b.cellH = 1, 1
	case state.SpriteLarge:
		b.cellW, b.cellH = 2, 2
	default:
		b.size = state.SpriteMedium
		b.cellW, b.cellH = 2, 1
	}
}

func (b *Board) SetPalette(p style.Palette) {
	b.styles = style.BoardStyles(p)
}

// CellSize returns the terminal cells used by one grid position.
func (b *Board) CellSize() (w, h int) {
	return b.cellW, b.cellH
}

// Size returns the terminal size of the whole board.
func (b *Board) Size() (w, h int) {
	if len(b.points) == 0 {
		return 0, 0
	}
	return int(b.bounds.Width()) * b.cellW, int(b.bounds.Height()) * b.cellH
}

// Render draws the part of the board that fits into cols x rows terminal
// cells. When the board is larger the window follows the cursor.
func (b *Board) Render(c walker.Cursor, visited func(grid.Position) bool, cols, rows int) string {
	if visited == nil {
		visited = func(grid.Position) bool { return false }
	}
	win := b.window(c.Pos, cols/b.cellW, rows/b.cellH)

	var sb strings.Builder
	for i := int64(0); i < win.rows; i++ {
		y := win.top - i
		for sub := 0; sub < b.cellH; sub++ {
			if i > 0 || sub > 0 {
				sb.WriteByte('\n')
			}
			for j := int64(0); j < win.cols; j++ {
				pos := grid.Position{X: win.left + j, Y: y}
				sb.WriteString(b.cell(pos, sub, c, visited))
			}
		}
	}
	return sb.String()
}

type window struct {
	left, top  int64
	cols, rows int64
}

// window picks the grid rectangle to draw: the whole bounds when it fits,
// otherwise a cols x rows slice centered on the cursor and clamped to the
// bounds.
func (b *Board) window(focus grid.Position, cols, rows int) window {
	w := window{
		cols: min(b.bounds.Width(), int64(max(cols, 1))),
		rows: min(b.bounds.Height(), int64(max(rows, 1))),
	}
	w.left = clamp(focus.X-w.cols/2, b.bounds.MinX, b.bounds.MaxX-w.cols+1)
	w.top = clamp(focus.Y+w.rows/2, b.bounds.MinY+w.rows-1, b.bounds.MaxY)
	return w
}

func clamp(v, lo, hi int64) int64 {
	return max(lo, min(hi, v))
}

// cell renders sub-row sub of the sprite at pos.
func (b *Board) cell(pos grid.Position, sub int, c walker.Cursor, visited func(grid.Position) bool) string {
	dirs, ok := b.points[pos]
	if sub == 0 {
		head := b.styles.Blank.Render(" ")
		switch {
		case pos == c.Pos:
			head = b.styles.Cursor.Render(Arrow(c.Heading))
		case !ok:
		case visited(pos):
			head = b.styles.Trail.Render(Glyph(dirs))
		default:
			head = b.styles.Point.Render(Glyph(dirs))
		}
		if b.cellW == 1 {
			return head
		}
		if ok && dirs.Has(compass.East.Mask()) {
			return head + b.styles.Edge.Render("─")
		}
		return head + b.styles.Blank.Render(" ")
	}

	// Connector row below the point: south edge under the glyph, the
	// diagonals to the next column beside it.
	south := " "
	if ok && dirs.Has(compass.South.Mask()) {
		south = "│"
	}
	right := grid.Position{X: pos.X + 1, Y: pos.Y}
	down := ok && dirs.Has(compass.SouthEast.Mask())
	up := b.points[right].Has(compass.SouthWest.Mask())
	diag := " "
	switch {
	case down && up:
		diag = "╳"
	case down:
		diag = "╲"
	case up:
		diag = "╱"
	}
	return b.styles.Edge.Render(south + diag)
}
