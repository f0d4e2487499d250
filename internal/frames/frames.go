// Package frames rasterizes walk frames into images: every point as a dot
// with half-unit stubs toward its edges, the covered trail, and the cursor as
// an arrow turned to its heading.
package frames

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/vinser/linwalk/internal/compass"
	"github.com/vinser/linwalk/internal/grid"
	"github.com/vinser/linwalk/internal/style"
	"github.com/vinser/linwalk/internal/walker"
)

const (
	Unit     = 20
	Margin   = 20
	HalfUnit = (Unit + 1) / 2
	// MaxSide limits either image dimension in pixels.
	MaxSide = 1 << 14
)

var ErrTooLarge = errors.New("frames: path too large to rasterize")

// Renderer draws frames for one palette.
type Renderer struct {
	Palette style.Palette
	Label   bool // print step and cursor in the top-left margin
	face    font.Face
}

func New(p style.Palette) *Renderer {
	return &Renderer{Palette: p, Label: true, face: basicfont.Face7x13}
}

// Size returns the image size for a bounds rectangle.
func (r *Renderer) Size(b grid.Bounds) (w, h int, err error) {
	bw, bh := b.Width()-1, b.Height()-1
	if bw < 0 || bh < 0 || bw > (MaxSide-2*Margin-1)/Unit || bh > (MaxSide-2*Margin-1)/Unit {
		return 0, 0, fmt.Errorf("%w: %dx%d grid", ErrTooLarge, bw+1, bh+1)
	}
	return Unit*int(bw) + 2*Margin + 1, Unit*int(bh) + 2*Margin + 1, nil
}

// Frame renders the points with the cursor at the last trail entry. The
// trail lists the cursors visited so far, oldest first.
func (r *Renderer) Frame(points []grid.Point, b grid.Bounds, trail []walker.Cursor, label string) (*image.RGBA, error) {
	w, h, err := r.Size(b)
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(rgba(r.Palette.Background)), image.Point{}, draw.Src)

	edge, point := rgba(r.Palette.Edge), rgba(r.Palette.Point)
	for _, p := range points {
		x, y, ok := toPixel(b, p.Pos)
		if !ok {
			continue
		}
		for i := 0; i < 8; i++ {
			if p.Dirs&compass.Bit(i) != 0 {
				dx, dy := pixelDelta(compass.Bit(i))
				line(img, x, y, dx, dy, HalfUnit, edge)
			}
		}
		img.SetRGBA(x, y, point)
	}

	trailColor := rgba(r.Palette.Trail)
	for i := 1; i < len(trail); i++ {
		x0, y0, ok0 := toPixel(b, trail[i-1].Pos)
		x1, y1, ok1 := toPixel(b, trail[i].Pos)
		if ok0 && ok1 {
			segment(img, x0, y0, x1, y1, trailColor)
		}
	}

	if len(trail) > 0 {
		c := trail[len(trail)-1]
		if x, y, ok := toPixel(b, c.Pos); ok {
			r.cursor(img, x, y, c.Heading)
		}
	}
	if r.Label && label != "" {
		d := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(point),
			Face: r.face,
			Dot:  fixed.P(2, r.face.Metrics().Ascent.Ceil()+1),
		}
		d.DrawString(label)
	}
	return img, nil
}

// toPixel maps a grid position to the pixel of its dot, y flipped.
func toPixel(b grid.Bounds, pos grid.Position) (x, y int, ok bool) {
	col, row, ok := b.Normalize(pos)
	if !ok {
		return 0, 0, false
	}
	return int(col)*Unit + Margin, int(row)*Unit + Margin, true
}

// pixelDelta is the screen step of a world octant; screen y grows down.
func pixelDelta(world compass.Mask) (dx, dy int) {
	wx, wy := compass.Delta(world)
	return int(wx), -int(wy)
}

// line sets n pixels stepping from x, y, excluding the start.
func line(img *image.RGBA, x, y, dx, dy, n int, c color.RGBA) {
	for i := 1; i <= n; i++ {
		img.SetRGBA(x+i*dx, y+i*dy, c)
	}
}

// segment joins two cursor pixels; they are always on one octant line.
func segment(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx, dy := sign(x1-x0), sign(y1-y0)
	n := max(abs(x1-x0), abs(y1-y0))
	line(img, x0, y0, dx, dy, n, c)
}

// arrow is the cursor outline facing east, in pixels around its center.
var arrow = [][2]float64{{9, 0}, {-7, -7}, {-3, 0}, {-7, 7}}

const borderScale = 1.3

func (r *Renderer) cursor(img *image.RGBA, cx, cy int, h compass.Heading) {
	// The cursor box spans the margin so it never leaves the image.
	const half = Margin
	rect := image.Rect(cx-half, cy-half, cx+half, cy+half)
	// Rotating counter-clockwise on screen means negating the y part.
	a := float64(h%8) * math.Pi / 4
	sin, cos := math.Sincos(a)
	fill := func(scale float64, c style.RGB) {
		z := vector.NewRasterizer(rect.Dx(), rect.Dy())
		for i, p := range arrow {
			x := scale * (p[0]*cos + p[1]*sin)
			y := scale * (-p[0]*sin + p[1]*cos)
			px, py := float32(half+0.5+x), float32(half+0.5+y)
			if i == 0 {
				z.MoveTo(px, py)
			} else {
				z.LineTo(px, py)
			}
		}
		z.ClosePath()
		z.Draw(img, rect, image.NewUniform(rgba(c)), image.Point{})
	}
	fill(borderScale, r.Palette.Border)
	fill(1, r.Palette.Cursor)
}

func rgba(c style.RGB) color.RGBA {
	return color.RGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 0xFF}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
