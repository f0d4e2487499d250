package frames

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/vinser/linwalk/internal/compass"
	"github.com/vinser/linwalk/internal/grid"
	"github.com/vinser/linwalk/internal/style"
	"github.com/vinser/linwalk/internal/walker"
)

func pt(x, y int64, dirs compass.Mask) grid.Point {
	return grid.Point{Pos: grid.Position{X: x, Y: y}, Dirs: dirs}
}

func line3() []grid.Point {
	e, w := compass.East.Mask(), compass.West.Mask()
	return []grid.Point{pt(0, 0, e), pt(1, 0, e|w), pt(2, 0, w)}
}

func TestSize(t *testing.T) {
	r := New(style.Day)
	tests := []struct {
		b    grid.Bounds
		w, h int
	}{
		{grid.Bounds{}, 41, 41},
		{grid.Bounds{MinX: 0, MinY: 0, MaxX: 2, MaxY: 0}, 81, 41},
		{grid.Bounds{MinX: -3, MinY: 5, MaxX: 1, MaxY: 9}, 121, 121},
	}
	for _, tt := range tests {
		w, h, err := r.Size(tt.b)
		if err != nil || w != tt.w || h != tt.h {
			t.Errorf("Size(%+v) = %d, %d, %v, want %d, %d", tt.b, w, h, err, tt.w, tt.h)
		}
	}
	if _, _, err := r.Size(grid.Bounds{MaxX: 1 << 40}); !errors.Is(err, ErrTooLarge) {
		t.Errorf("Size(huge) error = %v, want ErrTooLarge", err)
	}
}

func TestFrameGeometry(t *testing.T) {
	r := New(style.Day)
	r.Label = false
	points := line3()
	b := grid.BoundsOf(points)
	// Cursor parked on the last point so the first two stay uncovered.
	img, err := r.Frame(points, b, []walker.Cursor{{Pos: grid.Position{X: 2, Y: 0}, Heading: compass.East}}, "")
	if err != nil {
		t.Fatal(err)
	}
	bg, edge, dot := rgba(style.Day.Background), rgba(style.Day.Edge), rgba(style.Day.Point)
	tests := []struct {
		name string
		x, y int
		want any
	}{
		{"dot", Margin, Margin, dot},
		{"east stub", Margin + HalfUnit, Margin, edge},
		{"beyond stub", Margin, Margin - 1, bg},
		{"no west stub", Margin - 1, Margin, bg},
		{"joined edge", Margin + Unit - 1, Margin, edge},
		{"corner", 0, 0, bg},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("%s at (%d,%d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestCursorTurnsWithHeading(t *testing.T) {
	r := New(style.Night)
	r.Label = false
	points := []grid.Point{pt(0, 0, 0), pt(2, 2, 0)}
	b := grid.BoundsOf(points)
	cx, cy := Margin, Margin+2*Unit // (0,0) is the bottom-left dot
	cur := rgba(style.Night.Cursor)
	tests := []struct {
		h      compass.Heading
		dx, dy int
	}{
		{compass.East, 4, 0},
		{compass.North, 0, -4},
		{compass.West, -4, 0},
		{compass.South, 0, 4},
	}
	for _, tt := range tests {
		t.Run(tt.h.String(), func(t *testing.T) {
			img, err := r.Frame(points, b, []walker.Cursor{{Pos: grid.Position{}, Heading: tt.h}}, "")
			if err != nil {
				t.Fatal(err)
			}
			if got := img.RGBAAt(cx, cy); got != cur {
				t.Errorf("center = %v, want cursor color", got)
			}
			if got := img.RGBAAt(cx+tt.dx, cy+tt.dy); got != cur {
				t.Errorf("ahead = %v, want cursor color", got)
			}
			if got := img.RGBAAt(cx-2*tt.dx, cy-2*tt.dy); got == cur {
				t.Error("behind the notch should not be filled")
			}
		})
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	p, err := walker.New(line3(), walker.Cursor{Heading: compass.East})
	if err != nil {
		t.Fatal(err)
	}
	var lines int
	st, err := Export(dir, p, New(style.Day), 70, func(string, ...any) { lines++ })
	if err != nil {
		t.Fatal(err)
	}
	if st.Frames != 3 || st.State != walker.Halted || st.Err != nil {
		t.Errorf("stats = %+v", st)
	}
	if lines != 4 {
		t.Errorf("logged %d lines, want one per frame and the mean", lines)
	}
	for i, name := range []string{"0.png", "1.png", "2.png"} {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		cfg, err := png.DecodeConfig(f)
		f.Close()
		if err != nil || cfg.Width != 81 || cfg.Height != 41 {
			t.Errorf("frame %d: %dx%d, %v", i, cfg.Width, cfg.Height, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "3.png")); !os.IsNotExist(err) {
		t.Error("no frame should follow the terminal one")
	}
}

func TestExportFrameCap(t *testing.T) {
	// A square loop never ends on its own.
	points := []grid.Point{
		pt(0, 0, compass.East.Mask()|compass.North.Mask()),
		pt(1, 0, compass.West.Mask()|compass.North.Mask()),
		pt(1, 1, compass.South.Mask()|compass.West.Mask()),
		pt(0, 1, compass.East.Mask()|compass.South.Mask()),
	}
	p, _ := walker.New(points, walker.Cursor{Heading: compass.East})
	st, err := Export(t.TempDir(), p, New(style.Day), 5, nil)
	if err != nil {
		t.Fatal(err)
	}
	if st.Frames != 5 || st.State != walker.Running || st.Mean() <= 0 {
		t.Errorf("stats = %+v", st)
	}
}
