package frames

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/vinser/linwalk/internal/walker"
)

// Stats summarizes an export run.
type Stats struct {
	Frames int
	Total  time.Duration
	State  walker.State
	Err    error // walk error that ended the run, if any
}

// Mean is the average render and encode time per frame.
func (s Stats) Mean() time.Duration {
	if s.Frames == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Frames)
}

// Export renders a frame, then steps, until the walk reaches a terminal
// state or maxFrames images have been written to dir as 0.png, 1.png, ...
// The last frame shows the cursor where the walk stopped. logf receives the
// time spent on every frame.
func Export(dir string, p *walker.Path, r *Renderer, maxFrames int, logf func(format string, args ...any)) (Stats, error) {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Stats{}, err
	}
	var st Stats
	trail := []walker.Cursor{p.Cursor()}
	for i := 0; i < maxFrames; i++ {
		start := time.Now()
		label := fmt.Sprintf("%d %v", p.Steps(), p.Cursor())
		img, err := r.Frame(p.Points(), p.Bounds(), trail, label)
		if err != nil {
			return st, err
		}
		if err := writePNG(filepath.Join(dir, strconv.Itoa(i)+".png"), img); err != nil {
			return st, err
		}
		elapsed := time.Since(start)
		st.Frames++
		st.Total += elapsed
		logf("frame %d: %v", i, elapsed)

		state, _ := p.Step()
		if state.Terminal() {
			break
		}
		trail = append(trail, p.Cursor())
	}
	st.State, st.Err = p.State(), p.Err()
	logf("mean time: %v over %d frames, walk %v", st.Mean(), st.Frames, st.State)
	return st, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := png.Encode(w, img); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
