package flags

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Flags stores the parsed command-line options
type Flags struct {
	File   string // positional .lin path
	Demo   string
	Export string // directory for PNG frames, headless
	Frames int
	Gen    string // output path for a maze-derived path, headless
	Seed   int64
	Smooth bool // diagonal corners for -gen
	Speed  int  // milliseconds per step
	Sprite string
	Theme  string
	Mute   bool
	Reset  bool
	Debug  bool

	set func(string) bool
}

const (
	DefaultFrames = 70
	DefaultSpeed  = 150
	MinSpeed      = 10
	MaxSpeed      = 5000
)

var (
	SpriteSizes = []string{"small", "medium", "large"}
	Themes      = []string{"auto", "day", "night"}
	Demos       = []string{"spiral", "fork", "loop", "zigzag"}
)

// ErrUsage is returned for invalid option values after usage has been printed.
var ErrUsage = errors.New("invalid usage")

// IsSet reports whether the named flag was given explicitly, so it can
// override a persisted setting.
func (f *Flags) IsSet(name string) bool {
	return f.set != nil && f.set(name)
}

// Headless reports whether the run produces files instead of a terminal UI.
func (f *Flags) Headless() bool {
	return f.Export != "" || f.Gen != ""
}

// Parse parses args (without the program name). Help requests surface as
// flag.ErrHelp.
func Parse(name string, args []string, out io.Writer) (*Flags, error) {
	f := &Flags{}
	fs := NewFlagSetWithVisit(name, out)

	fs.StringVar(&f.Demo, "demo", "d", "", "Play an embedded demo: "+strings.Join(Demos, ", "))
	fs.StringVar(&f.Export, "export", "e", "", "Write PNG frames of the walk into this directory and exit")
	fs.IntVar(&f.Frames, "frames", "f", DefaultFrames, "Maximum number of frames to export")
	fs.StringVar(&f.Gen, "gen", "g", "", "Write a path through a generated maze to this file and exit")
	fs.Int64Var(&f.Seed, "seed", "", 0, "Maze seed for -gen (0 picks one from the clock)")
	fs.BoolVar(&f.Smooth, "smooth", "", false, "Cut maze corners into diagonal moves for -gen")
	fs.IntVar(&f.Speed, "speed", "v", DefaultSpeed, "Milliseconds per step")
	fs.StringVar(&f.Sprite, "sprite-size", "z", "medium", "Sprite size: "+strings.Join(SpriteSizes, ", "))
	fs.StringVar(&f.Theme, "theme", "t", "auto", "Color theme: "+strings.Join(Themes, ", "))
	fs.BoolVar(&f.Mute, "mute", "m", false, "Mute all sounds")
	fs.BoolVar(&f.Reset, "reset", "r", false, "Reset saved settings and records")
	fs.BoolVar(&f.Debug, "debug", "", false, "Write a debug log to linwalk.log")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	f.set = fs.IsCustom

	switch rest := fs.Args(); len(rest) {
	case 0:
	case 1:
		f.File = rest[0]
	default:
		return nil, invalid(fs, "expected at most one path file, got %d", len(rest))
	}

	f.Sprite = strings.ToLower(f.Sprite)
	f.Theme = strings.ToLower(f.Theme)
	f.Demo = strings.ToLower(f.Demo)
	switch {
	case !slices.Contains(SpriteSizes, f.Sprite):
		return nil, invalid(fs, "invalid sprite size %q", f.Sprite)
	case !slices.Contains(Themes, f.Theme):
		return nil, invalid(fs, "invalid theme %q", f.Theme)
	case f.Demo != "" && !slices.Contains(Demos, f.Demo):
		return nil, invalid(fs, "unknown demo %q", f.Demo)
	case f.Demo != "" && f.File != "":
		return nil, invalid(fs, "-demo and a path file are mutually exclusive")
	case f.Speed < MinSpeed || f.Speed > MaxSpeed:
		return nil, invalid(fs, "speed must be within %d..%d ms", MinSpeed, MaxSpeed)
	case f.Frames < 1:
		return nil, invalid(fs, "frames must be positive")
	case f.Export != "" && f.Gen != "":
		return nil, invalid(fs, "-export and -gen are mutually exclusive")
	case f.Export != "" && f.File == "" && f.Demo == "":
		return nil, invalid(fs, "-export needs a path file or -demo")
	}
	return f, nil
}

func invalid(fs *FlagSetWithVisit, format string, args ...any) error {
	fmt.Fprintf(fs.out, format+"\n", args...)
	fs.Usage()
	return fmt.Errorf("%w: "+format, append([]any{ErrUsage}, args...)...)
}
