package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/linwalk/internal/ambilite"
	"github.com/vinser/linwalk/internal/app"
	"github.com/vinser/linwalk/internal/embeddata"
	"github.com/vinser/linwalk/internal/flags"
	"github.com/vinser/linwalk/internal/frames"
	"github.com/vinser/linwalk/internal/geoip"
	"github.com/vinser/linwalk/internal/mazegen"
	"github.com/vinser/linwalk/internal/model/open"
	"github.com/vinser/linwalk/internal/pathfile"
	"github.com/vinser/linwalk/internal/sound"
	"github.com/vinser/linwalk/internal/state"
	"github.com/vinser/linwalk/internal/style"
	"github.com/vinser/linwalk/internal/walker"
)

var version = "dev"

func main() {
	fl, err := flags.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	switch {
	case fl.Gen != "":
		if err := generate(fl); err != nil {
			log.Fatal(err)
		}
	case fl.Export != "":
		if err := export(fl); err != nil {
			log.Fatal(err)
		}
	default:
		if err := play(fl); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	}
}

// target names what to walk in the form the open prompt accepts.
func target(fl *flags.Flags) string {
	if fl.Demo != "" {
		return open.DemoPrefix + fl.Demo
	}
	return fl.File
}

func generate(fl *flags.Flags) error {
	seed := fl.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	f, err := mazegen.Generate(mazegen.Options{Seed: seed, Smooth: fl.Smooth})
	if err != nil {
		return err
	}
	out, err := os.Create(fl.Gen)
	if err != nil {
		return err
	}
	if err := pathfile.Encode(out, f); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	log.Printf("wrote %s: %d points, seed %d", fl.Gen, len(f.Points), seed)
	return nil
}

func export(fl *flags.Flags) error {
	var (
		data []byte
		err  error
	)
	if fl.Demo != "" {
		data, err = embeddata.Demo(fl.Demo)
	} else {
		data, err = os.ReadFile(fl.File)
	}
	if err != nil {
		return err
	}
	f, err := pathfile.Decode(data)
	if err != nil {
		return fmt.Errorf("%s: %w", target(fl), err)
	}
	p, err := walker.Open(f)
	if err != nil {
		return err
	}
	r := frames.New(style.PaletteFor(fl.Theme, light(fl.Theme)))
	stats, err := frames.Export(fl.Export, p, r, fl.Frames, log.Printf)
	if err != nil {
		return err
	}
	if stats.Err != nil {
		return fmt.Errorf("walk stopped after %d frames: %w", stats.Frames, stats.Err)
	}
	return nil
}

// light reads the ambient light at the user's location for the auto theme.
func light(theme string) float64 {
	if theme != state.ThemeAuto {
		return 1
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	loc, err := geoip.Lookup(ctx)
	if err != nil {
		log.Printf("geoip: %v", err)
		loc = &geoip.Fallback
	}
	return ambilite.Intensity(time.Now(), loc.Lat, loc.Lon)
}

func play(fl *flags.Flags) error {
	if fl.Debug {
		f, err := tea.LogToFile("linwalk.log", "linwalk")
		if err != nil {
			return err
		}
		defer f.Close()
		log.Printf("linwalk %s", version)
	} else {
		log.SetOutput(io.Discard)
	}

	st := state.Load()
	if fl.Reset {
		st = state.New()
	}
	st.Apply(fl)

	sm, err := sound.NewManager(sound.CommonSampleRate)
	if err != nil {
		log.Printf("sound: %v", err)
	}
	defer sm.Close()
	st.SoundManager = sm
	st.SetMute(st.Mute)

	p := tea.NewProgram(app.New(st, target(fl)), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
