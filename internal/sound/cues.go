package sound

import (
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
)

// note is one tone of a cue; a zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

var cues = map[string][]note{
	START:  {{523.25, 60 * time.Millisecond}, {659.25, 60 * time.Millisecond}, {783.99, 90 * time.Millisecond}},
	STEP:   {{880, 25 * time.Millisecond}},
	TURN:   {{1174.66, 40 * time.Millisecond}},
	BRANCH: {{659.25, 80 * time.Millisecond}, {0, 30 * time.Millisecond}, {659.25, 80 * time.Millisecond}},
	HALT:   {{783.99, 80 * time.Millisecond}, {659.25, 80 * time.Millisecond}, {523.25, 160 * time.Millisecond}},
	FAIL:   {{196, 300 * time.Millisecond}},
}

// cueGain keeps the sine peaks clear of clipping when cues overlap, in dB base 2.
const cueGain = -2

// synthesize renders the notes of a cue into a replayable buffer.
func synthesize(format beep.Format, notes []note) (*beep.Buffer, error) {
	var parts []beep.Streamer
	for _, n := range notes {
		samples := format.SampleRate.N(n.dur)
		if n.freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(format.SampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(samples, tone))
	}
	buf := beep.NewBuffer(format)
	buf.Append(&effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: cueGain})
	return buf, nil
}

// Duration returns how long a cue sounds.
func Duration(name string) time.Duration {
	var d time.Duration
	for _, n := range cues[name] {
		d += n.dur
	}
	return d
}
