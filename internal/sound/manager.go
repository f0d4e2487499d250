// Package sound plays the short cues that accompany a walk. Cues are
// synthesized at start-up into beep buffers and mixed into one output
// stream, so a new step cue can cut the previous one off.
package sound

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
)

// Cue names
const (
	START  = "start"
	STEP   = "step"
	TURN   = "turn"
	BRANCH = "branch"
	HALT   = "halt"
	FAIL   = "fail"
)

const CommonSampleRate = 44100

var ErrUnknownCue = errors.New("sound: unknown cue")

// Manager owns the mixer, the synthesized cues and the output backend.
type Manager struct {
	mu        sync.Mutex
	samples   map[string]*beep.Buffer
	ctrl      map[string]*beep.Ctrl
	mix       *beep.Mixer
	vol       *effects.Volume // master volume
	format    beep.Format
	backend   any
	pulseCtrl *pulseControl
}

// New builds a manager with every cue synthesized. It has no output device,
// NewManager attaches one.
func New(sampleRate beep.SampleRate) (*Manager, error) {
	mgr := &Manager{
		samples: make(map[string]*beep.Buffer),
		ctrl:    make(map[string]*beep.Ctrl),
		mix:     &beep.Mixer{},
		format:  beep.Format{SampleRate: sampleRate, NumChannels: 1, Precision: 2},
	}
	mgr.vol = &effects.Volume{Streamer: mgr.mix, Base: 2}
	for name, notes := range cues {
		buf, err := synthesize(mgr.format, notes)
		if err != nil {
			return nil, fmt.Errorf("cue %s: %w", name, err)
		}
		mgr.samples[name] = buf
	}
	return mgr, nil
}

// NewManager synthesizes the cues and opens the platform audio backend.
func NewManager(sampleRate beep.SampleRate) (*Manager, error) {
	mgr, err := New(sampleRate)
	if err != nil {
		return nil, err
	}
	if err := mgr.initBackend(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return mgr, nil
}

// Stream pulls mixed audio; backends call it from their own goroutine.
func (mgr *Manager) Stream(samples [][2]float64) (int, bool) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	return mgr.vol.Stream(samples)
}

func (mgr *Manager) Err() error { return nil }

// Play cuts off the cue if it is still sounding and plays it from the start.
func (mgr *Manager) Play(name string) error {
	if mgr == nil {
		return nil
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	buf, ok := mgr.samples[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCue, name)
	}
	if ctrl, exists := mgr.ctrl[name]; exists {
		ctrl.Streamer = nil
	}
	ctrl := &beep.Ctrl{Streamer: buf.Streamer(0, buf.Len())}
	mgr.mix.Add(ctrl)
	mgr.ctrl[name] = ctrl
	return nil
}

// StopAll silences every cue that is still playing.
func (mgr *Manager) StopAll() {
	if mgr == nil {
		return
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	for name, ctrl := range mgr.ctrl {
		ctrl.Streamer = nil
		delete(mgr.ctrl, name)
	}
}

// SetMasterVolume sets the output gain in dB (base 2).
func (mgr *Manager) SetMasterVolume(db float64) {
	if mgr == nil {
		return
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.vol.Volume = db
}

// SetMuted silences output without dropping the playing cues.
func (mgr *Manager) SetMuted(muted bool) {
	if mgr == nil {
		return
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.vol.Silent = muted
}

// Muted reports the mute switch.
func (mgr *Manager) Muted() bool {
	if mgr == nil {
		return true
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	return mgr.vol.Silent
}

// Close stops playback and releases the backend.
func (mgr *Manager) Close() {
	if mgr == nil {
		return
	}
	mgr.StopAll()
	if mgr.backend != nil {
		mgr.closeBackend()
	}
}
