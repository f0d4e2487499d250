package sound

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
)

func newManager(t *testing.T) *Manager {
	t.Helper()
	mgr, err := New(beep.SampleRate(CommonSampleRate))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return mgr
}

// drain pulls n samples from the mixer and returns the peak amplitude.
func drain(mgr *Manager, n int) float64 {
	buf := make([][2]float64, 512)
	peak := 0.0
	for n > 0 {
		chunk := min(n, len(buf))
		got, _ := mgr.Stream(buf[:chunk])
		for _, s := range buf[:got] {
			peak = max(peak, s[0], -s[0])
		}
		n -= chunk
	}
	return peak
}

func TestCuesAreSynthesized(t *testing.T) {
	mgr := newManager(t)
	sr := beep.SampleRate(CommonSampleRate)
	for _, name := range []string{START, STEP, TURN, BRANCH, HALT, FAIL} {
		t.Run(name, func(t *testing.T) {
			buf, ok := mgr.samples[name]
			if !ok {
				t.Fatal("cue missing")
			}
			// Each note rounds its own sample count.
			want := sr.N(Duration(name))
			if diff := buf.Len() - want; diff < -len(cues[name]) || diff > len(cues[name]) {
				t.Errorf("Len() = %d, want about %d", buf.Len(), want)
			}
		})
	}
}

func TestPlayMixesCue(t *testing.T) {
	mgr := newManager(t)
	if peak := drain(mgr, 1024); peak != 0 {
		t.Fatalf("idle mixer peak = %v, want silence", peak)
	}
	if err := mgr.Play(FAIL); err != nil {
		t.Fatal(err)
	}
	if peak := drain(mgr, 1024); peak == 0 || peak > 1 {
		t.Errorf("playing peak = %v, want in (0, 1]", peak)
	}

	mgr.SetMuted(true)
	if peak := drain(mgr, 1024); peak != 0 {
		t.Errorf("muted peak = %v, want 0", peak)
	}
	mgr.SetMuted(false)

	mgr.StopAll()
	if peak := drain(mgr, 1024); peak != 0 {
		t.Errorf("stopped peak = %v, want 0", peak)
	}
}

func TestPlayUnknown(t *testing.T) {
	mgr := newManager(t)
	if err := mgr.Play("thunder"); !errors.Is(err, ErrUnknownCue) {
		t.Errorf("Play() error = %v, want ErrUnknownCue", err)
	}
}

func TestNilManagerIsSilent(t *testing.T) {
	var mgr *Manager
	if err := mgr.Play(STEP); err != nil {
		t.Errorf("Play() on nil manager = %v", err)
	}
	mgr.SetMuted(false)
	mgr.Close()
	if !mgr.Muted() {
		t.Error("nil manager reports unmuted")
	}
}

func TestConcurrentPlay(t *testing.T) {
	mgr := newManager(t)
	done := make(chan struct{})
	go func() {
		defer close(done)
		drain(mgr, CommonSampleRate/10)
	}()
	for i := 0; i < 50; i++ {
		if err := mgr.Play(STEP); err != nil {
			t.Fatal(err)
		}
	}
	<-done
}

// TestDeviceOutput plays through the real backend.
func TestDeviceOutput(t *testing.T) {
	if os.Getenv("SKIP_AUDIO") == "1" { // For CI without sound on host
		t.Skip("SKIP_AUDIO=1")
	}
	mgr, err := NewManager(beep.SampleRate(CommonSampleRate))
	if err != nil {
		t.Skipf("no audio device: %v", err)
	}
	defer mgr.Close()
	if err := mgr.Play(START); err != nil {
		t.Fatal(err)
	}
	time.Sleep(Duration(START) + 100*time.Millisecond)
}

func BenchmarkStepPlayback(b *testing.B) {
	mgr, err := New(beep.SampleRate(CommonSampleRate))
	if err != nil {
		b.Fatal(err)
	}
	buf := make([][2]float64, 512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := mgr.Play(STEP); err != nil {
			b.Fatal(err)
		}
		mgr.Stream(buf)
	}
}
