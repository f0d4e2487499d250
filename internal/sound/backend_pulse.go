//go:build linux

package sound

import (
	"sync/atomic"

	"github.com/gopxl/beep/v2"
	"github.com/jfreymuth/pulse"
)

type pulseBackend struct {
	client *pulse.Client
	stream *pulse.PlaybackStream
}

// pulseControl lets Close silence the stream before it is torn down.
type pulseControl struct {
	streamer beep.Streamer
	stopped  atomic.Bool
}

func (pc *pulseControl) Stream(buf [][2]float64) (int, bool) {
	if pc.stopped.Load() {
		clear(buf)
		return len(buf), true
	}
	return pc.streamer.Stream(buf)
}

func (pc *pulseControl) Err() error { return nil }

// float32Reader adapts a beep streamer to the interleaved float32 frames
// pulse asks for.
func float32Reader(src beep.Streamer, channels int) pulse.Float32Reader {
	buf := make([][2]float64, 512)
	return func(out []float32) (int, error) {
		frames := min(len(out)/channels, len(buf))
		n, ok := src.Stream(buf[:frames])
		if !ok {
			return 0, pulse.EndOfData
		}
		idx := 0
		for i := 0; i < n; i++ {
			for ch := 0; ch < channels; ch++ {
				out[idx] = float32(buf[i][ch])
				idx++
			}
		}
		return idx, nil
	}
}

// initBackend plays through PulseAudio.
func (mgr *Manager) initBackend(sampleRate beep.SampleRate, _ int) error {
	client, err := pulse.NewClient(pulse.ClientApplicationName("linwalk"))
	if err != nil {
		return err
	}
	ctrl := &pulseControl{streamer: mgr}
	stream, err := client.NewPlayback(
		float32Reader(ctrl, mgr.format.NumChannels),
		pulse.PlaybackSampleRate(int(sampleRate)),
		pulse.PlaybackLatency(0.03),
	)
	if err != nil {
		client.Close()
		return err
	}
	stream.Start()
	mgr.backend = &pulseBackend{client: client, stream: stream}
	mgr.pulseCtrl = ctrl
	return nil
}

func (mgr *Manager) closeBackend() {
	if mgr.pulseCtrl != nil {
		mgr.pulseCtrl.stopped.Store(true)
	}
	if pb, ok := mgr.backend.(*pulseBackend); ok {
		pb.stream.Close()
		pb.client.Close()
	}
}
