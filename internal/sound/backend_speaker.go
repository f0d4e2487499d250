//go:build !linux

package sound

import (
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

type pulseControl struct{}

// initBackend plays through the beep speaker.
func (mgr *Manager) initBackend(sampleRate beep.SampleRate, bufferSize int) error {
	if err := speaker.Init(sampleRate, bufferSize); err != nil {
		return err
	}
	speaker.Play(mgr)
	mgr.backend = struct{}{}
	return nil
}

func (mgr *Manager) closeBackend() {
	speaker.Clear()
	speaker.Close()
}
