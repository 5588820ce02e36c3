package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/grid-snake/constants"
)

// AudioEngine plays one-shot effects through the beep speaker
// A stopped, muted or never-started engine drops Play calls silently
type AudioEngine struct {
	config *AudioConfig
	mixer  *beep.Mixer

	running atomic.Bool
	muted   atomic.Bool

	mu sync.Mutex
}

// NewAudioEngine creates an audio engine; the default config is used when cfg is nil
func NewAudioEngine(cfg *AudioConfig) *AudioEngine {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	ae := &AudioEngine{
		config: cfg,
		mixer:  &beep.Mixer{},
	}
	ae.muted.Store(!cfg.Enabled)
	return ae
}

// Start opens the output device and attaches the mixer
func (ae *AudioEngine) Start() error {
	ae.mu.Lock()
	defer ae.mu.Unlock()

	if ae.running.Load() {
		return ErrAlreadyRunning
	}

	rate := beep.SampleRate(ae.config.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(ae.mixer)
	ae.running.Store(true)
	return nil
}

// Stop detaches all sounds and closes the output device
func (ae *AudioEngine) Stop() {
	ae.mu.Lock()
	defer ae.mu.Unlock()

	if !ae.running.CompareAndSwap(true, false) {
		return
	}

	speaker.Clear()
	speaker.Close()
}

// Play queues an effect on the mixer
func (ae *AudioEngine) Play(soundType SoundType) error {
	if !ae.running.Load() || ae.muted.Load() {
		return nil
	}

	s := GetSoundEffect(soundType, ae.config)
	if s == nil {
		return fmt.Errorf("play %d: %w", soundType, ErrUnknownSound)
	}

	speaker.Lock()
	ae.mixer.Add(s)
	speaker.Unlock()
	return nil
}

// ToggleMute flips mute and returns the new state
func (ae *AudioEngine) ToggleMute() bool {
	for {
		old := ae.muted.Load()
		if ae.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsRunning reports whether the device is open
func (ae *AudioEngine) IsRunning() bool {
	return ae.running.Load()
}

// IsMuted reports whether Play is suppressed
func (ae *AudioEngine) IsMuted() bool {
	return ae.muted.Load()
}

// Duration returns the playback length of an effect, used by tests and diagnostics
func Duration(soundType SoundType, cfg *AudioConfig) time.Duration {
	s := GetSoundEffect(soundType, cfg)
	if s == nil {
		return 0
	}
	rate := beep.SampleRate(cfg.SampleRate)
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	return rate.D(total)
}
