package audio

import (
	"errors"
	"testing"
)

// TestEngineGracefulWithoutStart verifies play calls are dropped before Start
func TestEngineGracefulWithoutStart(t *testing.T) {
	ae := NewAudioEngine(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Audio operations panicked without start: %v", r)
		}
	}()

	if err := ae.Play(SoundChomp); err != nil {
		t.Errorf("Expected nil error while stopped, got %v", err)
	}
	ae.Stop()

	if ae.IsRunning() {
		t.Error("Engine must not report running")
	}
}

// TestEngineStartStop tolerates missing audio devices in CI
func TestEngineStartStop(t *testing.T) {
	ae := NewAudioEngine(DefaultAudioConfig())

	if err := ae.Start(); err != nil {
		t.Logf("Audio start failed (expected in test environment): %v", err)
		return
	}
	defer ae.Stop()

	if err := ae.Start(); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("Expected ErrAlreadyRunning on second start, got %v", err)
	}
	if err := ae.Play(SoundBlip); err != nil {
		t.Errorf("Play failed: %v", err)
	}
	if err := ae.Play(soundTypeCount); !errors.Is(err, ErrUnknownSound) {
		t.Errorf("Expected ErrUnknownSound, got %v", err)
	}
}

func TestEngineMute(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	ae := NewAudioEngine(cfg)

	if !ae.IsMuted() {
		t.Fatal("Disabled config must start muted")
	}
	if muted := ae.ToggleMute(); muted {
		t.Error("Expected unmuted after toggle")
	}
	if muted := ae.ToggleMute(); !muted {
		t.Error("Expected muted after second toggle")
	}
}

func TestWithMasterVolumeClamps(t *testing.T) {
	base := DefaultAudioConfig()

	if got := base.WithMasterVolume(2).MasterVolume; got != 1 {
		t.Errorf("Expected clamp to 1, got %f", got)
	}
	if got := base.WithMasterVolume(-1).MasterVolume; got != 0 {
		t.Errorf("Expected clamp to 0, got %f", got)
	}

	c := base.WithMasterVolume(0.3)
	c.EffectVolumes[SoundChomp] = 0
	if base.EffectVolumes[SoundChomp] != 1.0 {
		t.Error("WithMasterVolume must copy effect volumes")
	}
}
