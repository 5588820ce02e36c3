package audio

import "github.com/lixenwraith/grid-snake/constants"

// AudioConfig holds audio engine settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the stock configuration
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.DefaultSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundChomp: 1.0,
			SoundBlip:  0.4,
		},
	}
}

// WithMasterVolume returns a copy with the master volume clamped to 0-1
func (c *AudioConfig) WithMasterVolume(v float64) *AudioConfig {
	out := *c
	out.EffectVolumes = make(map[SoundType]float64, len(c.EffectVolumes))
	for k, vol := range c.EffectVolumes {
		out.EffectVolumes[k] = vol
	}
	switch {
	case v < 0:
		v = 0
	case v > 1:
		v = 1
	}
	out.MasterVolume = v
	return &out
}
