package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/grid-snake/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a fixed-length periodic wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator streamer
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}

	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer      beep.Streamer
	position      int
	attackSamples int
	releaseStart  int
	totalSamples  int
}

// NewEnvelope wraps s with an attack ramp and a release ramp ending at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	releaseStart := total - rate.N(release)
	if releaseStart < 0 {
		releaseStart = 0
	}
	return &envelope{
		streamer:      s,
		attackSamples: rate.N(attack),
		releaseStart:  releaseStart,
		totalSamples:  total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= e.releaseStart {
			span := e.totalSamples - e.releaseStart
			if span > 0 {
				vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(span))
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; 0 or less is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateChompSound generates a rising two-note chirp for eating a prize
func CreateChompSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// E5 then A5
	n1 := NewOscillator(659.25, constants.ChompSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.ChompSoundNote1Duration, constants.ChompSoundAttack, constants.ChompSoundNote1Release, rate)

	n2 := NewOscillator(880.0, constants.ChompSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.ChompSoundNote2Duration, constants.ChompSoundAttack, constants.ChompSoundNote2Release, rate)

	sequence := beep.Seq(newVolume(n1Shaped, 0.6), newVolume(n2Shaped, 0.6))

	vol := cfg.EffectVolumes[SoundChomp] * cfg.MasterVolume
	return newVolume(sequence, vol)
}

// CreateBlipSound generates a soft short tick for a new prize
func CreateBlipSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(1320.0, constants.BlipSoundDuration, WaveTriangle, rate)
	shaped := NewEnvelope(osc, constants.BlipSoundDuration, constants.BlipSoundAttack, constants.BlipSoundRelease, rate)

	vol := cfg.EffectVolumes[SoundBlip] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// GetSoundEffect returns a fresh streamer for soundType, nil if unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundChomp:
		return CreateChompSound(cfg)
	case SoundBlip:
		return CreateBlipSound(cfg)
	default:
		return nil
	}
}
