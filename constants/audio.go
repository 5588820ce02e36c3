package constants

import "time"

// Chomp Sound Timing (prize eaten)
const (
	ChompSoundNote1Duration = 60 * time.Millisecond
	ChompSoundNote2Duration = 120 * time.Millisecond
	ChompSoundAttack        = 3 * time.Millisecond
	ChompSoundNote1Release  = 30 * time.Millisecond
	ChompSoundNote2Release  = 100 * time.Millisecond
)

// Blip Sound Timing (prize spawned)
const (
	BlipSoundDuration = 50 * time.Millisecond
	BlipSoundAttack   = 2 * time.Millisecond
	BlipSoundRelease  = 40 * time.Millisecond
)

// Audio engine
const (
	// AudioBufferDuration is the speaker buffer length passed to speaker.Init
	AudioBufferDuration = 50 * time.Millisecond

	// DefaultSampleRate in Hz
	DefaultSampleRate = 44100
)
