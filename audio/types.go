package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundChomp SoundType = iota // Prize eaten
	SoundBlip                   // Prize spawned
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundChomp:
		return "chomp"
	case SoundBlip:
		return "blip"
	default:
		return "unknown"
	}
}

// Sentinel errors
var (
	ErrAlreadyRunning = errors.New("audio engine already running")
	ErrUnknownSound   = errors.New("unknown sound type")
)
