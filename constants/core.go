package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// TickInterval is the simulation advance interval; the snake moves one block per tick
	TickInterval = 100 * time.Millisecond

	// MaxFrameDelta caps the elapsed time fed to the tick clock after a stall (suspend, slow terminal)
	MaxFrameDelta = 500 * time.Millisecond

	// EventChannelSize is the buffer between the terminal poller and the main loop
	EventChannelSize = 256
)
