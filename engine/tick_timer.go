package engine

import (
	"fmt"
	"time"
)

// TickTimer is a repeating countdown polled once per frame
// It never runs on its own; Advance is the only way time passes
type TickTimer struct {
	interval time.Duration
	elapsed  time.Duration

	justFinished bool
	wraps        int
}

// NewTickTimer creates a repeating timer, panicking on a non-positive interval
func NewTickTimer(interval time.Duration) *TickTimer {
	if interval <= 0 {
		panic(fmt.Sprintf("tick interval must be positive, got %v", interval))
	}
	return &TickTimer{interval: interval}
}

// Advance adds dt to the clock and reports whether the interval completed during this call
// Several completions inside one oversized dt collapse into a single signal, the remainder carries over
func (t *TickTimer) Advance(dt time.Duration) bool {
	if dt < 0 {
		dt = 0
	}

	t.elapsed += dt
	t.wraps = 0
	if t.elapsed >= t.interval {
		t.wraps = int(t.elapsed / t.interval)
		t.elapsed %= t.interval
	}
	t.justFinished = t.wraps > 0
	return t.justFinished
}

// JustFinished reports whether the last Advance completed the interval
func (t *TickTimer) JustFinished() bool {
	return t.justFinished
}

// Wraps returns how many intervals the last Advance crossed
func (t *TickTimer) Wraps() int {
	return t.wraps
}

// Elapsed returns time accumulated toward the next completion
func (t *TickTimer) Elapsed() time.Duration {
	return t.elapsed
}

// Remaining returns time left until the next completion
func (t *TickTimer) Remaining() time.Duration {
	return t.interval - t.elapsed
}

// Interval returns the configured period
func (t *TickTimer) Interval() time.Duration {
	return t.interval
}

// Reset rewinds the clock to the start of a period
func (t *TickTimer) Reset() {
	t.elapsed = 0
	t.wraps = 0
	t.justFinished = false
}
