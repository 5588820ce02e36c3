package systems

import "github.com/lixenwraith/grid-snake/engine"

// DirectionSystem turns direction key presses into at most one heading change per tick
type DirectionSystem struct{}

// NewDirectionSystem creates a new direction system
func NewDirectionSystem() *DirectionSystem {
	return &DirectionSystem{}
}

// Priority returns the system's priority (runs first, before movement)
func (s *DirectionSystem) Priority() int {
	return 10
}

// Update applies the first acceptable just-pressed key, in Left, Right, Up, Down order
// A key requesting the reverse of the current heading is skipped
func (s *DirectionSystem) Update(f *engine.Frame) {
	state := f.State
	if state.HeadingLocked || !f.Input.AnyPressed(engine.DirectionKeys[:]...) {
		return
	}

	reverse := state.Heading.Opposite()
	for _, key := range engine.DirectionKeys {
		if !f.Input.JustPressed(key) {
			continue
		}
		want := key.Heading()
		if want == reverse {
			continue
		}
		state.Heading = want
		state.HeadingLocked = true
		return
	}
}
