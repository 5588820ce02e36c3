package systems

import (
	"fmt"
	"log"
	"sync/atomic"

	"github.com/lixenwraith/grid-snake/constants"
	"github.com/lixenwraith/grid-snake/engine"
	"github.com/lixenwraith/grid-snake/status"
)

// MovementSystem advances the snake one block on every tick
// The new head always becomes the front segment; the tail is kept only when the prize is eaten
type MovementSystem struct {
	blockSize int
	statEaten *atomic.Int64
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(reg *status.Registry) *MovementSystem {
	return &MovementSystem{
		blockSize: constants.BlockSize,
		statEaten: reg.Ints.Get(status.KeyPrizeEaten),
	}
}

// Priority returns the system's priority (after direction, before prize spawn)
func (s *MovementSystem) Priority() int {
	return 20
}

// Update moves the snake when the tick clock fired this frame
func (s *MovementSystem) Update(f *engine.Frame) {
	if !f.Tick {
		return
	}

	state := f.State
	head, ok := state.Body.Head()
	if !ok {
		panic(fmt.Errorf("movement: %w", engine.ErrNotInitialized))
	}

	next := head.Pos.Step(state.Heading, s.blockSize)

	f.Scene.Restyle(head.Handle, engine.StyleBody)
	state.Body.PushHead(engine.Segment{
		Pos:    next,
		Handle: f.Scene.Spawn(next, engine.StyleHead),
	})

	if state.IsPrizeAt(next) {
		f.Scene.Despawn(state.Prize.Handle)
		state.Prize = engine.Prize{}
		state.Score++
		s.statEaten.Add(1)
		f.Result.Ate = true
		f.Scene.SetCaption(state.Caption())
		log.Printf("Prize eaten at %v, length %d", next, state.Length())
	} else if tail, ok := state.Body.PopTail(); ok {
		f.Scene.Despawn(tail.Handle)
	}

	state.HeadingLocked = false
}
