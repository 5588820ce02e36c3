package systems

import (
	"log"
	"sync/atomic"
	"time"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/grid-snake/constants"
	"github.com/lixenwraith/grid-snake/engine"
	"github.com/lixenwraith/grid-snake/status"
)

// PrizeSystem places a new prize on the tick after the previous one was eaten
// Placement ignores the body, a prize may land on the snake
type PrizeSystem struct {
	rng       *rand.Rand
	maxCellX  int
	maxCellY  int
	blockSize int

	statSpawned *atomic.Int64
}

// NewPrizeSystem creates a prize system; seed 0 picks a time-based seed
func NewPrizeSystem(seed uint64, reg *status.Registry) *PrizeSystem {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &PrizeSystem{
		rng:         rand.New(rand.NewSource(seed)),
		maxCellX:    constants.PrizeMaxCellX,
		maxCellY:    constants.PrizeMaxCellY,
		blockSize:   constants.BlockSize,
		statSpawned: reg.Ints.Get(status.KeyPrizeSpawned),
	}
}

// Priority returns the system's priority (after movement has settled the board)
func (s *PrizeSystem) Priority() int {
	return 30
}

// Update spawns a prize on a tick frame when none is present
func (s *PrizeSystem) Update(f *engine.Frame) {
	if !f.Tick || f.State.PrizePresent() {
		return
	}

	pos := s.RandomCell()
	f.State.Prize = engine.Prize{
		Pos:     pos,
		Handle:  f.Scene.Spawn(pos, engine.StylePrize),
		Present: true,
	}
	s.statSpawned.Add(1)
	f.Result.Spawned = true
	log.Printf("Prize spawned at %v", pos)
}

// RandomCell draws a cell uniformly per axis magnitude with an independent sign per axis
func (s *PrizeSystem) RandomCell() engine.Position {
	x := s.rng.Intn(s.maxCellX+1) * s.blockSize
	y := s.rng.Intn(s.maxCellY+1) * s.blockSize

	if s.rng.Intn(2) == 0 {
		x = -x
	}
	if s.rng.Intn(2) == 0 {
		y = -y
	}
	return engine.Position{X: x, Y: y}
}
