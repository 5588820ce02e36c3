package engine

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/grid-snake/constants"
	"github.com/lixenwraith/grid-snake/status"
)

// System is implemented by every simulation stage
type System interface {
	Update(f *Frame)
	Priority() int // Lower values run first
}

// FrameResult reports what happened during one Step
type FrameResult struct {
	Ticked  bool
	Ate     bool
	Spawned bool
}

// Frame is the exclusive view systems receive for one Step
type Frame struct {
	State *SimulationState
	Input InputSource
	Scene Scene
	Dt    time.Duration

	// Tick is true when the tick clock completed during this frame
	Tick bool

	Result *FrameResult
}

// Game owns the simulation state and drives systems once per frame
// Not safe for concurrent use, Step and Reset must be called from one goroutine
type Game struct {
	state   *SimulationState
	timer   *TickTimer
	scene   Scene
	systems []System

	statFrames    *atomic.Int64
	statTicks     *atomic.Int64
	statCoalesced *atomic.Int64
	statLength    *atomic.Int64
}

// NewGame creates a game bound to scene and places the initial snake and prize
func NewGame(scene Scene, timer *TickTimer, reg *status.Registry) *Game {
	g := &Game{
		timer:         timer,
		scene:         scene,
		statFrames:    reg.Ints.Get(status.KeyFrames),
		statTicks:     reg.Ints.Get(status.KeyTicks),
		statCoalesced: reg.Ints.Get(status.KeyTicksCoalesced),
		statLength:    reg.Ints.Get(status.KeySnakeLength),
	}
	g.Reset()
	return g
}

// AddSystem registers a system and keeps the list sorted by priority
func (g *Game) AddSystem(system System) {
	g.systems = append(g.systems, system)

	// Bubble sort, small N
	for i := 0; i < len(g.systems)-1; i++ {
		for j := 0; j < len(g.systems)-i-1; j++ {
			if g.systems[j].Priority() > g.systems[j+1].Priority() {
				g.systems[j], g.systems[j+1] = g.systems[j+1], g.systems[j]
			}
		}
	}
}

// State returns the live simulation state
func (g *Game) State() *SimulationState {
	return g.state
}

// Timer returns the tick clock
func (g *Game) Timer() *TickTimer {
	return g.timer
}

// Reset clears the scene of simulation entities and starts a new run
func (g *Game) Reset() {
	if g.state != nil {
		for _, seg := range g.state.Body.Segments() {
			g.scene.Despawn(seg.Handle)
		}
		if g.state.Prize.Present {
			g.scene.Despawn(g.state.Prize.Handle)
		}
	}

	state := NewSimulationState()

	headPos := Position{X: constants.InitialHeadX, Y: constants.InitialHeadY}
	state.Body.PushHead(Segment{
		Pos:    headPos,
		Handle: g.scene.Spawn(headPos, StyleHead),
	})

	prizePos := Position{X: constants.InitialPrizeX, Y: constants.InitialPrizeY}
	state.Prize = Prize{
		Pos:     prizePos,
		Handle:  g.scene.Spawn(prizePos, StylePrize),
		Present: true,
	}

	g.scene.SetCaption(state.Caption())

	g.state = state
	g.timer.Reset()
	g.statLength.Store(int64(state.Length()))

	log.Printf("Run started: head %v, prize %v, heading %v", headPos, prizePos, state.Heading)
}

// Step advances the tick clock by dt and runs every system once
func (g *Game) Step(dt time.Duration, in InputSource) FrameResult {
	g.statFrames.Add(1)

	var result FrameResult
	fired := g.timer.Advance(dt)
	result.Ticked = fired

	f := &Frame{
		State:  g.state,
		Input:  in,
		Scene:  g.scene,
		Dt:     dt,
		Tick:   fired,
		Result: &result,
	}

	for _, sys := range g.systems {
		sys.Update(f)
	}

	if fired {
		g.statTicks.Add(1)
		if wraps := g.timer.Wraps(); wraps > 1 {
			g.statCoalesced.Add(int64(wraps - 1))
		}
	}
	g.statLength.Store(int64(g.state.Length()))

	return result
}
