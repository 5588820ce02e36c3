package systems

import (
	"github.com/lixenwraith/grid-snake/constants"
	"github.com/lixenwraith/grid-snake/engine"
	"github.com/lixenwraith/grid-snake/status"
)

// newSnake builds a state with the given cells, head first, registering visuals in scene
func newSnake(scene *engine.RecordingScene, cells ...engine.Position) *engine.SimulationState {
	state := engine.NewSimulationState()
	for i := len(cells) - 1; i >= 0; i-- {
		style := engine.StyleBody
		if i == 0 {
			style = engine.StyleHead
		}
		state.Body.PushHead(engine.Segment{Pos: cells[i], Handle: scene.Spawn(cells[i], style)})
	}
	return state
}

// placePrize puts a prize at pos
func placePrize(scene *engine.RecordingScene, state *engine.SimulationState, pos engine.Position) {
	state.Prize = engine.Prize{Pos: pos, Handle: scene.Spawn(pos, engine.StylePrize), Present: true}
}

func newFrame(state *engine.SimulationState, scene engine.Scene, in engine.InputSource, tick bool) *engine.Frame {
	if in == nil {
		in = engine.NewKeySet()
	}
	return &engine.Frame{
		State:  state,
		Input:  in,
		Scene:  scene,
		Tick:   tick,
		Result: &engine.FrameResult{},
	}
}

// newTestGame wires the three systems the way cmd/snake does
func newTestGame(seed uint64) (*engine.Game, *engine.RecordingScene, *status.Registry) {
	scene := engine.NewRecordingScene()
	reg := status.NewRegistry()
	g := engine.NewGame(scene, engine.NewTickTimer(constants.TickInterval), reg)
	g.AddSystem(NewDirectionSystem())
	g.AddSystem(NewMovementSystem(reg))
	g.AddSystem(NewPrizeSystem(seed, reg))
	return g, scene, reg
}

func pos(x, y int) engine.Position {
	return engine.Position{X: x, Y: y}
}
