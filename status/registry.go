package status

import "sync/atomic"

// Metric keys shared by the simulation and the HUD
const (
	KeyFrames         = "engine.frames"
	KeyTicks          = "engine.ticks"
	KeyTicksCoalesced = "engine.ticks_coalesced"
	KeySnakeLength    = "snake.length"
	KeyPrizeEaten     = "prize.eaten"
	KeyPrizeSpawned   = "prize.spawned"
	KeyAudioEnabled   = "audio.enabled"
)

// Registry is the central metrics facade
// Systems cache pointers at construction and write atomics directly in their update paths
type Registry struct {
	Bools *MetricMap[atomic.Bool]
	Ints  *MetricMap[atomic.Int64]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools: NewMetricMap[atomic.Bool](),
		Ints:  NewMetricMap[atomic.Int64](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count()
}

// Int returns the current value of an integer metric, 0 if unregistered
func (r *Registry) Int(key string) int64 {
	if !r.Ints.Has(key) {
		return 0
	}
	return r.Ints.Get(key).Load()
}
