// Package status collects session counters for display and logging
package status

import "sync/atomic"

// Counter names written by the game session
const (
	Sessions    = "game.sessions"
	Steps       = "game.steps"
	FruitsEaten = "game.fruits_eaten"
	Pauses      = "game.pauses"
	Deaths      = "game.deaths"
	HighScores  = "game.high_scores"
)

// Flag names written by the game session
const (
	Paused = "game.paused"
	Over   = "game.over"
)

// Registry is the central metrics facade
// The game caches pointers at session start and writes directly to the atomics
type Registry struct {
	Ints  *MetricMap[atomic.Int64]
	Bools *MetricMap[atomic.Bool]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:  NewMetricMap[atomic.Int64](),
		Bools: NewMetricMap[atomic.Bool](),
	}
}

// Counter returns the int metric for name
func (r *Registry) Counter(name string) *atomic.Int64 {
	return r.Ints.Get(name)
}

// Flag returns the bool metric for name
func (r *Registry) Flag(name string) *atomic.Bool {
	return r.Bools.Get(name)
}

// IntSnapshot returns the current value of every int metric
func (r *Registry) IntSnapshot() map[string]int64 {
	out := make(map[string]int64, r.Ints.Count())
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		out[key] = ptr.Load()
	})
	return out
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Bools.Count()
}
