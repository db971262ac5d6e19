package game

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/board"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/status"
)

// DefaultStart is where the snake spawns
var DefaultStart = board.Point{X: 5, Y: 5}

// Option customizes a Game at construction
type Option func(*Game)

// WithTimeProvider sets the time source for both session timers
func WithTimeProvider(tp engine.TimeProvider) Option {
	return func(g *Game) {
		g.provider = tp
	}
}

// WithLogger sets the logger; sessions add their own fields
func WithLogger(l logrus.FieldLogger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithRand sets the random source for walls and fruit
// Overrides the config seed
func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		g.rng = r
	}
}

// WithStatus sets the registry receiving session counters
func WithStatus(r *status.Registry) Option {
	return func(g *Game) {
		g.stats = r
	}
}

// WithStart sets the snake spawn cell
func WithStart(x, y int) Option {
	return func(g *Game) {
		g.start = board.Point{X: x, Y: y}
	}
}
