// Package fruit keeps a target number of fruit placed on free board cells
package fruit

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"

	"github.com/lixenwraith/vi-snake/board"
	"github.com/lixenwraith/vi-snake/player"
)

// minSampleAttempts bounds random sampling on small boards before the free-cell scan
const minSampleAttempts = 64

// ErrInvalidTarget is returned for a non-positive fruit target
var ErrInvalidTarget = errors.New("fruit target must be positive")

// Manager maintains up to Target concurrently active fruit
type Manager struct {
	target int
	fruits []board.Point
	rng    *rand.Rand
}

// NewManager creates an empty manager; call Update to place fruit
func NewManager(target int, rng *rand.Rand) (*Manager, error) {
	if target <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTarget, target)
	}
	if rng == nil {
		return nil, errors.New("fruit: nil random source")
	}
	return &Manager{
		target: target,
		fruits: make([]board.Point, 0, target),
		rng:    rng,
	}, nil
}

// Update replenishes fruit until Target is reached or no free cell is left
// A free cell is not a wall, not under the snake and not already a fruit
func (m *Manager) Update(s *player.Snake, b *board.Board) {
	attempts := b.Width() * b.Height()
	if attempts < minSampleAttempts {
		attempts = minSampleAttempts
	}

	for len(m.fruits) < m.target {
		p, ok := m.sample(s, b, attempts)
		if !ok {
			p, ok = m.pickFree(s, b)
		}
		if !ok {
			// Saturated board, retry next tick
			return
		}
		m.fruits = append(m.fruits, p)
	}
}

// sample draws random cells up to attempts times
func (m *Manager) sample(s *player.Snake, b *board.Board, attempts int) (board.Point, bool) {
	for i := 0; i < attempts; i++ {
		p := board.Point{X: m.rng.Intn(b.Width()), Y: m.rng.Intn(b.Height())}
		if m.free(p, s, b) {
			return p, true
		}
	}
	return board.Point{}, false
}

// pickFree scans the whole grid and picks uniformly among free cells
func (m *Manager) pickFree(s *player.Snake, b *board.Board) (board.Point, bool) {
	var free []board.Point
	for _, p := range b.EmptyCells() {
		if m.free(p, s, b) {
			free = append(free, p)
		}
	}
	if len(free) == 0 {
		return board.Point{}, false
	}
	return free[m.rng.Intn(len(free))], true
}

func (m *Manager) free(p board.Point, s *player.Snake, b *board.Board) bool {
	return !b.IsWall(p.X, p.Y) && !s.Occupies(p) && !slices.Contains(m.fruits, p)
}

// Add places a fruit at p when the cell is free and the target is not reached
func (m *Manager) Add(p board.Point, s *player.Snake, b *board.Board) bool {
	if len(m.fruits) >= m.target || !b.InBounds(p.X, p.Y) || !m.free(p, s, b) {
		return false
	}
	m.fruits = append(m.fruits, p)
	return true
}

// EatenFruit removes the fruit under the snake head and reports whether there was one
// Growth and scoring are left to the caller
func (m *Manager) EatenFruit(s *player.Snake) bool {
	i := slices.Index(m.fruits, s.Head())
	if i < 0 {
		return false
	}
	m.fruits = slices.Delete(m.fruits, i, i+1)
	return true
}

// Fruits returns a copy of the active fruit positions
func (m *Manager) Fruits() []board.Point {
	return slices.Clone(m.fruits)
}

// Contains reports whether a fruit lies on p
func (m *Manager) Contains(p board.Point) bool {
	return slices.Contains(m.fruits, p)
}

// Count returns the number of active fruit
func (m *Manager) Count() int {
	return len(m.fruits)
}

// Target returns the configured number of concurrent fruit
func (m *Manager) Target() int {
	return m.target
}
