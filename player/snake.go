// Package player implements the snake body, its movement and collision rules
package player

import (
	"golang.org/x/exp/slices"

	"github.com/lixenwraith/vi-snake/board"
)

// Snake is the player-controlled body, head first
type Snake struct {
	body      []board.Point
	direction Direction
	alive     bool
}

// New creates a live snake of length 1 at x, y heading right
func New(x, y int) *Snake {
	return &Snake{
		body:      []board.Point{{X: x, Y: y}},
		direction: Right,
		alive:     true,
	}
}

// FromSegments creates a live snake with the given body, head first
// Panics on an empty body
func FromSegments(body []board.Point, dir Direction) *Snake {
	if len(body) == 0 {
		panic("player: snake body must not be empty")
	}
	return &Snake{
		body:      slices.Clone(body),
		direction: dir,
		alive:     true,
	}
}

// Move sets the heading for the next step
// Turning back onto the second segment is ignored
func (s *Snake) Move(dir Direction) {
	if len(s.body) > 1 && s.Head().Add(dir.Vector()) == s.body[1] {
		return
	}
	s.direction = dir
}

// Update advances the snake one cell against b
// Death leaves the body untouched; a dead snake ignores further updates
func (s *Snake) Update(b *board.Board) {
	if !s.alive {
		return
	}

	next, ok := b.Resolve(s.Head().Add(s.direction.Vector()))
	if !ok {
		s.alive = false
		return
	}
	if b.IsWall(next.X, next.Y) {
		s.alive = false
		return
	}
	if slices.Contains(s.body, next) {
		s.alive = false
		return
	}

	// Shift: new head in front, tail dropped
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = next
}

// Increase grows the snake by one segment
// The tail is duplicated in place, the copy separates on the next Update
func (s *Snake) Increase() {
	s.body = append(s.body, s.body[len(s.body)-1])
}

// Kill marks the snake dead
func (s *Snake) Kill() {
	s.alive = false
}

// IsAlive reports whether the snake is still playing
func (s *Snake) IsAlive() bool {
	return s.alive
}

// Head returns the position of the first segment
func (s *Snake) Head() board.Point {
	return s.body[0]
}

// Direction returns the current heading
func (s *Snake) Direction() Direction {
	return s.direction
}

// Len returns the number of segments
func (s *Snake) Len() int {
	return len(s.body)
}

// Segments returns a copy of the body, head first
func (s *Snake) Segments() []board.Point {
	return slices.Clone(s.body)
}

// Occupies reports whether any segment lies on p
func (s *Snake) Occupies(p board.Point) bool {
	return slices.Contains(s.body, p)
}
