package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-snake/board"
	"github.com/lixenwraith/vi-snake/menu"
	"github.com/lixenwraith/vi-snake/player"
	"github.com/lixenwraith/vi-snake/score"
)

// Snapshot is a read-only copy of everything a renderer draws
// Mutating it does not affect the session
type Snapshot struct {
	SessionID uuid.UUID
	State     State

	Width    int
	Height   int
	Boundary board.BoundaryMode
	Walls    [][]bool // Indexed [y][x]

	Snake     []board.Point // Head first
	Alive     bool
	Direction player.Direction
	Fruits    []board.Point

	Score     score.Score
	HighScore score.HighScore

	MenuItems     []menu.Item
	MenuSelection int

	Elapsed time.Duration
	Delay   time.Duration
}

// IsWall reports whether the cell holds a wall; off-board cells do not
func (s *Snapshot) IsWall(x, y int) bool {
	if y < 0 || y >= len(s.Walls) || x < 0 || x >= len(s.Walls[y]) {
		return false
	}
	return s.Walls[y][x]
}

// Snapshot copies the session state for rendering
func (g *Game) Snapshot() Snapshot {
	s := g.s
	return Snapshot{
		SessionID:     s.id,
		State:         s.state,
		Width:         s.board.Width(),
		Height:        s.board.Height(),
		Boundary:      s.board.Mode(),
		Walls:         s.board.WallGrid(),
		Snake:         s.snake.Segments(),
		Alive:         s.snake.IsAlive(),
		Direction:     s.snake.Direction(),
		Fruits:        s.fruits.Fruits(),
		Score:         s.score,
		HighScore:     *g.high,
		MenuItems:     s.menu.Items(),
		MenuSelection: s.menu.Selection(),
		Elapsed:       s.timer.Elapsed(),
		Delay:         score.Delay(s.score.Level),
	}
}
