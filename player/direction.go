package player

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/board"
)

// Direction is the heading of the snake head
type Direction uint8

const (
	Right Direction = iota
	Down
	Left
	Up
)

var directionVectors = [...]board.Point{
	Right: {X: 1, Y: 0},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
	Up:    {X: 0, Y: -1},
}

// Vector returns the one-cell translation for the direction
func (d Direction) Vector() board.Point {
	if int(d) >= len(directionVectors) {
		return board.Point{}
	}
	return directionVectors[d]
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case Right:
		return Left
	case Left:
		return Right
	case Up:
		return Down
	default:
		return Up
	}
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	case Up:
		return "up"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}
