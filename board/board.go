// Package board models the fixed-size arena grid and its boundary policy
package board

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
)

// WallDensity is the chance of each cell becoming a wall on random fill
const WallDensity = 0.031415923

// Clearance kept free on the excluded row, relative to the excluded x
// The snake starts moving right, so most of the run lies ahead of it
const (
	clearBehind = 2
	clearAhead  = 6
)

// ErrInvalidSize is returned when a board is created with a non-positive dimension
var ErrInvalidSize = errors.New("board dimensions must be positive")

// Point is a grid coordinate
type Point struct {
	X, Y int
}

// Add returns p translated by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Board is a width x height grid of empty and wall cells
// Shape and boundary mode are fixed at creation
type Board struct {
	width, height int
	mode          BoundaryMode
	walls         []bool // Row-major, len = width*height
}

// New creates an empty board
func New(width, height int, mode BoundaryMode) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	return &Board{
		width:  width,
		height: height,
		mode:   mode,
		walls:  make([]bool, width*height),
	}, nil
}

// Width returns the number of columns
func (b *Board) Width() int { return b.width }

// Height returns the number of rows
func (b *Board) Height() int { return b.height }

// Mode returns the boundary policy
func (b *Board) Mode() BoundaryMode { return b.mode }

// InBounds reports whether x, y lies inside the grid
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// IsWall reports whether x, y holds a wall
// Out-of-range coordinates are not walls, the boundary policy decides those
func (b *Board) IsWall(x, y int) bool {
	if !b.InBounds(x, y) {
		return false
	}
	return b.walls[y*b.width+x]
}

// SetWall sets or clears a wall, ignoring out-of-range coordinates
func (b *Board) SetWall(x, y int, wall bool) {
	if !b.InBounds(x, y) {
		return
	}
	b.walls[y*b.width+x] = wall
}

// Resolve applies the boundary policy to p
// Solid: ok is false when p is outside the grid
// Teleport: p is wrapped to the opposite edge and ok is always true
func (b *Board) Resolve(p Point) (Point, bool) {
	return b.mode.resolve(p, b.width, b.height)
}

// Clear removes every wall
func (b *Board) Clear() {
	clear(b.walls)
}

// RandomlyFillExceptBy scatters walls across the grid with WallDensity
// The excluded cell and a horizontal run around it on the same row stay empty
func (b *Board) RandomlyFillExceptBy(x, y int, rng *rand.Rand) {
	for i := range b.walls {
		if rng.Float64() < WallDensity {
			b.walls[i] = true
		}
	}

	for dx := -clearBehind; dx <= clearAhead; dx++ {
		b.SetWall(x+dx, y, false)
	}
}

// Walls returns the coordinates of all wall cells in row-major order
func (b *Board) Walls() []Point {
	var walls []Point
	for i, w := range b.walls {
		if w {
			walls = append(walls, Point{X: i % b.width, Y: i / b.width})
		}
	}
	return walls
}

// WallGrid returns a copy of the wall state indexed [y][x]
func (b *Board) WallGrid() [][]bool {
	grid := make([][]bool, b.height)
	for y := range grid {
		grid[y] = make([]bool, b.width)
		copy(grid[y], b.walls[y*b.width:(y+1)*b.width])
	}
	return grid
}

// EmptyCells returns the coordinates of all non-wall cells in row-major order
func (b *Board) EmptyCells() []Point {
	cells := make([]Point, 0, len(b.walls))
	for i, w := range b.walls {
		if !w {
			cells = append(cells, Point{X: i % b.width, Y: i / b.width})
		}
	}
	return cells
}
