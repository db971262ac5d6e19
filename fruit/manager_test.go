package fruit

import (
	"errors"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/board"
	"github.com/lixenwraith/vi-snake/player"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func assertFruitInvariant(t *testing.T, m *Manager, s *player.Snake, b *board.Board) {
	t.Helper()
	seen := make(map[board.Point]bool)
	for _, p := range m.Fruits() {
		if b.IsWall(p.X, p.Y) {
			t.Errorf("Fruit %v placed on a wall", p)
		}
		if s.Occupies(p) {
			t.Errorf("Fruit %v placed on the snake", p)
		}
		if !b.InBounds(p.X, p.Y) {
			t.Errorf("Fruit %v out of bounds", p)
		}
		if seen[p] {
			t.Errorf("Fruit %v placed twice", p)
		}
		seen[p] = true
	}
}

func TestNewManagerRejectsInvalidTarget(t *testing.T) {
	for _, target := range []int{0, -3} {
		if _, err := NewManager(target, newRand()); !errors.Is(err, ErrInvalidTarget) {
			t.Errorf("Expected ErrInvalidTarget for %d, got %v", target, err)
		}
	}
	if _, err := NewManager(1, nil); err == nil {
		t.Error("Expected error for nil random source")
	}
}

func TestUpdateFillsToTarget(t *testing.T) {
	b, _ := board.New(20, 10, board.Solid)
	b.RandomlyFillExceptBy(5, 5, rand.New(rand.NewSource(3)))
	s := player.New(5, 5)

	m, err := NewManager(5, newRand())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	m.Update(s, b)

	if m.Count() != 5 {
		t.Errorf("Expected 5 fruit, got %d", m.Count())
	}
	assertFruitInvariant(t, m, s, b)
}

func TestUpdateSaturatedBoard(t *testing.T) {
	b, _ := board.New(3, 1, board.Solid)
	s := player.FromSegments([]board.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, player.Left)

	m, _ := NewManager(4, newRand())
	m.Update(s, b)

	// Only (2,0) is free
	if m.Count() != 1 {
		t.Fatalf("Expected min(target, free)=1 fruit, got %d", m.Count())
	}
	if !m.Contains(board.Point{X: 2, Y: 0}) {
		t.Errorf("Expected fruit at (2,0), got %v", m.Fruits())
	}

	// No free cells left: must return without placing or hanging
	m.Update(s, b)
	if m.Count() != 1 {
		t.Errorf("Expected count to stay 1, got %d", m.Count())
	}
}

func TestUpdateFallsBackToScan(t *testing.T) {
	// Large board with a single free cell defeats random sampling quickly
	b, _ := board.New(40, 40, board.Solid)
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			b.SetWall(x, y, true)
		}
	}
	b.SetWall(0, 0, false)
	b.SetWall(39, 39, false)
	s := player.New(0, 0)

	m, _ := NewManager(1, newRand())
	m.Update(s, b)

	if m.Count() != 1 || !m.Contains(board.Point{X: 39, Y: 39}) {
		t.Errorf("Expected the single free cell to hold the fruit, got %v", m.Fruits())
	}
}

func TestEatenFruit(t *testing.T) {
	b, _ := board.New(10, 10, board.Solid)
	s := player.New(5, 5)
	m, _ := NewManager(2, newRand())

	if !m.Add(board.Point{X: 6, Y: 5}, s, b) {
		t.Fatal("Expected Add to accept a free cell")
	}
	if m.Add(board.Point{X: 5, Y: 5}, s, b) {
		t.Error("Expected Add to reject a snake cell")
	}
	if m.Add(board.Point{X: 6, Y: 5}, s, b) {
		t.Error("Expected Add to reject an existing fruit")
	}

	if m.EatenFruit(s) {
		t.Error("Expected no fruit under the head yet")
	}

	s.Update(b)
	if !m.EatenFruit(s) {
		t.Fatal("Expected fruit under the head to be eaten")
	}
	if m.Count() != 0 {
		t.Errorf("Expected eaten fruit removed, count %d", m.Count())
	}
	if m.EatenFruit(s) {
		t.Error("Expected second check to report nothing")
	}
	if s.Len() != 1 {
		t.Errorf("Expected eating not to grow the snake, len %d", s.Len())
	}
}

func TestAddRespectsTargetAndWalls(t *testing.T) {
	b, _ := board.New(10, 10, board.Solid)
	b.SetWall(2, 2, true)
	s := player.New(5, 5)
	m, _ := NewManager(1, newRand())

	if m.Add(board.Point{X: 2, Y: 2}, s, b) {
		t.Error("Expected Add to reject a wall")
	}
	if m.Add(board.Point{X: -1, Y: 0}, s, b) {
		t.Error("Expected Add to reject out-of-bounds")
	}
	if !m.Add(board.Point{X: 1, Y: 1}, s, b) {
		t.Fatal("Expected Add to accept a free cell")
	}
	if m.Add(board.Point{X: 1, Y: 2}, s, b) {
		t.Error("Expected Add to reject beyond target")
	}
}
