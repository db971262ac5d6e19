// Package score holds points, level, the level delay curve and the high score record
package score

import "time"

// delayTable lists the step delay for levels 1.. in milliseconds
// Levels past the table run at 0ms, gated only by the frame rate
var delayTable = [...]int64{
	1000, 900, 850, 800, 750, 700, 650, 600, 550, 500, 450,
	400, 350, 300, 250, 200, 150, 100, 80, 50, 25, 0,
}

// MaxTableLevel is the last level with a table entry
const MaxTableLevel = len(delayTable)

// Delay returns the time between snake steps at level
// Levels below 1 use the level 1 delay
func Delay(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	if level > MaxTableLevel {
		return 0
	}
	return time.Duration(delayTable[level-1]) * time.Millisecond
}

// FruitPoints returns the points awarded for one fruit at level
func FruitPoints(level int) int {
	return level * 2
}

// Score is the running points and level of a session
type Score struct {
	Points int
	Level  int
}

// New returns a zero-point score at level
func New(level int) Score {
	return Score{Level: level}
}

// AddFruit credits one eaten fruit at the current level
func (s *Score) AddFruit() {
	s.Points += FruitPoints(s.Level)
}

// HighScore is the best recorded result, owned by the embedding layer
type HighScore struct {
	Points int `toml:"points"`
	Level  int `toml:"level"`
}

// Beaten reports whether s has more points than the record
// Only points are compared
func (h *HighScore) Beaten(s Score) bool {
	return s.Points > h.Points
}

// Submit overwrites the record with s when s has more points
// The level is copied along with the points, never compared
func (h *HighScore) Submit(s Score) bool {
	if !h.Beaten(s) {
		return false
	}
	h.Points = s.Points
	h.Level = s.Level
	return true
}
