package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// State is the top-level session state
type State uint8

const (
	Running State = iota
	PausedMenu
	PausedHelp
	GameOver
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case PausedMenu:
		return "paused-menu"
	case PausedHelp:
		return "paused-help"
	case GameOver:
		return "game-over"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Paused reports whether both timers are stopped for an overlay
func (s State) Paused() bool {
	return s == PausedMenu || s == PausedHelp
}

// validTransitions lists the states reachable from each state
// GameOver is terminal for the session; Start builds a new one
var validTransitions = map[State][]State{
	Running:    {PausedMenu, PausedHelp, GameOver},
	PausedMenu: {Running},
	PausedHelp: {Running},
	GameOver:   {},
}

// CanTransition reports whether from -> to is a legal state change
func CanTransition(from, to State) bool {
	return slices.Contains(validTransitions[from], to)
}
