package input

import (
	"errors"
	"fmt"
)

// ErrDuplicateBinding is returned when two actions share a key
var ErrDuplicateBinding = errors.New("duplicate key binding")

// Action is the semantic meaning of a code under a set of bindings
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
	ActionConfirm
	ActionHelp
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionHome
	ActionEnd
)

var actionNames = [...]string{
	ActionNone:    "none",
	ActionQuit:    "quit",
	ActionPause:   "pause",
	ActionConfirm: "confirm",
	ActionHelp:    "help",
	ActionLeft:    "left",
	ActionRight:   "right",
	ActionUp:      "up",
	ActionDown:    "down",
	ActionHome:    "home",
	ActionEnd:     "end",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// Bindings maps the configurable actions to codes
type Bindings struct {
	Quit  Code
	Pause Code
	Help  Code
	Left  Code
	Right Code
	Up    Code
	Down  Code
}

// DefaultBindings returns the stock key layout
func DefaultBindings() Bindings {
	return Bindings{
		Quit:  Rune('q'),
		Pause: Rune('p'),
		Help:  Rune('h'),
		Left:  KeyLeft,
		Right: KeyRight,
		Up:    KeyUp,
		Down:  KeyDown,
	}
}

func (b Bindings) entries() []struct {
	action Action
	code   Code
} {
	return []struct {
		action Action
		code   Code
	}{
		{ActionQuit, b.Quit},
		{ActionPause, b.Pause},
		{ActionHelp, b.Help},
		{ActionLeft, b.Left},
		{ActionRight, b.Right},
		{ActionUp, b.Up},
		{ActionDown, b.Down},
	}
}

// Validate checks that every action has a key and no key is bound twice
// Confirm keys are reserved for opening and confirming the menu
func (b Bindings) Validate() error {
	var errs []error
	seen := make(map[Code]Action)

	for _, e := range b.entries() {
		if e.code == None {
			errs = append(errs, fmt.Errorf("%s: no key bound", e.action))
			continue
		}
		if IsConfirm(e.code) {
			errs = append(errs, fmt.Errorf("%s: %s is reserved for confirm", e.action, e.code))
			continue
		}
		if prev, ok := seen[e.code]; ok {
			errs = append(errs, fmt.Errorf("%w: %s bound to both %s and %s", ErrDuplicateBinding, e.code, prev, e.action))
			continue
		}
		seen[e.code] = e.action
	}

	return errors.Join(errs...)
}

// Action classifies c
// Bound actions win over the fixed confirm, home and end keys
func (b Bindings) Action(c Code) Action {
	if c == None {
		return ActionNone
	}
	for _, e := range b.entries() {
		if e.code == c {
			return e.action
		}
	}

	switch {
	case IsConfirm(c):
		return ActionConfirm
	case c == KeyHome:
		return ActionHome
	case c == KeyEnd:
		return ActionEnd
	}
	return ActionNone
}
