// Package menu implements a list of selectable items with a confirm signal
package menu

import (
	"errors"

	"golang.org/x/exp/slices"
)

// Input is a menu navigation command
type Input uint8

const (
	InputNone Input = iota
	Previous
	Next
	First
	Last
	Confirm
)

// ErrNoSelectable is returned when a menu has no selectable item
var ErrNoSelectable = errors.New("menu needs at least one selectable item")

// Menu tracks the current selection and whether it was confirmed
// The selection always rests on a selectable item
type Menu struct {
	items     []Item
	selection int
	completed bool
}

// New creates a menu selecting the first selectable item
func New(items ...Item) (*Menu, error) {
	first := slices.IndexFunc(items, Item.Selectable)
	if first < 0 {
		return nil, ErrNoSelectable
	}
	return &Menu{
		items:     slices.Clone(items),
		selection: first,
	}, nil
}

// NewPauseMenu builds the in-game pause menu
func NewPauseMenu() *Menu {
	m, _ := New(
		Option("Resume", Resume),
		Separator(),
		Option("Quit to Main Menu", QuitToMenu),
		Option("Quit Game", QuitGame),
	)
	return m
}

// HandleInput applies one navigation command
func (m *Menu) HandleInput(in Input) {
	switch in {
	case Previous:
		m.selection = m.step(-1)
	case Next:
		m.selection = m.step(1)
	case First:
		m.selection = slices.IndexFunc(m.items, Item.Selectable)
	case Last:
		for i := len(m.items) - 1; i >= 0; i-- {
			if m.items[i].Selectable() {
				m.selection = i
				break
			}
		}
	case Confirm:
		m.completed = true
	}
}

// step returns the next selectable index in direction dir, wrapping at the ends
func (m *Menu) step(dir int) int {
	n := len(m.items)
	i := m.selection
	for k := 0; k < n; k++ {
		i = (i + dir + n) % n
		if m.items[i].Selectable() {
			return i
		}
	}
	return m.selection
}

// Completed reports whether the user confirmed the selection
func (m *Menu) Completed() bool {
	return m.completed
}

// Reset clears the completed flag, keeping the selection
func (m *Menu) Reset() {
	m.completed = false
}

// CurrentID returns the identifier of the selected item
func (m *Menu) CurrentID() ItemID {
	return m.items[m.selection].ID
}

// Current returns the selected item
func (m *Menu) Current() Item {
	return m.items[m.selection]
}

// Selection returns the index of the selected item
func (m *Menu) Selection() int {
	return m.selection
}

// Items returns a copy of all items, separators included
func (m *Menu) Items() []Item {
	return slices.Clone(m.items)
}
