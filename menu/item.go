package menu

import "fmt"

// ItemID identifies what a selectable item does
type ItemID uint8

const (
	Resume ItemID = iota + 1
	QuitToMenu
	QuitGame
)

func (id ItemID) String() string {
	switch id {
	case Resume:
		return "resume"
	case QuitToMenu:
		return "quit-to-menu"
	case QuitGame:
		return "quit-game"
	default:
		return fmt.Sprintf("ItemID(%d)", uint8(id))
	}
}

// Item is either a selectable option or a separator
type Item struct {
	Label     string
	ID        ItemID
	Separator bool
}

// Option creates a selectable item
func Option(label string, id ItemID) Item {
	return Item{Label: label, ID: id}
}

// Separator creates a non-selectable blank line
func Separator() Item {
	return Item{Separator: true}
}

// Selectable reports whether the cursor may rest on the item
func (i Item) Selectable() bool {
	return !i.Separator
}
