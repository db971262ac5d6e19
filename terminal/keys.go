// Package terminal is the tcell front-end: key translation and snapshot rendering
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/input"
)

// specialKeys maps tcell named keys to input codes
var specialKeys = map[tcell.Key]input.Code{
	tcell.KeyUp:         input.KeyUp,
	tcell.KeyDown:       input.KeyDown,
	tcell.KeyLeft:       input.KeyLeft,
	tcell.KeyRight:      input.KeyRight,
	tcell.KeyEnter:      input.KeyEnter,
	tcell.KeyEscape:     input.KeyEscape,
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyHome:       input.KeyHome,
	tcell.KeyEnd:        input.KeyEnd,
	tcell.KeyPgUp:       input.KeyPgUp,
	tcell.KeyPgDn:       input.KeyPgDn,
	tcell.KeyF1:         input.KeyF1,
	tcell.KeyF2:         input.KeyF2,
	tcell.KeyF3:         input.KeyF3,
	tcell.KeyF4:         input.KeyF4,
	tcell.KeyF5:         input.KeyF5,
	tcell.KeyF6:         input.KeyF6,
	tcell.KeyF7:         input.KeyF7,
	tcell.KeyF8:         input.KeyF8,
	tcell.KeyF9:         input.KeyF9,
	tcell.KeyF10:        input.KeyF10,
	tcell.KeyF11:        input.KeyF11,
	tcell.KeyF12:        input.KeyF12,
}

// KeyCode translates a tcell key event to an input code
// Keys with no mapping yield input.None
func KeyCode(ev *tcell.EventKey) input.Code {
	if ev == nil {
		return input.None
	}
	if ev.Key() == tcell.KeyRune {
		return input.Rune(ev.Rune())
	}
	if c, ok := specialKeys[ev.Key()]; ok {
		return c
	}
	return input.None
}

// IsInterrupt reports Ctrl+C, which exits regardless of bindings
func IsInterrupt(ev *tcell.EventKey) bool {
	return ev != nil && ev.Key() == tcell.KeyCtrlC
}
