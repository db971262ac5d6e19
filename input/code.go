// Package input defines the discrete input codes consumed by the game and their key bindings
package input

import (
	"fmt"
	"unicode"
)

// Code is one discrete input, either a rune or a special key
type Code int32

// None is the distinguished no-input value; handling it is a no-op
const None Code = -1

// Special keys live above the Unicode range so they never collide with runes
const (
	KeyUp Code = unicode.MaxRune + 1 + iota
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDn
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Rune returns the code for a printable character
func Rune(r rune) Code {
	return Code(r)
}

// Rune returns the character for rune codes
func (c Code) Rune() (rune, bool) {
	if c < 0 || c > unicode.MaxRune {
		return 0, false
	}
	return rune(c), true
}

// IsSpecial reports whether c is a named non-rune key
func (c Code) IsSpecial() bool {
	return c > unicode.MaxRune
}

// IsConfirm reports whether c confirms a selection (Enter or a newline rune)
func IsConfirm(c Code) bool {
	return c == KeyEnter || c == '\n' || c == '\r'
}

func (c Code) String() string {
	if c == None {
		return "none"
	}
	if name, ok := codeNames[c]; ok {
		return name
	}
	if r, ok := c.Rune(); ok {
		return string(r)
	}
	return fmt.Sprintf("Code(%d)", int32(c))
}
