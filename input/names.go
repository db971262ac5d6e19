package input

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKey is returned by Parse for names that are neither a key name nor a single character
var ErrUnknownKey = errors.New("unknown key")

// keyNames maps lower-case config names to codes
// Runes that can't be written as a single character get an alias here
var keyNames = map[string]Code{
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"esc":       KeyEscape,
	"escape":    KeyEscape,
	"backspace": KeyBackspace,
	"tab":       KeyTab,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pgup":      KeyPgUp,
	"pgdn":      KeyPgDn,
	"f1":        KeyF1,
	"f2":        KeyF2,
	"f3":        KeyF3,
	"f4":        KeyF4,
	"f5":        KeyF5,
	"f6":        KeyF6,
	"f7":        KeyF7,
	"f8":        KeyF8,
	"f9":        KeyF9,
	"f10":       KeyF10,
	"f11":       KeyF11,
	"f12":       KeyF12,
	"space":     Rune(' '),
	"backslash": Rune('\\'),
}

// codeNames is the reverse of keyNames, preferring the shortest name
var codeNames = func() map[Code]string {
	names := make(map[Code]string, len(keyNames))
	for name, code := range keyNames {
		if prev, ok := names[code]; !ok || len(name) < len(prev) || (len(name) == len(prev) && name < prev) {
			names[code] = name
		}
	}
	return names
}()

// Parse converts a config key name to a code
// Accepts named keys (case-insensitive) and single characters (case-sensitive)
func Parse(name string) (Code, error) {
	if code, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return code, nil
	}

	runes := []rune(name)
	if len(runes) == 1 {
		return Rune(runes[0]), nil
	}

	return None, fmt.Errorf("%w: %q (expected single character or key name)", ErrUnknownKey, name)
}

// MustParse is Parse for compile-time constant names
func MustParse(name string) Code {
	c, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return c
}
