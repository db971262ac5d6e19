package input

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		want Code
	}{
		{"q", Rune('q')},
		{"Q", Rune('Q')},
		{"left", KeyLeft},
		{"LEFT", KeyLeft},
		{" enter ", KeyEnter},
		{"return", KeyEnter},
		{"space", Rune(' ')},
		{"f12", KeyF12},
		{"ä", Rune('ä')},
	}

	for _, tt := range tests {
		got, err := Parse(tt.name)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q): expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	for _, name := range []string{"", "ctrl+q", "leftt"} {
		if _, err := Parse(name); !errors.Is(err, ErrUnknownKey) {
			t.Errorf("Parse(%q): expected ErrUnknownKey, got %v", name, err)
		}
	}
}

func TestCodeString(t *testing.T) {
	tests := map[Code]string{
		None:       "none",
		Rune('p'):  "p",
		Rune(' '):  "space",
		KeyEnter:   "enter",
		KeyEscape:  "esc",
		KeyF1:      "f1",
		Code(-100): "Code(-100)",
	}
	for code, want := range tests {
		if got := code.String(); got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	}
}

func TestCodeRune(t *testing.T) {
	if r, ok := Rune('x').Rune(); !ok || r != 'x' {
		t.Errorf("Expected rune x, got %q %v", r, ok)
	}
	if _, ok := KeyUp.Rune(); ok {
		t.Error("Expected special key not to be a rune")
	}
	if !KeyUp.IsSpecial() || Rune('x').IsSpecial() {
		t.Error("IsSpecial misclassified")
	}
}

func TestIsConfirm(t *testing.T) {
	for _, c := range []Code{KeyEnter, Rune('\n'), Rune('\r')} {
		if !IsConfirm(c) {
			t.Errorf("Expected %v to confirm", c)
		}
	}
	if IsConfirm(Rune(' ')) {
		t.Error("Expected space not to confirm")
	}
}

func TestBindingsAction(t *testing.T) {
	b := DefaultBindings()

	tests := []struct {
		code Code
		want Action
	}{
		{None, ActionNone},
		{Rune('q'), ActionQuit},
		{Rune('p'), ActionPause},
		{Rune('h'), ActionHelp},
		{KeyLeft, ActionLeft},
		{KeyRight, ActionRight},
		{KeyUp, ActionUp},
		{KeyDown, ActionDown},
		{KeyEnter, ActionConfirm},
		{Rune('\n'), ActionConfirm},
		{KeyHome, ActionHome},
		{KeyEnd, ActionEnd},
		{Rune('z'), ActionNone},
	}

	for _, tt := range tests {
		if got := b.Action(tt.code); got != tt.want {
			t.Errorf("Action(%v): expected %v, got %v", tt.code, tt.want, got)
		}
	}
}

func TestBindingsValidate(t *testing.T) {
	if err := DefaultBindings().Validate(); err != nil {
		t.Fatalf("Expected default bindings to be valid, got %v", err)
	}

	dup := DefaultBindings()
	dup.Pause = dup.Quit
	if err := dup.Validate(); !errors.Is(err, ErrDuplicateBinding) {
		t.Errorf("Expected ErrDuplicateBinding, got %v", err)
	}

	missing := DefaultBindings()
	missing.Help = None
	if err := missing.Validate(); err == nil {
		t.Error("Expected error for unbound action")
	}

	reserved := DefaultBindings()
	reserved.Up = KeyEnter
	if err := reserved.Validate(); err == nil {
		t.Error("Expected error for binding the confirm key")
	}
}
