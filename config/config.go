// Package config loads the start-of-session game parameters and the high score record
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-snake/board"
	"github.com/lixenwraith/vi-snake/input"
)

// Defaults match the classic 80x24 terminal layout
const (
	DefaultStartingLevel = 1
	DefaultFruitsAtOnce  = 1
	DefaultBoardWidth    = 78
	DefaultBoardHeight   = 21
)

var (
	ErrInvalidLevel      = errors.New("starting level must be positive")
	ErrInvalidFruitCount = errors.New("fruits at once must be positive")
	ErrInvalidBoardSize  = errors.New("board dimensions must be positive")
	ErrUnknownKeys       = errors.New("unknown config keys")
)

// Config is the full configuration file
type Config struct {
	Game  Game  `toml:"game"`
	Keys  Keys  `toml:"keys"`
	Sound Sound `toml:"sound"`
}

// Game holds the immutable parameters of a session
type Game struct {
	StartingLevel int                `toml:"starting_level"`
	Boundary      board.BoundaryMode `toml:"boundary"`
	RandomWalls   bool               `toml:"random_walls"`
	FruitsAtOnce  int                `toml:"fruits_at_once"`
	BoardWidth    int                `toml:"board_width"`
	BoardHeight   int                `toml:"board_height"`
	Seed          int64              `toml:"seed"` // 0 = time based
}

// Keys holds key names for the bindable actions
type Keys struct {
	Quit  string `toml:"quit"`
	Pause string `toml:"pause"`
	Help  string `toml:"help"`
	Left  string `toml:"left"`
	Right string `toml:"right"`
	Up    string `toml:"up"`
	Down  string `toml:"down"`
}

// Sound toggles audio cues
type Sound struct {
	Enabled bool `toml:"enabled"`
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		Game: DefaultGame(),
		Keys: Keys{
			Quit:  "q",
			Pause: "p",
			Help:  "h",
			Left:  "left",
			Right: "right",
			Up:    "up",
			Down:  "down",
		},
		Sound: Sound{Enabled: true},
	}
}

// DefaultGame returns the stock session parameters
func DefaultGame() Game {
	return Game{
		StartingLevel: DefaultStartingLevel,
		Boundary:      board.Solid,
		FruitsAtOnce:  DefaultFruitsAtOnce,
		BoardWidth:    DefaultBoardWidth,
		BoardHeight:   DefaultBoardHeight,
	}
}

// Parse decodes TOML over the defaults and validates the result
// Keys absent from data keep their default values
func Parse(data []byte) (Config, error) {
	cfg := Default()

	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		names := make([]string, len(undecoded))
		for i, k := range undecoded {
			names[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownKeys, strings.Join(names, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the config file at path
// A missing file yields the defaults
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config read %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid field
func (c Config) Validate() error {
	var errs []error
	if err := c.Game.Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Keys.Bindings(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Validate checks the session preconditions
func (g Game) Validate() error {
	var errs []error
	if g.StartingLevel < 1 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidLevel, g.StartingLevel))
	}
	if g.FruitsAtOnce < 1 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidFruitCount, g.FruitsAtOnce))
	}
	if g.BoardWidth < 1 || g.BoardHeight < 1 {
		errs = append(errs, fmt.Errorf("%w: got %dx%d", ErrInvalidBoardSize, g.BoardWidth, g.BoardHeight))
	}
	if g.Boundary != board.Solid && g.Boundary != board.Teleport {
		errs = append(errs, fmt.Errorf("unknown boundary mode %v", g.Boundary))
	}
	return errors.Join(errs...)
}

// Bindings resolves the key names to input codes
func (k Keys) Bindings() (input.Bindings, error) {
	var errs []error
	parse := func(action, name string) input.Code {
		code, err := input.Parse(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("keys.%s: %w", action, err))
		}
		return code
	}

	b := input.Bindings{
		Quit:  parse("quit", k.Quit),
		Pause: parse("pause", k.Pause),
		Help:  parse("help", k.Help),
		Left:  parse("left", k.Left),
		Right: parse("right", k.Right),
		Up:    parse("up", k.Up),
		Down:  parse("down", k.Down),
	}
	if len(errs) > 0 {
		return input.Bindings{}, errors.Join(errs...)
	}

	if err := b.Validate(); err != nil {
		return input.Bindings{}, fmt.Errorf("keys: %w", err)
	}
	return b, nil
}
