package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-snake/score"
)

// LoadHighScore reads the high score record at path
// A missing file yields a zero record
func LoadHighScore(path string) (score.HighScore, error) {
	var hs score.HighScore

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return hs, nil
	}
	if err != nil {
		return hs, fmt.Errorf("high score read %s: %w", path, err)
	}

	if _, err := toml.Decode(string(data), &hs); err != nil {
		return score.HighScore{}, fmt.Errorf("high score parse %s: %w", path, err)
	}
	if hs.Points < 0 {
		return score.HighScore{}, fmt.Errorf("high score %s: negative points %d", path, hs.Points)
	}
	return hs, nil
}

// SaveHighScore writes the record to path through a temp file and rename
func SaveHighScore(path string, hs score.HighScore) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(hs); err != nil {
		return fmt.Errorf("high score encode: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("high score dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return fmt.Errorf("high score temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("high score write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("high score close: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("high score rename: %w", err)
	}
	return nil
}
