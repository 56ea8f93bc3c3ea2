// Package config provides YAML-based configuration loading for Pop-Bubble.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// MaxPaletteSize is the largest palette the board text format can express
// (empty plus 1-9 and a-z).
const MaxPaletteSize = 36

// Config contains all configuration for a Pop-Bubble session.
type Config struct {
	Title    string      `yaml:"title"`
	Board    BoardConfig `yaml:"board"`
	Cell     CellConfig  `yaml:"cell"`
	Palette  []string    `yaml:"palette"`
	TickRate int         `yaml:"tick_rate"`
}

// BoardConfig defines the board size in bubbles.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CellConfig defines the on-screen size of one bubble in terminal characters.
type CellConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Validate checks the config and returns an error wrapping ErrInvalidConfig
// describing the first problem found.
func (c Config) Validate() error {
	if c.Board.Width < 1 || c.Board.Height < 1 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d",
			ErrInvalidConfig, c.Board.Width, c.Board.Height)
	}
	if c.Cell.Width < 1 || c.Cell.Height < 1 {
		return fmt.Errorf("%w: cell must be at least 1x1, got %dx%d",
			ErrInvalidConfig, c.Cell.Width, c.Cell.Height)
	}
	if len(c.Palette) < 2 {
		return fmt.Errorf("%w: palette needs an empty entry and at least one color, got %d entries",
			ErrInvalidConfig, len(c.Palette))
	}
	if len(c.Palette) > MaxPaletteSize {
		return fmt.Errorf("%w: palette has %d entries, max is %d",
			ErrInvalidConfig, len(c.Palette), MaxPaletteSize)
	}
	for i, name := range c.Palette {
		if _, err := ParseColor(name); err != nil {
			return fmt.Errorf("%w: palette[%d]: %v", ErrInvalidConfig, i, err)
		}
	}
	if c.TickRate < 1 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidConfig, c.TickRate)
	}
	return nil
}

// ColorCount returns the number of playable colors (palette minus the empty
// entry).
func (c Config) ColorCount() int {
	return len(c.Palette) - 1
}
