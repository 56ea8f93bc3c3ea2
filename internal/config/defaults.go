package config

import (
	_ "embed"
)

//go:embed defaults/popbubble.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration: a 10x10 board of 4x2
// cells with five playable colors.
func DefaultConfig() Config {
	return Config{
		Title: "Pop-Bubble",
		Board: BoardConfig{
			Width:  10,
			Height: 10,
		},
		Cell: CellConfig{
			Width:  4,
			Height: 2,
		},
		Palette:  []string{"black", "blue", "pink", "green", "yellow", "red"},
		TickRate: 60,
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}
