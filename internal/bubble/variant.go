package bubble

import (
	"github.com/vovakirdan/pop-bubble/internal/config"
	"github.com/vovakirdan/pop-bubble/internal/registry"
)

// Variant is a named board setup derived from the loaded configuration.
type Variant struct {
	ID    string
	Title string
	Apply func(cfg config.Config) config.Config
}

// Variants lists the built-in board setups, registered in init.
var Variants = []Variant{
	{
		ID:    "classic",
		Title: "Pop-Bubble",
		Apply: func(cfg config.Config) config.Config { return cfg },
	},
	{
		ID:    "mini",
		Title: "Pop-Bubble Mini",
		Apply: func(cfg config.Config) config.Config {
			cfg.Board = config.BoardConfig{Width: 6, Height: 6}
			if len(cfg.Palette) > 5 {
				cfg.Palette = cfg.Palette[:5]
			}
			return cfg
		},
	},
	{
		ID:    "grand",
		Title: "Pop-Bubble Grand",
		Apply: func(cfg config.Config) config.Config {
			cfg.Board = config.BoardConfig{Width: 16, Height: 12}
			return cfg
		},
	},
}

// Package-level configuration shared by every game created through the
// registry. Set it before games are created.
var baseConfig = config.DefaultConfig()

// SetConfig replaces the configuration used by newly created games.
func SetConfig(cfg config.Config) {
	baseConfig = cfg
}

// CurrentConfig returns the configuration used by newly created games.
func CurrentConfig() config.Config {
	return baseConfig
}

func init() {
	for _, v := range Variants {
		v := v
		registry.Register(v.ID, func() registry.Game {
			return NewVariant(v)
		})
	}
}
