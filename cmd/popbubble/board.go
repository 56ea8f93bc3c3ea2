package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pop-bubble/internal/bubble"
)

var boardCmd = &cobra.Command{
	Use:   "board [variant]",
	Short: "Print a generated board as text",
	Long: `Deal a board exactly as 'play' would for the same seed and print it.

Each cell is '.' when empty or a color index (1-9, then a-z) matching the
palette order in the config.

Examples:
  popbubble board --seed 42
  popbubble board mini --seed 7`,
	Args: cobra.MaximumNArgs(1),
	Run:  runBoard,
}

func runBoard(_ *cobra.Command, args []string) {
	id := "classic"
	if len(args) > 0 {
		id = args[0]
	}

	var variant *bubble.Variant
	for i := range bubble.Variants {
		if bubble.Variants[i].ID == id {
			variant = &bubble.Variants[i]
		}
	}
	if variant == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", id)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := variant.Apply(bubble.CurrentConfig())
	b := bubble.NewRandomBoard(cfg.Board.Width, cfg.Board.Height, len(cfg.Palette), rand.New(rand.NewSource(seed)))

	fmt.Printf("# %s, seed %d\n", variant.Title, seed)
	fmt.Print(bubble.RenderGrid(b))
}
