package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pop-bubble/internal/bubble"
	"github.com/vovakirdan/pop-bubble/internal/core"
	"github.com/vovakirdan/pop-bubble/internal/platform/tui"
	"github.com/vovakirdan/pop-bubble/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board",
	Long: `Start playing the given board variant (default: classic).

Controls:
  Left click  - Pop the bubble group under the pointer
  N/R         - Deal a new board
  P/Space     - Pause
  Esc/B/Q     - Quit

Examples:
  popbubble play
  popbubble play grand
  popbubble play mini --seed 42
  popbubble play --config ./my-bubbles.yaml --log-file pop.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "classic"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if variant exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'popbubble list' to see available boards.")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger("popbubble", true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if _, err := tui.Run(game, runtimeConfig(), logger); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: bubble.CurrentConfig().TickRate,
		Seed:     flagSeed,
	}
}
