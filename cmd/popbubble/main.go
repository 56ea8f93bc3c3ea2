// popbubble is a terminal bubble-popping puzzle: click a bubble to pop it
// together with every touching bubble of the same color, then watch the rest
// fall down.
//
// Usage:
//
//	popbubble list              - List board variants
//	popbubble play [variant]    - Play a board (default: classic)
//	popbubble menu              - Pick a variant interactively
//	popbubble serve             - Start SSH server for remote play
//	popbubble board [variant]   - Print a generated board as text
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config, 60)
//	--seed <value>       - Set RNG seed for reproducible boards
//	--config <path>      - Load a custom config YAML
//	--log-file <path>    - Write logs to a file while playing
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pop-bubble/internal/bubble"
	"github.com/vovakirdan/pop-bubble/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "popbubble",
	Short: "Pop-Bubble - pop same-colored bubbles in your terminal",
	Long: `Pop-Bubble is a tile-matching puzzle for the terminal.

Click a bubble to pop it along with every bubble of the same color touching
it up, down, left or right. Bubbles above the gap fall down to fill it.
Your terminal needs mouse support.

Available commands:
  list     - Show all board variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  board    - Print a generated board as text

Examples:
  popbubble play
  popbubble play mini --seed 42
  popbubble menu
  popbubble serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return loadConfig()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config tick_rate)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (play and menu)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(boardCmd)
}

// loadConfig loads the config file and hands it to the game package before
// any game is created.
func loadConfig() error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	bubble.SetConfig(cfg)
	return nil
}
