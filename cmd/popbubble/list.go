package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pop-bubble/internal/bubble"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all board variants",
	Long:  `Shows every registered board variant with its size and color count.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	base := bubble.CurrentConfig()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range bubble.Variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	fmt.Println("Available boards:")
	fmt.Println()

	// Print header
	fmt.Printf("  %-*s  %-7s  %-6s  %s\n", maxIDLen, "ID", "Size", "Colors", "Title")
	fmt.Printf("  %-*s  %-7s  %-6s  %s\n", maxIDLen, "--", "----", "------", "-----")

	for _, v := range bubble.Variants {
		cfg := v.Apply(base)
		size := fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height)
		fmt.Printf("  %-*s  %-7s  %-6d  %s\n", maxIDLen, v.ID, size, cfg.ColorCount(), v.Title)
	}

	fmt.Println()
	fmt.Println("Run 'popbubble play <id>' to play a board.")
}
