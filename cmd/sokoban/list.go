package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all levels",
	Long:  `Shows the levels of the configured level source in play order, with your best solution for each.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	lvls, err := sokoban.LoadLevels()
	if err != nil {
		fail("%v", err)
	}

	if len(lvls) == 0 {
		fmt.Println("No levels available.")
		return
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	fmt.Printf("Levels (%s):\n", levelSource())
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, "ID", "Size", "Best", "Title")
	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, "--", "----", "----", "-----")

	for _, l := range lvls {
		best := "-"
		if store != nil {
			if moves, ok, err := store.BestMoves(l.ID); err == nil && ok {
				best = fmt.Sprintf("%d", moves)
			}
		}
		size := fmt.Sprintf("%dx%d", l.Board.Cols(), l.Board.Rows())
		fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, l.ID, size, best, l.Title())
	}

	fmt.Println()
	fmt.Println("Run 'sokoban play <id>' to play a level.")
}
