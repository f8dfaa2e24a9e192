package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores <level-id>",
	Short: "Show best solutions for a level",
	Long: `Display the 10 shortest winning solutions for the specified level,
along with attempt statistics.

Examples:
  sokoban scores lvl01
  sokoban scores lvl01 --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded results for the level")
}

func runScores(_ *cobra.Command, args []string) {
	levelID := args[0]

	lvls, err := sokoban.LoadLevels()
	if err != nil {
		fail("%v", err)
	}
	title := levelID
	for _, l := range lvls {
		if l.ID == levelID {
			title = l.Title()
		}
	}
	if !hasLevel(lvls, levelID) {
		logger.Warn("level not in current level source", "level", levelID, "source", levelSource())
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening results database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(levelID); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Cleared results for %s\n", levelID)
		return
	}

	results, err := store.BestResults(levelID, 10)
	if err != nil {
		fail("retrieving results: %v", err)
	}

	fmt.Printf("Best Solutions - %s\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No solutions recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'sokoban play %s' to set the first record!\n", levelID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "Rank", "Moves", "Mode", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "----", "-----", "----", "----")

	for i, r := range results {
		mode := "campaign"
		if r.GameID == sokoban.SingleID {
			mode = "single"
		}
		fmt.Printf("  %-4d  %-6d  %-8s  %s\n", i+1, r.Moves, mode, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetLevelStats(levelID); err == nil {
		fmt.Println()
		fmt.Printf("Attempts: %d  Wins: %d  Best: %d  Avg: %.1f\n",
			stats.Attempts, stats.Wins, stats.BestMoves, stats.AvgMoves)
	}
}
