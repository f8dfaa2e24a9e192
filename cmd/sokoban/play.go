package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [level-id]",
	Short: "Play the campaign or a single level",
	Long: `Without an argument, play every level in order. With a level ID,
play only that level.

Controls:
  Arrows/WASD/HJKL  - Move
  U/Z/Backspace     - Undo the last move
  R                 - Restart the level
  P                 - Pause
  Enter             - Skip the level clear banner
  Ctrl+S            - Save a screenshot to ~/.sokoban/screenshots
  Esc/B, Q/Ctrl+C   - Quit

Examples:
  sokoban play
  sokoban play lvl04
  sokoban play intro --levels ./my-levels`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID, opts := sokoban.CampaignID, registry.Options{}
	if len(args) == 1 {
		gameID, opts.StartLevel = sokoban.SingleID, args[0]

		lvls, err := sokoban.LoadLevels()
		if err != nil {
			fail("%v", err)
		}
		if !hasLevel(lvls, args[0]) {
			fail("unknown level %q\nRun 'sokoban list' to see available levels.", args[0])
		}
	}

	game, err := registry.Create(gameID, opts)
	if err != nil {
		fail("creating game: %v", err)
	}

	store := openStore()
	restore := logToFile()
	_, runErr := tui.Run(game, store, runtimeConfig())
	restore()

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
