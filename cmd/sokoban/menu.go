package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick levels from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play. Esc during a game
returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab          - Best solutions
  Q            - Quit

Examples:
  sokoban menu
  sokoban menu --levels ./my-levels
  sokoban menu --db ./results.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	lvls, err := sokoban.LoadLevels()
	if err != nil {
		fail("%v", err)
	}
	if len(lvls) == 0 {
		fail("%v in %s", sokoban.ErrNoLevels, levelSource())
	}

	store := openStore()
	restore := logToFile()
	defer func() {
		restore()
		if store != nil {
			store.Close()
		}
	}()

	cfg := runtimeConfig()
	for {
		res, err := tui.RunMenu(lvls, store, cfg)
		if err != nil {
			logger.Error("menu failed", "error", err)
			return
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return

		case res.WantsScoreboard:
			goBack, err := tui.RunScoreboard(lvls, store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				logger.Error("scoreboard failed", "error", err)
			}
			if !goBack {
				return
			}

		default:
			game, err := registry.Create(res.GameID, registry.Options{StartLevel: res.StartLevel})
			if err != nil {
				logger.Error("cannot create game", "game", res.GameID, "error", err)
				continue
			}
			back, err := tui.Run(game, store, cfg)
			if err != nil {
				logger.Error("game failed", "error", err)
			}
			if !back {
				return
			}
		}
	}
}

func hasLevel(lvls []levels.Level, id string) bool {
	for _, l := range lvls {
		if l.ID == id {
			return true
		}
	}
	return false
}
