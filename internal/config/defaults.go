package config

import (
	_ "embed"
)

//go:embed defaults/sokoban.yaml
var defaultSokobanYAML []byte

// DefaultSokobanConfig returns the default sokoban configuration.
func DefaultSokobanConfig() SokobanConfig {
	return SokobanConfig{
		Levels: LevelsConfig{
			Dir:             "",
			AllowTargetless: false,
		},
		Display: DisplayConfig{
			CellWidth:       2,
			LevelClearTicks: 45,
			ShowHelp:        true,
		},
		Theme: ThemeConfig{
			Floor:  " ",
			Wall:   "█",
			Player: "@",
			Box:    "▪",
			Trophy: "◆",
			Hole:   "○",
			Ice:    "░",
			Target: "·",
		},
	}
}
