// Package config provides YAML-based game configuration loading with
// environment variable overrides.
package config

// SokobanConfig contains all configuration for the sokoban game.
type SokobanConfig struct {
	Levels  LevelsConfig  `yaml:"levels"`
	Display DisplayConfig `yaml:"display"`
	Theme   ThemeConfig   `yaml:"theme"`
}

// LevelsConfig controls where levels come from and how they are validated.
type LevelsConfig struct {
	// Dir is a directory of level files. Empty means the builtin pack.
	Dir string `yaml:"dir"`

	// AllowTargetless accepts levels without targets, which are won
	// before the first move.
	AllowTargetless bool `yaml:"allow_targetless"`
}

// DisplayConfig defines rendering and pacing parameters.
type DisplayConfig struct {
	CellWidth       int  `yaml:"cell_width"`        // terminal columns per board cell (1 or 2)
	LevelClearTicks int  `yaml:"level_clear_ticks"` // ticks the "level clear" banner stays up
	ShowHelp        bool `yaml:"show_help"`
}

// ThemeConfig maps pieces to the glyph drawn for them.
type ThemeConfig struct {
	Floor  string `yaml:"floor"`
	Wall   string `yaml:"wall"`
	Player string `yaml:"player"`
	Box    string `yaml:"box"`
	Trophy string `yaml:"trophy"`
	Hole   string `yaml:"hole"`
	Ice    string `yaml:"ice"`
	Target string `yaml:"target"`
}

// Normalize replaces missing or out-of-range values with defaults.
func (c *SokobanConfig) Normalize() {
	def := DefaultSokobanConfig()

	if c.Display.CellWidth < 1 || c.Display.CellWidth > 2 {
		c.Display.CellWidth = def.Display.CellWidth
	}
	if c.Display.LevelClearTicks <= 0 {
		c.Display.LevelClearTicks = def.Display.LevelClearTicks
	}

	fill := func(dst *string, fallback string) {
		if *dst == "" {
			*dst = fallback
		}
	}
	fill(&c.Theme.Floor, def.Theme.Floor)
	fill(&c.Theme.Wall, def.Theme.Wall)
	fill(&c.Theme.Player, def.Theme.Player)
	fill(&c.Theme.Box, def.Theme.Box)
	fill(&c.Theme.Trophy, def.Theme.Trophy)
	fill(&c.Theme.Hole, def.Theme.Hole)
	fill(&c.Theme.Ice, def.Theme.Ice)
	fill(&c.Theme.Target, def.Theme.Target)
}
