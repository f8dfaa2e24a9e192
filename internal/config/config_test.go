package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSokobanCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sokoban.yaml")
	data := []byte("levels:\n  dir: /tmp/levels\ndisplay:\n  cell_width: 1\ntheme:\n  player: \"P\"\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadSokoban(path)
	if err != nil {
		t.Fatalf("LoadSokoban failed: %v", err)
	}

	if cfg.Levels.Dir != "/tmp/levels" {
		t.Errorf("Levels.Dir = %q, want /tmp/levels", cfg.Levels.Dir)
	}
	if cfg.Display.CellWidth != 1 {
		t.Errorf("CellWidth = %d, want 1", cfg.Display.CellWidth)
	}
	if cfg.Theme.Player != "P" {
		t.Errorf("Theme.Player = %q, want P", cfg.Theme.Player)
	}

	// Unset values are filled from defaults.
	def := DefaultSokobanConfig()
	if cfg.Display.LevelClearTicks != def.Display.LevelClearTicks {
		t.Errorf("LevelClearTicks = %d, want default %d", cfg.Display.LevelClearTicks, def.Display.LevelClearTicks)
	}
	if cfg.Theme.Wall != def.Theme.Wall {
		t.Errorf("Theme.Wall = %q, want default %q", cfg.Theme.Wall, def.Theme.Wall)
	}
}

func TestLoadSokobanMissingCustomPath(t *testing.T) {
	if _, err := LoadSokoban(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadSokoban() with a missing custom path should fail")
	}
}

func TestLoadSokobanBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("display: [unclosed"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := LoadSokoban(path); err == nil {
		t.Error("LoadSokoban() with invalid YAML should fail")
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadSokoban("")
	if err != nil {
		t.Fatalf("LoadSokoban failed: %v", err)
	}
	if cfg != DefaultSokobanConfig() {
		t.Errorf("embedded config = %+v, want %+v", cfg, DefaultSokobanConfig())
	}
}

func TestNormalize(t *testing.T) {
	cfg := SokobanConfig{Display: DisplayConfig{CellWidth: 7, LevelClearTicks: -1}}
	cfg.Normalize()

	def := DefaultSokobanConfig()
	if cfg.Display.CellWidth != def.Display.CellWidth {
		t.Errorf("CellWidth = %d, want %d", cfg.Display.CellWidth, def.Display.CellWidth)
	}
	if cfg.Display.LevelClearTicks != def.Display.LevelClearTicks {
		t.Errorf("LevelClearTicks = %d, want %d", cfg.Display.LevelClearTicks, def.Display.LevelClearTicks)
	}
	if cfg.Theme != def.Theme {
		t.Errorf("Theme = %+v, want defaults", cfg.Theme)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("SOKOBAN_LEVELS_DIR", "/srv/levels")
	t.Setenv("SOKOBAN_FPS", "20")
	t.Setenv("SOKOBAN_DB", "/tmp/s.db")

	e, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv failed: %v", err)
	}
	if e.FPS != 20 || e.DBPath != "/tmp/s.db" {
		t.Errorf("LoadEnv() = %+v", e)
	}
	if e.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default info", e.LogLevel)
	}

	cfg := DefaultSokobanConfig()
	e.Apply(&cfg)
	if cfg.Levels.Dir != "/srv/levels" {
		t.Errorf("Levels.Dir = %q after Apply, want /srv/levels", cfg.Levels.Dir)
	}
}

func TestLoadEnvInvalid(t *testing.T) {
	t.Setenv("SOKOBAN_FPS", "fast")
	if _, err := LoadEnv(); err == nil {
		t.Error("LoadEnv() should reject a non-numeric SOKOBAN_FPS")
	}
}
