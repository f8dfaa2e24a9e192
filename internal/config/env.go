package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds settings read from environment variables. Command-line flags
// take precedence over these, and these over the YAML file.
type Env struct {
	ConfigPath string `env:"SOKOBAN_CONFIG"`
	LevelsDir  string `env:"SOKOBAN_LEVELS_DIR"`
	DBPath     string `env:"SOKOBAN_DB"`
	FPS        int    `env:"SOKOBAN_FPS"`
	LogLevel   string `env:"SOKOBAN_LOG_LEVEL" envDefault:"info"`
	SSHAddr    string `env:"SOKOBAN_SSH_ADDR"`
}

// LoadEnv reads Env from the process environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// Apply copies the overrides that belong in the game config.
func (e Env) Apply(cfg *SokobanConfig) {
	if e.LevelsDir != "" {
		cfg.Levels.Dir = e.LevelsDir
	}
}
