// sokoban is a terminal sokoban game with colored targets, ice and holes.
//
// Usage:
//
//	sokoban list               - List levels with best results
//	sokoban play [level-id]    - Play the campaign, or one level
//	sokoban menu               - Pick levels interactively
//	sokoban serve              - Start SSH server for remote play
//	sokoban scores <level-id>  - Show best solutions for a level
//	sokoban check <file|dir>   - Validate level files
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--db <path>          - Set database path (default: ~/.sokoban/results.db)
//	--config <path>      - Use a specific YAML config
//	--levels <dir>       - Load levels from a directory instead of the builtin pack
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

const defaultDBPath = "~/.sokoban/results.db"

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagLevels   string
	flagLogLevel string
)

// Settings resolved from flags, environment and the config file.
var (
	gameCfg config.SokobanConfig
	envCfg  config.Env
	logger  *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sokoban",
	Short: "Sokoban - push colored trophies onto their targets",
	Long: `Sokoban is a terminal puzzle game. Push each colored trophy onto a
target of the same color. Pieces slide across ice, and anything that
falls into a hole is gone for good.

Available commands:
  list     - Show all levels
  play     - Play the campaign or a single level
  menu     - Interactive level picker
  serve    - Start SSH server for remote play
  scores   - View best solutions
  check    - Validate level files

Examples:
  sokoban list
  sokoban play
  sokoban play lvl03
  sokoban menu --levels ./my-levels
  sokoban serve --ssh :2222
  sokoban check ./my-levels`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory of level files (default: builtin levels)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(checkCmd)
}

// setup resolves settings in order flags, environment, config file and
// configures the game package.
func setup(cmd *cobra.Command, _ []string) error {
	var err error
	envCfg, err = config.LoadEnv()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("config") && envCfg.ConfigPath != "" {
		flagConfig = envCfg.ConfigPath
	}
	if !flags.Changed("fps") && envCfg.FPS > 0 {
		flagFPS = envCfg.FPS
	}
	if !flags.Changed("db") && envCfg.DBPath != "" {
		flagDBPath = envCfg.DBPath
	}
	if flagLogLevel == "" {
		flagLogLevel = envCfg.LogLevel
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sokoban",
		Level:           level,
	})
	log.SetDefault(logger)

	gameCfg, err = config.LoadSokoban(flagConfig)
	if err != nil {
		return err
	}
	envCfg.Apply(&gameCfg)
	if flagLevels != "" {
		gameCfg.Levels.Dir = flagLevels
	}

	sokoban.Configure(gameCfg, logger)
	logger.Debug("configured", "levels", levelSource(), "db", flagDBPath, "fps", flagFPS)
	return nil
}

func levelSource() string {
	if gameCfg.Levels.Dir != "" {
		return gameCfg.Levels.Dir
	}
	return "builtin"
}

// runtimeConfig builds the runtime config from the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	return cfg
}

// openStore opens the results database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// logToFile sends log output to ~/.sokoban/sokoban.log while a full-screen
// program owns the terminal. The returned func restores stderr.
func logToFile() func() {
	home, err := os.UserHomeDir()
	if err != nil {
		return func() {}
	}
	dir := filepath.Join(home, ".sokoban")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "sokoban.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return func() {}
	}
	logger.SetOutput(f)
	return func() {
		logger.SetOutput(os.Stderr)
		f.Close()
	}
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
