// skyshooter is a small vertical arcade shooter with terminal, SSH,
// desktop window and browser front ends.
//
// Usage:
//
//	skyshooter list              - List available profiles
//	skyshooter play <profile>    - Play a profile in the terminal
//	skyshooter menu              - Pick profiles interactively
//	skyshooter window [profile]  - Play in a desktop window
//	skyshooter web               - Serve the browser version
//	skyshooter serve             - Start SSH server for remote play
//	skyshooter scores [profile]  - Show high scores
//	skyshooter config <profile>  - Print the effective profile config
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path|url>    - SQLite path or postgres:// URL (default: ~/.skyshooter/scores.db)
//	--player <name>    - Name stored with scores (default: $USER)
//	--log-file <path>  - Write logs to a file
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyshooter/internal/config"
	"github.com/vovakirdan/skyshooter/internal/core"
	"github.com/vovakirdan/skyshooter/internal/games/skyshooter"
	"github.com/vovakirdan/skyshooter/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagPlayer   string
	flagLogFile  string
	flagLogLevel string

	// Profile flags shared by play, menu, window and web
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyshooter",
	Short: "Sky Shooter - a vertical arcade shooter",
	Long: `Sky Shooter is a small arcade shooter. Slide along the bottom edge,
shoot the craft coming down from the top, and do not let one reach you.

Available commands:
  list     - Show all profiles
  play     - Play a profile in the terminal
  menu     - Interactive profile picker
  window   - Play in a desktop window
  web      - Serve the browser version
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective config of a profile

Examples:
  skyshooter list
  skyshooter play classic
  skyshooter play ramped --difficulty hard
  skyshooter window tiered --scale 1.5
  skyshooter web --addr :8080
  skyshooter serve --ssh :2222
  skyshooter scores classic`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyshooter/scores.db", "SQLite path or postgres:// URL for scores")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", defaultPlayer(), "Player name stored with scores")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (terminal hosts log nowhere otherwise)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

// addProfileFlags registers --config and --difficulty on a command.
func addProfileFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom profile config (YAML or TOML)")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyProfileFlags hands --config and --difficulty to the game package.
// An explicit config path that fails to load is an error; without one a
// broken user override only produces a warning at start.
func applyProfileFlags(profiles ...string) error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagConfig != "" {
		for _, p := range profiles {
			if _, err := config.Load(p, flagConfig); err != nil {
				return err
			}
		}
	}
	skyshooter.SetConfigPath(flagConfig)
	skyshooter.SetDifficultyPreset(flagDifficulty)
	return nil
}

// parseLevel turns --log-level into a log.Level.
func parseLevel() (log.Level, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid --log-level %q", flagLogLevel)
	}
	return level, nil
}

// newLogger builds the logger for local hosts. The terminal belongs to the
// game, so logs go to --log-file or nowhere.
func newLogger(prefix string) (*log.Logger, func(), error) {
	level, err := parseLevel()
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if flagLogFile != "" {
		if dir := filepath.Dir(flagLogFile); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
			}
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// openStore opens the score store. Games still run without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "error", err)
		return nil
	}
	logger.Debug("scores database open", "backend", store.Backend())
	return store
}

func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
