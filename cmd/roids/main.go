// roids plays Asteroids in the terminal.
//
// Usage:
//
//	roids                    - Play Asteroids
//	roids play [game]        - Play a game
//	roids menu               - Start menu to pick games interactively
//	roids list               - List available games
//	roids scores <game>      - Show high scores for a game
//	roids config [game]      - Print the default tuning file
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.roids/scores.db)
//	--log-file <path>    - Set log file (default: ~/.roids/roids.log)
//	--log-level <level>  - Set log level (debug, info, warn, error)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-roids/internal/core"

	// Import games to register them
	_ "github.com/vovakirdan/tui-roids/internal/games/asteroids"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
	flagConfig   string

	logFile *os.File
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roids",
	Short: "Roids - Asteroids in your terminal",
	Long: `Roids is a terminal version of the classic vector shooter.
Steer the craft, shoot the rocks, and keep your best score.

Available commands:
  play     - Play a game directly (default: asteroids)
  menu     - Interactive game picker menu
  list     - Show all available games
  scores   - View high scores
  config   - Print the default tuning file

Examples:
  roids
  roids play --seed 42
  roids menu
  roids scores asteroids`,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: closeLogging,
	SilenceUsage:      true,
	Args:              cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runPlay(cmd, nil)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultTickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.roids/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.roids/roids.log", "Path to log file (empty disables logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging routes the default logger to a file.
// The game owns the terminal, so nothing is logged to stderr while it runs.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = io.Discard
	if flagLogFile != "" {
		path, err := expandHome(flagLogFile)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "roids",
		Level:           level,
	})
	log.SetDefault(logger)
	return nil
}

func closeLogging(_ *cobra.Command, _ []string) {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
