package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-roids/internal/games/asteroids"
	"github.com/vovakirdan/tui-roids/internal/platform/tui"
	"github.com/vovakirdan/tui-roids/internal/registry"
	"github.com/vovakirdan/tui-roids/internal/storage"
)

// defaultGame is played when no game is named.
const defaultGame = "asteroids"

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: asteroids).

Controls:
  Left/A, Right/D  - Rotate
  Up/W             - Thrust
  Space            - Fire
  P                - Pause
  R                - Play again (after game over)
  Esc/B            - Back
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a text screenshot

Examples:
  roids play
  roids play asteroids --seed 42
  roids play --config ./my-roids.yaml
  roids play --config ./my-roids.toml --fps 60`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'roids list' to see available games", gameID)
	}

	applyGameFlags(gameID)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// applyGameFlags hands command-line tuning to the game before it is created.
func applyGameFlags(gameID string) {
	switch gameID {
	case "asteroids":
		asteroids.SetConfigPath(flagConfig)
	}
}

// openStore opens the scores database. The game still runs without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "path", flagDBPath, "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
