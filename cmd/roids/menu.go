package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-roids/internal/platform/tui"
	"github.com/vovakirdan/tui-roids/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title screen",
	Long: `Start on the title screen.

Use arrow keys or j/k to navigate, Enter to pick Play, High scores or Quit.
Leaving a game (Esc) returns to the title screen.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scoreboard
  Q            - Quit

Examples:
  roids menu
  roids menu --fps 60
  roids menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, defaultGame, cfg)
		if err != nil {
			return fmt.Errorf("running menu: %w", err)
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, defaultGame, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return fmt.Errorf("running scoreboard: %w", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		applyGameFlags(defaultGame)

		game, err := registry.Create(defaultGame)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}

		// Fresh seed for each game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, cfg); err != nil {
			log.Error("game failed", "game", defaultGame, "err", err)
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}
}
