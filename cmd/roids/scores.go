package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-roids/internal/registry"
	"github.com/vovakirdan/tui-roids/internal/storage"
)

var flagResetScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top 10 finished games and the best score for a game
(default: asteroids).

Examples:
  roids scores
  roids scores asteroids
  roids scores asteroids --reset`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagResetScores, "reset", false, "Delete all scores and the best score for the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'roids list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagResetScores {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		if err := store.HighScores(gameID).Reset(); err != nil {
			return err
		}
		fmt.Fprintf(out, "Scores for %s cleared.\n", title)
		return nil
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n", title)
	fmt.Fprintln(out)

	best, hasBest := store.HighScores(gameID).Read()

	if len(scores) == 0 {
		fmt.Fprintln(out, "No finished games recorded yet.")
		if hasBest {
			fmt.Fprintf(out, "Best: %d\n", best)
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'roids play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	// The kept best also covers games that were quit before they ended
	fmt.Fprintln(out)
	if top := scores[0].Score; !hasBest || top > best {
		best = top
	}
	fmt.Fprintf(out, "Best: %d\n", best)

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Fprintf(out, "Games: %d  Average: %.0f\n", stats.GamesCount, stats.AvgScore)
	}
	return nil
}
