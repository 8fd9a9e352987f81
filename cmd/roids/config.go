package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-roids/internal/config"
)

var flagConfigTOML bool

var configCmd = &cobra.Command{
	Use:   "config [game]",
	Short: "Print the default tuning file for a game",
	Long: `Print the built-in tuning for a game (default: asteroids).
Save the output to ~/.roids/configs/asteroids.yaml (or .toml) to
override it, or pass it with --config.

Examples:
  roids config > ~/.roids/configs/asteroids.yaml
  roids config --toml > ~/.roids/configs/asteroids.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigTOML, "toml", false, "Print TOML instead of YAML")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		return fmt.Errorf("no tuning file for game %q", gameID)
	}

	if flagConfigTOML {
		return toml.NewEncoder(out).Encode(config.DefaultAsteroidsConfig())
	}

	_, err := out.Write(data)
	return err
}
