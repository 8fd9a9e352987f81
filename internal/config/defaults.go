package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the default Asteroids configuration.
// Kept in sync with defaults/asteroids.yaml.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Field: AsteroidsField{
			CellWidth:  10,
			CellHeight: 20,
		},
		Craft: AsteroidsCraft{
			Size:         30,
			Thrust:       5,
			Friction:     1,
			TurnSpeed:    360,
			ExplodeTicks: 9,
		},
		Bullets: AsteroidsBullets{
			Max:          5,
			Speed:        500,
			ExplodeTicks: 3,
			CountFading:  true,
		},
		Asteroids: AsteroidsBelt{
			Num:          3,
			Size:         100,
			Vertices:     15,
			Speed:        50,
			LevelSpeedup: 0.1,
			LargePoints:  25,
			SmallPoints:  100,
		},
		Gameplay: AsteroidsGameplay{
			Lives:         3,
			BannerSeconds: 2.5,
		},
		Input: AsteroidsInput{
			HoldMillis: 550,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "asteroids":
		return defaultAsteroidsYAML
	default:
		return nil
	}
}
