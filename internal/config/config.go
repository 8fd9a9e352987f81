// Package config provides YAML/TOML-based game tuning for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// AsteroidsConfig contains all tuning for the Asteroids game.
type AsteroidsConfig struct {
	Field     AsteroidsField    `yaml:"field" toml:"field"`
	Craft     AsteroidsCraft    `yaml:"craft" toml:"craft"`
	Bullets   AsteroidsBullets  `yaml:"bullets" toml:"bullets"`
	Asteroids AsteroidsBelt     `yaml:"asteroids" toml:"asteroids"`
	Gameplay  AsteroidsGameplay `yaml:"gameplay" toml:"gameplay"`
	Input     AsteroidsInput    `yaml:"input" toml:"input"`
}

// AsteroidsField maps terminal cells onto field units.
// A cell is roughly twice as tall as it is wide.
type AsteroidsField struct {
	CellWidth  float64 `yaml:"cell_width" toml:"cell_width"`
	CellHeight float64 `yaml:"cell_height" toml:"cell_height"`
}

// AsteroidsCraft defines the player's ship.
type AsteroidsCraft struct {
	Size         float64 `yaml:"size" toml:"size"`                   // Height in field units; radius is half
	Thrust       float64 `yaml:"thrust" toml:"thrust"`               // Acceleration, units per second per second
	Friction     float64 `yaml:"friction" toml:"friction"`           // Drag coefficient per second
	TurnSpeed    float64 `yaml:"turn_speed" toml:"turn_speed"`       // Degrees per second
	ExplodeTicks int     `yaml:"explode_ticks" toml:"explode_ticks"` // Explosion countdown
}

// AsteroidsBullets defines projectiles.
type AsteroidsBullets struct {
	Max          int     `yaml:"max" toml:"max"`
	Speed        float64 `yaml:"speed" toml:"speed"` // Units per second
	ExplodeTicks int     `yaml:"explode_ticks" toml:"explode_ticks"`
	CountFading  bool    `yaml:"count_fading" toml:"count_fading"` // Fading bullets occupy a slot
}

// AsteroidsBelt defines asteroid generation.
type AsteroidsBelt struct {
	Num          int     `yaml:"num" toml:"num"`                     // Belt size at level 0
	Size         float64 `yaml:"size" toml:"size"`                   // Large radius = size/2, small = size/8
	Vertices     int     `yaml:"vertices" toml:"vertices"`           // Average vertex tuning value
	Speed        float64 `yaml:"speed" toml:"speed"`                 // Max speed per axis, units per second
	LevelSpeedup float64 `yaml:"level_speedup" toml:"level_speedup"` // Added speed fraction per level
	LargePoints  int     `yaml:"large_points" toml:"large_points"`
	SmallPoints  int     `yaml:"small_points" toml:"small_points"`
}

// AsteroidsGameplay defines the life pool and banners.
type AsteroidsGameplay struct {
	Lives         int     `yaml:"lives" toml:"lives"`
	BannerSeconds float64 `yaml:"banner_seconds" toml:"banner_seconds"`
}

// AsteroidsInput defines how terminal key repeats become held keys.
type AsteroidsInput struct {
	HoldMillis int `yaml:"hold_ms" toml:"hold_ms"`
}

// Validate reports settings that would break the simulation.
func (c AsteroidsConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("field.cell_width", c.Field.CellWidth)
	positive("field.cell_height", c.Field.CellHeight)
	positive("craft.size", c.Craft.Size)
	positive("craft.explode_ticks", float64(c.Craft.ExplodeTicks))
	positive("bullets.max", float64(c.Bullets.Max))
	positive("bullets.speed", c.Bullets.Speed)
	positive("bullets.explode_ticks", float64(c.Bullets.ExplodeTicks))
	positive("asteroids.num", float64(c.Asteroids.Num))
	positive("asteroids.size", c.Asteroids.Size)
	positive("asteroids.vertices", float64(c.Asteroids.Vertices))
	positive("gameplay.lives", float64(c.Gameplay.Lives))
	positive("gameplay.banner_seconds", c.Gameplay.BannerSeconds)

	if c.Craft.Friction < 0 {
		errs = append(errs, fmt.Errorf("craft.friction must not be negative, got %v", c.Craft.Friction))
	}
	if c.Asteroids.Speed < 0 || c.Asteroids.LevelSpeedup < 0 {
		errs = append(errs, errors.New("asteroids.speed and asteroids.level_speedup must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid asteroids config: %w", errors.Join(errs...))
	}
	return nil
}
