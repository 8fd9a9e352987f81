// Package asteroids implements a single-player asteroids game: a craft on a
// wrapping field shoots drifting rocks through escalating levels until its
// lives run out.
//
// The simulation lives in World and advances one fixed step per Tick. Game
// adapts World to the platform's registry.Game interface.
package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-roids/internal/config"
	"github.com/vovakirdan/tui-roids/internal/core"
)

// Settings holds per-tick tuning derived from config and runtime.
// Rates are already divided by the tick rate.
type Settings struct {
	Width  float64 // Field width in field units
	Height float64 // Field height in field units

	CellWidth  float64
	CellHeight float64

	Lives int

	CraftRadius  float64
	ThrustAccel  float64 // Added to the thrust vector per tick while thrusting
	Drag         float64 // Fraction of the thrust vector removed per tick
	TurnRate     float64 // Radians per tick
	CraftExplode int

	BulletMax          int
	BulletSpeed        float64 // Units per tick
	BulletExplode      int
	CountFadingBullets bool

	BeltBase     int
	LargeRadius  float64
	SmallRadius  float64
	MinVertices  int
	MaxVertices  int
	RoidSpeed    float64 // Max per-axis speed at level 0, units per tick
	LevelSpeedup float64
	LargePoints  int
	SmallPoints  int

	BannerFade float64 // Alpha removed per tick
}

// NewSettings derives simulation settings from tuning config and runtime.
func NewSettings(cfg config.AsteroidsConfig, runtime core.RuntimeConfig) Settings {
	rate := float64(runtime.TickRate)
	if rate <= 0 {
		rate = core.DefaultTickRate
	}

	v := float64(cfg.Asteroids.Vertices)

	return Settings{
		Width:      float64(runtime.ScreenW) * cfg.Field.CellWidth,
		Height:     float64(runtime.ScreenH) * cfg.Field.CellHeight,
		CellWidth:  cfg.Field.CellWidth,
		CellHeight: cfg.Field.CellHeight,

		Lives: cfg.Gameplay.Lives,

		CraftRadius:  cfg.Craft.Size / 2,
		ThrustAccel:  cfg.Craft.Thrust / rate,
		Drag:         cfg.Craft.Friction / rate,
		TurnRate:     cfg.Craft.TurnSpeed * math.Pi / 180 / rate,
		CraftExplode: cfg.Craft.ExplodeTicks,

		BulletMax:          cfg.Bullets.Max,
		BulletSpeed:        cfg.Bullets.Speed / rate,
		BulletExplode:      cfg.Bullets.ExplodeTicks,
		CountFadingBullets: cfg.Bullets.CountFading,

		BeltBase:     cfg.Asteroids.Num,
		LargeRadius:  cfg.Asteroids.Size / 2,
		SmallRadius:  cfg.Asteroids.Size / 8,
		MinVertices:  int(math.Round(1.5 * v)),
		MaxVertices:  int(math.Round(2.5 * v)),
		RoidSpeed:    cfg.Asteroids.Speed / rate,
		LevelSpeedup: cfg.Asteroids.LevelSpeedup,
		LargePoints:  cfg.Asteroids.LargePoints,
		SmallPoints:  cfg.Asteroids.SmallPoints,

		BannerFade: 1 / cfg.Gameplay.BannerSeconds / rate,
	}
}
