package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-roids/internal/core"
)

// Tier is an asteroid size class.
type Tier int

const (
	TierLarge Tier = iota // Spawned by a new belt, splits in two
	TierSmall             // Spawned by a split, destroyed outright
)

// String returns the tier name.
func (t Tier) String() string {
	if t == TierLarge {
		return "large"
	}
	return "small"
}

// Asteroid is a drifting rock. Collision treats it as a circle of radius R;
// Vertices and Heading only shape the drawn polygon.
type Asteroid struct {
	X, Y     float64
	VX, VY   float64
	Heading  float64
	R        float64
	Tier     Tier
	Vertices int
}

// Bullet is a projectile owned by the craft.
// A positive Explode counts down the fade before removal.
type Bullet struct {
	X, Y    float64
	VX, VY  float64
	Explode int
}

// Fading reports whether the bullet has hit something.
func (b Bullet) Fading() bool {
	return b.Explode > 0
}

// Craft is the player's ship.
type Craft struct {
	X, Y      float64
	Heading   float64 // Radians, counter-clockwise, pi/2 points up
	R         float64
	Rot       float64   // Heading change per tick
	Thrust    core.Vec2 // Velocity accumulated from thrust
	Thrusting bool
	CanFire   bool
	Explode   int // Ticks of explosion left, 0 while intact
	Dead      bool
	Bullets   []Bullet
}

// Exploding reports whether the explosion countdown is running.
func (c *Craft) Exploding() bool {
	return c.Explode > 0
}

// Nose returns the tip of the craft.
func (c *Craft) Nose() core.Vec2 {
	return core.Vec2{X: c.X, Y: c.Y}.Add(core.FromAngle(c.Heading).Scale(c.R))
}

// flyingBullets counts bullets that have not hit anything.
func (c *Craft) flyingBullets() int {
	n := 0
	for _, b := range c.Bullets {
		if !b.Fading() {
			n++
		}
	}
	return n
}

// newAsteroid builds an asteroid of the given tier at (x, y).
// Speed scales with the current level.
func (w *World) newAsteroid(x, y float64, tier Tier) Asteroid {
	r := w.settings.LargeRadius
	if tier == TierSmall {
		r = w.settings.SmallRadius
	}

	maxSpeed := w.settings.RoidSpeed * (1 + w.settings.LevelSpeedup*float64(w.level))
	spread := w.settings.MaxVertices - w.settings.MinVertices + 1

	return Asteroid{
		X:        x,
		Y:        y,
		VX:       w.rng.Float64() * maxSpeed,
		VY:       w.rng.Float64() * maxSpeed,
		Heading:  w.rng.Float64() * 2 * math.Pi,
		R:        r,
		Tier:     tier,
		Vertices: w.settings.MinVertices + w.rng.Intn(spread),
	}
}

// newCraft builds a fresh craft at the field center, pointing up.
func (w *World) newCraft() *Craft {
	return &Craft{
		X:       w.settings.Width / 2,
		Y:       w.settings.Height / 2,
		Heading: math.Pi / 2,
		R:       w.settings.CraftRadius,
		CanFire: true,
	}
}

// newBullet spawns a bullet at the craft's nose moving along its heading.
func (w *World) newBullet(c *Craft) Bullet {
	nose := c.Nose()
	v := core.FromAngle(c.Heading).Scale(w.settings.BulletSpeed)
	return Bullet{X: nose.X, Y: nose.Y, VX: v.X, VY: v.Y}
}
