package asteroids

import "github.com/vovakirdan/tui-roids/internal/core"

// Tick applies queued commands and advances the world by one fixed step.
func (w *World) Tick() {
	w.tick++
	w.applyCommands()

	craft := w.craft
	exploding := craft.Exploding()

	w.integrateThrust()
	w.wrapCraft()

	w.resolveBulletHits()

	switch {
	case exploding:
		w.countdownExplosion()
	case craft.Dead:
		// Game over: the craft stays put until the next game
	default:
		w.resolveCraftHit()
		craft.Heading += craft.Rot
		craft.X += craft.Thrust.X
		craft.Y += craft.Thrust.Y
	}

	w.updateBullets()
	w.moveAsteroids()
	w.fadeBanner()
}

// integrateThrust accelerates along the heading while thrusting and
// otherwise bleeds off a fixed fraction of the thrust vector.
func (w *World) integrateThrust() {
	c := w.craft
	if c.Thrusting && !c.Dead {
		c.Thrust = c.Thrust.Add(core.FromAngle(c.Heading).Scale(w.settings.ThrustAccel))
		return
	}
	c.Thrust.X -= c.Thrust.X * w.settings.Drag
	c.Thrust.Y -= c.Thrust.Y * w.settings.Drag
}

func (w *World) wrapCraft() {
	c := w.craft
	c.X = wrap(c.X, c.R, w.settings.Width)
	c.Y = wrap(c.Y, c.R, w.settings.Height)
}

// countdownExplosion ages the explosion and, when it ends, spends a life.
func (w *World) countdownExplosion() {
	c := w.craft
	c.Explode--
	if c.Explode > 0 {
		return
	}

	w.lives--
	if w.lives <= 0 {
		w.lives = 0
		w.gameOver()
		return
	}
	w.log.Info("craft lost", "lives", w.lives, "level", w.level, "score", w.score)
	w.craft = w.newCraft()
}

func (w *World) gameOver() {
	w.craft.Dead = true
	w.banner = "Game Over"
	w.bannerAlpha = 1
	w.log.Info("game over", "score", w.score, "level", w.level, "high_score", w.highScore)
}

// updateBullets ages fading bullets and moves flying ones. Flying bullets
// that leave the field are dropped so misses free their slot.
func (w *World) updateBullets() {
	c := w.craft
	kept := c.Bullets[:0]
	for _, b := range c.Bullets {
		if b.Fading() {
			b.Explode--
			if b.Explode == 0 {
				continue
			}
		} else {
			b.X += b.VX
			b.Y += b.VY
			if b.X < 0 || b.X > w.settings.Width || b.Y < 0 || b.Y > w.settings.Height {
				continue
			}
		}
		kept = append(kept, b)
	}
	c.Bullets = kept
}

func (w *World) moveAsteroids() {
	for i := range w.roids {
		a := &w.roids[i]
		a.X = wrap(a.X+a.VX, a.R, w.settings.Width)
		a.Y = wrap(a.Y+a.VY, a.R, w.settings.Height)
	}
}

// fadeBanner dims the banner; once it is gone a dead craft starts a new game.
func (w *World) fadeBanner() {
	if w.bannerAlpha >= 0 {
		w.bannerAlpha -= w.settings.BannerFade
		return
	}
	if w.craft.Dead {
		w.NewGame()
	}
}

// wrap moves a coordinate that left [-r, limit+r] to the opposite edge.
func wrap(v, r, limit float64) float64 {
	switch {
	case v < -r:
		return limit + r
	case v > limit+r:
		return -r
	default:
		return v
	}
}
