package asteroids

import "github.com/vovakirdan/tui-roids/internal/core"

// resolveBulletHits tests every flying bullet against every asteroid.
// Asteroids and bullets are scanned back to front so removal and splitting
// never disturb unvisited indices. Each asteroid takes at most one bullet.
func (w *World) resolveBulletHits() {
	bullets := w.craft.Bullets
	level := w.level

	for i := len(w.roids) - 1; i >= 0; i-- {
		a := w.roids[i]
		for j := len(bullets) - 1; j >= 0; j-- {
			b := &bullets[j]
			if b.Fading() || core.Distance(a.X, a.Y, b.X, b.Y) >= a.R {
				continue
			}
			w.destroyAsteroid(i)
			b.Explode = w.settings.BulletExplode
			break
		}
		// A fresh belt is not shot at in the tick it appears
		if w.level != level {
			return
		}
	}
}

// resolveCraftHit explodes the craft on its first asteroid contact.
func (w *World) resolveCraftHit() {
	c := w.craft
	for i, a := range w.roids {
		if core.Distance(c.X, c.Y, a.X, a.Y) < c.R+a.R {
			c.Explode = w.settings.CraftExplode
			w.destroyAsteroid(i)
			return
		}
	}
}

// destroyAsteroid scores and removes the asteroid at index i. Large
// asteroids split into two small ones at the same position. Clearing the
// last asteroid starts the next level.
func (w *World) destroyAsteroid(i int) {
	a := w.roids[i]

	if a.Tier == TierLarge {
		w.roids = append(w.roids,
			w.newAsteroid(a.X, a.Y, TierSmall),
			w.newAsteroid(a.X, a.Y, TierSmall),
		)
		w.score += w.settings.LargePoints
	} else {
		w.score += w.settings.SmallPoints
	}

	if w.score > w.highScore {
		w.highScore = w.score
		if err := w.store.Write(w.highScore); err != nil {
			w.log.Warn("failed to persist high score", "score", w.highScore, "err", err)
		}
	}

	w.roids = append(w.roids[:i], w.roids[i+1:]...)

	if len(w.roids) == 0 {
		w.level++
		w.newLevel()
	}
}
