package asteroids

// Snapshot is a value copy of the world for presentation and tests.
// It shares no memory with the world.
type Snapshot struct {
	Tick      uint64
	Level     int
	Lives     int
	Score     int
	HighScore int
	Phase     Phase

	Banner      string
	BannerAlpha float64

	Craft     Craft
	Asteroids []Asteroid
}

// Snapshot captures the current state.
func (w *World) Snapshot() Snapshot {
	craft := *w.craft
	craft.Bullets = append([]Bullet(nil), w.craft.Bullets...)

	return Snapshot{
		Tick:        w.tick,
		Level:       w.level,
		Lives:       w.lives,
		Score:       w.score,
		HighScore:   w.highScore,
		Phase:       w.Phase(),
		Banner:      w.banner,
		BannerAlpha: w.bannerAlpha,
		Craft:       craft,
		Asteroids:   append([]Asteroid(nil), w.roids...),
	}
}

// Hash folds the snapshot into a number for determinism checks.
func (s *Snapshot) Hash() uint64 {
	h := s.Tick
	mix := func(v float64) {
		h = h*31 + uint64(int64(v*1000)) //#nosec G115 -- hash computation
	}

	mix(float64(s.Level))
	mix(float64(s.Lives))
	mix(float64(s.Score))
	mix(s.Craft.X)
	mix(s.Craft.Y)
	mix(s.Craft.Heading)
	mix(float64(s.Craft.Explode))
	for _, b := range s.Craft.Bullets {
		mix(b.X)
		mix(b.Y)
		mix(float64(b.Explode))
	}
	for _, a := range s.Asteroids {
		mix(a.X)
		mix(a.Y)
		mix(a.R)
		mix(float64(a.Vertices))
	}
	return h
}
