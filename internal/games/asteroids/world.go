package asteroids

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-roids/internal/core"
)

// Phase is the craft's place in the explosion/respawn cycle.
type Phase int

const (
	PhaseAlive     Phase = iota // Craft flies and collides
	PhaseExploding              // Countdown running, craft frozen
	PhaseDead                   // Lives exhausted, waiting for a new game
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAlive:
		return "alive"
	case PhaseExploding:
		return "exploding"
	case PhaseDead:
		return "dead"
	default:
		return "unknown"
	}
}

// World is the complete simulation state of one asteroids session.
// It is owned by a single goroutine; Press/Release queue commands and
// Tick consumes them.
type World struct {
	settings Settings
	rng      *rand.Rand
	store    core.HighScoreStore
	log      *log.Logger

	tick      uint64
	level     int
	lives     int
	score     int
	highScore int

	banner      string
	bannerAlpha float64

	craft *Craft
	roids []Asteroid

	pending []command
}

// NewWorld creates a world and starts the first game.
// A nil store keeps the high score in memory; a nil logger uses the default.
func NewWorld(settings Settings, seed int64, store core.HighScoreStore, logger *log.Logger) *World {
	if store == nil {
		store = &core.MemoryHighScores{}
	}
	if logger == nil {
		logger = log.Default().WithPrefix("asteroids")
	}

	w := &World{
		settings: settings,
		rng:      rand.New(rand.NewSource(seed)), //#nosec G404 -- game randomness, not security
		store:    store,
		log:      logger,
	}
	w.NewGame()
	return w
}

// NewGame resets level, lives and score, reloads the stored high score and
// generates a fresh craft and belt.
func (w *World) NewGame() {
	w.level = 0
	w.lives = w.settings.Lives
	w.score = 0
	w.pending = w.pending[:0]

	stored, ok := w.store.Read()
	if !ok || stored < 0 {
		stored = 0
	}
	// The in-memory value survives a failed write
	w.highScore = max(w.highScore, stored)

	w.craft = w.newCraft()
	w.newLevel()
	w.log.Info("new game", "high_score", w.highScore)
}

// newLevel arms the level banner and regenerates the belt.
func (w *World) newLevel() {
	w.banner = fmt.Sprintf("Level %d", w.level+1)
	w.bannerAlpha = 1

	n := w.settings.BeltBase + w.level
	w.roids = make([]Asteroid, 0, n*3)
	for range n {
		x := math.Floor(w.rng.Float64() * w.settings.Width)
		y := math.Floor(w.rng.Float64() * w.settings.Height)
		w.roids = append(w.roids, w.newAsteroid(x, y, TierLarge))
	}
	w.log.Debug("level start", "level", w.level, "asteroids", n)
}

// Settings returns the tuning the world runs with.
func (w *World) Settings() Settings {
	return w.settings
}

// Level returns the zero-based level index.
func (w *World) Level() int {
	return w.level
}

// Lives returns the remaining lives.
func (w *World) Lives() int {
	return w.lives
}

// Score returns the current score.
func (w *World) Score() int {
	return w.score
}

// HighScore returns the best score known to the world.
func (w *World) HighScore() int {
	return w.highScore
}

// Banner returns the banner text and its alpha. Alpha below zero means hidden.
func (w *World) Banner() (string, float64) {
	return w.banner, w.bannerAlpha
}

// Ticks returns the number of ticks run since the world was created.
func (w *World) Ticks() uint64 {
	return w.tick
}

// Craft returns a copy of the craft. Its bullet slice is shared; do not modify it.
func (w *World) Craft() Craft {
	return *w.craft
}

// Asteroids returns the live asteroids. The slice is shared; do not modify it.
func (w *World) Asteroids() []Asteroid {
	return w.roids
}

// Phase reports the craft's explosion/respawn state.
func (w *World) Phase() Phase {
	switch {
	case w.craft.Dead:
		return PhaseDead
	case w.craft.Exploding():
		return PhaseExploding
	default:
		return PhaseAlive
	}
}
