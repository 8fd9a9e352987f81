package asteroids

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-roids/internal/config"
	"github.com/vovakirdan/tui-roids/internal/core"
	"github.com/vovakirdan/tui-roids/internal/registry"
)

// Minimum terminal size the field is playable at.
const (
	MinScreenW = 40
	MinScreenH = 15
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// actionCommands maps platform actions onto craft controls.
var actionCommands = []struct {
	action core.Action
	cmd    Command
}{
	{core.ActionFire, CommandFire},
	{core.ActionRotateLeft, CommandRotateLeft},
	{core.ActionRotateRight, CommandRotateRight},
	{core.ActionThrust, CommandThrust},
}

// Game adapts World to the platform's game interface.
type Game struct {
	world    *World
	runtime  core.RuntimeConfig
	cfg      config.AsteroidsConfig
	store    core.HighScoreStore
	log      *log.Logger
	paused   bool
	tooSmall bool
}

// New creates a new Asteroids game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "asteroids"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Asteroids"
}

// AttachHighScores sets the store the best score is read from and written to.
func (g *Game) AttachHighScores(store core.HighScoreStore) {
	g.store = store
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.log = log.Default().WithPrefix("asteroids")

	cfg, err := config.LoadAsteroids(configPath)
	if err != nil {
		g.log.Warn("using default config", "path", configPath, "err", err)
		cfg = config.DefaultAsteroidsConfig()
	}
	g.cfg = cfg

	if g.store == nil {
		g.store = &core.MemoryHighScores{}
	}

	g.paused = false
	g.tooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH
	g.world = NewWorld(NewSettings(cfg, runtime), runtime.Seed, g.store, g.log)
}

// World exposes the simulation for inspection.
func (g *Game) World() *World {
	return g.world
}

// Config returns the tuning loaded by the last Reset.
func (g *Game) Config() config.AsteroidsConfig {
	return g.cfg
}

// HoldWindow reports how long a key stays held without a terminal repeat.
func (g *Game) HoldWindow() time.Duration {
	return time.Duration(g.cfg.Input.HoldMillis) * time.Millisecond
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	dead := g.world.Phase() == PhaseDead

	// Handle restart
	if in.Has(core.ActionRestart) && dead {
		g.world.NewGame()
		g.paused = false
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !dead {
		g.paused = !g.paused
	}

	// Releases are queued even while paused so no key stays stuck
	for _, ac := range actionCommands {
		if in.Released(ac.action) {
			g.world.Release(ac.cmd)
		}
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, ac := range actionCommands {
		if in.Has(ac.action) {
			g.world.Press(ac.cmd)
		}
	}

	g.world.Tick()

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     g.world.Score(),
		HighScore: g.world.HighScore(),
		Lives:     g.world.Lives(),
		Level:     g.world.Level(),
		GameOver:  g.world.Phase() == PhaseDead,
		Paused:    g.paused,
	}
}

// Register the game
func init() {
	registry.Register("asteroids", func() registry.Game {
		return New()
	})
}
