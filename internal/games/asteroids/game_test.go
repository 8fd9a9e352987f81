package asteroids

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-roids/internal/core"
	"github.com/vovakirdan/tui-roids/internal/registry"
)

func newTestGame(t *testing.T, store core.HighScoreStore) *Game {
	t.Helper()
	g := New()
	if store != nil {
		g.AttachHighScores(store)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 7})
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("asteroids") {
		t.Fatal("asteroids should be registered")
	}
	g, err := registry.Create("asteroids")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Asteroids" {
		t.Errorf("Title() = %q, expected Asteroids", g.Title())
	}
	if _, ok := g.(registry.HighScoreAware); !ok {
		t.Error("asteroids should accept a high score store")
	}
}

func TestGameInitialState(t *testing.T) {
	g := newTestGame(t, &core.MemoryHighScores{Value: 900, Set: true})

	st := g.State()
	expected := core.GameState{Score: 0, HighScore: 900, Lives: 3, Level: 0}
	if st != expected {
		t.Errorf("State() = %+v, expected %+v", st, expected)
	}
}

func TestGameTranslatesInput(t *testing.T) {
	g := newTestGame(t, nil)
	w := g.World()
	w.roids = []Asteroid{parked(20, 460, TierLarge, w.settings)}

	g.Step(press(core.ActionFire, core.ActionThrust, core.ActionRotateLeft))
	c := w.Craft()
	if len(c.Bullets) != 1 || !c.Thrusting || c.Rot <= 0 {
		t.Fatalf("craft after presses = %+v", c)
	}

	in := core.NewInputFrame()
	in.Release(core.ActionThrust)
	in.Release(core.ActionRotateLeft)
	g.Step(in)
	c = w.Craft()
	if c.Thrusting || c.Rot != 0 {
		t.Errorf("craft after releases = %+v", c)
	}
}

func TestGameReleaseBeforePress(t *testing.T) {
	g := newTestGame(t, nil)
	w := g.World()
	w.roids = []Asteroid{parked(20, 460, TierLarge, w.settings)}

	g.Step(press(core.ActionFire))

	// A tap inside one frame: the release re-arms, then the press fires
	in := press(core.ActionFire)
	in.Release(core.ActionFire)
	g.Step(in)

	if n := len(w.Craft().Bullets); n != 2 {
		t.Errorf("bullets = %d, expected 2", n)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, nil)

	g.Step(core.NewInputFrame())
	ticks := g.World().Ticks()

	if st := g.Step(press(core.ActionPause)).State; !st.Paused {
		t.Fatal("pause should toggle on")
	}
	for range 10 {
		g.Step(press(core.ActionThrust))
	}
	if g.World().Ticks() != ticks {
		t.Error("paused game should not tick")
	}
	if g.World().Craft().Thrusting {
		t.Error("presses while paused should be dropped")
	}

	if st := g.Step(press(core.ActionPause)).State; st.Paused {
		t.Error("pause should toggle off")
	}
	if g.World().Ticks() != ticks+1 {
		t.Error("unpaused game should tick")
	}
}

func TestHeldThrustSurvivesFreshCraft(t *testing.T) {
	g := newTestGame(t, nil)
	w := g.World()
	w.roids = []Asteroid{parked(20, 460, TierLarge, w.settings)}

	// A held key arrives as a press on every tick
	g.Step(press(core.ActionThrust))
	if !w.Craft().Thrusting {
		t.Fatal("thrust should engage")
	}

	w.craft.Explode = 1
	g.Step(press(core.ActionThrust))
	if w.Phase() != PhaseAlive || w.Lives() != 2 {
		t.Fatalf("expected a respawn, phase %v lives %d", w.Phase(), w.Lives())
	}

	g.Step(press(core.ActionThrust))
	if !w.Craft().Thrusting {
		t.Error("held thrust should carry over to the respawned craft")
	}
}

func TestHeldThrustAfterUnpause(t *testing.T) {
	g := newTestGame(t, nil)
	w := g.World()
	w.roids = []Asteroid{parked(20, 460, TierLarge, w.settings)}

	g.Step(press(core.ActionPause))
	for range 5 {
		g.Step(press(core.ActionThrust))
	}
	if w.Craft().Thrusting {
		t.Fatal("presses while paused should be dropped")
	}

	g.Step(press(core.ActionPause, core.ActionThrust))
	if g.State().Paused || !w.Craft().Thrusting {
		t.Errorf("held thrust should engage on unpause: paused %v craft %+v", g.State().Paused, w.Craft())
	}
}

func TestGameRestartOnlyWhenDead(t *testing.T) {
	g := newTestGame(t, nil)
	w := g.World()
	w.roids = []Asteroid{parked(20, 460, TierLarge, w.settings)}
	w.score = 300
	w.highScore = 300

	g.Step(press(core.ActionRestart))
	if g.State().Score != 300 {
		t.Fatal("restart while alive should be ignored")
	}

	w.gameOver()
	if !g.State().GameOver {
		t.Fatal("State() should report game over")
	}

	st := g.Step(press(core.ActionRestart)).State
	if st.GameOver || st.Score != 0 || st.Lives != 3 {
		t.Errorf("after restart State() = %+v", st)
	}
	if st.HighScore != 300 {
		t.Errorf("high score = %d, expected 300 to carry over", st.HighScore)
	}
}

func TestGameTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 30, Seed: 1})

	g.Step(press(core.ActionFire))
	if g.World().Ticks() != 0 {
		t.Error("undersized game should not tick")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("expected size warning, got:\n%s", screen.String())
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, &core.MemoryHighScores{Value: 1234, Set: true})
	w := g.World()
	w.roids = []Asteroid{parked(20, 460, TierLarge, w.settings)}
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	hud := screen.Row(hudRow)
	if !strings.Contains(hud, "BEST 1234") {
		t.Errorf("HUD should show the best score: %q", hud)
	}
	if !strings.HasSuffix(strings.TrimRight(hud, " "), "0") {
		t.Errorf("HUD should end with the score: %q", hud)
	}
	if strings.Count(hud, string(LifeChar)) != 3 {
		t.Errorf("HUD should show 3 lives: %q", hud)
	}
	if !strings.Contains(screen.Row(18), "Level 1") {
		t.Errorf("banner row = %q, expected Level 1", screen.Row(18))
	}
	if !strings.ContainsRune(screen.String(), RockChar) {
		t.Error("asteroids should be drawn")
	}
	if !strings.ContainsRune(screen.String(), CraftChar) {
		t.Error("craft should be drawn")
	}
}

func TestRenderExplosionAndLives(t *testing.T) {
	g := newTestGame(t, nil)
	w := g.World()
	w.roids = []Asteroid{parked(20, 460, TierLarge, w.settings)}
	w.craft.Explode = 5
	w.craft.Bullets = []Bullet{{X: 100, Y: 100}, {X: 300, Y: 100, Explode: 2}}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	cx, cy := 40, 12
	if c := screen.GetCell(cx, cy); c.Rune != ExplosionChar || c.Color != core.ColorYellow {
		t.Errorf("explosion cell = %+v", c)
	}
	if c := screen.GetCell(1+2*lifeSpacing, hudRow); c.Color != core.ColorRed {
		t.Errorf("last life should be red while exploding, got %+v", c)
	}
	if c := screen.GetCell(1, hudRow); c.Color != core.ColorWhite {
		t.Errorf("first life should stay white, got %+v", c)
	}
	if screen.Get(10, 5) != BulletChar || screen.Get(30, 5) != BulletHitChar {
		t.Errorf("bullets drawn as %q and %q", screen.Get(10, 5), screen.Get(30, 5))
	}
}

func TestRenderBannerFades(t *testing.T) {
	g := newTestGame(t, nil)
	w := g.World()
	screen := core.NewScreen(80, 24)
	bannerX := (80 - len("Level 1")) / 2

	g.Render(screen)
	if c := screen.GetCell(bannerX, 18); c.Color != core.ColorBrightWhite {
		t.Errorf("fresh banner color = %v, expected bright white", c.Color)
	}

	w.bannerAlpha = 0.2
	g.Render(screen)
	if c := screen.GetCell(bannerX, 18); c.Color != core.ColorGray {
		t.Errorf("faded banner color = %v, expected gray", c.Color)
	}

	w.bannerAlpha = -0.01
	g.Render(screen)
	if strings.Contains(screen.Row(18), "Level 1") {
		t.Error("expired banner should not be drawn")
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	g := newTestGame(t, nil)
	for range 30 {
		g.Step(press(core.ActionFire, core.ActionRotateRight))
	}

	before := g.World().Snapshot()
	screen := core.NewScreen(80, 24)
	for range 5 {
		g.Render(screen)
	}
	after := g.World().Snapshot()

	if before.Hash() != after.Hash() || before.BannerAlpha != after.BannerAlpha {
		t.Error("Render changed the world")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, nil)
		for i := range 300 {
			in := core.NewInputFrame()
			switch {
			case i%4 == 0:
				in.Set(core.ActionFire)
			case i%4 == 2:
				in.Release(core.ActionFire)
			}
			if i%60 < 30 {
				in.Set(core.ActionRotateLeft)
			}
			g.Step(in)
		}
		return g.World().Snapshot()
	}

	a, b := run(), run()
	if a.Hash() != b.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", a.Hash(), b.Hash())
	}
}

func TestGameHoldWindow(t *testing.T) {
	g := newTestGame(t, nil)

	var holder registry.KeyHolder = g
	if got := holder.HoldWindow(); got != 550*time.Millisecond {
		t.Errorf("HoldWindow() = %v, expected 550ms", got)
	}
}
