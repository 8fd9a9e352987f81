package asteroids

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tui-roids/internal/core"
)

// Visual characters for rendering
const (
	RockChar       = '#'
	CraftChar      = '█'
	ExplosionChar  = '*'
	BulletChar     = '•'
	BulletHitChar  = '✶'
	LifeChar       = '▲'
	hudRow         = 0
	lifeSpacing    = 2
	bannerFraction = 0.75
)

// Render draws the current game state into the screen buffer.
// It reads a snapshot and never changes the world.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.world == nil {
		return
	}
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorBrightWhite)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorGray)
		return
	}

	snap := g.world.Snapshot()
	v := viewport{cw: g.world.settings.CellWidth, ch: g.world.settings.CellHeight}

	for _, a := range snap.Asteroids {
		v.polygon(dst, a)
	}
	v.craft(dst, snap.Craft)
	for _, b := range snap.Craft.Bullets {
		x, y := v.cell(b.X, b.Y)
		if b.Fading() {
			dst.SetColored(x, y, BulletHitChar, core.ColorOrange)
		} else {
			dst.SetColored(x, y, BulletChar, core.ColorSalmon)
		}
	}

	bannerY := int(float64(dst.Height()) * bannerFraction)
	if snap.BannerAlpha >= 0 {
		dst.DrawTextCentered(bannerY, snap.Banner, core.Fade(snap.BannerAlpha))
	}

	g.renderHUD(dst, snap)

	switch {
	case snap.Phase == PhaseDead:
		dst.DrawTextCentered(bannerY+1, "Press R to play again", core.ColorGray)
	case g.paused:
		dst.DrawTextCentered(dst.Height()/2, "Paused", core.ColorBrightWhite)
		dst.DrawTextCentered(dst.Height()/2+1, "Press P to continue", core.ColorGray)
	}
}

// renderHUD draws lives on the left, the best score in the middle and the
// score on the right of the top row.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	for i := range snap.Lives {
		c := core.ColorWhite
		if snap.Phase == PhaseExploding && i == snap.Lives-1 {
			c = core.ColorRed
		}
		dst.SetColored(1+i*lifeSpacing, hudRow, LifeChar, c)
	}

	dst.DrawTextCentered(hudRow, "BEST "+strconv.Itoa(snap.HighScore), core.ColorWhite)

	score := strconv.Itoa(snap.Score)
	dst.DrawTextColored(dst.Width()-1-len(score), hudRow, score, core.ColorBrightWhite)
}

// viewport maps field units onto terminal cells.
type viewport struct {
	cw, ch float64
}

func (v viewport) cell(x, y float64) (int, int) {
	return int(math.Floor(x / v.cw)), int(math.Floor(y / v.ch))
}

// polygon outlines an asteroid as a regular polygon turned by its heading.
func (v viewport) polygon(dst *core.Screen, a Asteroid) {
	n := a.Vertices
	if n < 3 {
		n = 3
	}
	step := 2 * math.Pi / float64(n)

	px, py := v.cell(a.X+a.R*math.Cos(a.Heading), a.Y+a.R*math.Sin(a.Heading))
	for j := 1; j <= n; j++ {
		ang := a.Heading + float64(j)*step
		x, y := v.cell(a.X+a.R*math.Cos(ang), a.Y+a.R*math.Sin(ang))
		dst.DrawLine(px, py, x, y, RockChar, core.ColorGray)
		px, py = x, y
	}
}

// craft draws the ship triangle, or the explosion disc while exploding.
// A dead craft is not drawn.
func (v viewport) craft(dst *core.Screen, c Craft) {
	if c.Dead {
		return
	}

	if c.Exploding() {
		cx, cy := v.cell(c.X, c.Y)
		rx := math.Max(c.R*0.7/v.cw, 1)
		ry := math.Max(c.R*0.7/v.ch, 0.5)
		dst.FillEllipse(cx, cy, rx, ry, ExplosionChar, core.ColorYellow)
		return
	}

	cos, sin := math.Cos(c.Heading), math.Sin(c.Heading)
	pts := [3][2]int{}
	pts[0][0], pts[0][1] = v.cell(c.X+c.R*cos, c.Y-c.R*sin)
	pts[1][0], pts[1][1] = v.cell(c.X-c.R*(cos+sin), c.Y+c.R*(sin-cos))
	pts[2][0], pts[2][1] = v.cell(c.X-c.R*(cos-sin), c.Y+c.R*(sin+cos))

	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		dst.DrawLine(a[0], a[1], b[0], b[1], CraftChar, core.ColorBrightWhite)
	}
}
