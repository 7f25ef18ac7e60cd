package skyshooter

import (
	"fmt"
	"math"

	"github.com/vovakirdan/skyshooter/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar     = '▲'
	WreckChar      = '✖'
	ProjectileChar = '│'
	StarChar       = '·'
	BorderChar     = '│'
)

// enemyGlyphs maps tier sprite indices to glyphs and colors.
var enemyGlyphs = []struct {
	r rune
	c core.Color
}{
	{'▼', core.ColorRed},
	{'◆', core.ColorOrange},
	{'✦', core.ColorPurple},
}

// backgroundColors maps background indices to star colors; 0 has no stars.
var backgroundColors = []core.Color{
	core.ColorDefault,
	core.ColorDarkBlue,
	core.ColorPurple,
	core.ColorBrightRed,
}

// EnemyGlyph returns the glyph and color for an enemy sprite index.
func EnemyGlyph(sprite int) (rune, core.Color) {
	if sprite < 0 || sprite >= len(enemyGlyphs) {
		sprite = 0
	}
	return enemyGlyphs[sprite].r, enemyGlyphs[sprite].c
}

// EnemySprites returns the number of distinct enemy sprites.
func EnemySprites() int {
	return len(enemyGlyphs)
}

// BackgroundTints returns the number of background tints, including plain 0.
func BackgroundTints() int {
	return len(backgroundColors)
}

// BackgroundColor returns the tint of a background index; 0 is plain.
func BackgroundColor(index int) core.Color {
	if index < 0 || index >= len(backgroundColors) {
		return core.ColorDefault
	}
	return backgroundColors[index]
}

// viewport maps world units onto terminal cells. Cells are about twice as
// tall as they are wide, so one row covers twice the world units of a column.
type viewport struct {
	x, y  int     // Top-left cell of the playfield
	w, h  int     // Playfield size in cells
	scale float64 // World units per column
}

func newViewport(worldW, worldH float64, screenW, screenH int) viewport {
	cols := max(screenW-2, 1) // Side borders
	rows := max(screenH-1, 1) // HUD row
	scale := math.Max(worldW/float64(cols), worldH/(2*float64(rows)))
	w := min(cols, int(math.Ceil(worldW/scale)))
	h := min(rows, int(math.Ceil(worldH/(2*scale))))
	return viewport{
		x:     (screenW - w) / 2,
		y:     1,
		w:     w,
		h:     h,
		scale: scale,
	}
}

// rect converts a world-space box to cells, at least one cell each way.
func (v viewport) rect(x, y, w, h float64) core.Rect {
	cx := v.x + int(math.Floor(x/v.scale))
	cy := v.y + int(math.Floor(y/(2*v.scale)))
	cw := max(1, int(math.Round(w/v.scale)))
	ch := max(1, int(math.Round(h/(2*v.scale))))
	return core.NewRect(cx, cy, cw, ch)
}

// fill draws r clipped to the playfield.
func (v viewport) fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	x0, x1 := core.Clamp(r.X, v.x, v.x+v.w), core.Clamp(r.Right(), v.x, v.x+v.w)
	y0, y1 := core.Clamp(r.Y, v.y, v.y+v.h), core.Clamp(r.Bottom(), v.y, v.y+v.h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetColored(x, y, ch, c)
		}
	}
}

// Render draws the current session to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.rules == nil {
		return
	}

	cfg := g.rules.Config()
	s := g.state
	v := newViewport(cfg.World.Width, cfg.World.Height, dst.Width(), dst.Height())

	// Background and borders
	bg := Background(cfg.Backgrounds, s.Score)
	if bg > 0 && bg < len(backgroundColors) {
		for y := v.y; y < v.y+v.h; y++ {
			for x := v.x; x < v.x+v.w; x++ {
				if (x*7+y*13)%23 == 0 {
					dst.SetColored(x, y, StarChar, backgroundColors[bg])
				}
			}
		}
	}
	for y := v.y; y < v.y+v.h; y++ {
		dst.SetColored(v.x-1, y, BorderChar, core.ColorGray)
		dst.SetColored(v.x+v.w, y, BorderChar, core.ColorGray)
	}

	// Player
	pr := v.rect(s.Player.X, s.Player.Y, cfg.Player.Width, cfg.Player.Height)
	if s.GameOver() {
		v.fill(dst, pr, WreckChar, core.ColorBrightRed)
	} else {
		v.fill(dst, pr, PlayerChar, core.ColorCyan)
	}

	// Projectiles
	for _, p := range s.Projectiles {
		r := v.rect(p.X, p.Y, cfg.Projectile.Width, cfg.Projectile.Height)
		v.fill(dst, r, ProjectileChar, core.ColorBrightYellow)
	}

	// Enemies
	for _, e := range s.Enemies {
		r := v.rect(e.X, e.Y, cfg.Enemy.Width, cfg.Enemy.Height)
		ch, c := EnemyGlyph(e.Sprite)
		v.fill(dst, r, ch, c)
	}

	// HUD
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", s.Score), core.ColorBrightYellow)
	hint := "←/→ move  SPACE fire  P pause"
	dst.DrawTextColored(dst.Width()-len([]rune(hint))-1, 0, hint, core.ColorGray)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if s.GameOver() {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Final score: %d", s.Score), "[R] Restart  [Q] Exit")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightRed)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len([]rune(l)))/2, boxY+3+i, l)
	}
}
