// Package window is the desktop host: an ebiten window with real key
// press and release, drawing the session as filled rectangles in world units.
package window

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/skyshooter/internal/core"
	"github.com/vovakirdan/skyshooter/internal/games/skyshooter"
	"github.com/vovakirdan/skyshooter/internal/platform"
)

// Debug font cell size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

// Snapshotter is a game that can describe itself in world units.
type Snapshotter interface {
	Snapshot() skyshooter.Snapshot
}

// Options tunes the window.
type Options struct {
	// Scale is window pixels per world unit (0 = 1).
	Scale float64
}

// Host implements ebiten.Game around a Runner.
type Host struct {
	runner *platform.Runner
	scene  Snapshotter
	logger *log.Logger
	width  int
	height int
}

// New creates a host. The runner's game must implement Snapshotter.
func New(runner *platform.Runner, logger *log.Logger) (*Host, error) {
	scene, ok := runner.Game().(Snapshotter)
	if !ok {
		return nil, fmt.Errorf("window: game %q has no snapshot", runner.Game().ID())
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Host{runner: runner, scene: scene, logger: logger}, nil
}

// Run starts the session and blocks until the window is closed.
func Run(runner *platform.Runner, logger *log.Logger, opts Options) error {
	h, err := New(runner, logger)
	if err != nil {
		return err
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	runner.Start()
	snap := h.scene.Snapshot()
	h.width, h.height = int(snap.WorldW), int(snap.WorldH)

	ebiten.SetWindowSize(int(float64(h.width)*opts.Scale), int(float64(h.height)*opts.Scale))
	ebiten.SetWindowTitle(runner.Game().Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(runner.Config().TickRate)

	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// Update steps the session once per ebiten tick.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		h.logger.Info("window closed", "game", h.runner.Game().ID(), "score", h.runner.State().Score)
		return ebiten.Termination
	}

	h.runner.Step(readInput())
	return nil
}

// readInput samples the keyboard. Movement follows the held state;
// everything else fires once per press.
func readInput() core.InputFrame {
	in := core.NewInputFrame()
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Set(core.ActionLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Set(core.ActionRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		in.Set(core.ActionFire)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		in.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		in.Set(core.ActionRestart)
	}
	return in
}

// Draw renders the latest snapshot.
func (h *Host) Draw(screen *ebiten.Image) {
	snap := h.scene.Snapshot()

	if snap.Background > 0 {
		screen.Fill(skyshooter.BackgroundColor(snap.Background).Dim(0.35))
	} else {
		screen.Fill(color.Black)
	}

	player := core.ColorCyan
	if snap.GameOver {
		player = core.ColorBrightRed
	}
	fillEntity(screen, snap.Player, player.RGBA())

	for _, p := range snap.Projectiles {
		fillEntity(screen, p, core.ColorBrightYellow.RGBA())
	}
	for _, e := range snap.Enemies {
		_, c := skyshooter.EnemyGlyph(e.Sprite)
		fillEntity(screen, e, c.RGBA())
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), 8, 8)

	switch {
	case snap.GameOver:
		h.printCentered(screen, "GAME OVER", fmt.Sprintf("Final score: %d", snap.Score), "[R] Restart  [Esc] Exit")
	case snap.Paused:
		h.printCentered(screen, "PAUSED", "Press P to resume")
	}
}

func fillEntity(dst *ebiten.Image, e skyshooter.EntitySnapshot, c color.Color) {
	vector.DrawFilledRect(dst, float32(e.X), float32(e.Y), float32(e.W), float32(e.H), c, false)
}

// printCentered draws lines of debug text in the middle of the world.
func (h *Host) printCentered(dst *ebiten.Image, lines ...string) {
	widest := 0
	for _, l := range lines {
		widest = max(widest, len(l))
	}
	boxW := float32((widest + 4) * glyphW)
	boxH := float32((len(lines) + 1) * glyphH)
	x0 := (float32(h.width) - boxW) / 2
	y0 := (float32(h.height) - boxH) / 2
	vector.DrawFilledRect(dst, x0, y0, boxW, boxH, color.RGBA{0, 0, 0, 0xc0}, false)

	for i, l := range lines {
		x := (h.width - len(l)*glyphW) / 2
		y := int(y0) + glyphH/2 + i*glyphH
		ebitenutil.DebugPrintAt(dst, l, x, y)
	}
}

// Layout keeps the logical screen in world units; ebiten scales the window.
func (h *Host) Layout(_, _ int) (int, int) {
	return h.width, h.height
}
