//go:build ebiten

package app

import (
	"time"

	"github.com/averyhiebert/vivludo/internal/preset"
	"github.com/averyhiebert/vivludo/internal/render"
	"github.com/averyhiebert/vivludo/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a preset runner to the ebiten.Game interface.
type Game struct {
	runner  preset.Runner
	painter *render.GridPainter
	status  *ui.Status

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided runner.
func New(runner preset.Runner, scale int, seed int64) *Game {
	w, h := runner.Size()
	return &Game{
		runner:  runner,
		painter: render.NewGridPainter(w, h),
		status:  ui.NewStatus(),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reseeds the runner with the provided seed.
func (g *Game) Reset(seed int64) error {
	g.seed = seed
	g.tickOnce = false
	return g.runner.Reset(seed)
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.status.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(g.seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}

	if (!g.paused) || g.tickOnce {
		g.tickOnce = false
		if err := g.runner.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Draw renders the current frame and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.runner.Frame(), g.runner.Palette(), g.scale)
	g.status.Draw(screen, g.runner.Name(), g.runner.Generation(), g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.runner.Size()
	return w * g.scale, h * g.scale
}
