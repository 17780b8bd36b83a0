//go:build ebiten

package app

import (
	"time"

	"contrib-life/internal/render"
	"contrib-life/internal/ui"
	"contrib-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface. Each tick it
// captures the current generation for drawing and then advances the sim, so
// every generation stays on screen for one tick delay.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	stepper *core.FixedStep

	frame []uint8
	cell  int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, palette render.Palette, cell int, delay time.Duration, hudWidth int) *Game {
	size := sim.Size()
	if cell <= 0 {
		cell = 1
	}
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H, palette),
		hud:     ui.NewHUD(sim, hudWidth),
		stepper: core.NewFixedStep(delay),
		frame:   sim.Cells(),
		cell:    cell,
	}
}

// Update handles per-frame logic and advances the simulation on each tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.stepper.ShouldStep() {
		g.frame = g.sim.Cells()
		g.hud.Update()
		g.sim.Step()
	}
	return nil
}

// Draw renders the generation captured by the last tick.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.frame, g.cell)
	s := g.sim.Size()
	g.hud.Draw(screen, s.W*g.cell, s.H*g.cell)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.cell + g.hud.Width(), s.H * g.cell
}
