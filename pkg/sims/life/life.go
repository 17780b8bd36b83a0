package life

import (
	"errors"
	"fmt"

	"contrib-life/pkg/core"
)

// ErrShape is returned when a grid does not match the simulation dimensions.
var ErrShape = errors.New("life: grid shape mismatch")

// Life implements Conway's Game of Life with toroidal wrapping. It owns the
// current generation and replaces it wholesale on every Step.
type Life struct {
	cfg Config
	cur core.Grid
	gen int
}

// New returns a Life simulation with the provided dimensions and default
// presentation settings.
func New(rows, cols int) *Life {
	cfg := DefaultConfig()
	cfg.Rows = rows
	cfg.Cols = cols
	return NewWithConfig(cfg)
}

// NewWithConfig returns an all-dead Life simulation for cfg.
func NewWithConfig(cfg Config) *Life {
	g := CreateGrid(cfg.Rows, cfg.Cols)
	cfg.Rows, cfg.Cols = g.Rows(), g.Cols()
	return &Life{cfg: cfg, cur: g}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Cells returns a copy of the current generation as 0/1 values.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Grid returns the current generation.
func (l *Life) Grid() core.Grid { return l.cur }

// Generation returns the number of steps since the last reset or load.
func (l *Life) Generation() int { return l.gen }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	l.Randomize(core.NewRNG(seed))
}

// Randomize replaces the board with a fresh random generation drawn from rng.
func (l *Life) Randomize(rng *core.RNG) {
	l.cur = RandomizeGrid(l.cur, rng, l.cfg.Threshold)
	l.gen = 0
}

// Load replaces the board with g, which must match the simulation size.
func (l *Life) Load(g core.Grid) error {
	if g.Rows() != l.cur.Rows() || g.Cols() != l.cur.Cols() {
		return fmt.Errorf("%w: have %dx%d, got %dx%d", ErrShape, l.cur.Cols(), l.cur.Rows(), g.Cols(), g.Rows())
	}
	l.cur = g
	l.gen = 0
	return nil
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	l.cur = NextGeneration(l.cur)
	l.gen++
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
