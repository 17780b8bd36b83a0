package app

import (
	"flag"
	"time"

	"contrib-life/pkg/sims/life"
)

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	Sim       string
	Rows      int
	Cols      int
	Cell      int
	Delay     time.Duration
	Threshold float64
	Seed      int64
	Grid      string
	Alive     string
	Dead      string
	HUD       int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := life.DefaultConfig()
	return &Config{
		Sim:       "life",
		Rows:      d.Rows,
		Cols:      d.Cols,
		Cell:      d.CellSize,
		Delay:     d.Delay,
		Threshold: d.Threshold,
		Alive:     d.AliveColor,
		Dead:      d.DeadColor,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.Cell, "cell", c.Cell, "cell size in pixels")
	fs.DurationVar(&c.Delay, "delay", c.Delay, "delay between generations")
	fs.Float64Var(&c.Threshold, "threshold", c.Threshold, "random draws above this value seed a live cell")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial generation (0 picks one from the clock)")
	fs.StringVar(&c.Grid, "grid", c.Grid, "grid file to load instead of a random generation")
	fs.StringVar(&c.Alive, "alive", c.Alive, "fill colour of live cells")
	fs.StringVar(&c.Dead, "dead", c.Dead, "fill colour of dead cells")
	fs.IntVar(&c.HUD, "hud", c.HUD, "status panel width in pixels (0 hides it)")
}

// SimOptions converts the flags into the string map consumed by sim factories.
func (c *Config) SimOptions() map[string]string {
	return life.Config{
		Rows:       c.Rows,
		Cols:       c.Cols,
		Threshold:  c.Threshold,
		CellSize:   c.Cell,
		AliveColor: c.Alive,
		DeadColor:  c.Dead,
		Delay:      c.Delay,
	}.Map()
}
