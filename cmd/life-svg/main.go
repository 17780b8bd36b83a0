package main

import (
	"flag"
	"log"
	"os"
	"time"

	"contrib-life/internal/gridfile"
	"contrib-life/internal/svg"
	"contrib-life/pkg/core"
	"contrib-life/pkg/sims/life"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life-svg: ")

	def := life.DefaultConfig()
	opts := svg.DefaultOptions()
	var (
		gridPath    = flag.String("grid", "", "grid file with the first generation (random when empty)")
		out         = flag.String("o", "animated_game_of_life.svg", "output file")
		generations = flag.Int("generations", 20, "number of generations to render")
		rows        = flag.Int("rows", def.Rows, "grid rows for a random start")
		cols        = flag.Int("cols", def.Cols, "grid columns for a random start")
		threshold   = flag.Float64("threshold", def.Threshold, "random draws above this value seed a live cell")
		seed        = flag.Int64("seed", 0, "seed for a random start (0 picks one from the clock)")
	)
	flag.IntVar(&opts.CellSize, "cell", opts.CellSize, "cell size in pixels")
	flag.IntVar(&opts.Spacing, "spacing", opts.Spacing, "gap between cells in pixels")
	flag.DurationVar(&opts.FrameDuration, "frame", opts.FrameDuration, "time each generation is shown")
	flag.StringVar(&opts.AliveColor, "alive", opts.AliveColor, "fill colour of live cells")
	flag.StringVar(&opts.DeadColor, "dead", opts.DeadColor, "fill colour of dead cells")
	flag.Parse()

	var first core.Grid
	if *gridPath != "" {
		g, err := gridfile.Load(*gridPath)
		if err != nil {
			log.Fatal(err)
		}
		first = g
	} else {
		if *seed == 0 {
			*seed = time.Now().UnixNano()
		}
		first = life.RandomizeGrid(life.CreateGrid(*rows, *cols), core.NewRNG(*seed), *threshold)
		log.Printf("random start with seed %d", *seed)
	}

	frames := life.Generations(first, *generations)
	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	if err := svg.Encode(f, frames, opts); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d generations to %s", len(frames), *out)
}
