//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"contrib-life/internal/app"
	"contrib-life/internal/render"
	_ "contrib-life/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ca: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	palette, err := render.NewPalette(cfg.Alive, cfg.Dead)
	if err != nil {
		log.Fatal(err)
	}
	sim, err := app.BuildSim(cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, palette, cfg.Cell, cfg.Delay, cfg.HUD)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("contrib-life — " + sim.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
