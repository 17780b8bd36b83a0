package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"contrib-life/internal/app"
	"contrib-life/internal/term"
	"contrib-life/pkg/core"
	_ "contrib-life/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life-term: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := app.BuildSim(cfg)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	painter := term.NewPainter(screen, cfg.Alive, cfg.Dead)
	err = term.Run(ctx, screen, sim, painter, core.NewScheduler(cfg.Delay))
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
