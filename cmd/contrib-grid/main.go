package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"contrib-life/internal/contrib"
	"contrib-life/internal/gridfile"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("contrib-grid: ")

	out := flag.String("o", "grid.txt", "output grid file")
	base := flag.String("base", contrib.DefaultBaseURL, "GitHub base URL")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <github-username>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := contrib.NewClient()
	c.BaseURL = *base
	g, err := c.FetchGrid(ctx, flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	if err := gridfile.Save(*out, g); err != nil {
		log.Fatal(err)
	}
	log.Printf("saved %dx%d grid with %d active days to %s", g.Cols(), g.Rows(), g.Population(), *out)
}
