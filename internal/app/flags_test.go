package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"contrib-life/pkg/core"
	_ "contrib-life/pkg/sims/life"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-rows", "9", "-cols", "11", "-delay", "250ms", "-seed", "5", "-hud", "160"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Rows != 9 || cfg.Cols != 11 || cfg.Delay != 250*time.Millisecond || cfg.Seed != 5 || cfg.HUD != 160 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Cell != 20 || cfg.Alive != "#26a641" || cfg.Dead != "#0d1117" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestBuildSimSeeded(t *testing.T) {
	cfg := NewConfig()
	cfg.Seed = 17
	a, err := BuildSim(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := BuildSim(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if a.Size() != (core.Size{W: 52, H: 7}) {
		t.Fatalf("Size() = %+v", a.Size())
	}
	if string(a.Cells()) != string(b.Cells()) {
		t.Fatal("same seed produced different boards")
	}
}

func TestBuildSimPicksSeed(t *testing.T) {
	cfg := NewConfig()
	if _, err := BuildSim(cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Seed == 0 {
		t.Fatal("expected a clock seed to be recorded")
	}
}

func TestBuildSimFromGridFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.txt")
	if err := os.WriteFile(path, []byte("0000\n0110\n0110\n0000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := NewConfig()
	cfg.Grid = path
	sim, err := BuildSim(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if sim.Size() != (core.Size{W: 4, H: 4}) {
		t.Fatalf("Size() = %+v", sim.Size())
	}
	before := string(sim.Cells())
	sim.Step()
	if string(sim.Cells()) != before {
		t.Fatal("block loaded from file should be still")
	}
}

func TestBuildSimUnknown(t *testing.T) {
	cfg := NewConfig()
	cfg.Sim = "nope"
	if _, err := BuildSim(cfg); err == nil {
		t.Fatal("expected an error for an unknown sim")
	}
}
