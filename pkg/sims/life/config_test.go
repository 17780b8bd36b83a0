package life

import (
	"testing"
	"time"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"rows":      "10",
		"cols":      "0",
		"threshold": "0.5",
		"cell":      "abc",
		"alive":     "#ffffff",
		"delay":     "250ms",
	})
	if c.Rows != 10 {
		t.Fatalf("Rows = %d", c.Rows)
	}
	if c.Cols != 52 {
		t.Fatalf("invalid cols should keep default, got %d", c.Cols)
	}
	if c.Threshold != 0.5 {
		t.Fatalf("Threshold = %v", c.Threshold)
	}
	if c.CellSize != 20 {
		t.Fatalf("invalid cell should keep default, got %d", c.CellSize)
	}
	if c.AliveColor != "#ffffff" || c.DeadColor != "#0d1117" {
		t.Fatalf("colours = %q %q", c.AliveColor, c.DeadColor)
	}
	if c.Delay != 250*time.Millisecond {
		t.Fatalf("Delay = %v", c.Delay)
	}
}

func TestFromMapNil(t *testing.T) {
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map should yield defaults")
	}
}

func TestConfigMapRoundTrip(t *testing.T) {
	c := DefaultConfig()
	c.Rows = 12
	c.Threshold = 0.65
	c.Delay = 3 * time.Second
	if got := FromMap(c.Map()); got != c {
		t.Fatalf("round trip = %+v, want %+v", got, c)
	}
}
