package life

import (
	"strconv"
	"time"
)

// Config holds parameters for the Life simulation and its presentation.
type Config struct {
	Rows int
	Cols int

	// Threshold is compared against a uniform draw per cell when seeding;
	// draws above it produce a live cell.
	Threshold float64

	CellSize   int
	AliveColor string
	DeadColor  string
	Delay      time.Duration
}

// DefaultConfig returns the contribution-calendar layout: 52 weeks by 7 days.
func DefaultConfig() Config {
	return Config{
		Rows:       7,
		Cols:       52,
		Threshold:  0.7,
		CellSize:   20,
		AliveColor: "#26a641",
		DeadColor:  "#0d1117",
		Delay:      time.Second,
	}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Threshold = parsed
		}
	}
	if v, ok := cfg["cell"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["alive"]; ok && v != "" {
		c.AliveColor = v
	}
	if v, ok := cfg["dead"]; ok && v != "" {
		c.DeadColor = v
	}
	if v, ok := cfg["delay"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			c.Delay = parsed
		}
	}
	return c
}

// Map is the inverse of FromMap.
func (c Config) Map() map[string]string {
	return map[string]string{
		"rows":      strconv.Itoa(c.Rows),
		"cols":      strconv.Itoa(c.Cols),
		"threshold": strconv.FormatFloat(c.Threshold, 'f', -1, 64),
		"cell":      strconv.Itoa(c.CellSize),
		"alive":     c.AliveColor,
		"dead":      c.DeadColor,
		"delay":     c.Delay.String(),
	}
}
