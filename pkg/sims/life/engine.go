package life

import "contrib-life/pkg/core"

// Rule applies B3/S23: a live cell survives with two or three neighbours and
// a dead cell is born with exactly three.
func Rule(alive bool, neighbors int) bool {
	return (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
}

// CountNeighbors sums the eight cells around (x, y), wrapping both axes.
func CountNeighbors(g core.Grid, x, y int) int {
	rows, cols := g.Rows(), g.Cols()
	neighbors := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + cols) % cols
			ny := (y + dy + rows) % rows
			if g.Alive(nx, ny) {
				neighbors++
			}
		}
	}
	return neighbors
}

// NextGeneration computes the generation after g. The input is only read.
func NextGeneration(g core.Grid) core.Grid {
	b := core.NewBuilder(g.Rows(), g.Cols())
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			if Rule(g.Alive(x, y), CountNeighbors(g, x, y)) {
				b.Set(x, y, core.Alive)
			}
		}
	}
	return b.Build()
}

// Generations returns seed followed by the next n-1 generations.
func Generations(seed core.Grid, n int) []core.Grid {
	if n <= 0 {
		return nil
	}
	out := make([]core.Grid, 0, n)
	out = append(out, seed)
	for len(out) < n {
		out = append(out, NextGeneration(out[len(out)-1]))
	}
	return out
}
