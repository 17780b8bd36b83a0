package life

import "contrib-life/pkg/core"

// CreateGrid returns a rows*cols grid with every cell dead.
func CreateGrid(rows, cols int) core.Grid {
	return core.NewGrid(rows, cols)
}

// RandomizeGrid returns a grid shaped like g where each cell is independently
// alive when a uniform draw from rng exceeds threshold. A threshold of 0.7
// gives roughly 30% live cells. Draws are taken in row-major order.
func RandomizeGrid(g core.Grid, rng *core.RNG, threshold float64) core.Grid {
	cells := make([]uint8, g.Rows()*g.Cols())
	core.FillThreshold(rng.Source(), cells, threshold)
	b := core.NewBuilder(g.Rows(), g.Cols())
	for i, c := range cells {
		if c != 0 {
			b.Set(i%g.Cols(), i/g.Cols(), core.Alive)
		}
	}
	return b.Build()
}
