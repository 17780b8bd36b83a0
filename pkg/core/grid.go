package core

import "strings"

// Cell is the state of a single grid cell.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Point addresses a cell by column (X) and row (Y).
type Point struct {
	X, Y int
}

// Grid stores one generation of binary cells in row-major order. A Grid is
// never modified after construction; helpers that change cells return a copy.
// The zero value behaves as a 1x1 grid with its only cell dead.
type Grid struct {
	rows, cols int
	data       []Cell
}

// NewGrid allocates a rows*cols grid with every cell dead.
func NewGrid(rows, cols int) Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return Grid{rows: rows, cols: cols, data: make([]Cell, rows*cols)}
}

// ParseGrid builds a grid from rows of '0' and '1' characters. Any character
// other than '1' is treated as dead; callers that need validation should go
// through the gridfile package.
func ParseGrid(lines ...string) Grid {
	cols := 0
	for _, l := range lines {
		if len(l) > cols {
			cols = len(l)
		}
	}
	g := NewGrid(len(lines), cols)
	for y, l := range lines {
		for x := 0; x < len(l); x++ {
			if l[x] == '1' {
				g.data[g.Index(x, y)] = Alive
			}
		}
	}
	return g
}

// Rows returns the grid height.
func (g Grid) Rows() int { return max(g.rows, 1) }

// Cols returns the grid width.
func (g Grid) Cols() int { return max(g.cols, 1) }

// Size returns the grid dimensions.
func (g Grid) Size() Size { return Size{W: g.Cols(), H: g.Rows()} }

// Index returns the linear slice index for coordinates (x, y).
func (g Grid) Index(x, y int) int { return y*g.Cols() + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g Grid) Wrap(x, y int) (int, int) {
	cols, rows := g.Cols(), g.Rows()
	x = (x%cols + cols) % cols
	y = (y%rows + rows) % rows
	return x, y
}

// At returns the cell at (x, y). Coordinates must be in range.
func (g Grid) At(x, y int) Cell {
	if g.data == nil {
		return Dead
	}
	return g.data[g.Index(x, y)]
}

// Alive reports whether the cell at (x, y) is alive.
func (g Grid) Alive(x, y int) bool { return g.At(x, y) == Alive }

// Set returns a copy of g with the cell at (x, y) replaced.
func (g Grid) Set(x, y int, c Cell) Grid {
	out := g.clone()
	out.data[out.Index(x, y)] = c
	return out
}

// With returns a copy of g with every listed point alive. Points are wrapped
// onto the torus.
func (g Grid) With(points ...Point) Grid {
	out := g.clone()
	for _, p := range points {
		x, y := out.Wrap(p.X, p.Y)
		out.data[out.Index(x, y)] = Alive
	}
	return out
}

// Cells returns a copy of the row-major cell values as 0/1 bytes.
func (g Grid) Cells() []uint8 {
	out := make([]uint8, g.Rows()*g.Cols())
	for i, c := range g.data {
		out[i] = uint8(c)
	}
	return out
}

// Population counts alive cells.
func (g Grid) Population() int {
	n := 0
	for _, c := range g.data {
		if c == Alive {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same shape and cells.
func (g Grid) Equal(o Grid) bool {
	if g.Rows() != o.Rows() || g.Cols() != o.Cols() {
		return false
	}
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			if g.At(x, y) != o.At(x, y) {
				return false
			}
		}
	}
	return true
}

// String renders the grid as newline-terminated rows of '0' and '1'.
func (g Grid) String() string {
	var b strings.Builder
	rows, cols := g.Rows(), g.Cols()
	b.Grow(rows * (cols + 1))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if g.Alive(x, y) {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g Grid) clone() Grid {
	if g.data == nil {
		return NewGrid(g.rows, g.cols)
	}
	data := make([]Cell, len(g.data))
	copy(data, g.data)
	return Grid{rows: g.rows, cols: g.cols, data: data}
}

// Builder fills a fresh grid cell by cell. Build hands ownership of the
// buffer to the returned Grid; the builder must not be used afterwards.
type Builder struct {
	g Grid
}

// NewBuilder starts a rows*cols grid with every cell dead.
func NewBuilder(rows, cols int) *Builder {
	return &Builder{g: NewGrid(rows, cols)}
}

// Set stores c at (x, y).
func (b *Builder) Set(x, y int, c Cell) { b.g.data[b.g.Index(x, y)] = c }

// Build returns the finished grid.
func (b *Builder) Build() Grid {
	g := b.g
	b.g = Grid{}
	return g
}
