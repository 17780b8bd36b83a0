//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image based on binary cell data.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette Palette
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, palette Palette) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), palette: palette}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit clears dst, uploads the provided cells into the painter image and
// draws it with every cell scaled to cellSize pixels.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, cellSize int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	dst.Fill(gp.palette.Dead)
	fillBinaryRGBA(gp.buf, cells, gp.palette.Alive, gp.palette.Dead)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	dst.DrawImage(gp.img, op)
}
