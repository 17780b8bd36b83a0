// Package term draws simulations into a terminal with tcell.
package term

import (
	"fmt"

	"contrib-life/pkg/core"

	"github.com/gdamore/tcell/v2"
)

// Painter draws binary cells as two-column blocks, one terminal row per grid
// row, followed by a status line.
type Painter struct {
	screen tcell.Screen
	alive  tcell.Style
	dead   tcell.Style
	status tcell.Style
}

// NewPainter builds a Painter using "#rrggbb" colours.
func NewPainter(screen tcell.Screen, alive, dead string) *Painter {
	a := tcell.GetColor(alive)
	d := tcell.GetColor(dead)
	return &Painter{
		screen: screen,
		alive:  tcell.StyleDefault.Foreground(a).Background(a),
		dead:   tcell.StyleDefault.Foreground(d).Background(d),
		status: tcell.StyleDefault.Foreground(a),
	}
}

// Draw clears the screen and paints cells laid out as size.
func (p *Painter) Draw(cells []uint8, size core.Size, status string) {
	p.screen.Clear()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			style := p.dead
			if cells[y*size.W+x] != 0 {
				style = p.alive
			}
			p.screen.SetContent(x*2, y, ' ', nil, style)
			p.screen.SetContent(x*2+1, y, ' ', nil, style)
		}
	}
	for i, r := range status {
		p.screen.SetContent(i, size.H, r, nil, p.status)
	}
	p.screen.Show()
}

type generationCounter interface {
	Generation() int
}

func statusLine(sim core.Sim, cells []uint8) string {
	pop := 0
	for _, c := range cells {
		if c != 0 {
			pop++
		}
	}
	if gc, ok := sim.(generationCounter); ok {
		return fmt.Sprintf("%s  gen %d  pop %d  (q to quit)", sim.Name(), gc.Generation(), pop)
	}
	return fmt.Sprintf("%s  pop %d  (q to quit)", sim.Name(), pop)
}
