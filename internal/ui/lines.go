package ui

import (
	"strings"

	"contrib-life/pkg/core"
)

const (
	panelPadding   = 8
	lineHeight     = 14
	headerBaseline = 12
)

type panelLine struct {
	text   string
	header bool
	y      int
}

// layoutLines flattens a parameter snapshot into baseline-positioned rows
// that fit within height. Rows that would overflow are dropped.
func layoutLines(title string, snap core.ParameterSnapshot, height int) []panelLine {
	y := panelPadding + headerBaseline
	lines := []panelLine{{text: title, header: true, y: y}}
	for _, group := range snap.Groups {
		for _, p := range group.Params {
			y += lineHeight
			if y > height-panelPadding/2 {
				return lines
			}
			lines = append(lines, panelLine{text: p.Label + ": " + p.Value, y: y})
		}
	}
	return lines
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Status"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}
