package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Palette holds the two fill colours of a binary grid.
type Palette struct {
	Alive color.RGBA
	Dead  color.RGBA
}

// NewPalette parses both colours from "#rrggbb" or "#rgb" notation.
func NewPalette(alive, dead string) (Palette, error) {
	a, err := ParseHex(alive)
	if err != nil {
		return Palette{}, err
	}
	d, err := ParseHex(dead)
	if err != nil {
		return Palette{}, err
	}
	return Palette{Alive: a, Dead: d}, nil
}

// ParseHex parses "#rrggbb" or "#rgb" into an opaque colour.
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("render: invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("render: invalid colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
