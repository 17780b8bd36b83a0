// Package svg exports a run of generations as a self-playing SVG animation.
package svg

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"time"

	"contrib-life/pkg/core"
)

// Options controls the SVG layout.
type Options struct {
	CellSize      int
	Spacing       int
	FrameDuration time.Duration
	AliveColor    string
	DeadColor     string
}

// DefaultOptions matches the contribution calendar look.
func DefaultOptions() Options {
	return Options{
		CellSize:      10,
		Spacing:       3,
		FrameDuration: 200 * time.Millisecond,
		AliveColor:    "#26a641",
		DeadColor:     "#161b22",
	}
}

type document struct {
	XMLName  xml.Name `xml:"svg"`
	Xmlns    string   `xml:"xmlns,attr"`
	Width    int      `xml:"width,attr"`
	Height   int      `xml:"height,attr"`
	ViewBox  string   `xml:"viewBox,attr"`
	Preserve string   `xml:"preserveAspectRatio,attr"`
	Groups   []group  `xml:"g"`
}

type group struct {
	Opacity string   `xml:"opacity,attr,omitempty"`
	Animate *animate `xml:"animate"`
	Rects   []rect   `xml:"rect"`
}

type animate struct {
	AttributeName string `xml:"attributeName,attr"`
	Values        string `xml:"values,attr"`
	KeyTimes      string `xml:"keyTimes,attr"`
	CalcMode      string `xml:"calcMode,attr"`
	Begin         string `xml:"begin,attr"`
	Dur           string `xml:"dur,attr"`
	Fill          string `xml:"fill,attr"`
}

type rect struct {
	X      int    `xml:"x,attr"`
	Y      int    `xml:"y,attr"`
	Width  int    `xml:"width,attr"`
	Height int    `xml:"height,attr"`
	Fill   string `xml:"fill,attr"`
}

// Encode writes frames as an SVG. Dead cells form a permanent background
// layer; each frame adds a group of live cells that is visible for one
// FrameDuration, starting at its index times FrameDuration.
func Encode(w io.Writer, frames []core.Grid, opts Options) error {
	if len(frames) == 0 {
		return fmt.Errorf("svg: no frames")
	}
	if opts.CellSize <= 0 {
		opts.CellSize = DefaultOptions().CellSize
	}
	if opts.Spacing < 0 {
		opts.Spacing = 0
	}
	if opts.FrameDuration <= 0 {
		opts.FrameDuration = DefaultOptions().FrameDuration
	}
	rows, cols := frames[0].Rows(), frames[0].Cols()
	pitch := opts.CellSize + opts.Spacing
	width := cols*pitch - opts.Spacing
	height := rows*pitch - opts.Spacing

	doc := document{
		Xmlns:    "http://www.w3.org/2000/svg",
		Width:    width,
		Height:   height,
		ViewBox:  fmt.Sprintf("0 0 %d %d", width, height),
		Preserve: "xMinYMin meet",
	}

	background := group{Rects: make([]rect, 0, rows*cols)}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			background.Rects = append(background.Rects, cellRect(x, y, pitch, opts.CellSize, opts.DeadColor))
		}
	}
	doc.Groups = append(doc.Groups, background)

	dur := seconds(opts.FrameDuration)
	for i, f := range frames {
		if f.Rows() != rows || f.Cols() != cols {
			return fmt.Errorf("svg: frame %d is %dx%d, want %dx%d", i, f.Cols(), f.Rows(), cols, rows)
		}
		g := group{
			Opacity: "0",
			Animate: &animate{
				AttributeName: "opacity",
				Values:        "1;0",
				KeyTimes:      "0;1",
				CalcMode:      "discrete",
				Begin:         seconds(time.Duration(i)*opts.FrameDuration) + "s",
				Dur:           dur + "s",
				Fill:          "freeze",
			},
		}
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				if f.Alive(x, y) {
					g.Rects = append(g.Rects, cellRect(x, y, pitch, opts.CellSize, opts.AliveColor))
				}
			}
		}
		doc.Groups = append(doc.Groups, g)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("svg: encode: %w", err)
	}
	return enc.Close()
}

func cellRect(x, y, pitch, size int, fill string) rect {
	return rect{X: x * pitch, Y: y * pitch, Width: size, Height: size, Fill: fill}
}

func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}
