package svg

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"contrib-life/pkg/core"
	"contrib-life/pkg/sims/life"
)

func TestEncodeStructure(t *testing.T) {
	seed := core.ParseGrid(
		"00000",
		"00000",
		"01110",
		"00000",
	)
	frames := life.Generations(seed, 3)

	var buf bytes.Buffer
	if err := Encode(&buf, frames, DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "<?xml") {
		t.Fatal("missing XML header")
	}

	var doc document
	if err := xml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Width != 5*13-3 || doc.Height != 4*13-3 {
		t.Fatalf("size = %dx%d", doc.Width, doc.Height)
	}
	if doc.ViewBox != "0 0 62 49" {
		t.Fatalf("viewBox = %q", doc.ViewBox)
	}
	if len(doc.Groups) != 1+len(frames) {
		t.Fatalf("groups = %d, want %d", len(doc.Groups), 1+len(frames))
	}
	if got := len(doc.Groups[0].Rects); got != 20 {
		t.Fatalf("background rects = %d, want 20", got)
	}
	for i, g := range doc.Groups[1:] {
		if g.Opacity != "0" || g.Animate == nil {
			t.Fatalf("frame %d missing animation", i)
		}
		if len(g.Rects) != frames[i].Population() {
			t.Fatalf("frame %d has %d rects, want %d", i, len(g.Rects), frames[i].Population())
		}
	}
	if b := doc.Groups[2].Animate.Begin; b != "0.2s" {
		t.Fatalf("second frame begins at %q", b)
	}
	if d := doc.Groups[1].Animate.Dur; d != "0.2s" {
		t.Fatalf("frame duration %q", d)
	}
	r := doc.Groups[1].Rects[0]
	if r.X != 13 || r.Y != 26 || r.Width != 10 || r.Fill != "#26a641" {
		t.Fatalf("first live rect = %+v", r)
	}
}

func TestEncodeRejectsMixedShapes(t *testing.T) {
	err := Encode(&bytes.Buffer{}, []core.Grid{core.NewGrid(2, 2), core.NewGrid(3, 2)}, DefaultOptions())
	if err == nil {
		t.Fatal("expected an error for mismatched frames")
	}
}

func TestEncodeNoFrames(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, nil, DefaultOptions()); err == nil {
		t.Fatal("expected an error without frames")
	}
}
