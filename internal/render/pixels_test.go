package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	pal, err := NewPalette("#26a641", "#0d1117")
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, []uint8{1, 0}, pal.Alive, pal.Dead)
	want := []byte{0x26, 0xa6, 0x41, 0xff, 0x0d, 0x11, 0x17, 0xff}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf = % x, want % x", buf, want)
	}
}

func TestParseHex(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#26a641", color.RGBA{R: 0x26, G: 0xa6, B: 0x41, A: 0xff}, true},
		{"0d1117", color.RGBA{R: 0x0d, G: 0x11, B: 0x17, A: 0xff}, true},
		{"#fff", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, true},
		{"#12345", color.RGBA{}, false},
		{"#zzzzzz", color.RGBA{}, false},
	}
	for _, tc := range cases {
		got, err := ParseHex(tc.in)
		if (err == nil) != tc.ok {
			t.Fatalf("ParseHex(%q) err = %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseHex(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
