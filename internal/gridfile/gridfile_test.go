package gridfile

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"contrib-life/pkg/core"
)

func TestReadSkipsBlankLines(t *testing.T) {
	g, err := Read(strings.NewReader("\n0101\r\n\n1010\n  \n"))
	if err != nil {
		t.Fatal(err)
	}
	want := core.ParseGrid("0101", "1010")
	if !g.Equal(want) {
		t.Fatalf("got\n%s", g)
	}
}

func TestReadErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrEmpty},
		{"blank", "\n\n  \n", ErrEmpty},
		{"ragged", "010\n01\n", ErrRagged},
		{"bad cell", "010\n0x0\n", ErrBadCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tc.input))
			if !errors.Is(err, tc.want) {
				t.Fatalf("Read(%q) err = %v, want %v", tc.input, err, tc.want)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, core.ParseGrid("10", "01")); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "10\n01\n" {
		t.Fatalf("Write produced %q", buf.String())
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.txt")
	g := core.NewGrid(7, 52).With(core.Point{X: 0, Y: 0}, core.Point{X: 51, Y: 6}, core.Point{X: 20, Y: 3})
	if err := Save(path, g); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(g) {
		t.Fatalf("loaded grid differs:\n%s", got)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
