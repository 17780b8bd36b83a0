// Package gridfile reads and writes grids as plain text: one row per line,
// '1' for a live cell and '0' for a dead one.
package gridfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"contrib-life/pkg/core"
)

var (
	// ErrEmpty is returned when the input contains no grid rows.
	ErrEmpty = errors.New("gridfile: no rows")
	// ErrRagged is returned when rows differ in length.
	ErrRagged = errors.New("gridfile: rows differ in length")
	// ErrBadCell is returned for any character other than '0' or '1'.
	ErrBadCell = errors.New("gridfile: cell must be '0' or '1'")
)

// Read parses a grid. Blank lines are skipped.
func Read(r io.Reader) (core.Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len(lines) > 0 && len(line) != len(lines[0]) {
			return core.Grid{}, fmt.Errorf("%w: line %d has %d cells, want %d", ErrRagged, n, len(line), len(lines[0]))
		}
		if i := strings.IndexFunc(line, func(r rune) bool { return r != '0' && r != '1' }); i >= 0 {
			return core.Grid{}, fmt.Errorf("%w: line %d column %d", ErrBadCell, n, i+1)
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return core.Grid{}, fmt.Errorf("gridfile: read: %w", err)
	}
	if len(lines) == 0 {
		return core.Grid{}, ErrEmpty
	}
	return core.ParseGrid(lines...), nil
}

// Write stores g, one row per line.
func Write(w io.Writer, g core.Grid) error {
	_, err := io.WriteString(w, g.String())
	return err
}

// Load reads a grid from path.
func Load(path string) (core.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return core.Grid{}, err
	}
	defer f.Close()
	g, err := Read(f)
	if err != nil {
		return core.Grid{}, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Save writes g to path, replacing any existing file.
func Save(path string, g core.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
