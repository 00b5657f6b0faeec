// Package boardtest reads and writes board diagrams for tests.
//
// A diagram is up to board.Height lines of board.Width characters. Lines are
// aligned to the bottom of the board, so a three-line diagram describes rows
// 19 through 21. '.' is an empty cell and a kind letter (I J L O S Z T) is a
// cell of that kind's color. Blank lines and lines starting with '#' are
// skipped.
//
// Diagrams are usually stored as named files inside txtar archives under a
// package's testdata directory.
package boardtest

import (
	"fmt"
	"strings"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/shape"
	"golang.org/x/tools/txtar"
)

var colorOf = map[rune]shape.Color{'.': shape.Empty}

var letterOf = map[shape.Color]rune{shape.Empty: '.'}

func init() {
	for _, k := range shape.Kinds {
		r := rune(k.String()[0])
		colorOf[r] = k.Color()
		letterOf[k.Color()] = r
	}
}

// Parse builds a board from a diagram.
func Parse(diagram []byte) (*board.Board, error) {
	var lines []string
	for _, line := range strings.Split(string(diagram), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) > board.Height {
		return nil, fmt.Errorf("diagram has %d rows, board has %d", len(lines), board.Height)
	}

	b := board.New()
	top := board.Height - len(lines)
	for i, line := range lines {
		if len([]rune(line)) != board.Width {
			return nil, fmt.Errorf("row %d: want %d cells, got %q", top+i, board.Width, line)
		}
		for x, r := range []rune(line) {
			c, ok := colorOf[r]
			if !ok {
				return nil, fmt.Errorf("row %d col %d: unknown cell %q", top+i, x, r)
			}
			b.Set(x, top+i, c)
		}
	}
	return b, nil
}

// Format renders rows from..to (inclusive) of b as a diagram.
func Format(b *board.Board, from, to int) string {
	var sb strings.Builder
	for y := from; y <= to; y++ {
		row := b.Row(y)
		for _, c := range row {
			sb.WriteRune(letterOf[c])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Archive is a parsed txtar file of named diagrams and values.
type Archive struct {
	Comment string
	files   map[string][]byte
}

// Load reads a txtar archive from disk.
func Load(path string) (*Archive, error) {
	ar, err := txtar.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	a := &Archive{
		Comment: strings.TrimSpace(string(ar.Comment)),
		files:   make(map[string][]byte, len(ar.Files)),
	}
	for _, f := range ar.Files {
		a.files[f.Name] = f.Data
	}
	return a, nil
}

// Board parses the named diagram from the archive.
func (a *Archive) Board(name string) (*board.Board, error) {
	data, ok := a.files[name]
	if !ok {
		return nil, fmt.Errorf("archive has no file %q", name)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}

// Value returns the trimmed text of the named file.
func (a *Archive) Value(name string) (string, bool) {
	data, ok := a.files[name]
	if !ok {
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}
