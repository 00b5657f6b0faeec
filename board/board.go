// Package board models the playfield: a fixed grid of colored cells that
// answers placement queries and clears completed rows.
package board

import "github.com/plus3/blockfall/shape"

const (
	Width  = 10
	Height = 22

	// HiddenRows is the spawn buffer above the visible field.
	HiddenRows = 2
	// VisibleRows is the number of rows a renderer draws, starting at HiddenRows.
	VisibleRows = Height - HiddenRows
)

// Coord is a column/row pair on the board. Row 0 is the top.
type Coord struct {
	X, Y int
}

// Add returns c displaced by o.
func (c Coord) Add(o shape.Offset) Coord {
	return Coord{X: c.X + o.DX, Y: c.Y + o.DY}
}

// InBounds reports whether c addresses a cell of the grid.
func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < Width && c.Y >= 0 && c.Y < Height
}

// Row is one horizontal line of cells.
type Row [Width]shape.Color

// Full reports whether every cell of the row is occupied.
func (r Row) Full() bool {
	for _, c := range r {
		if !c.Occupied() {
			return false
		}
	}
	return true
}

// Empty reports whether no cell of the row is occupied.
func (r Row) Empty() bool {
	for _, c := range r {
		if c.Occupied() {
			return false
		}
	}
	return true
}

// Board is the grid of settled cells. The zero value is an empty board.
type Board struct {
	rows [Height]Row
}

// New returns an empty board.
func New() *Board {
	return &Board{}
}

// Reset empties every cell in place.
func (b *Board) Reset() {
	b.rows = [Height]Row{}
}

// At returns the color at (x, y), or Empty when the coordinate is off the grid.
func (b *Board) At(x, y int) shape.Color {
	if !(Coord{X: x, Y: y}).InBounds() {
		return shape.Empty
	}
	return b.rows[y][x]
}

// Set writes a single cell. Off-grid writes and invalid colors are ignored.
func (b *Board) Set(x, y int, c shape.Color) {
	if !(Coord{X: x, Y: y}).InBounds() || !c.Valid() {
		return
	}
	b.rows[y][x] = c
}

// Row returns a copy of row y. Off-grid rows read as empty.
func (b *Board) Row(y int) Row {
	if y < 0 || y >= Height {
		return Row{}
	}
	return b.rows[y]
}

// Cells returns a copy of the whole grid.
func (b *Board) Cells() [Height]Row {
	return b.rows
}

// CanPlace reports whether every occupied cell of m, anchored with its top-left
// corner at at, lands on an in-bounds, unoccupied cell.
func (b *Board) CanPlace(m shape.Mask, at Coord) bool {
	for off := range m.Cells() {
		c := at.Add(off)
		if !c.InBounds() {
			return false
		}
		if b.rows[c.Y][c.X].Occupied() {
			return false
		}
	}
	return true
}

// Commit writes color into every cell covered by m at at. It does not check
// for overlap; callers validate with CanPlace first. Cells that fall off the
// grid are skipped.
func (b *Board) Commit(m shape.Mask, at Coord, color shape.Color) {
	for off := range m.Cells() {
		c := at.Add(off)
		if !c.InBounds() {
			continue
		}
		b.rows[c.Y][c.X] = color
	}
}

// ClearFullRows removes every full row, shifting the rows above it down, and
// returns how many rows were removed. Row 0 is never cleared; it is refilled
// with empty cells after each shift.
func (b *Board) ClearFullRows() int {
	cleared := 0
	y := Height - 1
	for y >= 1 {
		if !b.rows[y].Full() {
			y--
			continue
		}

		// Same index is re-examined: it now holds what was above it.
		copy(b.rows[1:y+1], b.rows[0:y])
		b.rows[0] = Row{}
		cleared++
	}
	return cleared
}

// Top returns the index of the highest occupied row, or Height when the board
// is empty.
func (b *Board) Top() int {
	for y := range Height {
		if !b.rows[y].Empty() {
			return y
		}
	}
	return Height
}
