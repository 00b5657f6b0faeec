// Package shape holds the static piece catalog: the seven kinds, their colors,
// spawn anchors, per-rotation occupancy masks and wall-kick tables.
package shape

import "iter"

// Kind identifies one of the seven pieces.
type Kind uint8

const (
	I Kind = iota
	J
	L
	O
	S
	Z
	T
)

// Count is the number of distinct kinds, and the size of a bag.
const Count = 7

// Kinds lists every kind in declaration order.
var Kinds = [Count]Kind{I, J, L, O, S, Z, T}

var kindNames = [Count]string{"I", "J", "L", "O", "S", "Z", "T"}

func (k Kind) String() string {
	if int(k) >= Count {
		return "?"
	}
	return kindNames[k]
}

// Color returns the cell color a locked piece of this kind leaves behind.
func (k Kind) Color() Color {
	switch k {
	case I:
		return Cyan
	case J:
		return Blue
	case L:
		return Orange
	case O:
		return Yellow
	case Z:
		return Green
	case T:
		return Purple
	case S:
		return Red
	}
	panic("shape: invalid kind")
}

// Spawn returns the anchor a fresh piece of this kind starts at. I and O sit
// one row lower inside their frame, so they start one row higher.
func (k Kind) Spawn() (x, y int) {
	switch k {
	case I, O:
		return 3, 1
	default:
		return 3, 2
	}
}

// Mask returns the occupancy mask for the kind in the given rotation.
func (k Kind) Mask(r Rotation) Mask {
	return masks[k][r&3]
}

// Rotation is one of the four orientations of a piece.
type Rotation uint8

const (
	R0 Rotation = iota
	R90
	R180
	R270
)

// CW returns the next rotation clockwise.
func (r Rotation) CW() Rotation {
	return (r + 1) & 3
}

// CCW returns the next rotation counter-clockwise.
func (r Rotation) CCW() Rotation {
	return (r + 3) & 3
}

func (r Rotation) String() string {
	switch r {
	case R0:
		return "0"
	case R90:
		return "90"
	case R180:
		return "180"
	case R270:
		return "270"
	}
	return "?"
}

// Color is the content of a board cell. The zero value is Empty.
type Color uint8

const (
	Empty Color = iota
	Cyan
	Blue
	Orange
	Yellow
	Green
	Purple
	Red
)

// Occupied reports whether the cell holds a block.
func (c Color) Occupied() bool {
	return c != Empty
}

// Valid reports whether c is Empty or one of the seven piece colors.
func (c Color) Valid() bool {
	return c <= Red
}

func (c Color) String() string {
	switch c {
	case Empty:
		return "empty"
	case Cyan:
		return "cyan"
	case Blue:
		return "blue"
	case Orange:
		return "orange"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Purple:
		return "purple"
	case Red:
		return "red"
	}
	return "invalid"
}

// Offset is a displacement in board cells; DY grows downward.
type Offset struct {
	DX, DY int
}

// Mask is a 4x4 occupancy grid indexed [row][col].
type Mask [4][4]bool

// Cells yields the offset of every occupied cell, row by row.
func (m Mask) Cells() iter.Seq[Offset] {
	return func(yield func(Offset) bool) {
		for dy := range 4 {
			for dx := range 4 {
				if !m[dy][dx] {
					continue
				}
				if !yield(Offset{DX: dx, DY: dy}) {
					return
				}
			}
		}
	}
}

// Rows returns the indexes of the first and last occupied rows of the mask.
// Both are -1 for an empty mask.
func (m Mask) Rows() (first, last int) {
	first, last = -1, -1
	for dy := range 4 {
		for dx := range 4 {
			if m[dy][dx] {
				if first == -1 {
					first = dy
				}
				last = dy
				break
			}
		}
	}
	return first, last
}
