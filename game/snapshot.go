package game

import (
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/shape"
)

// Snapshot is a read-only copy of everything a front end draws.
type Snapshot struct {
	Cells    [board.Height]board.Row
	Active   Piece
	Mask     shape.Mask
	GhostY   int
	Held     shape.Kind
	HasHeld  bool
	JustHeld bool
	Next     []shape.Kind
	Score    int
	Lines    int
	Phase    Phase
}

// Snapshot copies the session state, including the first preview entries of
// the queue and the ghost row of the active piece.
func (s *State) Snapshot(preview int) Snapshot {
	return Snapshot{
		Cells:    s.board.Cells(),
		Active:   s.piece,
		Mask:     s.piece.Mask(),
		GhostY:   s.DropPosition(),
		Held:     s.held,
		HasHeld:  s.hasHeld,
		JustHeld: s.justHeld,
		Next:     s.supply.Peek(preview),
		Score:    s.score,
		Lines:    s.stats.Lines,
		Phase:    s.phase,
	}
}

func maskCovers(m shape.Mask, at board.Coord, x, y int) bool {
	dx, dy := x-at.X, y-at.Y
	if dx < 0 || dx >= 4 || dy < 0 || dy >= 4 {
		return false
	}
	return m[dy][dx]
}

// ActiveAt reports whether the active piece covers board cell (x, y).
func (sn *Snapshot) ActiveAt(x, y int) bool {
	return maskCovers(sn.Mask, sn.Active.Anchor, x, y)
}

// GhostAt reports whether the drop preview of the active piece covers board
// cell (x, y).
func (sn *Snapshot) GhostAt(x, y int) bool {
	return maskCovers(sn.Mask, board.Coord{X: sn.Active.Anchor.X, Y: sn.GhostY}, x, y)
}
