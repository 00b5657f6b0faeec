package game

import "github.com/plus3/blockfall/board"

// SetPiece replaces the active piece.
func (s *State) SetPiece(p Piece) {
	s.piece = p
}

// LoadBoard copies b's cells into the session board.
func (s *State) LoadBoard(b *board.Board) {
	*s.board = *b
}
