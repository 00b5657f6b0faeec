// Package game is the state machine of a single falling-block session. It owns
// the board, the piece supply, the active and held pieces, the score and the
// phase, and applies movement, rotation, gravity, locking, line clears and
// holds.
//
// A State is not safe for concurrent use. It never reads a clock: callers
// advance simulated time explicitly with Advance.
package game

import (
	"math/rand/v2"
	"time"

	"github.com/plus3/blockfall/bag"
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/shape"
)

// PointsPerRow is the flat score for every cleared row.
const PointsPerRow = 100

// Phase is the top-level mode of a session.
type Phase uint8

const (
	Playing Phase = iota
	GameOver
	// Help and Score are declared for front ends that grow those screens.
	// No transition in this package produces them.
	Help
	Score
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case GameOver:
		return "game over"
	case Help:
		return "help"
	case Score:
		return "score"
	}
	return "unknown"
}

// Direction is a player-requested direction. Horizontal movement accepts Left
// and Right; rotation accepts Up (clockwise) and Down (counter-clockwise).
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Piece is the active piece: its kind, orientation and the board position of
// the top-left corner of its 4x4 frame.
type Piece struct {
	Kind     shape.Kind
	Rotation shape.Rotation
	Anchor   board.Coord
}

// Mask returns the occupancy mask of the piece in its current rotation.
func (p Piece) Mask() shape.Mask {
	return p.Kind.Mask(p.Rotation)
}

// SpawnPiece returns a piece of kind k at its spawn anchor in rotation R0.
func SpawnPiece(k shape.Kind) Piece {
	x, y := k.Spawn()
	return Piece{Kind: k, Rotation: shape.R0, Anchor: board.Coord{X: x, Y: y}}
}

// State is one game session.
type State struct {
	rng    *rand.Rand
	board  *board.Board
	supply *bag.Supply

	piece    Piece
	held     shape.Kind
	hasHeld  bool
	justHeld bool

	score int
	phase Phase

	timing     Timing
	sinceFall  time.Duration
	sinceInput time.Duration

	stats *Stats
}

type options struct {
	rng    *rand.Rand
	timing Timing
}

// Option configures New.
type Option func(*options)

// WithSeed makes the piece sequence reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand draws pieces from rng.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithTiming overrides the gravity and lock delay intervals.
func WithTiming(t Timing) Option {
	return func(o *options) {
		o.timing = t
	}
}

// New starts a session: an empty board, a supply seeded with one bag and the
// first piece at its spawn position.
func New(opts ...Option) *State {
	o := options{timing: DefaultTiming()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	s := &State{rng: o.rng, timing: o.timing, board: board.New()}
	s.reset()
	return s
}

func (s *State) reset() {
	s.board.Reset()
	s.supply = bag.New(s.rng)
	s.stats = newStats()
	s.held, s.hasHeld, s.justHeld = 0, false, false
	s.score = 0
	s.phase = Playing
	s.sinceFall, s.sinceInput = 0, 0
	s.spawn(s.draw())
}

// Restart rebuilds the whole session. The board is emptied in place, so
// handles taken from Board stay current. The random source carries over, so a
// seeded session restarts into the continuation of its sequence.
func (s *State) Restart() {
	s.reset()
}

func (s *State) draw() shape.Kind {
	k := s.supply.Next()
	s.stats.recordDeal(k)
	return k
}

func (s *State) spawn(k shape.Kind) {
	s.piece = SpawnPiece(k)
}

func (s *State) fits(p Piece) bool {
	return s.board.CanPlace(p.Mask(), p.Anchor)
}

// MoveHorizontal shifts the active piece one column left or right if the
// destination is free. Up and Down are ignored. It reports whether the piece
// moved.
func (s *State) MoveHorizontal(d Direction) bool {
	if s.phase != Playing {
		return false
	}

	var dx int
	switch d {
	case Left:
		dx = -1
	case Right:
		dx = 1
	default:
		return false
	}

	next := s.piece
	next.Anchor.X += dx
	if !s.fits(next) {
		return false
	}
	s.piece = next
	return true
}

// FallOneStep moves the active piece down one row. It returns false, leaving
// the piece in place, when the row below is blocked.
func (s *State) FallOneStep() bool {
	if s.phase != Playing {
		return false
	}

	next := s.piece
	next.Anchor.Y++
	if !s.fits(next) {
		return false
	}
	s.piece = next
	return true
}

// Rotate turns the active piece clockwise (Up) or counter-clockwise (Down).
// The kick candidates for the transition are tried in order and the first
// that fits is taken. When none fits, nothing changes. Left and Right are
// ignored. It reports whether the piece rotated.
func (s *State) Rotate(d Direction) bool {
	if s.phase != Playing {
		return false
	}

	var to shape.Rotation
	switch d {
	case Up:
		to = s.piece.Rotation.CW()
	case Down:
		to = s.piece.Rotation.CCW()
	default:
		return false
	}

	offsets, ok := shape.Kicks(s.piece.Kind, s.piece.Rotation, to)
	if !ok {
		return false
	}

	m := s.piece.Kind.Mask(to)
	for _, off := range offsets {
		at := s.piece.Anchor.Add(off)
		if s.board.CanPlace(m, at) {
			s.piece.Anchor = at
			s.piece.Rotation = to
			return true
		}
	}
	return false
}

// DropPosition returns the lowest anchor row the active piece can reach by
// falling straight down from where it is.
func (s *State) DropPosition() int {
	m := s.piece.Mask()
	at := s.piece.Anchor
	for s.board.CanPlace(m, board.Coord{X: at.X, Y: at.Y + 1}) {
		at.Y++
	}
	return at.Y
}

// HardDrop moves the active piece to its drop position and locks it.
func (s *State) HardDrop() {
	if s.phase != Playing {
		return
	}
	s.piece.Anchor.Y = s.DropPosition()
	s.PlaceAndReset()
}

// PlaceAndReset locks the active piece into the board, clears full rows,
// scores them, re-enables hold and spawns the next piece. The session ends
// when the active piece does not fit where it is, or when the new piece does
// not fit at its spawn position.
func (s *State) PlaceAndReset() {
	if s.phase != Playing {
		return
	}

	if !s.fits(s.piece) {
		s.phase = GameOver
	}

	s.board.Commit(s.piece.Mask(), s.piece.Anchor, s.piece.Kind.Color())
	lines := s.board.ClearFullRows()
	s.score += PointsPerRow * lines
	s.stats.recordLock(lines)

	s.justHeld = false
	s.spawn(s.draw())

	if !s.fits(s.piece) {
		s.phase = GameOver
	}
}

// Hold sets the active piece aside and continues with the previously held
// piece, or with the next queued piece when nothing was held. Holding again
// is refused until the next piece locks.
func (s *State) Hold() {
	if s.phase != Playing || s.justHeld {
		return
	}

	next := s.held
	if !s.hasHeld {
		next = s.draw()
	}
	s.held, s.hasHeld = s.piece.Kind, true
	s.spawn(next)
	s.justHeld = true
}

// Phase returns the current phase.
func (s *State) Phase() Phase { return s.phase }

// Score returns the accumulated score.
func (s *State) Score() int { return s.score }

// Active returns the active piece.
func (s *State) Active() Piece { return s.piece }

// Held returns the held kind, if any.
func (s *State) Held() (shape.Kind, bool) { return s.held, s.hasHeld }

// JustHeld reports whether hold is locked until the next placement.
func (s *State) JustHeld() bool { return s.justHeld }

// Queue returns the next n upcoming kinds.
func (s *State) Queue(n int) []shape.Kind { return s.supply.Peek(n) }

// Board returns the settled cells. Callers must treat it as read-only.
func (s *State) Board() *board.Board { return s.board }

// Stats returns the session counters.
func (s *State) Stats() *Stats { return s.stats }
