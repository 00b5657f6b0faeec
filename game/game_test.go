package game_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/blockfall/bag"
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/board/boardtest"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadArchive(t *testing.T, name string) *boardtest.Archive {
	t.Helper()
	a, err := boardtest.Load(filepath.Join("testdata", name))
	require.NoError(t, err)
	return a
}

func loadBoard(t *testing.T, a *boardtest.Archive, name string) *board.Board {
	t.Helper()
	b, err := a.Board(name)
	require.NoError(t, err)
	return b
}

func full(b *board.Board) string {
	return boardtest.Format(b, 0, board.Height-1)
}

func TestNew(t *testing.T) {
	s := game.New(game.WithSeed(1))

	assert.Equal(t, game.Playing, s.Phase())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, board.Height, s.Board().Top())

	_, held := s.Held()
	assert.False(t, held)
	assert.False(t, s.JustHeld())

	p := s.Active()
	assert.Equal(t, game.SpawnPiece(p.Kind), p)
	assert.Equal(t, 1, s.Stats().TotalDealt())
	assert.Len(t, s.Queue(bag.Size), bag.Size)
}

func TestSameSeedSameSequence(t *testing.T) {
	a := game.New(game.WithSeed(42))
	b := game.New(game.WithSeed(42))

	for i := 0; i < 30; i++ {
		require.Equal(t, a.Active().Kind, b.Active().Kind, "piece %d", i)
		require.Equal(t, a.Queue(14), b.Queue(14))
		a.HardDrop()
		b.HardDrop()
		if a.Phase() != game.Playing {
			break
		}
	}
}

func TestMoveHorizontal(t *testing.T) {
	s := game.New(game.WithSeed(3))
	s.SetPiece(game.SpawnPiece(shape.T))

	assert.True(t, s.MoveHorizontal(game.Left))
	assert.Equal(t, 2, s.Active().Anchor.X)
	assert.True(t, s.MoveHorizontal(game.Right))
	assert.True(t, s.MoveHorizontal(game.Right))
	assert.Equal(t, 4, s.Active().Anchor.X)

	t.Run("vertical directions are ignored", func(t *testing.T) {
		before := s.Active()
		assert.False(t, s.MoveHorizontal(game.Up))
		assert.False(t, s.MoveHorizontal(game.Down))
		assert.Equal(t, before, s.Active())
	})

	t.Run("walls stop the piece", func(t *testing.T) {
		for s.MoveHorizontal(game.Left) {
		}
		assert.Equal(t, 0, s.Active().Anchor.X)
		assert.False(t, s.MoveHorizontal(game.Left))

		for s.MoveHorizontal(game.Right) {
		}
		// T occupies columns 0-2 of its frame.
		assert.Equal(t, board.Width-3, s.Active().Anchor.X)
	})

	t.Run("settled cells stop the piece", func(t *testing.T) {
		b := board.New()
		b.Set(1, 3, shape.Red)
		s.LoadBoard(b)
		s.SetPiece(game.SpawnPiece(shape.T))

		assert.True(t, s.MoveHorizontal(game.Left))
		assert.False(t, s.MoveHorizontal(game.Left))
		assert.Equal(t, 2, s.Active().Anchor.X)
	})
}

func TestFallOneStep(t *testing.T) {
	s := game.New(game.WithSeed(3))
	s.SetPiece(game.SpawnPiece(shape.I))

	steps := 0
	for s.FallOneStep() {
		steps++
	}
	assert.Equal(t, 19, steps)
	assert.Equal(t, 20, s.Active().Anchor.Y)
	assert.Equal(t, board.Height, s.Board().Top(), "falling never commits")
}

func TestRotate(t *testing.T) {
	t.Run("unobstructed rotation keeps the anchor", func(t *testing.T) {
		s := game.New(game.WithSeed(5))
		s.SetPiece(game.Piece{Kind: shape.T, Rotation: shape.R0, Anchor: board.Coord{X: 4, Y: 10}})

		assert.True(t, s.Rotate(game.Up))
		assert.Equal(t, game.Piece{Kind: shape.T, Rotation: shape.R90, Anchor: board.Coord{X: 4, Y: 10}}, s.Active())

		assert.True(t, s.Rotate(game.Down))
		assert.Equal(t, game.Piece{Kind: shape.T, Rotation: shape.R0, Anchor: board.Coord{X: 4, Y: 10}}, s.Active())
	})

	t.Run("first fitting kick wins", func(t *testing.T) {
		s := game.New(game.WithSeed(5))
		b := board.New()
		b.Set(5, 12, shape.Red)
		s.LoadBoard(b)
		s.SetPiece(game.Piece{Kind: shape.T, Rotation: shape.R0, Anchor: board.Coord{X: 4, Y: 10}})

		assert.True(t, s.Rotate(game.Up))
		assert.Equal(t, game.Piece{Kind: shape.T, Rotation: shape.R90, Anchor: board.Coord{X: 3, Y: 10}}, s.Active())
	})

	t.Run("no kick fits", func(t *testing.T) {
		s := game.New(game.WithSeed(5))
		p := game.Piece{Kind: shape.T, Rotation: shape.R0, Anchor: board.Coord{X: 4, Y: 10}}

		b := board.New()
		for y := 0; y < board.Height; y++ {
			for x := 0; x < board.Width; x++ {
				b.Set(x, y, shape.Red)
			}
		}
		for off := range p.Mask().Cells() {
			at := p.Anchor.Add(off)
			b.Set(at.X, at.Y, shape.Empty)
		}
		s.LoadBoard(b)
		s.SetPiece(p)
		before := full(s.Board())

		assert.False(t, s.Rotate(game.Up))
		assert.False(t, s.Rotate(game.Down))
		assert.Equal(t, p, s.Active())
		assert.Equal(t, before, full(s.Board()))
	})

	t.Run("O never moves", func(t *testing.T) {
		s := game.New(game.WithSeed(5))
		p := game.SpawnPiece(shape.O)
		s.SetPiece(p)

		assert.True(t, s.Rotate(game.Up))
		assert.Equal(t, shape.R90, s.Active().Rotation)
		assert.Equal(t, p.Anchor, s.Active().Anchor)
	})

	t.Run("horizontal directions are ignored", func(t *testing.T) {
		s := game.New(game.WithSeed(5))
		p := game.SpawnPiece(shape.J)
		s.SetPiece(p)

		assert.False(t, s.Rotate(game.Left))
		assert.False(t, s.Rotate(game.Right))
		assert.Equal(t, p, s.Active())
	})
}

func TestHardDropI(t *testing.T) {
	s := game.New(game.WithSeed(11))
	s.SetPiece(game.SpawnPiece(shape.I))
	next := s.Queue(1)[0]

	assert.Equal(t, 20, s.DropPosition())
	s.HardDrop()

	for x := 0; x < board.Width; x++ {
		want := shape.Empty
		if x >= 3 && x <= 6 {
			want = shape.Cyan
		}
		assert.Equal(t, want, s.Board().At(x, 21), "column %d", x)
	}
	assert.Equal(t, 21, s.Board().Top())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, game.SpawnPiece(next), s.Active())
	assert.Equal(t, game.Playing, s.Phase())
	assert.Equal(t, 1, s.Stats().Locked)
}

func TestLineClear(t *testing.T) {
	a := loadArchive(t, "o_clear.txtar")

	s := game.New(game.WithSeed(13))
	s.LoadBoard(loadBoard(t, a, "board"))

	s.SetPiece(game.SpawnPiece(shape.O))
	s.HardDrop()
	assert.Equal(t, full(loadBoard(t, a, "after_first")), full(s.Board()))
	assert.Equal(t, 0, s.Score())

	s.SetPiece(game.SpawnPiece(shape.O))
	require.True(t, s.MoveHorizontal(game.Right))
	require.True(t, s.MoveHorizontal(game.Right))
	s.HardDrop()

	assert.Equal(t, full(loadBoard(t, a, "after_second")), full(s.Board()))
	assert.Equal(t, game.PointsPerRow, s.Score())
	assert.Equal(t, 1, s.Stats().Lines)
	assert.Equal(t, 1, s.Stats().Clears(1))
	assert.Equal(t, 2, s.Stats().Locked)
	assert.Equal(t, game.Playing, s.Phase())
}

func TestGameOver(t *testing.T) {
	a := loadArchive(t, "block_out.txtar")

	t.Run("spawn collision ends the session", func(t *testing.T) {
		s := game.New(game.WithSeed(17))
		s.LoadBoard(loadBoard(t, a, "board"))
		s.SetPiece(game.Piece{Kind: shape.I, Rotation: shape.R90, Anchor: board.Coord{X: -2, Y: 0}})

		s.PlaceAndReset()
		require.Equal(t, game.GameOver, s.Phase())
		for y := 0; y < 4; y++ {
			assert.Equal(t, shape.Cyan, s.Board().At(0, y))
		}

		cells := full(s.Board())
		active := s.Active()
		score := s.Score()

		assert.False(t, s.MoveHorizontal(game.Left))
		assert.False(t, s.MoveHorizontal(game.Right))
		assert.False(t, s.Rotate(game.Up))
		assert.False(t, s.FallOneStep())
		s.HardDrop()
		s.Hold()
		s.PlaceAndReset()
		assert.Equal(t, game.GravityIdle, s.Advance(10*time.Second))
		for _, act := range []game.Action{game.MoveLeft, game.RotateCW, game.SoftDrop, game.HardDrop, game.HoldPiece} {
			s.Apply(act)
		}

		assert.Equal(t, cells, full(s.Board()))
		assert.Equal(t, active, s.Active())
		assert.Equal(t, score, s.Score())
		_, held := s.Held()
		assert.False(t, held)
		assert.Equal(t, game.GameOver, s.Phase())
	})

	t.Run("locking an overlapping piece ends the session", func(t *testing.T) {
		s := game.New(game.WithSeed(17))
		b := board.New()
		b.Set(4, 21, shape.Red)
		s.LoadBoard(b)
		s.SetPiece(game.Piece{Kind: shape.I, Rotation: shape.R0, Anchor: board.Coord{X: 3, Y: 20}})

		s.PlaceAndReset()
		assert.Equal(t, game.GameOver, s.Phase())
		assert.Equal(t, shape.Cyan, s.Board().At(4, 21))
	})

	t.Run("restart", func(t *testing.T) {
		s := game.New(game.WithSeed(17))
		s.LoadBoard(loadBoard(t, a, "board"))
		s.SetPiece(game.Piece{Kind: shape.I, Rotation: shape.R90, Anchor: board.Coord{X: -2, Y: 0}})
		s.PlaceAndReset()
		require.Equal(t, game.GameOver, s.Phase())

		s.Apply(game.Restart)
		assert.Equal(t, game.Playing, s.Phase())
		assert.Equal(t, board.Height, s.Board().Top())
		assert.Equal(t, 0, s.Score())
		assert.Equal(t, game.SpawnPiece(s.Active().Kind), s.Active())
		assert.Equal(t, 1, s.Stats().TotalDealt())
	})

	t.Run("restart empties the board in place", func(t *testing.T) {
		s := game.New(game.WithSeed(17))
		handle := s.Board()
		s.LoadBoard(loadBoard(t, a, "board"))
		s.SetPiece(game.Piece{Kind: shape.I, Rotation: shape.R90, Anchor: board.Coord{X: -2, Y: 0}})
		s.PlaceAndReset()
		require.Equal(t, game.GameOver, s.Phase())
		require.Equal(t, shape.T.Color(), handle.At(3, 21))

		s.Restart()
		assert.Same(t, handle, s.Board())
		assert.Equal(t, board.Height, handle.Top())
		assert.Equal(t, shape.Empty, handle.At(3, 21))
	})
}

func TestHold(t *testing.T) {
	s := game.New(game.WithSeed(19))
	first := s.Active().Kind
	second := s.Queue(1)[0]

	s.Hold()
	held, ok := s.Held()
	require.True(t, ok)
	assert.Equal(t, first, held)
	assert.Equal(t, game.SpawnPiece(second), s.Active())
	assert.True(t, s.JustHeld())
	assert.Equal(t, 2, s.Stats().TotalDealt())

	t.Run("second hold before placement is refused", func(t *testing.T) {
		active := s.Active()
		queue := s.Queue(bag.Size)

		s.Hold()
		held, _ := s.Held()
		assert.Equal(t, first, held)
		assert.Equal(t, active, s.Active())
		assert.Equal(t, queue, s.Queue(bag.Size))
	})

	t.Run("placement re-enables hold", func(t *testing.T) {
		s.HardDrop()
		assert.False(t, s.JustHeld())

		current := s.Active().Kind
		queue := s.Queue(bag.Size)

		s.Hold()
		held, _ := s.Held()
		assert.Equal(t, current, held)
		assert.Equal(t, game.SpawnPiece(first), s.Active())
		assert.Equal(t, queue, s.Queue(bag.Size), "swapping does not draw")
	})

	t.Run("hold resets a moved piece to spawn", func(t *testing.T) {
		s := game.New(game.WithSeed(23))
		s.MoveHorizontal(game.Left)
		s.FallOneStep()
		s.Rotate(game.Up)
		k := s.Active().Kind

		s.Hold()
		s.HardDrop()
		s.Hold()
		assert.Equal(t, game.SpawnPiece(k), s.Active())
	})
}

func TestAdvance(t *testing.T) {
	t.Run("gravity", func(t *testing.T) {
		s := game.New(game.WithSeed(29))
		s.SetPiece(game.SpawnPiece(shape.T))

		assert.Equal(t, game.GravityIdle, s.Advance(499*time.Millisecond))
		assert.Equal(t, 2, s.Active().Anchor.Y)
		assert.Equal(t, game.GravityFell, s.Advance(time.Millisecond))
		assert.Equal(t, 3, s.Active().Anchor.Y)
		assert.Equal(t, time.Duration(0), s.Timers().SinceFall)

		assert.Equal(t, game.GravityFell, s.Advance(5*time.Second), "one step per call")
		assert.Equal(t, 4, s.Active().Anchor.Y)
	})

	t.Run("input extends the lock delay", func(t *testing.T) {
		s := game.New(game.WithSeed(29))
		s.SetPiece(game.Piece{Kind: shape.I, Rotation: shape.R0, Anchor: board.Coord{X: 3, Y: 20}})

		assert.Equal(t, game.GravityIdle, s.Advance(400*time.Millisecond))
		s.MarkInput()
		assert.Equal(t, game.GravityLanded, s.Advance(100*time.Millisecond))
		assert.Equal(t, board.Height, s.Board().Top())

		assert.Equal(t, game.GravityLocked, s.Advance(500*time.Millisecond))
		assert.Equal(t, shape.Cyan, s.Board().At(3, 21))
		assert.Equal(t, game.Playing, s.Phase())
	})

	t.Run("fall mark restarts at zero", func(t *testing.T) {
		s := game.New(game.WithSeed(29))
		s.SetPiece(game.SpawnPiece(shape.T))

		frame := time.Second / 24
		for range 12 {
			require.Equal(t, game.GravityIdle, s.Advance(frame))
		}
		assert.Equal(t, game.GravityFell, s.Advance(frame), "the 13th frame crosses the interval")
		assert.Equal(t, time.Duration(0), s.Timers().SinceFall)

		for range 12 {
			require.Equal(t, game.GravityIdle, s.Advance(frame))
		}
		assert.Equal(t, game.GravityFell, s.Advance(frame), "the overshoot is not carried")
	})

	t.Run("custom timing", func(t *testing.T) {
		s := game.New(game.WithSeed(29), game.WithTiming(game.Timing{
			FallInterval: 100 * time.Millisecond,
			LockDelay:    time.Second,
		}))
		s.SetPiece(game.Piece{Kind: shape.I, Rotation: shape.R0, Anchor: board.Coord{X: 3, Y: 20}})

		assert.Equal(t, game.GravityLanded, s.Advance(100*time.Millisecond))
		assert.Equal(t, game.GravityLanded, s.Advance(800*time.Millisecond))
		assert.Equal(t, game.GravityLocked, s.Advance(100*time.Millisecond))
	})
}

func TestApply(t *testing.T) {
	t.Run("moves and rotations count as input", func(t *testing.T) {
		for _, a := range []game.Action{game.MoveLeft, game.MoveRight, game.RotateCW, game.RotateCCW} {
			s := game.New(game.WithSeed(31))
			s.Advance(200 * time.Millisecond)
			s.Apply(a)
			assert.Equal(t, time.Duration(0), s.Timers().SinceInput, a.String())
		}
	})

	t.Run("drops and holds do not count as input", func(t *testing.T) {
		for _, a := range []game.Action{game.SoftDrop, game.HardDrop, game.HoldPiece} {
			s := game.New(game.WithSeed(31))
			s.Advance(200 * time.Millisecond)
			s.Apply(a)
			assert.Equal(t, 200*time.Millisecond, s.Timers().SinceInput, a.String())
		}
	})

	t.Run("failed moves still count", func(t *testing.T) {
		s := game.New(game.WithSeed(31))
		s.SetPiece(game.Piece{Kind: shape.T, Rotation: shape.R0, Anchor: board.Coord{X: 0, Y: 5}})
		s.Advance(200 * time.Millisecond)
		s.Apply(game.MoveLeft)
		assert.Equal(t, 0, s.Active().Anchor.X)
		assert.Equal(t, time.Duration(0), s.Timers().SinceInput)
	})

	t.Run("restart is ignored while playing", func(t *testing.T) {
		s := game.New(game.WithSeed(31))
		s.Apply(game.HardDrop)
		cells := full(s.Board())
		active := s.Active()

		s.Apply(game.Restart)
		assert.Equal(t, cells, full(s.Board()))
		assert.Equal(t, active, s.Active())
	})

	t.Run("names", func(t *testing.T) {
		assert.Equal(t, "hard drop", game.HardDrop.String())
		assert.Equal(t, "unknown", game.Action(99).String())
	})
}

func TestSnapshot(t *testing.T) {
	s := game.New(game.WithSeed(37))
	s.SetPiece(game.SpawnPiece(shape.I))

	sn := s.Snapshot(3)
	assert.Len(t, sn.Next, 3)
	assert.Equal(t, s.Queue(3), sn.Next)
	assert.Equal(t, 20, sn.GhostY)
	assert.Equal(t, game.Playing, sn.Phase)

	for x := 3; x <= 6; x++ {
		assert.True(t, sn.ActiveAt(x, 2))
		assert.True(t, sn.GhostAt(x, 21))
		assert.False(t, sn.GhostAt(x, 2))
	}
	assert.False(t, sn.ActiveAt(2, 2))
	assert.False(t, sn.ActiveAt(3, 1))

	sn.Cells[21][0] = shape.Red
	assert.Equal(t, shape.Empty, s.Board().At(0, 21), "snapshot cells are a copy")
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "game over", game.GameOver.String())
	assert.Equal(t, "unknown", game.Phase(9).String())
	assert.Equal(t, "landed", game.GravityLanded.String())
}
