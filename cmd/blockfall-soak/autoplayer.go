package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/game"
)

// moves is weighted toward shifting and turning so pieces spread across the
// well before they are dropped.
var moves = []game.Action{
	game.MoveLeft, game.MoveLeft, game.MoveLeft,
	game.MoveRight, game.MoveRight, game.MoveRight,
	game.RotateCW, game.RotateCW,
	game.RotateCCW,
	game.SoftDrop, game.SoftDrop,
	game.HardDrop,
	game.HoldPiece,
}

// autoplayer is a loop.ActionSource sending random actions. It restarts as
// soon as a session ends and never quits.
type autoplayer struct {
	rng   *rand.Rand
	limit int
}

func newAutoplayer(rng *rand.Rand, limit int) *autoplayer {
	return &autoplayer{rng: rng, limit: limit}
}

func (a *autoplayer) Actions(phase game.Phase) ([]game.Action, bool) {
	if phase == game.GameOver {
		return []game.Action{game.Restart}, false
	}
	if a.limit <= 0 {
		return nil, false
	}

	n := a.rng.IntN(a.limit + 1)
	actions := make([]game.Action, n)
	for i := range actions {
		actions[i] = moves[a.rng.IntN(len(moves))]
	}
	return actions, false
}
