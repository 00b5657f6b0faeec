package loop

import (
	"time"

	"github.com/plus3/blockfall/game"
)

type Frame struct {
	DeltaTime float64
	Commands  *Commands
	Game      *game.State
}

func newFrame(dt float64, g *game.State) *Frame {
	return &Frame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Game:      g,
	}
}

// Elapsed returns DeltaTime as a duration.
func (f *Frame) Elapsed() time.Duration {
	return time.Duration(f.DeltaTime * float64(time.Second))
}
