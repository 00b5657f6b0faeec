package game

// Action is a discrete player command.
type Action uint8

const (
	MoveLeft Action = iota
	MoveRight
	RotateCW
	RotateCCW
	SoftDrop
	HardDrop
	HoldPiece
	Restart
)

var actionNames = [...]string{
	MoveLeft:  "move left",
	MoveRight: "move right",
	RotateCW:  "rotate cw",
	RotateCCW: "rotate ccw",
	SoftDrop:  "soft drop",
	HardDrop:  "hard drop",
	HoldPiece: "hold",
	Restart:   "restart",
}

func (a Action) String() string {
	if int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Apply performs a player action. Moves and rotations count as input for the
// lock delay whether or not they succeed; drops and holds do not. While the
// session is over only Restart has an effect.
func (s *State) Apply(a Action) {
	if s.phase != Playing {
		if a == Restart && s.phase == GameOver {
			s.Restart()
		}
		return
	}

	switch a {
	case MoveLeft:
		s.MoveHorizontal(Left)
		s.MarkInput()
	case MoveRight:
		s.MoveHorizontal(Right)
		s.MarkInput()
	case RotateCW:
		s.Rotate(Up)
		s.MarkInput()
	case RotateCCW:
		s.Rotate(Down)
		s.MarkInput()
	case SoftDrop:
		s.FallOneStep()
	case HardDrop:
		s.HardDrop()
	case HoldPiece:
		s.Hold()
	}
}
