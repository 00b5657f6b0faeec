package loop

import "github.com/plus3/blockfall/game"

// ActionSource produces the player actions for one frame. The current phase
// is passed so a source can map keys differently on the game over screen.
type ActionSource interface {
	Actions(phase game.Phase) (actions []game.Action, quit bool)
}

// ActionFunc adapts a function to an ActionSource.
type ActionFunc func(phase game.Phase) ([]game.Action, bool)

func (f ActionFunc) Actions(phase game.Phase) ([]game.Action, bool) {
	return f(phase)
}

// InputSystem applies the actions of an ActionSource to the session.
type InputSystem struct {
	Source ActionSource

	// Applied counts every action handed to the session.
	Applied int64
}

func (s *InputSystem) Execute(frame *Frame) {
	actions, quit := s.Source.Actions(frame.Game.Phase())
	if quit {
		frame.Commands.Quit()
		return
	}

	for _, a := range actions {
		frame.Game.Apply(a)
		s.Applied++
	}
}

// GravitySystem advances simulated time by the frame delta.
type GravitySystem struct {
	Last   game.Gravity
	Falls  int64
	Locks  int64
	Landed int64
}

func (s *GravitySystem) Execute(frame *Frame) {
	s.Last = frame.Game.Advance(frame.Elapsed())
	switch s.Last {
	case game.GravityFell:
		s.Falls++
	case game.GravityLanded:
		s.Landed++
	case game.GravityLocked:
		s.Locks++
	}
}

// PhaseSystem watches for phase transitions, starting from Playing. Register
// it after the systems that mutate the session so it sees the frame's final
// phase.
type PhaseSystem struct {
	// OnChange, if set, is called with the previous and the new phase.
	OnChange func(from, to game.Phase, g *game.State)

	// GamesOver counts transitions into GameOver.
	GamesOver int64

	last game.Phase
}

func (s *PhaseSystem) Execute(frame *Frame) {
	phase := frame.Game.Phase()
	if phase == s.last {
		return
	}

	if phase == game.GameOver {
		s.GamesOver++
	}
	if s.OnChange != nil {
		s.OnChange(s.last, phase, frame.Game)
	}
	s.last = phase
}
