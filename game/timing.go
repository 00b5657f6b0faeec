package game

import "time"

// Timing holds the gravity interval and the lock delay.
type Timing struct {
	// FallInterval is how long a piece hangs on a row before gravity moves it.
	FallInterval time.Duration
	// LockDelay is how long after the last accepted input a landed piece
	// waits before it locks.
	LockDelay time.Duration
}

// DefaultTiming is 500ms for both intervals.
func DefaultTiming() Timing {
	return Timing{
		FallInterval: 500 * time.Millisecond,
		LockDelay:    500 * time.Millisecond,
	}
}

// Gravity describes what an Advance call did.
type Gravity uint8

const (
	// GravityIdle means the fall interval has not elapsed yet.
	GravityIdle Gravity = iota
	// GravityFell means the piece moved down one row.
	GravityFell
	// GravityLanded means the piece could not fall and is waiting out the
	// lock delay.
	GravityLanded
	// GravityLocked means the piece could not fall and was locked.
	GravityLocked
)

func (g Gravity) String() string {
	switch g {
	case GravityIdle:
		return "idle"
	case GravityFell:
		return "fell"
	case GravityLanded:
		return "landed"
	case GravityLocked:
		return "locked"
	}
	return "unknown"
}

// Timers reports the simulated time since the last gravity step and since the
// last accepted input.
type Timers struct {
	SinceFall  time.Duration
	SinceInput time.Duration
}

// Timers returns the current timing marks.
func (s *State) Timers() Timers {
	return Timers{SinceFall: s.sinceFall, SinceInput: s.sinceInput}
}

// Timing returns the intervals the session runs with.
func (s *State) Timing() Timing {
	return s.timing
}

// Advance moves simulated time forward by dt. Once the fall interval has
// elapsed the piece is moved down one row; if it cannot move and no input has
// been accepted for the lock delay, it is locked.
//
// At most one gravity step happens per call, however large dt is. The fall
// mark restarts at zero rather than carrying the overshoot, so with frame
// lengths that do not divide the interval a fall takes slightly longer than
// FallInterval. Pieces fall at whole-frame boundaries on purpose.
func (s *State) Advance(dt time.Duration) Gravity {
	if s.phase != Playing {
		return GravityIdle
	}

	s.sinceFall += dt
	s.sinceInput += dt

	if s.sinceFall < s.timing.FallInterval {
		return GravityIdle
	}
	s.sinceFall = 0

	if s.FallOneStep() {
		return GravityFell
	}
	if s.sinceInput < s.timing.LockDelay {
		return GravityLanded
	}
	s.PlaceAndReset()
	return GravityLocked
}

// MarkInput records an accepted player input, restarting the lock delay.
func (s *State) MarkInput() {
	s.sinceInput = 0
}
