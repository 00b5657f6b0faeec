package loop

// System is one step of a frame. Systems may keep their own state between
// frames; the scheduler calls Execute once per frame in registration order.
type System interface {
	Execute(frame *Frame)
}
