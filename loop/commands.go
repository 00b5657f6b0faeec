package loop

// Commands buffers work that must happen after every system of a frame has
// run, such as imgui draw calls or a request to stop the loop.
type Commands struct {
	defers []func()
	quit   bool
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run when the frame is flushed.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Quit asks the scheduler to stop after this frame.
func (c *Commands) Quit() {
	c.quit = true
}

// Flush runs the deferred functions in order, resets the buffer and reports
// whether quitting was requested.
func (c *Commands) Flush() bool {
	for _, fn := range c.defers {
		fn()
	}

	quit := c.quit
	c.defers = c.defers[:0]
	c.quit = false
	return quit
}
