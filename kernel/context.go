package kernel

// Context provides task-local access to the executor during a poll.
type Context struct {
	e      *Executor
	taskID TaskID
	waker  *Waker
}

// TaskID returns the current task ID.
func (c *Context) TaskID() TaskID { return c.taskID }

// Waker returns the waker that resumes the current task.
func (c *Context) Waker() *Waker { return c.waker }

// Spawn registers another task with the executor running this one.
func (c *Context) Spawn(t Task) TaskID {
	return c.e.Spawn(t)
}
