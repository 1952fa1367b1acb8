package kernel

import "fmt"

// PanicInfo describes a task that panicked while being polled.
type PanicInfo struct {
	TaskID TaskID
	// Polls counts the task's polls, including the one that panicked.
	Polls uint64
	// Live is the number of tasks still spawned, the panicking one included.
	Live  int
	Value any
	Stack []byte
}

func (p PanicInfo) String() string {
	return fmt.Sprintf("task %d panicked on poll %d: %v", p.TaskID, p.Polls, p.Value)
}

// PanicHandler takes over the kernel after a task panic. It usually never returns.
type PanicHandler func(PanicInfo)

// OnPanic routes task panics to fn. Only the first panic reaches fn; later panicking
// tasks are logged and dropped. With no handler, a task panic propagates out of
// RunReady.
func (e *Executor) OnPanic(fn PanicHandler) {
	e.onPanic = fn
}

// Panicked reports whether a task has panicked since the handler was installed.
// It is safe to call from interrupt context.
func (e *Executor) Panicked() bool {
	return e.panicked.Load()
}

func (e *Executor) taskPanicked(id TaskID, st *taskState, r any) {
	if e.onPanic == nil {
		panic(r)
	}
	info := PanicInfo{
		TaskID: id,
		Polls:  st.polls,
		Live:   len(e.tasks),
		Value:  r,
	}
	if !e.panicked.CompareAndSwap(false, true) {
		e.log.WithField("task", id).Errorf("dropping task after %s", info)
		return
	}
	info.Stack = captureStack()
	e.onPanic(info)
}
