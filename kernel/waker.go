package kernel

import "sync/atomic"

// Poll is the outcome of polling a task or a value source.
type Poll uint8

const (
	// Pending means no progress is possible until a registered Waker fires.
	Pending Poll = iota
	// Ready means the poll completed.
	Ready
)

func (p Poll) String() string {
	switch p {
	case Pending:
		return "pending"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// Waker makes one task runnable again. Wake is safe from interrupt context:
// it never blocks and never allocates.
type Waker struct {
	id     TaskID
	queued atomic.Bool
	e      *Executor
}

// TaskID returns the task this waker resumes.
func (w *Waker) TaskID() TaskID { return w.id }

// Wake schedules the task for another poll. Repeated wakes before that poll coalesce.
func (w *Waker) Wake() {
	if w == nil || w.e == nil {
		return
	}
	if !w.queued.CompareAndSwap(false, true) {
		return
	}
	if !w.e.wakes.Push(w.id) {
		w.queued.Store(false)
		w.e.wakeOverflow(w.id)
	}
}

// AtomicWaker stores the Waker of the single party waiting on some event source.
//
// Registering replaces any previous waker. The event source, not the AtomicWaker,
// holds the data: a Wake with nobody registered is harmless because the waiter
// re-checks the source after registering (see PollRecheck).
type AtomicWaker struct {
	w atomic.Pointer[Waker]
}

// Register records w as the party to wake next.
func (a *AtomicWaker) Register(w *Waker) {
	a.w.Store(w)
}

// Wake consumes the registered waker, if any, and wakes it.
func (a *AtomicWaker) Wake() {
	if w := a.w.Swap(nil); w != nil {
		w.Wake()
	}
}

// Take removes and returns the registered waker without waking it.
func (a *AtomicWaker) Take() *Waker {
	return a.w.Swap(nil)
}

// PollRecheck polls try with the register-then-recheck protocol.
//
// If the first attempt fails, w is registered with a and try runs again, so a value
// published (and a signalled) between the two attempts is never missed. A value found
// on the second attempt clears the registration.
func PollRecheck[T any](a *AtomicWaker, w *Waker, try func() (T, bool)) (T, Poll) {
	if v, ok := try(); ok {
		return v, Ready
	}
	a.Register(w)
	if v, ok := try(); ok {
		a.Take()
		return v, Ready
	}
	var zero T
	return zero, Pending
}
