package kernel

import "sync/atomic"

// Queue is a bounded, lock-free FIFO safe for multiple producers and a single consumer.
//
// Storage is allocated once by NewQueue; Push and Pop never allocate and never block,
// so both are usable from interrupt context.
type Queue[T any] struct {
	_     [0]func() // prevent accidental copying.
	head  atomic.Uint64
	tail  atomic.Uint64
	slots []queueSlot[T]
}

type queueSlot[T any] struct {
	// seq == pos: free for the producer at pos.
	// seq == pos+1: holds the value written at pos.
	seq atomic.Uint64
	val T
}

// NewQueue allocates a queue holding up to capacity values.
func NewQueue[T any](capacity int) *Queue[T] {
	if capacity <= 0 {
		panic("kernel: queue capacity must be positive")
	}
	q := &Queue[T]{slots: make([]queueSlot[T], capacity)}
	for i := range q.slots {
		q.slots[i].seq.Store(uint64(i))
	}
	return q
}

// Cap returns the fixed capacity.
func (q *Queue[T]) Cap() int { return len(q.slots) }

// Len returns a snapshot of the number of queued values.
func (q *Queue[T]) Len() int {
	tail := q.tail.Load()
	head := q.head.Load()
	if tail <= head {
		return 0
	}
	return int(tail - head)
}

// Empty reports whether the queue held no values at the time of the call.
func (q *Queue[T]) Empty() bool { return q.Len() == 0 }

// Push appends v, returning false if the queue is full. A full queue is left untouched.
func (q *Queue[T]) Push(v T) bool {
	n := uint64(len(q.slots))
	pos := q.tail.Load()
	for {
		s := &q.slots[pos%n]
		seq := s.seq.Load()
		switch dif := int64(seq) - int64(pos); {
		case dif == 0:
			// Reserve the slot, then publish it.
			if q.tail.CompareAndSwap(pos, pos+1) {
				s.val = v
				s.seq.Store(pos + 1)
				return true
			}
			pos = q.tail.Load()
		case dif < 0:
			return false
		default:
			pos = q.tail.Load()
		}
	}
}

// Pop removes the oldest value, returning false if the queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	n := uint64(len(q.slots))
	pos := q.head.Load()
	for {
		s := &q.slots[pos%n]
		seq := s.seq.Load()
		switch dif := int64(seq) - int64(pos+1); {
		case dif == 0:
			if q.head.CompareAndSwap(pos, pos+1) {
				v := s.val
				s.val = zero
				s.seq.Store(pos + n)
				return v, true
			}
			pos = q.head.Load()
		case dif < 0:
			return zero, false
		default:
			pos = q.head.Load()
		}
	}
}
