// Package keyboard moves scancodes from the keyboard interrupt to the console task.
package keyboard

import (
	"fmt"
	"sync/atomic"

	"mios/kernel"

	"github.com/sirupsen/logrus"
)

// QueueCapacity is the number of scancodes buffered between interrupt and task.
const QueueCapacity = 100

// PushResult is the outcome of AddScancode.
type PushResult uint8

const (
	PushOK PushResult = iota
	PushErrFull
	PushErrUninitialized
)

func (r PushResult) String() string {
	switch r {
	case PushOK:
		return "ok"
	case PushErrFull:
		return "queue full"
	case PushErrUninitialized:
		return "queue uninitialized"
	default:
		return "unknown"
	}
}

// Handoff is the scancode queue shared by the interrupt handler and the single
// ScancodeStream. The queue is created by NewStream, exactly once.
//
// Drops are only counted on the interrupt side. The stream logs them once it has
// drained the queue.
type Handoff struct {
	queue kernel.OnceCell[*kernel.Queue[byte]]
	waker kernel.AtomicWaker
	log   logrus.FieldLogger

	dropFull   atomic.Uint64
	dropUninit atomic.Uint64
}

// Dropped returns the number of scancodes lost to a full queue and to a queue that
// did not exist yet.
func (h *Handoff) Dropped() (full, uninit uint64) {
	return h.dropFull.Load(), h.dropUninit.Load()
}

func NewHandoff(log logrus.FieldLogger) *Handoff {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handoff{log: log.WithField("component", "irq")}
}

// AddScancode is called from the keyboard interrupt handler. It never blocks, logs
// or allocates; a full or missing queue drops b and counts the drop.
func (h *Handoff) AddScancode(b byte) PushResult {
	q, err := h.queue.TryGet()
	if err != nil {
		h.dropUninit.Add(1)
		return PushErrUninitialized
	}
	if !q.Push(b) {
		h.dropFull.Add(1)
		return PushErrFull
	}
	h.waker.Wake()
	return PushOK
}

// NewStream creates the queue and returns its only consumer. A second call panics.
func (h *Handoff) NewStream() *ScancodeStream {
	err := h.queue.TryInitOnce(func() *kernel.Queue[byte] {
		return kernel.NewQueue[byte](QueueCapacity)
	})
	if err != nil {
		panic(fmt.Errorf("keyboard: NewStream should only be called once: %w", err))
	}
	return &ScancodeStream{h: h}
}

// ScancodeStream yields scancodes in arrival order.
type ScancodeStream struct {
	h *Handoff

	seenFull   uint64
	seenUninit uint64
}

// PollNext returns the next scancode, or Pending after arranging for ctx's task to
// be woken by the next AddScancode.
func (s *ScancodeStream) PollNext(ctx *kernel.Context) (byte, kernel.Poll) {
	q, err := s.h.queue.TryGet()
	if err != nil {
		panic(fmt.Errorf("keyboard: scancode queue: %w", err))
	}
	b, p := kernel.PollRecheck(&s.h.waker, ctx.Waker(), q.Pop)
	if p == kernel.Pending {
		s.reportDrops()
	}
	return b, p
}

func (s *ScancodeStream) reportDrops() {
	full, uninit := s.h.Dropped()
	if n := uninit - s.seenUninit; n > 0 {
		s.h.log.WithField("dropped", n).Warn("scancode queue uninitialized; keyboard input lost")
	}
	if n := full - s.seenFull; n > 0 {
		s.h.log.WithField("dropped", n).Warn("scancode queue full; dropping keyboard input")
	}
	s.seenFull, s.seenUninit = full, uninit
}
