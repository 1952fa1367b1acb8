package hal

import (
	"sync"
	"sync/atomic"
)

// hostCPU models the interrupt flag of a single core.
//
// mu is held while interrupts are disabled and while a handler runs, so interrupt
// delivery and interrupts-off sections exclude each other. Only the kernel goroutine
// disables interrupts.
type hostCPU struct {
	mu       sync.Mutex
	disabled atomic.Bool

	wake chan struct{}

	// Idle tracking for the headless runner.
	irqSeq atomic.Uint64
	idleAt atomic.Uint64
	halted atomic.Bool
	idleCh chan struct{}
}

func newHostCPU() *hostCPU {
	return &hostCPU{
		wake:   make(chan struct{}, 1),
		idleCh: make(chan struct{}, 1),
	}
}

func (c *hostCPU) InterruptsEnabled() bool { return !c.disabled.Load() }

func (c *hostCPU) DisableInterrupts() {
	c.mu.Lock()
	c.disabled.Store(true)
}

func (c *hostCPU) EnableInterrupts() {
	c.disabled.Store(false)
	c.mu.Unlock()
}

func (c *hostCPU) EnableAndHalt() {
	if !c.disabled.Load() {
		c.DisableInterrupts()
	}
	// Still inside the interrupts-off section: nothing can be delivered until Unlock.
	c.idleAt.Store(c.irqSeq.Load())
	c.halted.Store(true)
	c.EnableInterrupts()

	select {
	case c.idleCh <- struct{}{}:
	default:
	}
	<-c.wake
	c.halted.Store(false)
}

// interrupt delivers one interrupt, waiting while interrupts are disabled.
func (c *hostCPU) interrupt(handler func()) {
	c.mu.Lock()
	if handler != nil {
		handler()
	}
	c.irqSeq.Add(1)
	c.mu.Unlock()

	select {
	case c.wake <- struct{}{}:
	default:
	}
}

// idle reports whether the kernel is halted with every delivered interrupt handled.
func (c *hostCPU) idle() bool {
	return c.halted.Load() && c.idleAt.Load() == c.irqSeq.Load()
}
