package kernel

import (
	"errors"
	"sync/atomic"
)

var (
	// ErrAlreadyInitialized is returned when a OnceCell is initialized a second time.
	ErrAlreadyInitialized = errors.New("already initialized")
	// ErrUninitialized is returned when a OnceCell is read before initialization completes.
	ErrUninitialized = errors.New("uninitialized")
)

const (
	onceUninit uint32 = iota
	onceInitializing
	onceReady
)

// OnceCell holds a value that is set exactly once and then read lock-free.
//
// Reads never block: a read racing the initializer observes ErrUninitialized.
type OnceCell[T any] struct {
	_     [0]func() // prevent accidental copying.
	state atomic.Uint32
	v     T
}

// TryInitOnce stores the result of fn. Only the first call runs fn; every later call
// returns ErrAlreadyInitialized without running it.
func (c *OnceCell[T]) TryInitOnce(fn func() T) error {
	if !c.state.CompareAndSwap(onceUninit, onceInitializing) {
		return ErrAlreadyInitialized
	}
	c.v = fn()
	c.state.Store(onceReady)
	return nil
}

// TryGet returns the stored value or ErrUninitialized.
func (c *OnceCell[T]) TryGet() (T, error) {
	if c.state.Load() != onceReady {
		var zero T
		return zero, ErrUninitialized
	}
	return c.v, nil
}

// IsInitialized reports whether the value is available.
func (c *OnceCell[T]) IsInitialized() bool {
	return c.state.Load() == onceReady
}
