package hal

import "sync/atomic"

// hostKeyboard is the emulated keyboard controller: host input backends feed it
// scancodes and it raises one interrupt per byte.
type hostKeyboard struct {
	cpu     *hostCPU
	handler atomic.Pointer[func(byte)]
}

func newHostKeyboard(cpu *hostCPU) *hostKeyboard {
	return &hostKeyboard{cpu: cpu}
}

func (k *hostKeyboard) SetHandler(fn func(scancode byte)) {
	if fn == nil {
		k.handler.Store(nil)
		return
	}
	k.handler.Store(&fn)
}

// raise delivers each byte of seq as its own interrupt, in order.
func (k *hostKeyboard) raise(seq []byte) {
	for _, b := range seq {
		b := b
		k.cpu.interrupt(func() {
			if fn := k.handler.Load(); fn != nil {
				(*fn)(b)
			}
		})
	}
}
