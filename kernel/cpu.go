package kernel

// CPU is the processor state the executor and drivers depend on.
type CPU interface {
	InterruptsEnabled() bool
	DisableInterrupts()
	EnableInterrupts()
	// EnableAndHalt re-enables interrupts and parks until the next interrupt.
	// The two steps are atomic: an interrupt arriving between them ends the halt.
	EnableAndHalt()
}

// WithoutInterrupts runs fn with interrupts disabled, restoring the previous state after.
func WithoutInterrupts(cpu CPU, fn func()) {
	if cpu == nil || !cpu.InterruptsEnabled() {
		fn()
		return
	}
	cpu.DisableInterrupts()
	defer cpu.EnableInterrupts()
	fn()
}
