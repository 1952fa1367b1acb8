package vga

import (
	"fmt"
	"sync"

	"mios/hal"
	"mios/kernel"
)

// Console serialises access to a Writer. Each call holds the lock with interrupts
// disabled for one write plus cursor update.
type Console struct {
	cpu kernel.CPU

	mu sync.Mutex
	w  *Writer
}

// NewConsole clears buf and returns a console printing in color.
func NewConsole(cpu kernel.CPU, buf hal.TextBuffer, color ColorCode) *Console {
	return &Console{cpu: cpu, w: NewWriter(buf, color)}
}

func (c *Console) locked(fn func(w *Writer)) {
	kernel.WithoutInterrupts(c.cpu, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		fn(c.w)
	})
}

func (c *Console) WriteString(s string) (int, error) {
	c.locked(func(w *Writer) {
		w.WriteString(s)
		w.DrawCursor()
	})
	return len(s), nil
}

func (c *Console) Write(p []byte) (int, error) {
	return c.WriteString(string(p))
}

func (c *Console) Print(a ...any) {
	c.WriteString(fmt.Sprint(a...))
}

func (c *Console) Printf(format string, a ...any) {
	c.WriteString(fmt.Sprintf(format, a...))
}

func (c *Console) Println(a ...any) {
	c.WriteString(fmt.Sprintln(a...))
}

func (c *Console) DeleteChar() {
	c.locked(func(w *Writer) { w.DeleteChar() })
}

func (c *Console) SetColor(color ColorCode) {
	c.locked(func(w *Writer) { w.SetColor(color) })
}

// Column returns the write position on the bottom row.
func (c *Console) Column() int {
	var col int
	c.locked(func(w *Writer) { col = w.Column() })
	return col
}
