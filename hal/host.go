package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	cpu    *hostCPU
	kbd    *hostKeyboard
	grid   *TextGrid
}

// New returns a host HAL logging to stderr.
func New() HAL {
	return newHost(os.Stderr)
}

func newHost(logOut io.Writer) *hostHAL {
	if logOut == nil {
		logOut = io.Discard
	}
	cpu := newHostCPU()
	return &hostHAL{
		logger: &hostLogger{w: logOut},
		cpu:    cpu,
		kbd:    newHostKeyboard(cpu),
		grid:   NewTextGrid(TextColumns, TextRows),
	}
}

func (h *hostHAL) Logger() Logger     { return h.logger }
func (h *hostHAL) CPU() CPU           { return h.cpu }
func (h *hostHAL) Keyboard() Keyboard { return h.kbd }
func (h *hostHAL) Text() TextBuffer   { return h.grid }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
