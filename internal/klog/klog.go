// Package klog builds the kernel's structured logger on top of the HAL line logger.
package klog

import (
	"bytes"
	"fmt"
	"sync"

	"mios/hal"
	"mios/internal/buildinfo"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// New returns a logger writing through out at the named level ("" means info).
// Every entry carries the boot id and build version.
func New(out hal.Logger, level string) (*logrus.Logger, error) {
	lvl := logrus.InfoLevel
	if level != "" {
		var err error
		if lvl, err = logrus.ParseLevel(level); err != nil {
			return nil, fmt.Errorf("klog: %w", err)
		}
	}

	l := logrus.New()
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
	})
	l.SetOutput(&lineWriter{out: out})
	l.AddHook(&fieldsHook{fields: logrus.Fields{
		"boot":    uuid.NewString(),
		"version": buildinfo.Short(),
	}})
	return l, nil
}

// fieldsHook stamps every entry with a fixed set of fields.
type fieldsHook struct {
	fields logrus.Fields
}

func (h *fieldsHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *fieldsHook) Fire(e *logrus.Entry) error {
	for k, v := range h.fields {
		if _, ok := e.Data[k]; !ok {
			e.Data[k] = v
		}
	}
	return nil
}

// lineWriter forwards complete lines to a hal.Logger.
type lineWriter struct {
	mu      sync.Mutex
	out     hal.Logger
	pending []byte
}

func (w *lineWriter) Write(p []byte) (int, error) {
	if w.out == nil {
		return len(p), nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending = append(w.pending, p...)
	for {
		i := bytes.IndexByte(w.pending, '\n')
		if i < 0 {
			break
		}
		w.out.WriteLineBytes(w.pending[:i])
		w.pending = w.pending[i+1:]
	}
	if len(w.pending) == 0 {
		w.pending = nil
	}
	return len(p), nil
}
