package klog

import (
	"strings"
	"sync"
	"testing"
)

type lines struct {
	mu  sync.Mutex
	got []string
}

func (l *lines) WriteLineString(s string) { l.mu.Lock(); l.got = append(l.got, s); l.mu.Unlock() }
func (l *lines) WriteLineBytes(b []byte)  { l.WriteLineString(string(b)) }

func TestNewStampsBootFields(t *testing.T) {
	out := &lines{}
	log, err := New(out, "debug")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	log.WithField("component", "test").Debug("hello")

	if len(out.got) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(out.got), out.got)
	}
	line := out.got[0]
	for _, want := range []string{`msg=hello`, `component=test`, `boot=`, `version=`, `level=debug`} {
		if !strings.Contains(line, want) {
			t.Errorf("line %q missing %q", line, want)
		}
	}
}

func TestNewLevel(t *testing.T) {
	out := &lines{}
	log, err := New(out, "")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	log.Debug("hidden")
	log.Warn("shown")
	if len(out.got) != 1 || !strings.Contains(out.got[0], "msg=shown") {
		t.Fatalf("got %q, want only the warning", out.got)
	}

	if _, err := New(out, "loud"); err == nil {
		t.Fatal("New() accepted an unknown level")
	}
}

func TestLineWriterSplitsLines(t *testing.T) {
	out := &lines{}
	w := &lineWriter{out: out}
	w.Write([]byte("a\nb"))
	w.Write([]byte("c\n\n"))
	want := []string{"a", "bc", ""}
	if strings.Join(out.got, "|") != strings.Join(want, "|") {
		t.Fatalf("got %q, want %q", out.got, want)
	}
}
