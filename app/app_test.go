package app

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"mios/hal"
)

func runHeadless(t *testing.T, cfg Config, input string) string {
	t.Helper()
	var out bytes.Buffer
	err := hal.RunHeadless(context.Background(), Starter(cfg), hal.HeadlessConfig{
		Enabled: true,
		Input:   strings.NewReader(input),
		Output:  &out,
		Settle:  5 * time.Second,
	})
	if err != nil {
		t.Fatalf("RunHeadless() error = %v", err)
	}
	return out.String()
}

func TestHelpEndToEnd(t *testing.T) {
	got := runHeadless(t, Config{}, "help\n")
	want := strings.Join([]string{
		"Hello World!",
		"mios> help",
		"Available commands:",
		"help - display this help message",
		"echo <text> - print text",
		"prompt <text> - change the prompt",
		"mios>",
	}, "\n") + "\n"
	if got != want {
		t.Fatalf("screen =\n%s\nwant\n%s", got, want)
	}
}

func TestSessionEndToEnd(t *testing.T) {
	got := runHeadless(t, Config{Prompt: "> "}, "echo hi there\nfoo bar\nprompt $ \nabc\b\bx")
	want := strings.Join([]string{
		"Hello World!",
		"> echo hi there",
		"hi there",
		"> foo bar",
		"Unknown command: foo bar",
		"> prompt $",
		"$ ax",
	}, "\n") + "\n"
	if got != want {
		t.Fatalf("screen =\n%s\nwant\n%s", got, want)
	}
}

func TestStartRejectsBadLogLevel(t *testing.T) {
	err := hal.RunHeadless(context.Background(), Starter(Config{LogLevel: "loud"}), hal.HeadlessConfig{
		Settle: time.Second,
	})
	if err == nil {
		t.Fatal("RunHeadless() accepted an unknown log level")
	}
}

func TestPaintPanic(t *testing.T) {
	g := hal.NewTextGrid(20, 4)
	paintPanic(g, []string{
		"mios panic:",
		"panic: " + strings.Repeat("x", 20),
		"stack:",
		"never shown",
	})

	lines := g.Lines()
	want := []string{"mios panic:", "panic: " + strings.Repeat("x", 13), strings.Repeat("x", 7), "stack:"}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("row %d = %q, want %q", i, lines[i], want[i])
		}
	}
	if c := g.ReadCell(19, 3); c.Attr != byte(panicColor) {
		t.Fatalf("attr = %#x, want %#x", c.Attr, panicColor)
	}
}
