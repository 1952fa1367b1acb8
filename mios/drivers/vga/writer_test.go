package vga

import (
	"strings"
	"testing"

	"mios/hal"
)

func bottomRow(g *hal.TextGrid) string {
	lines := g.Lines()
	return lines[len(lines)-1]
}

func TestWriterWritesBottomRow(t *testing.T) {
	g := hal.NewTextGrid(hal.TextColumns, hal.TextRows)
	w := NewWriter(g, DefaultColor)
	w.WriteString("hello")

	if got := bottomRow(g); got != "hello" {
		t.Fatalf("bottom row = %q, want \"hello\"", got)
	}
	if c := g.ReadCell(0, hal.TextRows-1); c.Attr != 0x0e {
		t.Fatalf("attr = %#x, want yellow on black (0x0e)", c.Attr)
	}
	if col, row := g.Cursor(); col != 0 || row != hal.TextRows-1 {
		t.Fatalf("cursor = %d,%d before DrawCursor, want 0,%d", col, row, hal.TextRows-1)
	}
	w.DrawCursor()
	if col, _ := g.Cursor(); col != 5 {
		t.Fatalf("cursor col = %d, want 5", col)
	}
}

func TestWriterNewlineScrolls(t *testing.T) {
	g := hal.NewTextGrid(hal.TextColumns, hal.TextRows)
	w := NewWriter(g, DefaultColor)
	w.WriteString("\nSome test string that fits on a single line\n")

	lines := g.Lines()
	if got := lines[hal.TextRows-2]; got != "Some test string that fits on a single line" {
		t.Fatalf("row %d = %q", hal.TextRows-2, got)
	}
	if got := lines[hal.TextRows-1]; got != "" {
		t.Fatalf("bottom row = %q, want blank", got)
	}
	if w.Column() != 0 {
		t.Fatalf("Column() = %d after newline, want 0", w.Column())
	}
}

func TestWriterWrapsAtWidth(t *testing.T) {
	g := hal.NewTextGrid(hal.TextColumns, hal.TextRows)
	w := NewWriter(g, DefaultColor)
	w.WriteString(strings.Repeat("x", hal.TextColumns) + "y")

	lines := g.Lines()
	if got := lines[hal.TextRows-2]; got != strings.Repeat("x", hal.TextColumns) {
		t.Fatalf("wrapped row = %q", got)
	}
	if got := lines[hal.TextRows-1]; got != "y" {
		t.Fatalf("bottom row = %q, want \"y\"", got)
	}
}

func TestWriterManyLines(t *testing.T) {
	g := hal.NewTextGrid(hal.TextColumns, hal.TextRows)
	w := NewWriter(g, DefaultColor)
	for i := 0; i < 200; i++ {
		w.WriteString("test_println_many output\n")
	}
	lines := g.Lines()
	for row := 0; row < hal.TextRows-1; row++ {
		if lines[row] != "test_println_many output" {
			t.Fatalf("row %d = %q", row, lines[row])
		}
	}
}

func TestWriterReplacesNonPrintable(t *testing.T) {
	g := hal.NewTextGrid(hal.TextColumns, hal.TextRows)
	w := NewWriter(g, DefaultColor)
	w.WriteString("a\tü")

	// 'ü' is two bytes in UTF-8.
	want := []byte{'a', 0xfe, 0xfe, 0xfe}
	for i, b := range want {
		if c := g.ReadCell(i, hal.TextRows-1); c.Glyph != b {
			t.Fatalf("cell %d = %#x, want %#x", i, c.Glyph, b)
		}
	}
}

func TestWriterDeleteChar(t *testing.T) {
	g := hal.NewTextGrid(hal.TextColumns, hal.TextRows)
	w := NewWriter(g, DefaultColor)
	w.WriteString("ab")
	w.DeleteChar()

	if got := bottomRow(g); got != "a" {
		t.Fatalf("bottom row = %q, want \"a\"", got)
	}
	if col, _ := g.Cursor(); col != 1 || w.Column() != 1 {
		t.Fatalf("cursor = %d, column = %d, want 1", col, w.Column())
	}

	w.DeleteChar()
	w.DeleteChar()
	if w.Column() != 0 {
		t.Fatalf("Column() = %d after deleting past start, want 0", w.Column())
	}
}

func TestColorCode(t *testing.T) {
	c := NewColorCode(White, Blue)
	if c != 0x1f {
		t.Fatalf("NewColorCode(White, Blue) = %#x, want 0x1f", c)
	}
	if c.Foreground() != White || c.Background() != Blue {
		t.Fatalf("unpacked %d/%d", c.Foreground(), c.Background())
	}
}
