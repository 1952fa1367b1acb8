package vga

import "mios/hal"

// Glyph printed for bytes outside printable ASCII.
const replacementGlyph = 0xfe

// Writer prints onto the bottom row of a text buffer, scrolling everything up on
// newline. It is not safe for concurrent use; see Console.
type Writer struct {
	buf   hal.TextBuffer
	cols  int
	rows  int
	col   int
	color ColorCode
}

// NewWriter clears buf and returns a writer positioned at the start of the bottom row.
func NewWriter(buf hal.TextBuffer, color ColorCode) *Writer {
	cols, rows := buf.Size()
	w := &Writer{buf: buf, cols: cols, rows: rows, color: color}
	for row := 0; row < rows; row++ {
		w.clearRow(row)
	}
	w.DrawCursor()
	return w
}

// Column returns the next column to be written on the bottom row.
func (w *Writer) Column() int { return w.col }

func (w *Writer) SetColor(c ColorCode) { w.color = c }

// WriteByte writes b as a raw glyph; '\n' starts a new line. It never fails.
func (w *Writer) WriteByte(b byte) error {
	if b == '\n' {
		w.newLine()
		return nil
	}
	if w.col >= w.cols {
		w.newLine()
	}
	w.buf.WriteCell(w.col, w.rows-1, hal.Cell{Glyph: b, Attr: byte(w.color)})
	w.col++
	return nil
}

// WriteString writes s byte by byte, substituting a block glyph for anything that
// is not printable ASCII or newline.
func (w *Writer) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if (b >= 0x20 && b <= 0x7e) || b == '\n' {
			w.WriteByte(b)
		} else {
			w.WriteByte(replacementGlyph)
		}
	}
	return len(s), nil
}

func (w *Writer) Write(p []byte) (int, error) {
	return w.WriteString(string(p))
}

// DeleteChar blanks the cell before the cursor and steps back onto it. It does
// nothing at column 0.
func (w *Writer) DeleteChar() {
	if w.col > 0 {
		w.col--
		w.WriteByte(' ')
		w.col--
	}
	w.DrawCursor()
}

// DrawCursor moves the hardware cursor to the write position.
func (w *Writer) DrawCursor() {
	w.buf.SetCursor(w.col, w.rows-1)
}

func (w *Writer) newLine() {
	w.buf.ScrollUp()
	w.clearRow(w.rows - 1)
	w.col = 0
}

func (w *Writer) clearRow(row int) {
	blank := hal.Cell{Glyph: ' ', Attr: byte(w.color)}
	for col := 0; col < w.cols; col++ {
		w.buf.WriteCell(col, row, blank)
	}
}
