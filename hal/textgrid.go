package hal

import (
	"strings"
	"sync"
)

// TextGrid is an in-memory text-mode display. Host renderers read it through
// Snapshot and are told about updates through Changed.
type TextGrid struct {
	mu     sync.Mutex
	cols   int
	rows   int
	cells  []Cell
	curCol int
	curRow int
	gen    uint64

	changed chan struct{}
}

// NewTextGrid allocates a blank grid.
func NewTextGrid(cols, rows int) *TextGrid {
	g := &TextGrid{
		cols:    cols,
		rows:    rows,
		cells:   make([]Cell, cols*rows),
		changed: make(chan struct{}, 1),
	}
	for i := range g.cells {
		g.cells[i] = Cell{Glyph: ' '}
	}
	return g
}

func (g *TextGrid) Size() (cols, rows int) { return g.cols, g.rows }

func (g *TextGrid) WriteCell(col, row int, c Cell) {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return
	}
	g.mu.Lock()
	g.cells[row*g.cols+col] = c
	g.touchLocked()
	g.mu.Unlock()
}

func (g *TextGrid) ReadCell(col, row int) Cell {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return Cell{}
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cells[row*g.cols+col]
}

func (g *TextGrid) ScrollUp() {
	g.mu.Lock()
	copy(g.cells, g.cells[g.cols:])
	last := g.cells[(g.rows-1)*g.cols:]
	for i := range last {
		last[i] = Cell{Glyph: ' '}
	}
	g.touchLocked()
	g.mu.Unlock()
}

func (g *TextGrid) SetCursor(col, row int) {
	g.mu.Lock()
	g.curCol, g.curRow = col, row
	g.touchLocked()
	g.mu.Unlock()
}

// Cursor returns the current cursor position.
func (g *TextGrid) Cursor() (col, row int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.curCol, g.curRow
}

// Snapshot copies the cells into dst (reallocating if it is too small) and returns
// them with the cursor position and the grid generation.
func (g *TextGrid) Snapshot(dst []Cell) (cells []Cell, col, row int, gen uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if cap(dst) < len(g.cells) {
		dst = make([]Cell, len(g.cells))
	}
	dst = dst[:len(g.cells)]
	copy(dst, g.cells)
	return dst, g.curCol, g.curRow, g.gen
}

// Changed is signalled (coalescing) after every update.
func (g *TextGrid) Changed() <-chan struct{} { return g.changed }

// Lines returns every row as text with trailing blanks removed.
func (g *TextGrid) Lines() []string {
	cells, _, _, _ := g.Snapshot(nil)
	out := make([]string, g.rows)
	var sb strings.Builder
	for row := 0; row < g.rows; row++ {
		sb.Reset()
		for _, c := range cells[row*g.cols : (row+1)*g.cols] {
			sb.WriteRune(GlyphRune(c.Glyph))
		}
		out[row] = strings.TrimRight(sb.String(), " ")
	}
	return out
}

// String renders the rows from the first to the last non-blank row, top to bottom.
func (g *TextGrid) String() string {
	lines := g.Lines()
	start := 0
	for start < len(lines) && lines[start] == "" {
		start++
	}
	end := len(lines)
	for end > start && lines[end-1] == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}

func (g *TextGrid) touchLocked() {
	g.gen++
	select {
	case g.changed <- struct{}{}:
	default:
	}
}

// GlyphRune maps a code page 437 glyph byte to the rune host renderers draw.
func GlyphRune(b byte) rune {
	switch {
	case b >= 0x20 && b <= 0x7e:
		return rune(b)
	case b == 0xfe:
		return '■'
	case b == 0:
		return ' '
	default:
		return '?'
	}
}
