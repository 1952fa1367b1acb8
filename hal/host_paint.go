package hal

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var _ drivers.Displayer = (*cellPainter)(nil)

// cellPainter rasterises a TextGrid into an RGB565 framebuffer. tinyfont draws
// glyphs through its drivers.Displayer methods.
type cellPainter struct {
	fb   *hostFramebuffer
	font tinyfont.Fonter

	cellW    int16
	cellH    int16
	baseline int16

	cells []Cell
	gen   uint64
	drawn bool
}

func newCellPainter(cols, rows int) *cellPainter {
	p := &cellPainter{font: &proggy.TinySZ8pt7b}
	p.cellW, p.cellH, p.baseline = cellMetrics(p.font)
	p.fb = newHostFramebuffer(cols*int(p.cellW), rows*int(p.cellH))
	return p
}

// cellMetrics derives a fixed cell size from the printable ASCII glyphs of f.
func cellMetrics(f tinyfont.Fonter) (w, h, baseline int16) {
	_, outbox := tinyfont.LineWidth(f, "0")
	w = int16(outbox)
	var below int16
	for r := rune(0x20); r <= 0x7e; r++ {
		info := f.GetGlyph(r).Info()
		if above := -int16(info.YOffset); above > baseline {
			baseline = above
		}
		if under := int16(info.Height) + int16(info.YOffset); under > below {
			below = under
		}
		if adv := int16(info.XAdvance); adv > w {
			w = adv
		}
	}
	h = baseline + below
	if y := int16(f.GetYAdvance()); y > h {
		h = y
	}
	if w <= 0 {
		w = 6
	}
	if h <= 0 {
		h = 8
	}
	return w, h, baseline
}

func (p *cellPainter) Size() (x, y int16) {
	return int16(p.fb.width), int16(p.fb.height)
}

// SetPixel must be called with p.fb.mu held.
func (p *cellPainter) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= p.fb.width || iy < 0 || iy >= p.fb.height {
		return
	}
	pixel := rgb565(c.R, c.G, c.B)
	off := iy*p.fb.stride + ix*2
	p.fb.buf[off] = byte(pixel)
	p.fb.buf[off+1] = byte(pixel >> 8)
}

func (p *cellPainter) Display() error { return nil }

// paint redraws g into the framebuffer if it changed since the last call.
func (p *cellPainter) paint(g *TextGrid) bool {
	cells, curCol, curRow, gen := g.Snapshot(p.cells)
	p.cells = cells
	if p.drawn && gen == p.gen {
		return false
	}
	p.gen = gen
	p.drawn = true

	cols, _ := g.Size()

	p.fb.mu.Lock()
	defer p.fb.mu.Unlock()
	for i, c := range cells {
		col, row := i%cols, i/cols
		x := int16(col) * p.cellW
		y := int16(row) * p.cellH
		fg, bg := attrColors(c.Attr)
		p.fb.fillLocked(int(x), int(y), int(x+p.cellW), int(y+p.cellH), rgb565(bg.R, bg.G, bg.B))
		if r := GlyphRune(c.Glyph); r != ' ' {
			tinyfont.DrawChar(p, p.font, x, y+p.baseline, r, fg)
		}
		if col == curCol && row == curRow {
			cur := fg
			if cur == bg {
				cur = textPalette[7]
			}
			p.fb.fillLocked(int(x), int(y+p.cellH-2), int(x+p.cellW), int(y+p.cellH), rgb565(cur.R, cur.G, cur.B))
		}
	}
	return true
}
