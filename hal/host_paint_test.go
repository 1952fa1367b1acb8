package hal

import "testing"

func pixelAt(fb *hostFramebuffer, x, y int) uint16 {
	off := y*fb.stride + x*2
	return uint16(fb.buf[off]) | uint16(fb.buf[off+1])<<8
}

func TestCellPainterRedrawsOnChange(t *testing.T) {
	g := NewTextGrid(4, 2)
	p := newCellPainter(4, 2)
	if p.cellW <= 0 || p.cellH <= 0 {
		t.Fatalf("cell size = %dx%d", p.cellW, p.cellH)
	}
	if w, h := p.Size(); int(w) != 4*int(p.cellW) || int(h) != 2*int(p.cellH) {
		t.Fatalf("Size() = %dx%d", w, h)
	}

	if !p.paint(g) {
		t.Fatal("first paint skipped")
	}
	if p.paint(g) {
		t.Fatal("repainted an unchanged grid")
	}

	// Blue background in the second cell of the top row.
	g.WriteCell(1, 0, Cell{Glyph: ' ', Attr: 0x10})
	if !p.paint(g) {
		t.Fatal("change not painted")
	}
	blue := textPalette[1]
	want := rgb565(blue.R, blue.G, blue.B)
	if got := pixelAt(p.fb, int(p.cellW)+1, 1); got != want {
		t.Fatalf("pixel = %#04x, want %#04x", got, want)
	}
	if got := pixelAt(p.fb, 1, 1); got != 0 {
		t.Fatalf("first cell pixel = %#04x, want black", got)
	}
}

func TestCellPainterDrawsGlyph(t *testing.T) {
	g := NewTextGrid(1, 1)
	g.WriteCell(0, 0, Cell{Glyph: '#', Attr: 0x0f})
	g.SetCursor(5, 5)
	p := newCellPainter(1, 1)
	p.paint(g)

	lit := 0
	for y := 0; y < p.fb.height; y++ {
		for x := 0; x < p.fb.width; x++ {
			if pixelAt(p.fb, x, y) != 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatal("glyph drew no pixels")
	}
}

func TestToRGBA(t *testing.T) {
	fb := newHostFramebuffer(2, 1)
	fb.ClearRGB(0xff, 0xff, 0xff)
	dst := make([]byte, 2*4)
	fb.toRGBA(dst)
	for i, b := range dst {
		if b != 0xff {
			t.Fatalf("dst[%d] = %#x, want 0xff", i, b)
		}
	}
}
