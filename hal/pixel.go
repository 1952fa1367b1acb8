package hal

import "image/color"

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// textPalette is the 16-colour text mode palette, indexed by attribute nibble.
var textPalette = [16]color.RGBA{
	{0x00, 0x00, 0x00, 0xff}, // black
	{0x00, 0x00, 0xaa, 0xff}, // blue
	{0x00, 0xaa, 0x00, 0xff}, // green
	{0x00, 0xaa, 0xaa, 0xff}, // cyan
	{0xaa, 0x00, 0x00, 0xff}, // red
	{0xaa, 0x00, 0xaa, 0xff}, // magenta
	{0xaa, 0x55, 0x00, 0xff}, // brown
	{0xaa, 0xaa, 0xaa, 0xff}, // light gray
	{0x55, 0x55, 0x55, 0xff}, // dark gray
	{0x55, 0x55, 0xff, 0xff}, // light blue
	{0x55, 0xff, 0x55, 0xff}, // light green
	{0x55, 0xff, 0xff, 0xff}, // light cyan
	{0xff, 0x55, 0x55, 0xff}, // light red
	{0xff, 0x55, 0xff, 0xff}, // pink
	{0xff, 0xff, 0x55, 0xff}, // yellow
	{0xff, 0xff, 0xff, 0xff}, // white
}

func attrColors(attr byte) (fg, bg color.RGBA) {
	return textPalette[attr&0x0f], textPalette[attr>>4]
}
