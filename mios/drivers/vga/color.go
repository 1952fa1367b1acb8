// Package vga drives an 80x25 text-mode console.
package vga

// Color is one of the 16 text-mode colours.
type Color uint8

const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	Pink
	Yellow
	White
)

// ColorCode is a cell attribute: foreground in the low nibble, background in the high nibble.
type ColorCode uint8

// NewColorCode packs fg on bg.
func NewColorCode(fg, bg Color) ColorCode {
	return ColorCode(bg&0x0f)<<4 | ColorCode(fg&0x0f)
}

func (c ColorCode) Foreground() Color { return Color(c & 0x0f) }
func (c ColorCode) Background() Color { return Color(c >> 4) }

// DefaultColor is yellow on black.
var DefaultColor = NewColorCode(Yellow, Black)

// Mode is the adapter's video mode.
type Mode uint8

const (
	ModeText80x25 Mode = iota
	ModeGraphics640x480x16
)

func (m Mode) String() string {
	switch m {
	case ModeText80x25:
		return "80x25"
	case ModeGraphics640x480x16:
		return "640x480x16"
	default:
		return "unknown"
	}
}
