package hal

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// CPU exposes the interrupt flag and the halt instruction.
type CPU interface {
	InterruptsEnabled() bool
	DisableInterrupts()
	EnableInterrupts()
	// EnableAndHalt enables interrupts and parks until the next one arrives.
	EnableAndHalt()
}

// Keyboard is the keyboard controller's interrupt line.
//
// The handler runs in interrupt context, once per scancode byte, with further
// interrupts held off until it returns. It must not block.
type Keyboard interface {
	SetHandler(fn func(scancode byte))
}

// Text mode geometry.
const (
	TextColumns = 80
	TextRows    = 25
)

// Cell is one character cell of a text-mode display.
type Cell struct {
	Glyph byte
	// Attr holds the foreground colour in the low nibble and the background in the high nibble.
	Attr byte
}

// TextBuffer is a character-cell display.
type TextBuffer interface {
	Size() (cols, rows int)
	WriteCell(col, row int, c Cell)
	ReadCell(col, row int) Cell
	// ScrollUp moves every row up by one and blanks the bottom row.
	ScrollUp()
	SetCursor(col, row int)
}

// HAL provides the only contact point between the kernel and the outside world.
type HAL interface {
	Logger() Logger
	CPU() CPU
	Keyboard() Keyboard
	Text() TextBuffer
}

// StartFunc boots the kernel on h. It returns once the kernel is running.
type StartFunc func(h HAL) error
