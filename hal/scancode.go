package hal

// Scancode set 1 encoder for host input backends: turns host keys into the byte
// stream a PS/2 keyboard behind an i8042 in translation mode would produce.

const (
	scExtended   = 0xe0
	scBreak      = 0x80
	scShiftLeft  = 0x2a
	scEnter      = 0x1c
	scBackspace  = 0x0e
	scTab        = 0x0f
	scEscape     = 0x01
	scSpace      = 0x39
	scArrowUp    = 0x48
	scArrowDown  = 0x50
	scArrowLeft  = 0x4b
	scArrowRight = 0x4d
	scHome       = 0x47
	scEnd        = 0x4f
	scPageUp     = 0x49
	scPageDown   = 0x51
	scInsert     = 0x52
	scDelete     = 0x53
)

type set1Key struct {
	code     byte
	extended bool
	shift    bool
}

var usLayout = func() map[rune]set1Key {
	m := make(map[rune]set1Key, 100)
	rows := []struct {
		first   byte
		plain   string
		shifted string
	}{
		{0x02, "1234567890-=", "!@#$%^&*()_+"},
		{0x10, "qwertyuiop[]", "QWERTYUIOP{}"},
		{0x1e, "asdfghjkl;'`", "ASDFGHJKL:\"~"},
		{0x2b, "\\zxcvbnm,./", "|ZXCVBNM<>?"},
	}
	for _, row := range rows {
		for i, r := range row.plain {
			m[r] = set1Key{code: row.first + byte(i)}
		}
		for i, r := range row.shifted {
			m[r] = set1Key{code: row.first + byte(i), shift: true}
		}
	}
	m[' '] = set1Key{code: scSpace}
	m['\n'] = set1Key{code: scEnter}
	m['\r'] = set1Key{code: scEnter}
	m['\b'] = set1Key{code: scBackspace}
	m['\t'] = set1Key{code: scTab}
	m[0x1b] = set1Key{code: scEscape}
	m[0x7f] = set1Key{code: scDelete, extended: true}
	return m
}()

// appendKey appends the make (press) or break (release) sequence of one key.
func appendKey(dst []byte, k set1Key, press bool) []byte {
	if k.extended {
		dst = append(dst, scExtended)
	}
	if press {
		return append(dst, k.code)
	}
	return append(dst, k.code|scBreak)
}

// appendTap appends a full press-and-release of k, wrapped in left shift if needed.
func appendTap(dst []byte, k set1Key) []byte {
	if k.shift {
		dst = append(dst, scShiftLeft)
	}
	dst = appendKey(dst, k, true)
	dst = appendKey(dst, k, false)
	if k.shift {
		dst = append(dst, scShiftLeft|scBreak)
	}
	return dst
}

// AppendRune appends the keystrokes that type r on a US keyboard. It reports false
// (leaving dst unchanged) for runes the layout cannot produce.
func AppendRune(dst []byte, r rune) ([]byte, bool) {
	k, ok := usLayout[r]
	if !ok {
		return dst, false
	}
	return appendTap(dst, k), true
}
