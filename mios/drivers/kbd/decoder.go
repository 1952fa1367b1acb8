// Package kbd decodes PS/2 scancode set 1 into key events for a US 104-key layout.
package kbd

const (
	prefixExtended = 0xe0
	prefixPause    = 0xe1
	breakBit       = 0x80
)

// KeyKind distinguishes decoded characters from keys with no character.
type KeyKind uint8

const (
	Unicode KeyKind = iota + 1
	Raw
)

// DecodedKey is a key press resolved through the layout.
type DecodedKey struct {
	Kind KeyKind
	// Char is set for Unicode keys.
	Char rune
	// Code is set for Raw keys.
	Code KeyCode
}

// Modifiers is the state of the modifier and lock keys.
type Modifiers struct {
	LShift, RShift bool
	LCtrl, RCtrl   bool
	LAlt, RAlt     bool
	CapsLock       bool
	NumLock        bool
}

func (m Modifiers) shifted() bool { return m.LShift || m.RShift }

// Decoder is a scancode set 1 state machine. It is not safe for concurrent use.
//
// Control is ignored: ctrl+letter decodes to the plain letter.
type Decoder struct {
	mods     Modifiers
	extended bool
	// skip counts bytes left in a pause sequence.
	skip int
}

// NewDecoder returns a decoder with num lock on.
func NewDecoder() *Decoder {
	return &Decoder{mods: Modifiers{NumLock: true}}
}

// Modifiers returns the current modifier state.
func (d *Decoder) Modifiers() Modifiers { return d.mods }

// Feed consumes one scancode byte. It reports false while a sequence is incomplete,
// for releases, for modifier keys and for codes the layout does not know.
func (d *Decoder) Feed(b byte) (DecodedKey, bool) {
	if d.skip > 0 {
		d.skip--
		return DecodedKey{}, false
	}
	switch b {
	case prefixExtended:
		d.extended = true
		return DecodedKey{}, false
	case prefixPause:
		// Pause sends e1 1d 45 e1 9d c5 and has no release.
		d.skip = 5
		d.extended = false
		return DecodedKey{}, false
	}

	extended := d.extended
	d.extended = false
	release := b&breakBit != 0
	code := b &^ breakBit

	var key KeyCode
	if extended {
		key = set1Extended[code]
	} else {
		key = set1[code]
	}
	if key == KeyUnknown {
		return DecodedKey{}, false
	}

	if d.updateModifiers(key, release) {
		return DecodedKey{}, false
	}
	if release {
		return DecodedKey{}, false
	}
	return d.resolve(key)
}

// updateModifiers reports whether key is a modifier.
func (d *Decoder) updateModifiers(key KeyCode, release bool) bool {
	down := !release
	switch key {
	case KeyShiftLeft:
		d.mods.LShift = down
	case KeyShiftRight:
		d.mods.RShift = down
	case KeyControlLeft:
		d.mods.LCtrl = down
	case KeyControlRight:
		d.mods.RCtrl = down
	case KeyAltLeft:
		d.mods.LAlt = down
	case KeyAltRight:
		d.mods.RAlt = down
	case KeyCapsLock:
		if down {
			d.mods.CapsLock = !d.mods.CapsLock
		}
	case KeyNumpadLock:
		if down {
			d.mods.NumLock = !d.mods.NumLock
		}
	default:
		return false
	}
	return true
}

func (d *Decoder) resolve(key KeyCode) (DecodedKey, bool) {
	if key >= KeyNumpad0 && key <= KeyNumpad9 || key == KeyNumpadPeriod {
		if !d.mods.NumLock {
			return DecodedKey{Kind: Raw, Code: key}, true
		}
	}
	ch, ok := usLayout[key]
	if !ok {
		return DecodedKey{Kind: Raw, Code: key}, true
	}
	shift := d.mods.shifted()
	if ch.letter && d.mods.CapsLock {
		shift = !shift
	}
	if shift {
		return DecodedKey{Kind: Unicode, Char: ch.shifted}, true
	}
	return DecodedKey{Kind: Unicode, Char: ch.plain}, true
}

type layoutChar struct {
	plain, shifted rune
	letter         bool
}

var usLayout = func() map[KeyCode]layoutChar {
	m := map[KeyCode]layoutChar{
		KeyEscape:             {0x1b, 0x1b, false},
		KeyBackTick:           {'`', '~', false},
		KeyMinus:              {'-', '_', false},
		KeyEquals:             {'=', '+', false},
		KeyBackspace:          {'\b', '\b', false},
		KeyTab:                {'\t', '\t', false},
		KeyBracketSquareLeft:  {'[', '{', false},
		KeyBracketSquareRight: {']', '}', false},
		KeyBackSlash:          {'\\', '|', false},
		KeySemiColon:          {';', ':', false},
		KeyQuote:              {'\'', '"', false},
		KeyEnter:              {'\n', '\n', false},
		KeyComma:              {',', '<', false},
		KeyFullstop:           {'.', '>', false},
		KeySlash:              {'/', '?', false},
		KeySpacebar:           {' ', ' ', false},
		KeyDelete:             {0x7f, 0x7f, false},
		KeyNumpadSlash:        {'/', '/', false},
		KeyNumpadStar:         {'*', '*', false},
		KeyNumpadMinus:        {'-', '-', false},
		KeyNumpadPlus:         {'+', '+', false},
		KeyNumpadEnter:        {'\n', '\n', false},
		KeyNumpadPeriod:       {'.', '.', false},
	}
	digits := [...]KeyCode{Key0, Key1, Key2, Key3, Key4, Key5, Key6, Key7, Key8, Key9}
	const digitShift = ")!@#$%^&*("
	for i, k := range digits {
		m[k] = layoutChar{'0' + rune(i), rune(digitShift[i]), false}
	}
	pad := [...]KeyCode{KeyNumpad0, KeyNumpad1, KeyNumpad2, KeyNumpad3, KeyNumpad4,
		KeyNumpad5, KeyNumpad6, KeyNumpad7, KeyNumpad8, KeyNumpad9}
	for i, k := range pad {
		m[k] = layoutChar{'0' + rune(i), '0' + rune(i), false}
	}
	letters := [...]KeyCode{KeyA, KeyB, KeyC, KeyD, KeyE, KeyF, KeyG, KeyH, KeyI, KeyJ,
		KeyK, KeyL, KeyM, KeyN, KeyO, KeyP, KeyQ, KeyR, KeyS, KeyT, KeyU, KeyV, KeyW,
		KeyX, KeyY, KeyZ}
	for i, k := range letters {
		m[k] = layoutChar{'a' + rune(i), 'A' + rune(i), true}
	}
	return m
}()
