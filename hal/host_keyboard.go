//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	scControlLeft = 0x1d
	scShiftRight  = 0x36
	scAltLeft     = 0x38
	scCapsLock    = 0x3a
)

// windowKeys maps physical window keys to their set 1 scancodes.
var windowKeys = func() map[ebiten.Key]set1Key {
	m := make(map[ebiten.Key]set1Key, 80)
	for c := 'a'; c <= 'z'; c++ {
		m[ebiten.KeyA+ebiten.Key(c-'a')] = usLayout[c]
	}
	digits := []ebiten.Key{
		ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
		ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
	}
	for i, k := range digits {
		m[k] = usLayout['0'+rune(i)]
	}
	for k, r := range map[ebiten.Key]rune{
		ebiten.KeyMinus:        '-',
		ebiten.KeyEqual:        '=',
		ebiten.KeyBracketLeft:  '[',
		ebiten.KeyBracketRight: ']',
		ebiten.KeyBackslash:    '\\',
		ebiten.KeySemicolon:    ';',
		ebiten.KeyQuote:        '\'',
		ebiten.KeyBackquote:    '`',
		ebiten.KeyComma:        ',',
		ebiten.KeyPeriod:       '.',
		ebiten.KeySlash:        '/',
	} {
		m[k] = usLayout[r]
	}

	m[ebiten.KeySpace] = set1Key{code: scSpace}
	m[ebiten.KeyEnter] = set1Key{code: scEnter}
	m[ebiten.KeyBackspace] = set1Key{code: scBackspace}
	m[ebiten.KeyTab] = set1Key{code: scTab}
	m[ebiten.KeyEscape] = set1Key{code: scEscape}
	m[ebiten.KeyShiftLeft] = set1Key{code: scShiftLeft}
	m[ebiten.KeyShiftRight] = set1Key{code: scShiftRight}
	m[ebiten.KeyControlLeft] = set1Key{code: scControlLeft}
	m[ebiten.KeyControlRight] = set1Key{code: scControlLeft, extended: true}
	m[ebiten.KeyAltLeft] = set1Key{code: scAltLeft}
	m[ebiten.KeyAltRight] = set1Key{code: scAltLeft, extended: true}
	m[ebiten.KeyCapsLock] = set1Key{code: scCapsLock}

	m[ebiten.KeyArrowUp] = set1Key{code: scArrowUp, extended: true}
	m[ebiten.KeyArrowDown] = set1Key{code: scArrowDown, extended: true}
	m[ebiten.KeyArrowLeft] = set1Key{code: scArrowLeft, extended: true}
	m[ebiten.KeyArrowRight] = set1Key{code: scArrowRight, extended: true}
	m[ebiten.KeyHome] = set1Key{code: scHome, extended: true}
	m[ebiten.KeyEnd] = set1Key{code: scEnd, extended: true}
	m[ebiten.KeyPageUp] = set1Key{code: scPageUp, extended: true}
	m[ebiten.KeyPageDown] = set1Key{code: scPageDown, extended: true}
	m[ebiten.KeyInsert] = set1Key{code: scInsert, extended: true}
	m[ebiten.KeyDelete] = set1Key{code: scDelete, extended: true}
	return m
}()

// windowInput turns window key transitions into scancodes on the emulated keyboard.
type windowInput struct {
	kbd  *hostKeyboard
	keys []ebiten.Key
	seq  []byte
}

// poll must be called once per window tick.
func (w *windowInput) poll() {
	w.seq = w.seq[:0]

	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	split := len(w.keys)
	w.keys = inpututil.AppendJustReleasedKeys(w.keys)
	w.seq = appendTransitions(w.seq, w.keys[:split], w.keys[split:])

	if len(w.seq) > 0 {
		w.kbd.raise(w.seq)
	}
}

func isModifier(k set1Key) bool {
	switch k.code {
	case scShiftLeft, scShiftRight, scControlLeft, scAltLeft, scCapsLock:
		return true
	}
	return false
}

// appendTransitions appends the scancodes for one tick's key transitions. Ebiten
// reports keys in no particular order, so modifier presses go before other presses
// and modifier releases after other releases.
func appendTransitions(dst []byte, pressed, released []ebiten.Key) []byte {
	for _, modFirst := range []bool{true, false} {
		for _, key := range pressed {
			if k, ok := windowKeys[key]; ok && isModifier(k) == modFirst {
				dst = appendKey(dst, k, true)
			}
		}
	}
	for _, modLast := range []bool{false, true} {
		for _, key := range released {
			if k, ok := windowKeys[key]; ok && isModifier(k) == modLast {
				dst = appendKey(dst, k, false)
			}
		}
	}
	return dst
}
