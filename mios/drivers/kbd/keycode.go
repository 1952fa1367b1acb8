package kbd

// KeyCode names a physical key.
type KeyCode uint8

const (
	KeyUnknown KeyCode = iota
	KeyEscape
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyPrintScreen
	KeyScrollLock
	KeyBackTick
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
	KeyMinus
	KeyEquals
	KeyBackspace
	KeyTab
	KeyQ
	KeyW
	KeyE
	KeyR
	KeyT
	KeyY
	KeyU
	KeyI
	KeyO
	KeyP
	KeyBracketSquareLeft
	KeyBracketSquareRight
	KeyBackSlash
	KeyCapsLock
	KeyA
	KeyS
	KeyD
	KeyF
	KeyG
	KeyH
	KeyJ
	KeyK
	KeyL
	KeySemiColon
	KeyQuote
	KeyEnter
	KeyShiftLeft
	KeyZ
	KeyX
	KeyC
	KeyV
	KeyB
	KeyN
	KeyM
	KeyComma
	KeyFullstop
	KeySlash
	KeyShiftRight
	KeyControlLeft
	KeyWindowsLeft
	KeyAltLeft
	KeySpacebar
	KeyAltRight
	KeyWindowsRight
	KeyApps
	KeyControlRight
	KeyInsert
	KeyHome
	KeyPageUp
	KeyDelete
	KeyEnd
	KeyPageDown
	KeyArrowUp
	KeyArrowLeft
	KeyArrowDown
	KeyArrowRight
	KeyNumpadLock
	KeyNumpadSlash
	KeyNumpadStar
	KeyNumpadMinus
	KeyNumpadPlus
	KeyNumpadEnter
	KeyNumpadPeriod
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9

	keyCodeCount
)

var keyNames = [keyCodeCount]string{
	KeyUnknown:            "Unknown",
	KeyEscape:             "Escape",
	KeyF1:                 "F1",
	KeyF2:                 "F2",
	KeyF3:                 "F3",
	KeyF4:                 "F4",
	KeyF5:                 "F5",
	KeyF6:                 "F6",
	KeyF7:                 "F7",
	KeyF8:                 "F8",
	KeyF9:                 "F9",
	KeyF10:                "F10",
	KeyF11:                "F11",
	KeyF12:                "F12",
	KeyPrintScreen:        "PrintScreen",
	KeyScrollLock:         "ScrollLock",
	KeyBackTick:           "BackTick",
	Key1:                  "Key1",
	Key2:                  "Key2",
	Key3:                  "Key3",
	Key4:                  "Key4",
	Key5:                  "Key5",
	Key6:                  "Key6",
	Key7:                  "Key7",
	Key8:                  "Key8",
	Key9:                  "Key9",
	Key0:                  "Key0",
	KeyMinus:              "Minus",
	KeyEquals:             "Equals",
	KeyBackspace:          "Backspace",
	KeyTab:                "Tab",
	KeyQ:                  "Q",
	KeyW:                  "W",
	KeyE:                  "E",
	KeyR:                  "R",
	KeyT:                  "T",
	KeyY:                  "Y",
	KeyU:                  "U",
	KeyI:                  "I",
	KeyO:                  "O",
	KeyP:                  "P",
	KeyBracketSquareLeft:  "BracketSquareLeft",
	KeyBracketSquareRight: "BracketSquareRight",
	KeyBackSlash:          "BackSlash",
	KeyCapsLock:           "CapsLock",
	KeyA:                  "A",
	KeyS:                  "S",
	KeyD:                  "D",
	KeyF:                  "F",
	KeyG:                  "G",
	KeyH:                  "H",
	KeyJ:                  "J",
	KeyK:                  "K",
	KeyL:                  "L",
	KeySemiColon:          "SemiColon",
	KeyQuote:              "Quote",
	KeyEnter:              "Enter",
	KeyShiftLeft:          "ShiftLeft",
	KeyZ:                  "Z",
	KeyX:                  "X",
	KeyC:                  "C",
	KeyV:                  "V",
	KeyB:                  "B",
	KeyN:                  "N",
	KeyM:                  "M",
	KeyComma:              "Comma",
	KeyFullstop:           "Fullstop",
	KeySlash:              "Slash",
	KeyShiftRight:         "ShiftRight",
	KeyControlLeft:        "ControlLeft",
	KeyWindowsLeft:        "WindowsLeft",
	KeyAltLeft:            "AltLeft",
	KeySpacebar:           "Spacebar",
	KeyAltRight:           "AltRight",
	KeyWindowsRight:       "WindowsRight",
	KeyApps:               "Apps",
	KeyControlRight:       "ControlRight",
	KeyInsert:             "Insert",
	KeyHome:               "Home",
	KeyPageUp:             "PageUp",
	KeyDelete:             "Delete",
	KeyEnd:                "End",
	KeyPageDown:           "PageDown",
	KeyArrowUp:            "ArrowUp",
	KeyArrowLeft:          "ArrowLeft",
	KeyArrowDown:          "ArrowDown",
	KeyArrowRight:         "ArrowRight",
	KeyNumpadLock:         "NumpadLock",
	KeyNumpadSlash:        "NumpadSlash",
	KeyNumpadStar:         "NumpadStar",
	KeyNumpadMinus:        "NumpadMinus",
	KeyNumpadPlus:         "NumpadPlus",
	KeyNumpadEnter:        "NumpadEnter",
	KeyNumpadPeriod:       "NumpadPeriod",
	KeyNumpad0:            "Numpad0",
	KeyNumpad1:            "Numpad1",
	KeyNumpad2:            "Numpad2",
	KeyNumpad3:            "Numpad3",
	KeyNumpad4:            "Numpad4",
	KeyNumpad5:            "Numpad5",
	KeyNumpad6:            "Numpad6",
	KeyNumpad7:            "Numpad7",
	KeyNumpad8:            "Numpad8",
	KeyNumpad9:            "Numpad9",
}

func (k KeyCode) String() string {
	if k < keyCodeCount {
		return keyNames[k]
	}
	return "Unknown"
}

// set1 maps single-byte set 1 make codes to keys.
var set1 = [0x80]KeyCode{
	0x01: KeyEscape,
	0x02: Key1, 0x03: Key2, 0x04: Key3, 0x05: Key4, 0x06: Key5,
	0x07: Key6, 0x08: Key7, 0x09: Key8, 0x0a: Key9, 0x0b: Key0,
	0x0c: KeyMinus,
	0x0d: KeyEquals,
	0x0e: KeyBackspace,
	0x0f: KeyTab,
	0x10: KeyQ, 0x11: KeyW, 0x12: KeyE, 0x13: KeyR, 0x14: KeyT,
	0x15: KeyY, 0x16: KeyU, 0x17: KeyI, 0x18: KeyO, 0x19: KeyP,
	0x1a: KeyBracketSquareLeft,
	0x1b: KeyBracketSquareRight,
	0x1c: KeyEnter,
	0x1d: KeyControlLeft,
	0x1e: KeyA, 0x1f: KeyS, 0x20: KeyD, 0x21: KeyF, 0x22: KeyG,
	0x23: KeyH, 0x24: KeyJ, 0x25: KeyK, 0x26: KeyL,
	0x27: KeySemiColon,
	0x28: KeyQuote,
	0x29: KeyBackTick,
	0x2a: KeyShiftLeft,
	0x2b: KeyBackSlash,
	0x2c: KeyZ, 0x2d: KeyX, 0x2e: KeyC, 0x2f: KeyV, 0x30: KeyB,
	0x31: KeyN, 0x32: KeyM,
	0x33: KeyComma,
	0x34: KeyFullstop,
	0x35: KeySlash,
	0x36: KeyShiftRight,
	0x37: KeyNumpadStar,
	0x38: KeyAltLeft,
	0x39: KeySpacebar,
	0x3a: KeyCapsLock,
	0x3b: KeyF1, 0x3c: KeyF2, 0x3d: KeyF3, 0x3e: KeyF4, 0x3f: KeyF5,
	0x40: KeyF6, 0x41: KeyF7, 0x42: KeyF8, 0x43: KeyF9, 0x44: KeyF10,
	0x45: KeyNumpadLock,
	0x46: KeyScrollLock,
	0x47: KeyNumpad7, 0x48: KeyNumpad8, 0x49: KeyNumpad9,
	0x4a: KeyNumpadMinus,
	0x4b: KeyNumpad4, 0x4c: KeyNumpad5, 0x4d: KeyNumpad6,
	0x4e: KeyNumpadPlus,
	0x4f: KeyNumpad1, 0x50: KeyNumpad2, 0x51: KeyNumpad3,
	0x52: KeyNumpad0,
	0x53: KeyNumpadPeriod,
	0x57: KeyF11,
	0x58: KeyF12,
}

// set1Extended maps make codes that follow an 0xe0 prefix.
var set1Extended = [0x80]KeyCode{
	0x1c: KeyNumpadEnter,
	0x1d: KeyControlRight,
	0x35: KeyNumpadSlash,
	0x37: KeyPrintScreen,
	0x38: KeyAltRight,
	0x47: KeyHome,
	0x48: KeyArrowUp,
	0x49: KeyPageUp,
	0x4b: KeyArrowLeft,
	0x4d: KeyArrowRight,
	0x4f: KeyEnd,
	0x50: KeyArrowDown,
	0x51: KeyPageDown,
	0x52: KeyInsert,
	0x53: KeyDelete,
	0x5b: KeyWindowsLeft,
	0x5c: KeyWindowsRight,
	0x5d: KeyApps,
}
