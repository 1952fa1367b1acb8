package kbd

import "testing"

func feedAll(d *Decoder, seq ...byte) []DecodedKey {
	var out []DecodedKey
	for _, b := range seq {
		if k, ok := d.Feed(b); ok {
			out = append(out, k)
		}
	}
	return out
}

func chars(keys []DecodedKey) string {
	var rs []rune
	for _, k := range keys {
		if k.Kind == Unicode {
			rs = append(rs, k.Char)
		}
	}
	return string(rs)
}

func TestFeedTypesHelp(t *testing.T) {
	d := NewDecoder()
	got := feedAll(d,
		0x23, 0xa3, // h
		0x12, 0x92, // e
		0x26, 0xa6, // l
		0x19, 0x99, // p
		0x1c, 0x9c, // enter
	)
	if s := chars(got); s != "help\n" {
		t.Fatalf("decoded %q, want \"help\\n\"", s)
	}
}

func TestFeedModifiers(t *testing.T) {
	cases := []struct {
		name string
		seq  []byte
		want string
	}{
		{"shift letter", []byte{0x2a, 0x1e, 0x9e, 0xaa}, "A"},
		{"right shift digit", []byte{0x36, 0x02, 0x82, 0xb6}, "!"},
		{"shift released", []byte{0x2a, 0xaa, 0x1e, 0x9e}, "a"},
		{"caps lock letter", []byte{0x3a, 0xba, 0x1e}, "A"},
		{"caps lock digit", []byte{0x3a, 0xba, 0x02}, "1"},
		{"caps and shift", []byte{0x3a, 0xba, 0x2a, 0x1e}, "a"},
		{"caps toggles off", []byte{0x3a, 0xba, 0x3a, 0xba, 0x1e}, "a"},
		{"ctrl ignored", []byte{0x1d, 0x2e, 0xae, 0x9d}, "c"},
		{"right ctrl ignored", []byte{0xe0, 0x1d, 0x2e, 0xe0, 0x9d}, "c"},
		{"backspace", []byte{0x0e}, "\b"},
		{"tab", []byte{0x0f}, "\t"},
		{"escape", []byte{0x01}, "\x1b"},
		{"delete", []byte{0xe0, 0x53}, "\x7f"},
		{"numpad enter", []byte{0xe0, 0x1c}, "\n"},
		{"numpad digit", []byte{0x4f}, "1"},
		{"numpad slash", []byte{0xe0, 0x35}, "/"},
		{"space", []byte{0x39, 0xb9}, " "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := chars(feedAll(NewDecoder(), tc.seq...))
			if got != tc.want {
				t.Fatalf("decoded %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFeedRawKeys(t *testing.T) {
	cases := []struct {
		seq  []byte
		want KeyCode
	}{
		{[]byte{0xe0, 0x48}, KeyArrowUp},
		{[]byte{0xe0, 0x4b}, KeyArrowLeft},
		{[]byte{0xe0, 0x47}, KeyHome},
		{[]byte{0x3b}, KeyF1},
		{[]byte{0x58}, KeyF12},
		{[]byte{0x45, 0xc5, 0x48}, KeyNumpad8},
	}
	for _, tc := range cases {
		got := feedAll(NewDecoder(), tc.seq...)
		if len(got) != 1 || got[0].Kind != Raw || got[0].Code != tc.want {
			t.Errorf("Feed(% x) = %+v, want raw %s", tc.seq, got, tc.want)
		}
	}
}

func TestFeedReleasesAndModifiersDecodeToNothing(t *testing.T) {
	d := NewDecoder()
	for _, b := range []byte{0x9e, 0x2a, 0xaa, 0x1d, 0x9d, 0x38, 0xb8, 0xe0, 0xc8, 0x3a, 0xba} {
		if k, ok := d.Feed(b); ok {
			t.Fatalf("Feed(%#x) = %+v, want nothing", b, k)
		}
	}
}

func TestFeedPauseSequenceSwallowed(t *testing.T) {
	d := NewDecoder()
	got := feedAll(d, 0xe1, 0x1d, 0x45, 0xe1, 0x9d, 0xc5, 0x1e)
	if s := chars(got); s != "a" || len(got) != 1 {
		t.Fatalf("decoded %+v, want only 'a'", got)
	}
	if !d.Modifiers().NumLock {
		t.Fatal("pause toggled num lock")
	}
}

func TestFeedUnknownCode(t *testing.T) {
	d := NewDecoder()
	if k, ok := d.Feed(0x60); ok {
		t.Fatalf("Feed(0x60) = %+v, want nothing", k)
	}
	if k, ok := d.Feed(0x1e); !ok || k.Char != 'a' {
		t.Fatalf("decoder stuck after unknown code: %+v, %v", k, ok)
	}
}

func TestKeyCodeString(t *testing.T) {
	if got := KeyArrowUp.String(); got != "ArrowUp" {
		t.Fatalf("KeyArrowUp.String() = %q", got)
	}
	if got := KeyCode(250).String(); got != "Unknown" {
		t.Fatalf("KeyCode(250).String() = %q", got)
	}
}
