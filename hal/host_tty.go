package hal

import (
	"context"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

// ttyColors is the VGA text palette in terminal colours.
var ttyColors = [16]tcell.Color{
	tcell.ColorBlack, tcell.ColorNavy, tcell.ColorGreen, tcell.ColorTeal,
	tcell.ColorMaroon, tcell.ColorPurple, tcell.ColorOlive, tcell.ColorSilver,
	tcell.ColorGray, tcell.ColorBlue, tcell.ColorLime, tcell.ColorAqua,
	tcell.ColorRed, tcell.ColorFuchsia, tcell.ColorYellow, tcell.ColorWhite,
}

var ttyKeys = map[tcell.Key]set1Key{
	tcell.KeyEnter:      {code: scEnter},
	tcell.KeyBackspace:  {code: scBackspace},
	tcell.KeyBackspace2: {code: scBackspace},
	tcell.KeyTab:        {code: scTab},
	tcell.KeyEsc:        {code: scEscape},
	tcell.KeyUp:         {code: scArrowUp, extended: true},
	tcell.KeyDown:       {code: scArrowDown, extended: true},
	tcell.KeyLeft:       {code: scArrowLeft, extended: true},
	tcell.KeyRight:      {code: scArrowRight, extended: true},
	tcell.KeyHome:       {code: scHome, extended: true},
	tcell.KeyEnd:        {code: scEnd, extended: true},
	tcell.KeyPgUp:       {code: scPageUp, extended: true},
	tcell.KeyPgDn:       {code: scPageDown, extended: true},
	tcell.KeyInsert:     {code: scInsert, extended: true},
	tcell.KeyDelete:     {code: scDelete, extended: true},
}

func ttyStyle(attr byte) tcell.Style {
	return tcell.StyleDefault.
		Foreground(ttyColors[attr&0x0f]).
		Background(ttyColors[attr>>4&0x0f])
}

// RunTTY boots the kernel and drives it from the controlling terminal until ctx is
// cancelled or Ctrl-C is pressed.
func RunTTY(ctx context.Context, start StartFunc, logOut io.Writer) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tty: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tty: %w", err)
	}

	h := newHost(logOut)
	if err := start(h); err != nil {
		screen.Fini()
		return fmt.Errorf("tty boot: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var seq []byte
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Fini was called.
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				seq = seq[:0]
				switch ev.Key() {
				case tcell.KeyCtrlC:
					cancel()
					continue
				case tcell.KeyRune:
					seq, _ = AppendRune(seq, ev.Rune())
				default:
					if k, ok := ttyKeys[ev.Key()]; ok {
						seq = appendTap(seq, k)
					}
				}
				if len(seq) > 0 {
					h.kbd.raise(seq)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	})

	g.Go(func() error {
		defer screen.Fini()
		var cells []Cell
		cols, _ := h.grid.Size()
		for {
			var col, row int
			cells, col, row, _ = h.grid.Snapshot(cells)
			for i, c := range cells {
				screen.SetContent(i%cols, i/cols, GlyphRune(c.Glyph), nil, ttyStyle(c.Attr))
			}
			screen.ShowCursor(col, row)
			screen.Show()

			select {
			case <-ctx.Done():
				return nil
			case <-h.grid.Changed():
			}
		}
	})

	return g.Wait()
}
