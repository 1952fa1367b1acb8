//go:build cgo

package hal

import (
	"fmt"
	"io"

	"mios/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow boots the kernel behind a desktop window that shows the text screen and
// forwards keyboard input as scancodes. It blocks until the window closes.
func RunWindow(start StartFunc, logOut io.Writer) error {
	h := newHost(logOut)
	p := newCellPainter(TextColumns, TextRows)

	if err := start(h); err != nil {
		return fmt.Errorf("window boot: %w", err)
	}

	g := &hostGame{
		h:       h,
		painter: p,
		input:   &windowInput{kbd: h.kbd},
		pix:     make([]byte, p.fb.width*p.fb.height*4),
	}
	ebiten.SetWindowTitle("mios (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(p.fb.width*2, p.fb.height*2)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	painter *cellPainter
	input   *windowInput
	img     *ebiten.Image
	pix     []byte
}

func (g *hostGame) Update() error {
	g.input.poll()
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.painter.fb
	if g.img == nil {
		g.img = ebiten.NewImage(fb.width, fb.height)
	}
	if g.painter.paint(g.h.grid) {
		fb.toRGBA(g.pix)
		g.img.WritePixels(g.pix)
	}
	screen.DrawImage(g.img, nil)
}

func (g *hostGame) Layout(_, _ int) (int, int) {
	return g.painter.fb.width, g.painter.fb.height
}
