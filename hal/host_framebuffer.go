package hal

import "sync"

// hostFramebuffer is an RGB565 pixel buffer backing the window.
type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fillLocked(0, 0, f.width, f.height, rgb565(r, g, b))
}

func (f *hostFramebuffer) fillLocked(x0, y0, x1, y1 int, pixel uint16) {
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for y := y0; y < y1; y++ {
		row := y * f.stride
		for x := x0; x < x1; x++ {
			f.buf[row+x*2] = lo
			f.buf[row+x*2+1] = hi
		}
	}
}

// toRGBA converts the framebuffer into dst, an RGBA8888 pixel slice of width*height*4 bytes.
func (f *hostFramebuffer) toRGBA(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	src := f.buf
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, g, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = g
		dst[j+2] = b
		dst[j+3] = 0xff
	}
}
