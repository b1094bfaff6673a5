// Package framebuffer provides a double-buffered in-memory RGBA canvas.
package framebuffer

import (
	"errors"
	"image"
	"image/color"
	"sync"
)

var ErrOutOfBounds = errors.New("framebuffer: point out of bounds")

// Framebuffer is drawn into on the back buffer; Present publishes it to the
// front buffer, which Snapshot reads.
type Framebuffer struct {
	mu    sync.Mutex
	back  *image.RGBA
	front *image.RGBA
}

func New(width, height int) *Framebuffer {
	r := image.Rect(0, 0, width, height)
	return &Framebuffer{
		back:  image.NewRGBA(r),
		front: image.NewRGBA(r),
	}
}

func (f *Framebuffer) Width() int  { return f.back.Rect.Dx() }
func (f *Framebuffer) Height() int { return f.back.Rect.Dy() }

// Clear fills the back buffer with c.
func (f *Framebuffer) Clear(c color.RGBA) {
	pix := f.back.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

// DrawPoint sets a single back-buffer pixel.
func (f *Framebuffer) DrawPoint(x, y int, c color.RGBA) error {
	if !image.Pt(x, y).In(f.back.Rect) {
		return ErrOutOfBounds
	}
	f.back.SetRGBA(x, y, c)
	return nil
}

// Present copies the back buffer to the front buffer.
func (f *Framebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front.Pix, f.back.Pix)
	return nil
}

// Snapshot copies the last presented frame into dst and returns the number
// of bytes copied. A full frame is 4*Width()*Height() bytes.
func (f *Framebuffer) Snapshot(dst []byte) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copy(dst, f.front.Pix)
}
