package framebuffer

import (
	"errors"
	"image/color"
	"testing"
)

func pixelAt(buf []byte, width, x, y int) color.RGBA {
	i := (y*width + x) * 4
	return color.RGBA{R: buf[i], G: buf[i+1], B: buf[i+2], A: buf[i+3]}
}

func TestDrawPointBounds(t *testing.T) {
	f := New(4, 3)
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	tests := []struct {
		x, y int
		err  error
	}{
		{0, 0, nil},
		{3, 2, nil},
		{-1, 0, ErrOutOfBounds},
		{0, -1, ErrOutOfBounds},
		{4, 0, ErrOutOfBounds},
		{0, 3, ErrOutOfBounds},
		{700, 100, ErrOutOfBounds},
	}
	for _, tt := range tests {
		if err := f.DrawPoint(tt.x, tt.y, white); !errors.Is(err, tt.err) {
			t.Errorf("DrawPoint(%d, %d) error = %v, want %v", tt.x, tt.y, err, tt.err)
		}
	}
}

func TestPresentPublishesBackBuffer(t *testing.T) {
	f := New(4, 4)
	gray := color.RGBA{R: 127, G: 127, B: 127, A: 0xff}
	if err := f.DrawPoint(2, 1, gray); err != nil {
		t.Fatalf("DrawPoint() error = %v", err)
	}

	buf := make([]byte, 4*f.Width()*f.Height())
	f.Snapshot(buf)
	if got := pixelAt(buf, 4, 2, 1); got == gray {
		t.Errorf("pixel visible before Present")
	}

	if err := f.Present(); err != nil {
		t.Fatalf("Present() error = %v", err)
	}
	if n := f.Snapshot(buf); n != len(buf) {
		t.Errorf("Snapshot() copied %d bytes, want %d", n, len(buf))
	}
	if got := pixelAt(buf, 4, 2, 1); got != gray {
		t.Errorf("pixel = %v, want %v", got, gray)
	}
}

func TestClear(t *testing.T) {
	f := New(3, 3)
	_ = f.DrawPoint(1, 1, color.RGBA{R: 9, G: 9, B: 9, A: 0xff})
	black := color.RGBA{A: 0xff}
	f.Clear(black)
	_ = f.Present()

	buf := make([]byte, 4*9)
	f.Snapshot(buf)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := pixelAt(buf, 3, x, y); got != black {
				t.Errorf("pixel (%d, %d) = %v, want black", x, y, got)
			}
		}
	}
}
