package starfield

import (
	"image/color"

	"github.com/iburimskiy/starfield/internal/config"
	"github.com/iburimskiy/starfield/internal/lut"
)

// Plotter draws single points. Errors are per-point and may be dropped.
type Plotter interface {
	DrawPoint(x, y int, c color.RGBA) error
}

// Field is the fixed population of stars plus the tables they are
// animated with.
type Field struct {
	Stars []Star

	sine lut.Sine
	rng  Rand
}

// NewField builds n randomized stars.
func NewField(n int, rng Rand, sine lut.Sine) *Field {
	f := &Field{
		Stars: make([]Star, n),
		sine:  sine,
		rng:   rng,
	}
	for i := range f.Stars {
		f.Stars[i].Randomize(rng)
	}
	return f
}

// Render draws every star at its wobbled position, then advances it and
// recycles it once it has left the screen on the left.
func (f *Field) Render(p Plotter) {
	for i := range f.Stars {
		s := &f.Stars[i]

		// The wobble only moves the drawn point, never the stored position.
		offset := f.sine.At(int(s.Position.X)) * s.Velocity.X * config.WobbleAmount
		y := s.Position.Y + offset
		_ = p.DrawPoint(int(s.Position.X), int(y), Gray(s.Color))

		s.Position = s.Position.Add(s.Velocity)
		if s.Position.X < 0 {
			s.Randomize(f.rng)
		}
	}
}
