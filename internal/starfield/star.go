// Package starfield models the drifting stars and renders one frame of them.
package starfield

import (
	"image/color"
	"math/rand/v2"

	"github.com/iburimskiy/starfield/internal/config"
	"github.com/iburimskiy/starfield/internal/vec"
)

// Rand yields uniform floats in [0, 1).
type Rand interface {
	Float32() float32
}

type processRand struct{}

func (processRand) Float32() float32 { return rand.Float32() }

// NewRand returns a Rand backed by the process-wide, platform-seeded source.
func NewRand() Rand {
	return processRand{}
}

// Star is a single point drifting left across the field.
// The zero value must be randomized before use.
type Star struct {
	Position vec.Vec2
	Velocity vec.Vec2
	Color    uint8
}

// Randomize respawns s to the right of the visible area with a fresh
// leftward velocity. Faster stars are brighter.
func (s *Star) Randomize(rng Rand) {
	s.Position.X = rng.Float32()*config.ScreenWidth + config.ScreenWidth
	s.Position.Y = rng.Float32() * config.ScreenHeight
	s.Velocity.X = -rng.Float32()
	s.Color = uint8(-s.Velocity.X * 255)
}

// Gray returns the opaque grayscale color for brightness c.
func Gray(c uint8) color.RGBA {
	return color.RGBA{R: c, G: c, B: c, A: 0xff}
}
