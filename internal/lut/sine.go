// Package lut holds precomputed lookup tables for the per-frame hot path.
package lut

import (
	"fmt"
	"math"

	"github.com/iburimskiy/starfield/internal/config"
)

// Sine holds one full period of sin over len(s) evenly spaced angles.
type Sine []float32

// Generate returns the table used by the star field.
func Generate() Sine {
	return NewSine(config.LutResolution)
}

// NewSine computes sin(2π·i/n) directly for every index.
func NewSine(n int) Sine {
	mustPowerOfTwo(n)
	s := make(Sine, n)
	step := 2 * math.Pi / float64(n)
	for i := range s {
		s[i] = float32(math.Sin(float64(i) * step))
	}
	return s
}

// NewSineAccumulated builds the table by adding a float32 step to a running
// angle. The result drifts slightly from NewSine at high indices.
func NewSineAccumulated(n int) Sine {
	mustPowerOfTwo(n)
	s := make(Sine, n)
	step := float32(math.Pi*2) / float32(n)
	var a float32
	for i := range s {
		s[i] = float32(math.Sin(float64(a)))
		a += step
	}
	return s
}

// At returns the entry for i, wrapping any index into the table.
func (s Sine) At(i int) float32 {
	return s[i&(len(s)-1)]
}

func mustPowerOfTwo(n int) {
	if n <= 0 || n&(n-1) != 0 {
		panic(fmt.Sprintf("lut: length %d is not a power of two", n))
	}
}
