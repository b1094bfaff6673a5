// Package vec provides a small float32 2D vector type.
package vec

import "math"

// Vec2 is a 2D vector. Operations never modify the receiver.
type Vec2 struct {
	X, Y float32
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(k float32) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

func (v Vec2) Dot(o Vec2) float32 {
	return v.X*o.X + v.Y*o.Y
}

// Magnitude returns the Euclidean length of v.
func (v Vec2) Magnitude() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// Normalize returns v scaled to unit length.
// The zero vector yields NaN components.
func (v Vec2) Normalize() Vec2 {
	return v.Scale(1 / v.Magnitude())
}
