package math3d

import "math"

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Sub returns the vector difference a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Len returns the length of the vector.
func (a Vec2) Len() float64 {
	return math.Hypot(a.X, a.Y)
}

// Rotate rotates the vector counter-clockwise by the given angle in radians.
//
//	x' = x·cos − y·sin
//	y' = x·sin + y·cos
func (a Vec2) Rotate(angle float64) Vec2 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec2{a.X*c - a.Y*s, a.X*s + a.Y*c}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Clamp restricts v to [lo, hi]. NaN clamps to lo.
func Clamp(v, lo, hi float64) float64 {
	if v < lo || math.IsNaN(v) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
