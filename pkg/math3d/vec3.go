// Package math3d provides the small vector toolkit used by the room renderer.
//
// Room space is right-handed with Y pointing up; all lengths are room units
// (centimetres in the bundled scenes).
package math3d

import "math"

// Vec3 is a point or direction in room space.
type Vec3 struct {
	X, Y, Z float64
}

// V3 creates a new Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Zero3 is the room origin: floor level at the centre of the room.
func Zero3() Vec3 { return Vec3{} }

// Add returns the vector sum a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale multiplies every component by s.
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Dot returns the dot product a · b.
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross is used for face normals; (b-a)×(c-a) points out of a
// counter-clockwise triangle.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the Euclidean length of the vector.
func (a Vec3) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// Normalize returns a unit vector, or zero for the zero vector.
func (a Vec3) Normalize() Vec3 {
	if l := a.Len(); l > 0 {
		return a.Scale(1 / l)
	}
	return Vec3{}
}

// Distance is the painter's sort key between an item and the eye.
func (a Vec3) Distance(b Vec3) float64 {
	return a.Sub(b).Len()
}

// Min and Max are component-wise. They grow mesh and scene bounds.
func (a Vec3) Min(b Vec3) Vec3 { return a.zip(b, math.Min) }
func (a Vec3) Max(b Vec3) Vec3 { return a.zip(b, math.Max) }

func (a Vec3) zip(b Vec3, f func(x, y float64) float64) Vec3 {
	return Vec3{f(a.X, b.X), f(a.Y, b.Y), f(a.Z, b.Z)}
}

// Float32 returns the components in glTF accessor layout.
func (a Vec3) Float32() [3]float32 {
	return [3]float32{float32(a.X), float32(a.Y), float32(a.Z)}
}
