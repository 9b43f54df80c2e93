package math3d

import (
	"testing"
)

func BenchmarkVec3Distance(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(0, 200, 500)

	for b.Loop() {
		_ = v1.Distance(v2)
	}
}

func BenchmarkVec3Normalize(b *testing.B) {
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = v.Normalize()
	}
}

func BenchmarkVec3Cross(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Cross(v2)
	}
}

func BenchmarkVec2Rotate(b *testing.B) {
	v := V2(120, -80)
	angle := Radians(-30)

	for b.Loop() {
		_ = v.Rotate(angle)
	}
}
