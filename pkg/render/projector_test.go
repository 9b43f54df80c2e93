package render

import (
	"image"
	"math"
	"testing"

	"github.com/taigrr/roomcraft/pkg/math3d"
)

func TestProjectCameraPositionIsOrigin(t *testing.T) {
	poses := []struct{ pitch, yaw, zoom float64 }{
		{30, -30, 1},
		{-89, 0, 0.1},
		{89, 720, 5},
		{0, 45, 2.5},
	}
	for _, pose := range poses {
		c := NewCamera()
		c.SetView(pose.pitch, pose.yaw, pose.zoom)
		if got := Project(c.Position, *c); got != (image.Point{}) {
			t.Errorf("pose %+v: camera position projects to %v, want (0, 0)", pose, got)
		}
	}
}

func TestProjectMatchesRotation(t *testing.T) {
	c := NewCamera()
	c.SetView(0, -30, 1)
	p := math3d.V3(100, 200, 300)

	// With no pitch the projection is the yaw rotation of (dx, dz) followed
	// by the perspective divide.
	d := p.Sub(c.Position)
	r := math3d.V2(d.X, d.Z).Rotate(math3d.Radians(c.Yaw))
	factor := 1000 / (1000 + r.Y)

	x, y := NewProjector(*c).ProjectF(p)
	if math.Abs(x-r.X*factor) > 1e-9 {
		t.Errorf("x = %v, want %v", x, r.X*factor)
	}
	if math.Abs(y-d.Y*factor) > 1e-9 {
		t.Errorf("y = %v, want %v", y, d.Y*factor)
	}
}

func TestProjectZoomScales(t *testing.T) {
	c := NewCamera()
	p := math3d.V3(50, -30, 20)
	x1, y1 := NewProjector(*c).ProjectF(p)
	c.Zoom = 2
	x2, y2 := NewProjector(*c).ProjectF(p)
	if math.Abs(x2-2*x1) > 1e-9 || math.Abs(y2-2*y1) > 1e-9 {
		t.Errorf("zoom 2 gave (%v, %v), want (%v, %v)", x2, y2, 2*x1, 2*y1)
	}
}

func TestProjectTruncatesTowardZero(t *testing.T) {
	c := Camera{Position: math3d.Zero3(), Zoom: 1}
	tests := []struct {
		p    math3d.Vec3
		want image.Point
	}{
		{math3d.V3(1.9, -1.9, 0), image.Pt(1, -1)},
		{math3d.V3(-0.5, 0.5, 0), image.Pt(0, 0)},
	}
	for _, tc := range tests {
		if got := Project(tc.p, c); got != tc.want {
			t.Errorf("Project(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func BenchmarkProjectBox(b *testing.B) {
	proj := NewProjector(*NewCamera())
	corners := itemBox(tableItem()).corners()
	for b.Loop() {
		_ = proj.ProjectAll(corners[:]...)
	}
}
