package render

import (
	"image"
	"math"

	"github.com/taigrr/roomcraft/pkg/math3d"
)

// focalLength is the perspective distance of the projection.
const focalLength = 1000.0

// Projector maps room-space points to screen offsets from the viewport
// centre for one camera pose. The trig terms are computed once per frame.
type Projector struct {
	origin   math3d.Vec3
	zoom     float64
	yawSin   float64
	yawCos   float64
	pitchSin float64
	pitchCos float64
}

// NewProjector captures the camera pose.
func NewProjector(cam Camera) Projector {
	yaw := math3d.Radians(cam.Yaw)
	pitch := math3d.Radians(cam.Pitch)
	return Projector{
		origin:   cam.Position,
		zoom:     cam.Zoom,
		yawSin:   math.Sin(yaw),
		yawCos:   math.Cos(yaw),
		pitchSin: math.Sin(pitch),
		pitchCos: math.Cos(pitch),
	}
}

// Project returns the screen offset of p, truncated toward zero.
func (pr Projector) Project(p math3d.Vec3) image.Point {
	x, y := pr.ProjectF(p)
	return image.Pt(int(x), int(y))
}

// ProjectF is Project without the integer truncation.
func (pr Projector) ProjectF(p math3d.Vec3) (x, y float64) {
	d := p.Sub(pr.origin)

	// yaw in the x-z plane
	rx := d.X*pr.yawCos - d.Z*pr.yawSin
	rz := d.X*pr.yawSin + d.Z*pr.yawCos

	// pitch in the y-z plane
	ry := d.Y*pr.pitchCos - rz*pr.pitchSin
	rz = d.Y*pr.pitchSin + rz*pr.pitchCos

	factor := focalLength / (focalLength + rz)
	return rx * factor * pr.zoom, ry * factor * pr.zoom
}

// ProjectAll projects a polygon.
func (pr Projector) ProjectAll(pts ...math3d.Vec3) []image.Point {
	out := make([]image.Point, len(pts))
	for i, p := range pts {
		out[i] = pr.Project(p)
	}
	return out
}

// Project is a one-off projection of p through cam.
func Project(p math3d.Vec3, cam Camera) image.Point {
	return NewProjector(cam).Project(p)
}
