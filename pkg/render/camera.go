package render

import (
	"github.com/taigrr/roomcraft/pkg/math3d"
)

// Camera defaults and limits. Angles are in degrees.
const (
	DefaultPitch = 30.0
	DefaultYaw   = -30.0
	DefaultZoom  = 1.0

	MinPitch = -89.0
	MaxPitch = 89.0
	MinZoom  = 0.1
	MaxZoom  = 5.0

	// OrbitSensitivity converts pointer deltas to degrees.
	OrbitSensitivity = 0.5
)

// DefaultCameraPosition is where the camera sits before any orbiting.
var DefaultCameraPosition = math3d.V3(0, 200, 500)

// ZoomDirection is the sense of a zoom step.
type ZoomDirection int

const (
	ZoomIn ZoomDirection = iota
	ZoomOut
)

// WheelDirection maps a scroll wheel rotation to a zoom direction. Positive
// rotation (wheel toward the user) zooms out.
func WheelDirection(rotation int) ZoomDirection {
	if rotation > 0 {
		return ZoomOut
	}
	return ZoomIn
}

// Camera is the orbit camera of the room view.
type Camera struct {
	// Position in room space
	Position math3d.Vec3

	// Orientation in degrees
	Pitch float64 // rotation in the y-z plane, clamped to [MinPitch, MaxPitch]
	Yaw   float64 // rotation in the x-z plane, unbounded

	Zoom float64 // scale factor, clamped to [MinZoom, MaxZoom]
}

// NewCamera creates a camera in its reset pose.
func NewCamera() *Camera {
	c := &Camera{}
	c.Reset()
	return c
}

// Reset restores the default position, angles and zoom.
func (c *Camera) Reset() {
	c.Position = DefaultCameraPosition
	c.Pitch = DefaultPitch
	c.Yaw = DefaultYaw
	c.Zoom = DefaultZoom
}

// Orbit turns the camera by pointer deltas. Yaw follows horizontal motion
// and pitch vertical motion; pitch is clamped, never wrapped.
func (c *Camera) Orbit(deltaYaw, deltaPitch float64) {
	c.Yaw += deltaYaw * OrbitSensitivity
	c.Pitch = math3d.Clamp(c.Pitch+deltaPitch*OrbitSensitivity, MinPitch, MaxPitch)
}

// ZoomStep scales the zoom by 1.1 toward the scene or 0.9 away from it.
func (c *Camera) ZoomStep(dir ZoomDirection) {
	factor := 1.1
	if dir == ZoomOut {
		factor = 0.9
	}
	c.Zoom = math3d.Clamp(c.Zoom*factor, MinZoom, MaxZoom)
}

// SetView sets pitch, yaw and zoom directly, applying the usual clamps.
func (c *Camera) SetView(pitch, yaw, zoom float64) {
	c.Pitch = math3d.Clamp(pitch, MinPitch, MaxPitch)
	c.Yaw = yaw
	c.Zoom = math3d.Clamp(zoom, MinZoom, MaxZoom)
}
