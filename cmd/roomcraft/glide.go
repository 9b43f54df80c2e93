package main

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/roomcraft/pkg/render"
)

// glideAxis springs one camera value toward its target.
type glideAxis struct {
	pos, vel, target float64
	spring           harmonica.Spring
}

func (a *glideAxis) update() {
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
}

func (a *glideAxis) settled(eps float64) bool {
	return math.Abs(a.pos-a.target) < eps && math.Abs(a.vel) < eps
}

// viewGlide animates a view reset. Pitch, yaw and zoom glide back to their
// defaults and the camera is then reset exactly.
type viewGlide struct {
	pitch, yaw, zoom glideAxis
	fps              int
	active           bool
}

func newViewGlide(fps int) *viewGlide {
	return &viewGlide{fps: fps}
}

// Start begins a glide from the camera's current view.
func (g *viewGlide) Start(cam *render.Camera) {
	// Frequency 6.0 settles in about half a second, damping 1.0 = critically
	// damped (no overshoot)
	spring := harmonica.NewSpring(harmonica.FPS(g.fps), 6.0, 1.0)

	// Yaw is unbounded; head for the nearest turn that matches the default.
	turns := math.Round((cam.Yaw - render.DefaultYaw) / 360)
	g.pitch = glideAxis{pos: cam.Pitch, target: render.DefaultPitch, spring: spring}
	g.yaw = glideAxis{pos: cam.Yaw, target: render.DefaultYaw + turns*360, spring: spring}
	g.zoom = glideAxis{pos: cam.Zoom, target: render.DefaultZoom, spring: spring}
	g.active = true
}

// Active reports whether a glide is in progress.
func (g *viewGlide) Active() bool {
	return g.active
}

// Cancel stops the glide where it is.
func (g *viewGlide) Cancel() {
	g.active = false
}

// Step advances one frame and reports whether the camera moved. The frame
// that settles the glide resets the camera and ends it.
func (g *viewGlide) Step(cam *render.Camera) bool {
	if !g.active {
		return false
	}
	g.pitch.update()
	g.yaw.update()
	g.zoom.update()

	if g.pitch.settled(0.05) && g.yaw.settled(0.05) && g.zoom.settled(0.001) {
		cam.Reset()
		g.active = false
		return true
	}
	cam.SetView(g.pitch.pos, g.yaw.pos, g.zoom.pos)
	return true
}
