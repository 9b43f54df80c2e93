package render

import (
	"image"

	"github.com/taigrr/roomcraft/pkg/scene"
)

// SceneSource supplies the scene to draw. It is read once per frame.
type SceneSource interface {
	Snapshot() scene.Snapshot
}

// RedrawFunc asks the presentation layer to schedule a new frame. It must
// not block.
type RedrawFunc func()

// Frame ties the camera, a scene source and the renderers together.
type Frame struct {
	Camera   *Camera
	Source   SceneSource
	Options  RenderOptions
	ShowHelp bool

	redraw RedrawFunc
}

// NewFrame creates a frame with a reset camera and default options. redraw
// may be nil.
func NewFrame(src SceneSource, redraw RedrawFunc) *Frame {
	return &Frame{
		Camera:   NewCamera(),
		Source:   src,
		Options:  DefaultRenderOptions(),
		ShowHelp: true,
		redraw:   redraw,
	}
}

func (f *Frame) requestRedraw() {
	if f.redraw != nil {
		f.redraw()
	}
}

// OnOrbitDrag orbits the camera by a pointer delta.
func (f *Frame) OnOrbitDrag(dx, dy float64) {
	f.Camera.Orbit(dx, dy)
	f.requestRedraw()
}

// OnZoom steps the camera zoom.
func (f *Frame) OnZoom(dir ZoomDirection) {
	f.Camera.ZoomStep(dir)
	f.requestRedraw()
}

// OnResetView restores the default camera.
func (f *Frame) OnResetView() {
	f.Camera.Reset()
	f.requestRedraw()
}

// Draw renders the current scene onto s, a viewport of the given size.
func (f *Frame) Draw(s Surface, size image.Point) {
	f.DrawSnapshot(s, size, f.Source.Snapshot())
}

// DrawSnapshot renders snap: room, depth-sorted items, then overlays.
func (f *Frame) DrawSnapshot(s Surface, size image.Point, snap scene.Snapshot) {
	cam := *f.Camera
	proj := NewProjector(cam)
	world := offsetSurface{Surface: s, off: image.Pt(size.X/2, size.Y/2)}

	DrawRoom(world, proj, snap.Room, f.Options)

	boxes := NewBoxRenderer(proj, NewShader(snap.Lighting), f.Options)
	for _, it := range SortBackToFront(snap.Items, cam.Position) {
		boxes.Draw(world, it, it.ID == snap.SelectedID)
	}

	if it, ok := snap.Selected(); ok {
		DrawItemInfo(s, size, it)
	}
	if f.ShowHelp {
		DrawHelp(s, size, cam.Zoom)
	}
}
