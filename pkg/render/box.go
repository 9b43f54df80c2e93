package render

import (
	"image"
	"image/color"

	"github.com/taigrr/roomcraft/pkg/math3d"
	"github.com/taigrr/roomcraft/pkg/scene"
)

// Box rendering constants.
var (
	// HighlightColor outlines the selected item.
	HighlightColor = color.NRGBA{B: 255, A: 255}

	// ShadowColor fills the floor shadow beneath every item.
	ShadowColor = color.NRGBA{A: 50}
)

const (
	// ShadowMargin is how far the shadow quad extends past the item on x
	// and z.
	ShadowMargin = 10.0

	outlineWidth   = 1.0
	highlightWidth = 2.0
)

// boxEdges are the 12 edges of a box over the vertex order of boxCorners.
var boxEdges = [12][2]int{
	// Bottom face
	{0, 1},
	{1, 2},
	{2, 3},
	{3, 0},
	// Top face
	{4, 5},
	{5, 6},
	{6, 7},
	{7, 4},
	// Connecting edges
	{0, 4},
	{1, 5},
	{2, 6},
	{3, 7},
}

// box is an item's extent in render space, where y grows downward and the
// floor is y = 0.
type box struct {
	x0, x1 float64
	yb, yt float64 // bottom and top, so yt <= yb
	z0, z1 float64
}

func itemBox(it scene.Item) box {
	return box{
		x0: it.Position.X,
		x1: it.Position.X + it.Size.Width,
		yb: -it.Position.Y,
		yt: -(it.Position.Y + it.Size.Height),
		z0: it.Position.Z,
		z1: it.Position.Z + it.Size.Depth,
	}
}

// corners returns the 8 box vertices: bottom face first, then top face,
// each wound x0z0, x1z0, x1z1, x0z1.
func (b box) corners() [8]math3d.Vec3 {
	return [8]math3d.Vec3{
		{X: b.x0, Y: b.yb, Z: b.z0}, // 0: bottom-left-back
		{X: b.x1, Y: b.yb, Z: b.z0}, // 1: bottom-right-back
		{X: b.x1, Y: b.yb, Z: b.z1}, // 2: bottom-right-front
		{X: b.x0, Y: b.yb, Z: b.z1}, // 3: bottom-left-front
		{X: b.x0, Y: b.yt, Z: b.z0}, // 4: top-left-back
		{X: b.x1, Y: b.yt, Z: b.z0}, // 5: top-right-back
		{X: b.x1, Y: b.yt, Z: b.z1}, // 6: top-right-front
		{X: b.x0, Y: b.yt, Z: b.z1}, // 7: top-left-front
	}
}

func (b box) top() [4]math3d.Vec3 {
	c := b.corners()
	return [4]math3d.Vec3{c[4], c[5], c[6], c[7]}
}

// front is the x-y face at max z.
func (b box) front() [4]math3d.Vec3 {
	c := b.corners()
	return [4]math3d.Vec3{c[3], c[2], c[6], c[7]}
}

// right is the y-z face at max x.
func (b box) right() [4]math3d.Vec3 {
	c := b.corners()
	return [4]math3d.Vec3{c[1], c[2], c[6], c[5]}
}

func (b box) shadow() [4]math3d.Vec3 {
	x0, x1 := b.x0-ShadowMargin, b.x1+ShadowMargin
	z0, z1 := b.z0-ShadowMargin, b.z1+ShadowMargin
	return [4]math3d.Vec3{
		{X: x0, Y: 0, Z: z0},
		{X: x1, Y: 0, Z: z0},
		{X: x1, Y: 0, Z: z1},
		{X: x0, Y: 0, Z: z1},
	}
}

// BoxRenderer draws furniture items as three visible shaded faces.
type BoxRenderer struct {
	proj   Projector
	shader Shader
	opts   RenderOptions
}

// NewBoxRenderer creates a box renderer for one frame.
func NewBoxRenderer(proj Projector, shader Shader, opts RenderOptions) *BoxRenderer {
	return &BoxRenderer{proj: proj, shader: shader, opts: opts}
}

// Draw emits the shadow, top, front and right faces of it, in that order.
// Zero-sized items produce degenerate polygons.
func (r *BoxRenderer) Draw(s Surface, it scene.Item, selected bool) {
	b := itemBox(it)

	if r.opts.Shadows {
		sh := b.shadow()
		s.FillPolygon(r.proj.ProjectAll(sh[:]...), ShadowColor)
	}

	base := r.shader.Shade(it.Color.NRGBA(), it.Position.Y)
	top, front, right := b.top(), b.front(), b.right()
	r.face(s, top[:], Brighten(base, 1.2), selected)
	r.face(s, front[:], base, selected)
	r.face(s, right[:], Darken(base, 0.8), selected)

	switch {
	case selected:
		r.wireframe(s, b, HighlightColor, highlightWidth)
	case r.opts.Wireframe:
		r.wireframe(s, b, Darken(base, 0.7), outlineWidth)
	}
}

func (r *BoxRenderer) face(s Surface, verts []math3d.Vec3, c color.NRGBA, selected bool) {
	pts := r.proj.ProjectAll(verts...)
	s.FillPolygon(pts, c)
	if selected {
		s.StrokePolygon(pts, HighlightColor, outlineWidth, true)
		return
	}
	s.StrokePolygon(pts, Darken(c, 0.7), outlineWidth, true)
}

func (r *BoxRenderer) wireframe(s Surface, b box, c color.Color, width float64) {
	var pts [8]image.Point
	for i, v := range b.corners() {
		pts[i] = r.proj.Project(v)
	}
	for _, e := range boxEdges {
		s.StrokePolygon([]image.Point{pts[e[0]], pts[e[1]]}, c, width, false)
	}
}
