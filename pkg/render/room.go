package render

import (
	"image"
	"image/color"
	"math"

	"github.com/taigrr/roomcraft/pkg/math3d"
	"github.com/taigrr/roomcraft/pkg/scene"
)

const (
	// GridSpacing is the distance between floor grid lines.
	GridSpacing = 50.0

	// wallAlpha is applied to opaque wall colors so items behind the walls
	// stay visible.
	wallAlpha = 180

	gridWidth = 0.5
)

// GridColor is the floor grid line color.
var GridColor = color.NRGBA{R: 200, G: 200, B: 200, A: 100}

// DrawRoom emits the floor, the back and left walls, the ceiling and the
// floor grid. The room is centred on the origin in x and z. The grid is
// skipped when either floor dimension is not finite.
func DrawRoom(s Surface, proj Projector, room scene.Room, opts RenderOptions) {
	x0, x1 := -room.Width/2, room.Width/2
	z0, z1 := -room.Length/2, room.Length/2
	h := -room.Height

	quad := func(c color.Color, verts ...math3d.Vec3) {
		s.FillPolygon(proj.ProjectAll(verts...), c)
	}

	quad(room.Floor,
		math3d.V3(x0, 0, z0), math3d.V3(x1, 0, z0),
		math3d.V3(x1, 0, z1), math3d.V3(x0, 0, z1))

	walls := room.Walls.NRGBA()
	if walls.A == 255 {
		walls.A = wallAlpha
	}
	// back wall
	quad(walls,
		math3d.V3(x0, h, z0), math3d.V3(x1, h, z0),
		math3d.V3(x1, 0, z0), math3d.V3(x0, 0, z0))
	// left wall
	quad(walls,
		math3d.V3(x0, h, z0), math3d.V3(x0, h, z1),
		math3d.V3(x0, 0, z1), math3d.V3(x0, 0, z0))

	if !opts.HideCeiling {
		quad(room.Ceiling,
			math3d.V3(x0, h, z0), math3d.V3(x1, h, z0),
			math3d.V3(x1, h, z1), math3d.V3(x0, h, z1))
	}

	line := func(a, b math3d.Vec3) {
		s.StrokePolygon([]image.Point{proj.Project(a), proj.Project(b)}, GridColor, gridWidth, false)
	}
	if !finite(room.Width) || !finite(room.Length) {
		return
	}
	for i, n := 0, int(room.Width/GridSpacing); i <= n; i++ {
		x := x0 + float64(i)*GridSpacing
		line(math3d.V3(x, 0, z0), math3d.V3(x, 0, z1))
	}
	for i, n := 0, int(room.Length/GridSpacing); i <= n; i++ {
		z := z0 + float64(i)*GridSpacing
		line(math3d.V3(x0, 0, z), math3d.V3(x1, 0, z))
	}
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
