package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/taigrr/roomcraft/pkg/math3d"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Canvas is a Surface backed by an RGBA image. Polygons are rasterized
// with anti-aliased coverage and composited over the existing pixels.
type Canvas struct {
	img  *image.RGBA
	rast *vector.Rasterizer
}

// NewCanvas creates a transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		rast: vector.NewRasterizer(width, height),
	}
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() image.Point {
	return c.img.Bounds().Size()
}

// Image returns the backing image. It is reused between frames.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the canvas with a solid color.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *Canvas) begin() {
	size := c.Size()
	c.rast.Reset(size.X, size.Y)
	c.rast.DrawOp = draw.Over
}

func (c *Canvas) paint(col color.Color) {
	c.rast.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

func (c *Canvas) path(pts []math3d.Vec2) {
	c.rast.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		c.rast.LineTo(float32(p.X), float32(p.Y))
	}
	c.rast.ClosePath()
}

// maxCoord bounds the vertices the rasterizer accepts. Points projected
// from behind the eye land far outside it and are dropped.
const maxCoord = 1 << 15

func inRange(pts []image.Point) bool {
	for _, p := range pts {
		if p.X < -maxCoord || p.X > maxCoord || p.Y < -maxCoord || p.Y > maxCoord {
			return false
		}
	}
	return true
}

// FillPolygon implements Surface.
func (c *Canvas) FillPolygon(pts []image.Point, col color.Color) {
	if len(pts) < 3 || !inRange(pts) {
		return
	}
	c.begin()
	vs := make([]math3d.Vec2, len(pts))
	for i, p := range pts {
		vs[i] = math3d.V2(float64(p.X), float64(p.Y))
	}
	c.path(vs)
	c.paint(col)
}

// StrokePolygon implements Surface. Each segment is drawn as a quad of the
// given width centred on the pixel centres of its end points.
func (c *Canvas) StrokePolygon(pts []image.Point, col color.Color, width float64, closed bool) {
	if len(pts) < 2 || !inRange(pts) {
		return
	}
	c.begin()
	n := len(pts) - 1
	if closed {
		n = len(pts)
	}
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%len(pts)]
		c.segment(a, b, width/2)
	}
	c.paint(col)
}

// segment adds a counter-clockwise quad around a-b. A zero length segment
// becomes a square dot.
func (c *Canvas) segment(a, b image.Point, half float64) {
	pa := math3d.V2(float64(a.X)+0.5, float64(a.Y)+0.5)
	pb := math3d.V2(float64(b.X)+0.5, float64(b.Y)+0.5)
	d := pb.Sub(pa)
	l := d.Len()
	var along, across math3d.Vec2
	if l == 0 {
		along = math3d.V2(half, 0)
		across = math3d.V2(0, half)
	} else {
		along = math3d.V2(d.X/l*half, d.Y/l*half)
		across = along.Rotate(math3d.Radians(90))
	}
	c.path([]math3d.Vec2{
		math3d.V2(pa.X-along.X-across.X, pa.Y-along.Y-across.Y),
		math3d.V2(pb.X+along.X-across.X, pb.Y+along.Y-across.Y),
		math3d.V2(pb.X+along.X+across.X, pb.Y+along.Y+across.Y),
		math3d.V2(pa.X-along.X+across.X, pa.Y-along.Y+across.Y),
	})
}

// Text implements Surface. at is the baseline origin. The built-in face has
// a single size; bold text is overstruck one pixel to the right.
func (c *Canvas) Text(at image.Point, s string, f Font, col color.Color) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(at.X, at.Y),
	}
	d.DrawString(s)
	if f.Bold {
		d.Dot = fixed.P(at.X+1, at.Y)
		d.DrawString(s)
	}
}

// SavePNG writes the canvas as a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, c.img); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}
