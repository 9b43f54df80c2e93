package render

import (
	"image"
	"image/color"
)

// Font selects the size and weight of overlay text.
type Font struct {
	Size float64
	Bold bool
}

// Surface is a 2D drawing target. Points are in surface pixels.
type Surface interface {
	FillPolygon(pts []image.Point, c color.Color)
	StrokePolygon(pts []image.Point, c color.Color, width float64, closed bool)
	Text(at image.Point, s string, f Font, c color.Color)
}

// offsetSurface translates every primitive by a fixed offset. It moves the
// origin-centred projection to the middle of the viewport.
type offsetSurface struct {
	Surface
	off image.Point
}

func (o offsetSurface) shift(pts []image.Point) []image.Point {
	out := make([]image.Point, len(pts))
	for i, p := range pts {
		out[i] = p.Add(o.off)
	}
	return out
}

func (o offsetSurface) FillPolygon(pts []image.Point, c color.Color) {
	o.Surface.FillPolygon(o.shift(pts), c)
}

func (o offsetSurface) StrokePolygon(pts []image.Point, c color.Color, width float64, closed bool) {
	o.Surface.StrokePolygon(o.shift(pts), c, width, closed)
}

func (o offsetSurface) Text(at image.Point, s string, f Font, c color.Color) {
	o.Surface.Text(at.Add(o.off), s, f, c)
}

// Op identifies a recorded drawing primitive.
type Op int

const (
	OpFill Op = iota
	OpStroke
	OpText
)

func (o Op) String() string {
	switch o {
	case OpFill:
		return "fill"
	case OpStroke:
		return "stroke"
	case OpText:
		return "text"
	}
	return "op(?)"
}

// Command is one recorded primitive.
type Command struct {
	Op     Op
	Points []image.Point
	Color  color.NRGBA
	Width  float64
	Closed bool
	Text   string
	Font   Font
}

// DisplayList is a Surface that records primitives in call order. It can
// replay them onto another surface.
type DisplayList struct {
	Commands []Command
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// FillPolygon implements Surface.
func (d *DisplayList) FillPolygon(pts []image.Point, c color.Color) {
	d.Commands = append(d.Commands, Command{
		Op:     OpFill,
		Points: append([]image.Point(nil), pts...),
		Color:  toNRGBA(c),
		Closed: true,
	})
}

// StrokePolygon implements Surface.
func (d *DisplayList) StrokePolygon(pts []image.Point, c color.Color, width float64, closed bool) {
	d.Commands = append(d.Commands, Command{
		Op:     OpStroke,
		Points: append([]image.Point(nil), pts...),
		Color:  toNRGBA(c),
		Width:  width,
		Closed: closed,
	})
}

// Text implements Surface.
func (d *DisplayList) Text(at image.Point, s string, f Font, c color.Color) {
	d.Commands = append(d.Commands, Command{
		Op:     OpText,
		Points: []image.Point{at},
		Color:  toNRGBA(c),
		Text:   s,
		Font:   f,
	})
}

// Reset drops all recorded commands.
func (d *DisplayList) Reset() {
	d.Commands = d.Commands[:0]
}

// Replay draws the recorded commands onto s.
func (d *DisplayList) Replay(s Surface) {
	for _, c := range d.Commands {
		switch c.Op {
		case OpFill:
			s.FillPolygon(c.Points, c.Color)
		case OpStroke:
			s.StrokePolygon(c.Points, c.Color, c.Width, c.Closed)
		case OpText:
			s.Text(c.Points[0], c.Text, c.Font, c.Color)
		}
	}
}

// Filter returns the commands with the given op.
func (d *DisplayList) Filter(op Op) []Command {
	var out []Command
	for _, c := range d.Commands {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}
