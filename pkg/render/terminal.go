package render

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/transform"
	uv "github.com/charmbracelet/ultraviolet"
)

type textRun struct {
	at   image.Point
	s    string
	bold bool
	col  color.Color
}

// TerminalPresenter is a Surface that shows frames on a terminal screen.
// Polygons are rasterized onto a canvas of supersample times the half-block
// resolution and downscaled when drawn; text is placed as terminal cells
// so it stays legible.
//
// Callers draw in logical pixels. By default one logical pixel is one
// canvas pixel; SetLogicalWidth shrinks a wider layout onto the canvas.
type TerminalPresenter struct {
	canvas      *Canvas
	text        []textRun
	cols, rows  int
	supersample int
	logicalW    int
	scale       float64 // logical pixels per canvas pixel, at least 1
}

// NewTerminalPresenter creates a presenter for a cols by rows cell area.
func NewTerminalPresenter(cols, rows, supersample int) *TerminalPresenter {
	if supersample < 1 {
		supersample = 1
	}
	t := &TerminalPresenter{supersample: supersample}
	t.Resize(cols, rows)
	return t
}

// Resize changes the cell area.
func (t *TerminalPresenter) Resize(cols, rows int) {
	t.cols, t.rows = max(cols, 1), max(rows, 1)
	t.canvas = NewCanvas(t.cols*t.supersample, t.rows*2*t.supersample)
	t.SetLogicalWidth(t.logicalW)
}

// SetLogicalWidth makes the drawing at least w logical pixels wide. The
// height follows the canvas aspect. Values not above the canvas width
// restore the one to one mapping.
func (t *TerminalPresenter) SetLogicalWidth(w int) {
	t.logicalW = w
	t.scale = 1
	if cw := t.canvas.Size().X; w > cw {
		t.scale = float64(w) / float64(cw)
	}
}

// Size returns the drawing size in logical pixels.
func (t *TerminalPresenter) Size() image.Point {
	cs := t.canvas.Size()
	return image.Pt(int(float64(cs.X)*t.scale), int(float64(cs.Y)*t.scale))
}

func (t *TerminalPresenter) toCanvas(p image.Point) image.Point {
	if t.scale == 1 {
		return p
	}
	return image.Pt(int(float64(p.X)/t.scale), int(float64(p.Y)/t.scale))
}

func (t *TerminalPresenter) scaled(pts []image.Point) []image.Point {
	if t.scale == 1 {
		return pts
	}
	out := make([]image.Point, len(pts))
	for i, p := range pts {
		out[i] = t.toCanvas(p)
	}
	return out
}

// Clear starts a new frame on a solid background.
func (t *TerminalPresenter) Clear(bg color.Color) {
	t.canvas.Clear(bg)
	t.text = t.text[:0]
}

// FillPolygon implements Surface.
func (t *TerminalPresenter) FillPolygon(pts []image.Point, c color.Color) {
	t.canvas.FillPolygon(t.scaled(pts), c)
}

// StrokePolygon implements Surface.
func (t *TerminalPresenter) StrokePolygon(pts []image.Point, c color.Color, width float64, closed bool) {
	t.canvas.StrokePolygon(t.scaled(pts), c, width*float64(t.supersample)/t.scale, closed)
}

// Text implements Surface. The run is placed on the cell row holding its
// baseline.
func (t *TerminalPresenter) Text(at image.Point, s string, f Font, c color.Color) {
	t.text = append(t.text, textRun{at: t.toCanvas(at), s: s, bold: f.Bold, col: c})
}

// Draw converts the frame to terminal cells and draws them on the screen.
// Each cell shows two pixels with ▀: the foreground is the top pixel and
// the background the bottom one.
func (t *TerminalPresenter) Draw(scr uv.Screen, area uv.Rectangle) {
	px := transform.Resize(t.canvas.Image(), t.cols, t.rows*2, transform.Linear)

	for row := 0; row < t.rows && area.Min.Y+row < area.Max.Y; row++ {
		for col := 0; col < t.cols && area.Min.X+col < area.Max.X; col++ {
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: opaqueOrNil(px.RGBAAt(col, row*2)),
					Bg: opaqueOrNil(px.RGBAAt(col, row*2+1)),
				},
			}
			scr.SetCell(area.Min.X+col, area.Min.Y+row, cell)
		}
	}

	cellW, cellH := t.supersample, 2*t.supersample
	for _, run := range t.text {
		row := run.at.Y / cellH
		if run.at.Y < 0 || row >= t.rows || area.Min.Y+row >= area.Max.Y {
			continue
		}
		col := run.at.X / cellW
		var attrs uint8
		if run.bold {
			attrs = uv.AttrBold
		}
		for _, r := range run.s {
			if col >= 0 && col < t.cols && area.Min.X+col < area.Max.X {
				scr.SetCell(area.Min.X+col, area.Min.Y+row, &uv.Cell{
					Content: string(r),
					Width:   1,
					Style: uv.Style{
						Fg:    run.col,
						Bg:    opaqueOrNil(px.RGBAAt(col, row*2+1)),
						Attrs: attrs,
					},
				})
			}
			col++
		}
	}
}

// opaqueOrNil maps fully transparent pixels to the terminal default.
func opaqueOrNil(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil
	}
	return c
}
