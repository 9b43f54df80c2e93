package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/taigrr/roomcraft/pkg/scene"
)

var (
	panelColor = color.NRGBA{A: 150}
	textColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	labelFont = Font{Size: 12}
	titleFont = Font{Size: 14, Bold: true}
)

const panelRadius = 10

// roundedRect approximates a rounded rectangle with quarter-circle corners.
func roundedRect(r image.Rectangle, radius int) []image.Point {
	const steps = 4
	rad := float64(radius)
	corners := []struct {
		cx, cy float64
		start  float64
	}{
		{float64(r.Max.X) - rad, float64(r.Min.Y) + rad, -math.Pi / 2},
		{float64(r.Max.X) - rad, float64(r.Max.Y) - rad, 0},
		{float64(r.Min.X) + rad, float64(r.Max.Y) - rad, math.Pi / 2},
		{float64(r.Min.X) + rad, float64(r.Min.Y) + rad, math.Pi},
	}
	pts := make([]image.Point, 0, len(corners)*(steps+1))
	for _, c := range corners {
		for i := 0; i <= steps; i++ {
			a := c.start + float64(i)*math.Pi/2/steps
			pts = append(pts, image.Pt(
				int(math.Round(c.cx+rad*math.Cos(a))),
				int(math.Round(c.cy+rad*math.Sin(a))),
			))
		}
	}
	return pts
}

func rectPoints(r image.Rectangle) []image.Point {
	return []image.Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	}
}

// DrawHelp draws the control hints and zoom readout in the bottom-right
// corner of a viewport of the given size. Text positions are baselines.
func DrawHelp(s Surface, size image.Point, zoom float64) {
	at := image.Pt(size.X-150, size.Y-80)
	s.FillPolygon(roundedRect(image.Rectangle{Min: at, Max: at.Add(image.Pt(140, 70))}, panelRadius), panelColor)
	s.Text(at.Add(image.Pt(10, 20)), "Left drag: Rotate", labelFont, textColor)
	s.Text(at.Add(image.Pt(10, 40)), "Scroll: Zoom", labelFont, textColor)
	s.Text(at.Add(image.Pt(10, 60)), fmt.Sprintf("Zoom: %.1fx", zoom), labelFont, textColor)
}

// DrawItemInfo draws the selected item's name, size, position and material
// swatch in the top-right corner.
func DrawItemInfo(s Surface, size image.Point, it scene.Item) {
	at := image.Pt(size.X-200, 10)
	s.FillPolygon(roundedRect(image.Rectangle{Min: at, Max: at.Add(image.Pt(190, 100))}, panelRadius), panelColor)
	s.Text(at.Add(image.Pt(10, 20)), it.Name, titleFont, textColor)
	s.Text(at.Add(image.Pt(10, 40)),
		fmt.Sprintf("Size: %g x %g x %g", it.Size.Width, it.Size.Height, it.Size.Depth),
		labelFont, textColor)
	s.Text(at.Add(image.Pt(10, 60)),
		fmt.Sprintf("Position: (%g, %g, %g)", it.Position.X, it.Position.Y, it.Position.Z),
		labelFont, textColor)

	swatch := rectPoints(image.Rectangle{Min: at.Add(image.Pt(10, 70)), Max: at.Add(image.Pt(30, 90))})
	s.FillPolygon(swatch, it.Color)
	s.StrokePolygon(swatch, textColor, 1, true)
	s.Text(at.Add(image.Pt(40, 85)), "Material: "+it.Material, labelFont, textColor)
}
