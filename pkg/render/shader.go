package render

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/taigrr/roomcraft/pkg/math3d"
	"github.com/taigrr/roomcraft/pkg/scene"
)

// Shader applies the scene lighting to face colors.
type Shader struct {
	Intensity float64
	Contrast  float64
}

// NewShader builds a shader from scene lighting. Out of range controls are
// clamped.
func NewShader(l scene.Lighting) Shader {
	l = l.Clamped()
	return Shader{Intensity: l.Intensity, Contrast: l.Contrast}
}

// LightFactor is the brightness multiplier at height y. Higher surfaces
// catch slightly more light.
func (s Shader) LightFactor(y float64) float64 {
	return (0.7 + y/500*0.3) * s.Intensity
}

// Shade returns base lit at height y. Alpha is preserved.
func (s Shader) Shade(base color.NRGBA, y float64) color.NRGBA {
	lf := s.LightFactor(y)
	ch := func(v uint8) uint8 {
		c := float64(v) / 255
		c = math3d.Clamp((c-0.5)*s.Contrast+0.5, 0, 1) * lf
		return to8(c)
	}
	return color.NRGBA{R: ch(base.R), G: ch(base.G), B: ch(base.B), A: base.A}
}

// Brighten raises brightness by factor and slightly desaturates.
func Brighten(c color.NRGBA, factor float64) color.NRGBA {
	h, sat, v := toColorful(c).Hsv()
	return fromColorful(colorful.Hsv(h, math3d.Clamp(sat*0.9, 0, 1), math3d.Clamp(v*factor, 0, 1)), c.A)
}

// Darken scales brightness by factor.
func Darken(c color.NRGBA, factor float64) color.NRGBA {
	h, sat, v := toColorful(c).Hsv()
	return fromColorful(colorful.Hsv(h, sat, math3d.Clamp(v*factor, 0, 1)), c.A)
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color, a uint8) color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: a}
}

func to8(v float64) uint8 {
	return uint8(math.Round(math3d.Clamp(v, 0, 1) * 255))
}
