package scene

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Color is a non-premultiplied RGBA color. In scene files it is written as
// "#rrggbb" or "#rrggbbaa".
type Color color.NRGBA

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA(c).RGBA()
}

// NRGBA returns c as a color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA(c)
}

// Hex formats c as "#rrggbb", or "#rrggbbaa" when it is not opaque.
func (c Color) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	alpha := uint8(255)
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := cf.Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (any, error) {
	return c.Hex(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

// Palette holds the default furniture colors offered for new items.
var Palette = []Color{
	RGB(139, 69, 19),   // brown
	RGB(160, 82, 45),   // sienna
	RGB(210, 180, 140), // tan
	RGB(120, 80, 40),   // dark brown
	RGB(70, 130, 180),  // steel blue
	RGB(255, 200, 100), // gold
	RGB(34, 139, 34),   // forest green
	RGB(178, 34, 34),   // firebrick
}
