package scene

import (
	"fmt"
	"math"

	"github.com/taigrr/roomcraft/pkg/math3d"
)

// Default room dimensions in room units.
const (
	DefaultRoomWidth  = 500
	DefaultRoomLength = 400
	DefaultRoomHeight = 250
)

// Room describes the box the furniture sits in. The room is centred on the
// origin in x and z with the floor at y = 0.
type Room struct {
	Width   float64 `yaml:"width"`
	Length  float64 `yaml:"length"`
	Height  float64 `yaml:"height"`
	Shape   string  `yaml:"shape,omitempty"` // cosmetic: Rectangle, Square, L-Shape
	Floor   Color   `yaml:"floor"`
	Walls   Color   `yaml:"walls"`
	Ceiling Color   `yaml:"ceiling"`
}

// DefaultRoom returns a 500×400×250 rectangular room with a light grey
// floor and white walls and ceiling.
func DefaultRoom() Room {
	return Room{
		Width:   DefaultRoomWidth,
		Length:  DefaultRoomLength,
		Height:  DefaultRoomHeight,
		Shape:   "Rectangle",
		Floor:   RGB(240, 240, 240),
		Walls:   RGB(255, 255, 255),
		Ceiling: RGB(255, 255, 255),
	}
}

// Validate reports ErrInvalidRoom when any dimension is not a positive
// finite number.
func (r Room) Validate() error {
	for _, v := range [...]float64{r.Width, r.Length, r.Height} {
		if v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
			return fmt.Errorf("%w: %gx%gx%g", ErrInvalidRoom, r.Width, r.Length, r.Height)
		}
	}
	return nil
}

// Min returns the lowest corner of the room.
func (r Room) Min() math3d.Vec3 {
	return math3d.V3(-r.Width/2, 0, -r.Length/2)
}

// Max returns the highest corner of the room.
func (r Room) Max() math3d.Vec3 {
	return math3d.V3(r.Width/2, r.Height, r.Length/2)
}

// Lighting holds the scene-wide lighting controls.
type Lighting struct {
	Intensity float64 `yaml:"intensity"` // [0, 1]
	Shadow    float64 `yaml:"shadow"`    // [0, 1]
	Contrast  float64 `yaml:"contrast"`  // [0.5, 1.5]
	Ambient   Color   `yaml:"ambient"`
}

// DefaultLighting returns the warm default lighting.
func DefaultLighting() Lighting {
	return Lighting{
		Intensity: 0.8,
		Shadow:    0.5,
		Contrast:  1.0,
		Ambient:   RGB(255, 255, 220),
	}
}

// Clamped returns l with every control inside its documented range.
func (l Lighting) Clamped() Lighting {
	l.Intensity = math3d.Clamp(l.Intensity, 0, 1)
	l.Shadow = math3d.Clamp(l.Shadow, 0, 1)
	l.Contrast = math3d.Clamp(l.Contrast, 0.5, 1.5)
	return l
}
