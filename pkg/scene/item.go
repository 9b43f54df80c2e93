package scene

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/taigrr/roomcraft/pkg/math3d"
)

// Item is one piece of furniture: an axis-aligned box whose Position is its
// minimum corner.
type Item struct {
	ID           string      `yaml:"id"`
	Name         string      `yaml:"name"`
	Kind         Kind        `yaml:"kind,omitempty"`
	Position     math3d.Vec3 `yaml:"position"`
	Size         Dimensions  `yaml:"size"`
	Color        Color       `yaml:"color"`
	Material     string      `yaml:"material"`
	Reflectivity float64     `yaml:"reflectivity"`
	Roughness    float64     `yaml:"roughness"`

	// Rotation in degrees about the vertical axis. It is carried through
	// files and exports but not applied to box geometry.
	Rotation float64 `yaml:"rotation,omitempty"`
}

// DefaultItemColor is the wood brown given to catalog items.
var DefaultItemColor = RGB(139, 69, 19)

// NewItem creates a catalog item standing on the floor at (x, z).
func NewItem(kind Kind, x, z float64) Item {
	return Item{
		ID:           uuid.NewString(),
		Name:         kind.String(),
		Kind:         kind,
		Position:     math3d.V3(x, 0, z),
		Size:         kind.Dimensions(),
		Color:        DefaultItemColor,
		Material:     "wood",
		Reflectivity: 0.2,
		Roughness:    0.7,
	}
}

// FromPlan converts a footprint drawn in the top-down plan into a room item.
// Plan x maps to room x and plan y to room z, both re-centred on the room
// origin; the depth comes from the kind's plan rule.
func FromPlan(kind Kind, planX, planY, w, h float64, c Color) Item {
	it := NewItem(kind, planX-DefaultRoomWidth/2, planY-DefaultRoomLength/2)
	it.Size = Dimensions{Width: w, Height: h, Depth: kind.PlanDepth(w, h)}
	it.Color = c
	return it
}

// Min returns the minimum corner of the item box.
func (it Item) Min() math3d.Vec3 {
	return it.Position
}

// Max returns the maximum corner of the item box.
func (it Item) Max() math3d.Vec3 {
	return it.Position.Add(math3d.V3(it.Size.Width, it.Size.Height, it.Size.Depth))
}

// Move offsets the item position.
func (it *Item) Move(dx, dy, dz float64) {
	it.Position = it.Position.Add(math3d.V3(dx, dy, dz))
}

// Scale multiplies every dimension by factor.
func (it *Item) Scale(factor float64) {
	it.Size.Width *= factor
	it.Size.Height *= factor
	it.Size.Depth *= factor
}

// String implements fmt.Stringer.
func (it Item) String() string {
	return fmt.Sprintf("%s [%gx%gx%g] at (%g,%g,%g)",
		it.Name, it.Size.Width, it.Size.Height, it.Size.Depth,
		it.Position.X, it.Position.Y, it.Position.Z)
}
