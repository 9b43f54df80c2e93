package scene

import (
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// Dimensions is the size of a furniture box in room units.
type Dimensions struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Depth  float64 `yaml:"depth"`
}

// Kind is a furniture type from the catalog. KindCustom marks items whose
// dimensions were entered by hand.
type Kind int

const (
	KindCustom Kind = iota
	KindDiningTable
	KindChair
	KindSofa
	KindCoffeeTable
	KindBed
	KindWardrobe
	KindBookshelf
	KindDesk
	KindCabinet
	KindLamp
)

type catalogEntry struct {
	name string
	dims Dimensions
	// planDepth derives a depth from the plan footprint (width, height) when
	// an item is dropped from the top-down editor.
	planDepth func(w, h float64) float64
}

func halfWidth(w, _ float64) float64  { return math.Trunc(w / 2) }
func thirdWidth(w, _ float64) float64 { return math.Trunc(w / 3) }

var catalog = map[Kind]catalogEntry{
	KindCustom:      {"Custom", Dimensions{60, 30, 60}, halfWidth},
	KindDiningTable: {"Dining Table", Dimensions{120, 30, 80}, halfWidth},
	KindChair:       {"Chair", Dimensions{40, 45, 40}, func(w, _ float64) float64 { return w }},
	KindSofa:        {"Sofa", Dimensions{180, 40, 80}, thirdWidth},
	KindCoffeeTable: {"Coffee Table", Dimensions{100, 20, 60}, halfWidth},
	KindBed:         {"Bed", Dimensions{160, 30, 200}, func(_, h float64) float64 { return math.Trunc(h / 4) }},
	KindWardrobe:    {"Wardrobe", Dimensions{100, 200, 60}, halfWidth},
	KindBookshelf:   {"Bookshelf", Dimensions{80, 180, 30}, thirdWidth},
	KindDesk:        {"Desk", Dimensions{120, 75, 60}, halfWidth},
	KindCabinet:     {"Cabinet", Dimensions{80, 100, 40}, halfWidth},
	KindLamp:        {"Lamp", Dimensions{30, 100, 30}, halfWidth},
}

// Kinds returns every catalog kind except KindCustom, in catalog order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(catalog)-1)
	for k := KindDiningTable; k <= KindLamp; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// String returns the display name of the kind.
func (k Kind) String() string {
	if e, ok := catalog[k]; ok {
		return e.name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Dimensions returns the default box size for the kind.
func (k Kind) Dimensions() Dimensions {
	return catalog[k].dims
}

// PlanDepth returns the depth assigned to a plan footprint of the given
// width and height.
func (k Kind) PlanDepth(w, h float64) float64 {
	e, ok := catalog[k]
	if !ok {
		e = catalog[KindCustom]
	}
	return e.planDepth(w, h)
}

// ParseKind resolves a display name such as "Coffee Table", "coffee-table"
// or "coffeetable" to its kind.
func ParseKind(name string) (Kind, error) {
	key := normalizeKind(name)
	for k, e := range catalog {
		if normalizeKind(e.name) == key {
			return k, nil
		}
	}
	return KindCustom, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

func normalizeKind(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}

// MarshalYAML implements yaml.Marshaler.
func (k Kind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*k = parsed
	return nil
}
