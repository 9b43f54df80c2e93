package render

import "image"

// InteractionState is the pointer state of the view.
type InteractionState int

const (
	Idle InteractionState = iota
	Orbiting
)

func (s InteractionState) String() string {
	if s == Orbiting {
		return "orbiting"
	}
	return "idle"
}

// Interaction turns raw pointer events into camera changes. A press starts
// an orbit, drags while orbiting rotate the camera and a release ends it.
// Wheel events zoom immediately in either state.
type Interaction struct {
	frame *Frame
	state InteractionState
	last  image.Point
}

// NewInteraction creates an idle interaction driving f.
func NewInteraction(f *Frame) *Interaction {
	return &Interaction{frame: f}
}

// State returns the current pointer state.
func (in *Interaction) State() InteractionState {
	return in.state
}

// Press begins an orbit at p.
func (in *Interaction) Press(p image.Point) {
	in.state = Orbiting
	in.last = p
}

// Move orbits by the distance from the previous pointer position. It is
// ignored while idle.
func (in *Interaction) Move(p image.Point) {
	if in.state != Orbiting {
		return
	}
	d := p.Sub(in.last)
	in.last = p
	if d == (image.Point{}) {
		return
	}
	in.frame.OnOrbitDrag(float64(d.X), float64(d.Y))
}

// Release ends an orbit.
func (in *Interaction) Release(image.Point) {
	in.state = Idle
}

// Wheel zooms by one step in the direction of rotation.
func (in *Interaction) Wheel(rotation int) {
	if rotation == 0 {
		return
	}
	in.frame.OnZoom(WheelDirection(rotation))
}
