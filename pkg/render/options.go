package render

// RenderOptions toggles optional parts of a frame.
type RenderOptions struct {
	Shadows     bool // floor shadow beneath each item
	Wireframe   bool // x-ray edges on every item
	HideCeiling bool
}

// DefaultRenderOptions draws shadows and the ceiling, without x-ray edges.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Shadows: true}
}
