package main

import (
	"github.com/spf13/pflag"
	"github.com/taigrr/roomcraft/internal/config"
	"github.com/taigrr/roomcraft/pkg/render"
)

// overrides are the settings flags. Only flags given on the command line
// replace values from the settings file.
type overrides struct {
	fps         int
	background  string
	width       int
	height      int
	supersample int
	shadows     bool
	wireframe   bool
	hideCeiling bool
}

func (o *overrides) registerLook(fs *pflag.FlagSet) {
	d := config.Default()
	fs.StringVar(&o.background, "bg", d.Background, "Background color (#rrggbb)")
	fs.BoolVar(&o.shadows, "shadows", d.Shadows, "Draw floor shadows under items")
	fs.BoolVar(&o.wireframe, "wireframe", d.Wireframe, "Outline every box edge (x-ray)")
	fs.BoolVar(&o.hideCeiling, "hide-ceiling", d.HideCeiling, "Leave out the ceiling")
}

func (o *overrides) registerSize(fs *pflag.FlagSet) {
	d := config.Default()
	fs.IntVar(&o.width, "width", d.Width, "Image width in pixels")
	fs.IntVar(&o.height, "height", d.Height, "Image height in pixels")
}

func (o *overrides) registerTerminal(fs *pflag.FlagSet) {
	d := config.Default()
	fs.IntVar(&o.fps, "fps", d.FPS, "Target FPS")
	fs.IntVar(&o.supersample, "supersample", d.Supersample, "Oversampling per half-block pixel")
}

// apply copies changed flags over cfg and validates the result.
func (o *overrides) apply(fs *pflag.FlagSet, cfg config.Config) (config.Config, error) {
	set := func(name string, fn func()) {
		if f := fs.Lookup(name); f != nil && f.Changed {
			fn()
		}
	}
	set("fps", func() { cfg.FPS = o.fps })
	set("bg", func() { cfg.Background = o.background })
	set("width", func() { cfg.Width = o.width })
	set("height", func() { cfg.Height = o.height })
	set("supersample", func() { cfg.Supersample = o.supersample })
	set("shadows", func() { cfg.Shadows = o.shadows })
	set("wireframe", func() { cfg.Wireframe = o.wireframe })
	set("hide-ceiling", func() { cfg.HideCeiling = o.hideCeiling })
	return cfg, cfg.Validate()
}

// cameraFlags set the initial view of a frame.
type cameraFlags struct {
	pitch, yaw, zoom float64
}

func (c *cameraFlags) register(fs *pflag.FlagSet) {
	fs.Float64Var(&c.pitch, "pitch", render.DefaultPitch, "Camera pitch in degrees")
	fs.Float64Var(&c.yaw, "yaw", render.DefaultYaw, "Camera yaw in degrees")
	fs.Float64Var(&c.zoom, "zoom", render.DefaultZoom, "Camera zoom factor")
}

func (c *cameraFlags) apply(cam *render.Camera) {
	cam.SetView(c.pitch, c.yaw, c.zoom)
}
