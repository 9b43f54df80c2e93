// Package config loads the roomcraft settings file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/taigrr/roomcraft/pkg/render"
	"github.com/taigrr/roomcraft/pkg/scene"
)

// Config holds viewer and render settings. Zero values are never used
// directly; Default fills every field.
type Config struct {
	FPS         int    `toml:"fps"`
	Background  string `toml:"background"`
	Width       int    `toml:"width"` // render and export raster size
	Height      int    `toml:"height"`
	Supersample int    `toml:"supersample"` // terminal oversampling before downscale
	Shadows     bool   `toml:"shadows"`
	Wireframe   bool   `toml:"wireframe"`
	HideCeiling bool   `toml:"hide_ceiling"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		FPS:         30,
		Background:  "#1e1e28",
		Width:       800,
		Height:      600,
		Supersample: 2,
		Shadows:     true,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/roomcraft/config.toml or the
// platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(dir, "roomcraft", "config.toml"), nil
}

// Decode reads TOML over the defaults. Unknown keys are an error.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("decode config: %s", strict.String())
		}
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the file at path. When optional is set a missing file yields
// the defaults.
func Load(path string, optional bool) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and the background color.
func (c Config) Validate() error {
	switch {
	case c.FPS < 1 || c.FPS > 240:
		return fmt.Errorf("fps %d out of range [1, 240]", c.FPS)
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	case c.Supersample < 1 || c.Supersample > 8:
		return fmt.Errorf("supersample %d out of range [1, 8]", c.Supersample)
	}
	if _, err := scene.ParseColor(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	return nil
}

// BackgroundColor returns the parsed background. Validate has already
// rejected unparsable values, so the fallback is the default background.
func (c Config) BackgroundColor() scene.Color {
	bg, err := scene.ParseColor(c.Background)
	if err != nil {
		bg, _ = scene.ParseColor(Default().Background)
	}
	return bg
}

// RenderOptions returns the frame toggles.
func (c Config) RenderOptions() render.RenderOptions {
	return render.RenderOptions{
		Shadows:     c.Shadows,
		Wireframe:   c.Wireframe,
		HideCeiling: c.HideCeiling,
	}
}
