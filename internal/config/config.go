// Package config holds the viewer settings: built-in defaults overridden by
// an optional YAML file. The command line and GEOMVIEW_* environment
// variables are layered on top by geomview's flags.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/osuushi/geom2d"
	"github.com/osuushi/geom2d/render"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Viewport struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type Config struct {
	Precision   int      `yaml:"precision"`
	Viewport    Viewport `yaml:"viewport"`
	Width       int      `yaml:"width"`
	Height      int      `yaml:"height"`
	PointRadius float64  `yaml:"point_radius"`
	Labels      bool     `yaml:"labels"`
	// Imgcat prints rendered previews inline in the terminal.
	Imgcat bool `yaml:"imgcat"`
}

func Default() Config {
	return Config{
		Precision:   geom2d.DefaultPrecision,
		Viewport:    Viewport{Min: render.DefaultViewport.Min, Max: render.DefaultViewport.Max},
		Width:       render.DefaultOptions.Width,
		Height:      render.DefaultOptions.Height,
		PointRadius: render.DefaultOptions.PointRadius,
	}
}

// Load returns the defaults overlaid with the YAML file at path, if path is
// not empty.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return Config{}, &geom2d.IOError{Path: path, Err: errors.Wrap(err, "read config")}
		}
		if err := c.decode(content); err != nil {
			return Config{}, errors.Wrapf(err, "config %s", path)
		}
	}
	return c, c.Validate()
}

// Unknown keys are an error, so typos do not silently fall back to defaults.
func (c *Config) decode(content []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return errors.Wrap(err, "decode yaml")
	}
	return nil
}

func (c Config) Validate() error {
	switch {
	case c.Precision < 0 || c.Precision > geom2d.DP9:
		return errors.Errorf("precision %d out of range [0, %d]", c.Precision, geom2d.DP9)
	case c.Viewport.Max <= c.Viewport.Min:
		return errors.Errorf("empty viewport [%g, %g]", c.Viewport.Min, c.Viewport.Max)
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("invalid image size %dx%d", c.Width, c.Height)
	case c.PointRadius < 0:
		return errors.Errorf("negative point radius %g", c.PointRadius)
	}
	return nil
}

func (c Config) RenderViewport() render.Viewport {
	return render.Viewport{Min: c.Viewport.Min, Max: c.Viewport.Max}
}

func (c Config) RenderOptions() render.Options {
	return render.Options{
		Width:       c.Width,
		Height:      c.Height,
		Viewport:    c.RenderViewport(),
		PointRadius: c.PointRadius,
		Labels:      c.Labels,
		Precision:   c.Precision,
	}
}
