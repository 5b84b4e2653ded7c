package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/osuushi/geom2d"
	"github.com/osuushi/geom2d/render"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.NoError(t, c.Validate())
	assert.Equal(t, 3, c.Precision)
	assert.Equal(t, render.DefaultOptions.Width, c.Width)
	assert.Equal(t, render.DefaultViewport, c.RenderViewport())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geomview.yaml")
	require.NoError(t, os.WriteFile(path, []byte("precision: 2\nviewport:\n  min: -5\n  max: 5\nlabels: true\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Precision)
	assert.Equal(t, Viewport{Min: -5, Max: 5}, c.Viewport)
	assert.True(t, c.Labels)
	// Unset keys keep their defaults.
	assert.Equal(t, 600, c.Height)

	opts := c.RenderOptions()
	assert.Equal(t, render.Viewport{Min: -5, Max: 5}, opts.Viewport)
	assert.Equal(t, 2, opts.Precision)
	assert.True(t, opts.Labels)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	var ioErr *geom2d.IOError
	assert.True(t, errors.As(err, &ioErr))

	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("precison: 2\n"), 0o644))
	_, err = Load(unknown)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("viewport:\n  min: 1\n  max: 1\n"), 0o644))
	_, err = Load(invalid)
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	c, err := Load(empty)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestValidate(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"Negative precision": func(c *Config) { c.Precision = -1 },
		"Huge precision":     func(c *Config) { c.Precision = 12 },
		"Inverted viewport":  func(c *Config) { c.Viewport = Viewport{Min: 1, Max: -1} },
		"Zero width":         func(c *Config) { c.Width = 0 },
		"Negative radius":    func(c *Config) { c.PointRadius = -1 },
	} {
		c := Default()
		mutate(&c)
		assert.Error(t, c.Validate(), name)
	}
}
