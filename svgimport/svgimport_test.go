package svgimport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osuushi/geom2d"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shapes = `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100">
  <g id="layer">
    <polygon id="square" points="0,0 10,0 10,10 0,10"/>
    <polyline id="zigzag" points="0 0, 5 5, 10 0"/>
  </g>
  <line id="diagonal" x1="0" y1="0" x2="3px" y2="4"/>
  <circle cx="5" cy="5" r="2"/>
  <polygon id="broken" points="0,0 10"/>
</svg>`

func TestParse(t *testing.T) {
	logger, hook := test.NewNullLogger()
	geom2d.SetLogger(logger)
	t.Cleanup(func() { geom2d.SetLogger(nil) })

	geometries, err := Parse(strings.NewReader(shapes), Options{Precision: 3})
	require.NoError(t, err)
	require.Len(t, geometries, 3)

	square := geometries[0].(geom2d.Polygon)
	assert.Equal(t, "POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))", square.ToWkt(3))

	zigzag := geometries[1].(geom2d.Polyline)
	assert.Equal(t, "LINESTRING (0 0, 5 5, 10 0)", zigzag.ToWkt(3))

	diagonal := geometries[2].(geom2d.LineSegment)
	assert.Equal(t, 5.0, diagonal.Length())

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "broken", hook.LastEntry().Data["id"])
}

func TestParseFlipY(t *testing.T) {
	geometries, err := Parse(strings.NewReader(shapes), DefaultOptions)
	require.NoError(t, err)
	require.Len(t, geometries, 3)
	assert.Equal(t, "LINESTRING (0 0, 5 -5, 10 0)", geometries[1].ToWkt(3))
}

func TestParseInvalidDocument(t *testing.T) {
	_, err := Parse(strings.NewReader("<svg><polygon"), DefaultOptions)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapes.svg")
	require.NoError(t, os.WriteFile(path, []byte(shapes), 0o644))
	geometries, err := Load(path, DefaultOptions)
	require.NoError(t, err)
	assert.Len(t, geometries, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.svg"), DefaultOptions)
	var ioErr *geom2d.IOError
	assert.True(t, errors.As(err, &ioErr))
}

func TestParsePoints(t *testing.T) {
	points, err := parsePoints(" 1,2\n3 4 , 5,6 ", Options{})
	require.NoError(t, err)
	assert.Equal(t, []geom2d.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}, points)

	_, err = parsePoints("1,2 x,4", Options{})
	assert.Error(t, err)
}
