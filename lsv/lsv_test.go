package lsv

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osuushi/geom2d"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderSkipsCommentsAndBadLines(t *testing.T) {
	hook := captureLogs(t)
	r := NewReader(strings.NewReader("# initial geometries\nPOINT (1 2)\nLINE (bad)\n"))

	require.True(t, r.HasNext())
	g, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, geom2d.Point{X: 1, Y: 2}, g)

	assert.False(t, r.HasNext())
	g, ok = r.Next()
	assert.False(t, ok)
	assert.Nil(t, g)
	assert.NoError(t, r.Err())
	assert.Equal(t, 1, r.Skipped())
	assert.Equal(t, 3, r.Line())

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, 3, entry.Data["line"])
	assert.Equal(t, "LINE (bad)", entry.Data["text"])
	assert.Error(t, entry.Data["error"].(error))
}

func TestReaderHasNextIsIdempotent(t *testing.T) {
	r := NewReader(strings.NewReader("POINT (1 2)\n\n   \nPOINT (3 4)"))
	assert.True(t, r.HasNext())
	assert.True(t, r.HasNext())

	all, err := ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, []geom2d.Geometry{geom2d.Point{X: 1, Y: 2}, geom2d.Point{X: 3, Y: 4}}, all)
	assert.Equal(t, 0, r.Skipped())
}

func TestDecode(t *testing.T) {
	t.Run("Dispatches on keyword", func(t *testing.T) {
		for _, tc := range []struct {
			text string
			kind geom2d.Kind
		}{
			{"POINT (1 2)", geom2d.KindPoint},
			{"  point(1 2)  ", geom2d.KindPoint},
			{"VECTOR (3 4)", geom2d.KindVector},
			{"LINE (0 0, 1 1)", geom2d.KindLine},
			{"RAY (0 0, 1 0)", geom2d.KindRay},
			{"LINESTRING (0 0, 1 1)", geom2d.KindLineSegment},
			{"LINESTRING (0 0, 1 1, 2 0)", geom2d.KindPolyline},
			{"TRIANGLE (0 0, 1 0, 0 1)", geom2d.KindTriangle},
			{"POLYGON ((0 0, 1 0, 1 1, 0 0))", geom2d.KindPolygon},
			{"POLYGON EMPTY", geom2d.KindPolygon},
			{"LINESTRING EMPTY", geom2d.KindPolyline},
		} {
			g, err := Decode(tc.text)
			require.NoError(t, err, tc.text)
			assert.Equal(t, tc.kind, g.Kind(), tc.text)
		}
	})

	t.Run("Collapsing linestring is a polyline", func(t *testing.T) {
		g, err := Decode("LINESTRING (0 0, 1 0, 2 0)")
		require.NoError(t, err)
		polyline := g.(geom2d.Polyline)
		assert.Equal(t, 2, polyline.Size())
	})

	t.Run("Unknown keyword", func(t *testing.T) {
		g, err := Decode("CIRCLE (0 0, 1)")
		assert.Nil(t, g)
		assert.True(t, errors.Is(err, ErrUnknownGeometry))
	})

	t.Run("Malformed literal", func(t *testing.T) {
		g, err := Decode("LINE (bad)")
		assert.Nil(t, g)
		assert.True(t, geom2d.IsParseError(err))
	})

	t.Run("Degenerate literal", func(t *testing.T) {
		g, err := Decode("LINESTRING (1 1, 1 1)")
		assert.Nil(t, g)
		assert.True(t, geom2d.IsConstructionError(err))
	})
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "initial_geometries.lsv")
	var buf bytes.Buffer
	segment, err := geom2d.MakeLineSegment(geom2d.Point{X: -5, Y: -5}, geom2d.Point{X: 5, Y: 5}, geom2d.DefaultPrecision)
	require.NoError(t, err)
	ray, err := geom2d.MakeRay(geom2d.Point{}, geom2d.Vector{X: 0, Y: 2}, geom2d.DefaultPrecision)
	require.NoError(t, err)
	require.NoError(t, Write(&buf, 3, geom2d.Point{X: 1.5, Y: -2}, segment, ray))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	all, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, geom2d.Point{X: 1.5, Y: -2}, all[0])
	assert.True(t, segment.AlmostEquals(all[1].(geom2d.LineSegment), 3))
	assert.True(t, ray.AlmostEquals(all[2].(geom2d.Ray), 3))

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.lsv"))
	var ioErr *geom2d.IOError
	assert.True(t, errors.As(err, &ioErr))
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, 2, geom2d.Point{X: 56491.6164, Y: -795.97416}, geom2d.Vector{X: 1, Y: 0}))
	assert.Equal(t, "POINT (56491.62 -795.97)\nVECTOR (1 0)\n", buf.String())
}

// Helpers

func captureLogs(t *testing.T) *test.Hook {
	logger, hook := test.NewNullLogger()
	geom2d.SetLogger(logger)
	t.Cleanup(func() { geom2d.SetLogger(nil) })
	return hook
}
