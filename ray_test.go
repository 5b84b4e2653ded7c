package geom2d

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeRay(t *testing.T) {
	r1, err := MakeRay(Point{}, Vector{1, 0}, DP3)
	require.NoError(t, err)
	assert.Equal(t, Point{}, r1.Origin())
	assert.Equal(t, Vector{1, 0}, r1.Direction())

	r2, err := MakeRay(Point{}, Vector{0, 5}, DP3)
	require.NoError(t, err)
	assert.Equal(t, Vector{0, 1}, r2.Direction())

	_, err = MakeRay(Point{}, Vector{0, 0}, DP3)
	assert.True(t, IsConstructionError(err))

	t.Run("through a point", func(t *testing.T) {
		r, err := MakeRayThrough(Point{1, 1}, Point{1, 3}, DP3)
		require.NoError(t, err)
		assert.Equal(t, Vector{0, 1}, r.Direction())

		_, err = MakeRayThrough(Point{1, 1}, Point{1, 1.0001}, DP3)
		assert.True(t, IsConstructionError(err))
	})
}

func TestRayContains(t *testing.T) {
	r1 := mustRay(t, Point{}, Vector{1, 0})
	for _, p := range []Point{{0, 0}, {1, 0}, {30, 0}} {
		assert.True(t, r1.Contains(p, DP3), p)
	}
	for _, p := range []Point{{1, 1}, {1, -1}, {-1, 0}, {-1, 1}, {-1, -1}} {
		assert.False(t, r1.Contains(p, DP3), p)
	}
}

func TestRayAheadBehind(t *testing.T) {
	r1 := mustRay(t, Point{}, Vector{1, 0})
	for _, p := range []Point{{1, 0}, {1, 1}, {1, -1}, {0, 1}, {0, -1}} {
		assert.True(t, r1.IsAhead(p, DP3), p)
		assert.False(t, r1.IsBehind(p, DP3), p)
	}
	for _, p := range []Point{{-1, 0}, {-1, 1}, {-1, -1}} {
		assert.False(t, r1.IsAhead(p, DP3), p)
		assert.True(t, r1.IsBehind(p, DP3), p)
	}
}

func TestRayMeasurements(t *testing.T) {
	r := mustRay(t, Point{}, Vector{1, 0})
	assert.Equal(t, 2.0, r.DistanceTo(Point{5, 2}, DP3))
	assert.Equal(t, 5.0, r.DistanceTo(Point{-3, 4}, DP3))

	assert.Equal(t, 5.0, r.Location(Point{5, 0}, DP3))
	assert.Equal(t, -3.0, r.Location(Point{-3, 0}, DP3))
	assert.True(t, math.IsInf(r.Location(Point{5, 2}, DP3), 1))

	line := r.ToLine()
	assert.Equal(t, Point{}, line.Origin())
	assert.Equal(t, Point{1, 0}, line.Last())
}

func TestRayIntersection(t *testing.T) {
	r1 := mustRay(t, Point{-1, 1}, Vector{1, -1})
	r2 := mustRay(t, Point{-1, -1}, Vector{1, 1})
	r3 := mustRay(t, Point{-0.5, 0}, Vector{0, -1})
	r4 := mustRay(t, Point{1, -0.5}, Vector{0, 1})

	assertLinearHit(t, r1, r2, Point{0, 0})
	assertLinearMiss(t, r1, r3)
	assertLinearMiss(t, r1, r4)
	assertLinearHit(t, r2, r3, Point{-0.5, -0.5})
	assertLinearHit(t, r2, r4, Point{1, 1})

	t.Run("with lines", func(t *testing.T) {
		x := mustLineDir(t, Point{}, Vector{1, 0})
		y := mustLineDir(t, Point{}, Vector{0, 1})
		r5 := mustRay(t, Point{1, -1}, Vector{1, 1})

		assertLinearHit(t, r1, x, Point{0, 0})
		assertLinearHit(t, r1, y, Point{0, 0})
		assertLinearHit(t, r5, x, Point{2, 0})
		assertLinearMiss(t, r5, y)
	})

	t.Run("with segments", func(t *testing.T) {
		s1 := mustSegment(t, Point{-1, 0}, Point{1, 0})
		s2 := mustSegment(t, Point{1, 0}, Point{3, 0})
		assertLinearHit(t, r1, s1, Point{0, 0})
		assertLinearMiss(t, r1, s2)
	})

	t.Run("origin on the other ray", func(t *testing.T) {
		r5 := mustRay(t, Point{0, 0}, Vector{0, 1})
		assertLinearHit(t, r2, r5, Point{0, 0})
	})
}

func TestRayWkt(t *testing.T) {
	r := mustRay(t, Point{1.5, -2}, Vector{3, 4})
	assert.Equal(t, "RAY (1.5 -2, 0.6 0.8)", r.ToWkt(DP3))

	decoded, err := RayFromWkt("ray ( 1.5 -2 , 0.6 0.8 )")
	require.NoError(t, err)
	assert.True(t, r.AlmostEquals(decoded, DP6))

	for _, text := range []string{"RAY (0 0)", "RAY (0 0, 1 1, 2 2)", "LINE (0 0, 1 1)", "RAY ()"} {
		_, err := RayFromWkt(text)
		assert.True(t, IsParseError(err), text)
	}

	_, err = RayFromWkt("RAY (1 1, 0 0)")
	assert.True(t, IsConstructionError(err))
}

func TestRayFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ray.wkt")
	r := mustRay(t, Point{-3.25, 8}, Vector{-1, 2})

	require.NoError(t, r.ToFile(path, DP6))
	fromFile, err := RayFromFile(path)
	require.NoError(t, err)
	assert.True(t, r.AlmostEquals(fromFile, 5))
}

// Helpers

func mustRay(t *testing.T, origin Point, dir Vector) Ray {
	t.Helper()
	r, err := MakeRay(origin, dir, DP6)
	require.NoError(t, err)
	return r
}

// assertLinearHit checks both argument orders.
func assertLinearHit(t *testing.T, a, b Linear, expected Point) {
	t.Helper()
	assert.True(t, a.Intersects(b, DP3), "%v should intersect %v", a, b)
	assert.True(t, b.Intersects(a, DP3), "%v should intersect %v", b, a)
	p, ok := a.Intersection(b, DP3)
	if assert.True(t, ok) {
		assertPointAlmostEqual(t, expected, p, DP3)
	}
	q, ok := b.Intersection(a, DP3)
	if assert.True(t, ok) {
		assertPointAlmostEqual(t, expected, q, DP3)
	}
}

func assertLinearMiss(t *testing.T, a, b Linear) {
	t.Helper()
	assert.False(t, a.Intersects(b, DP3), "%v should not intersect %v", a, b)
	assert.False(t, b.Intersects(a, DP3), "%v should not intersect %v", b, a)
	_, ok := a.Intersection(b, DP3)
	assert.False(t, ok)
	_, ok = b.Intersection(a, DP3)
	assert.False(t, ok)
}
