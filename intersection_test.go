package geom2d

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersectionAccessors(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		var inter Intersection
		assert.False(t, inter.Ok())
		assert.Equal(t, "none", inter.Kind().String())
		_, ok := inter.Point()
		assert.False(t, ok)
		assert.Empty(t, inter.Points())
	})

	t.Run("point", func(t *testing.T) {
		inter := pointsIntersection([]Point{{1, 2}})
		assert.True(t, inter.Ok())
		p, ok := inter.Point()
		require.True(t, ok)
		assert.Equal(t, Point{1, 2}, p)
		_, ok = inter.MultiPoint()
		assert.False(t, ok)
		_, ok = inter.Segment()
		assert.False(t, ok)
	})

	t.Run("multipoint", func(t *testing.T) {
		inter := pointsIntersection([]Point{{1, 2}, {3, 4}})
		assert.Equal(t, MultiPointIntersection, inter.Kind())
		points, ok := inter.MultiPoint()
		require.True(t, ok)
		points[0] = Point{}
		assert.Equal(t, []Point{{1, 2}, {3, 4}}, inter.Points())
	})

	t.Run("segment", func(t *testing.T) {
		inter := Intersection{kind: SegmentIntersection, segment: LineSegment{Point{0, 0}, Point{1, 0}}}
		assert.Equal(t, "segment", inter.Kind().String())
		assert.Equal(t, []Point{{0, 0}, {1, 0}}, inter.Points())
	})

	assert.Equal(t, "unknown", IntersectionKind(42).String())
}

func TestAppendHit(t *testing.T) {
	var hits []Point
	hits = appendHit(hits, Point{1, 1}, DP3)
	hits = appendHit(hits, Point{1.0001, 1}, DP3)
	hits = appendHit(hits, Point{2, 1}, DP3)
	hits = appendHit(hits, Point{1, 1}, DP3)
	assert.Equal(t, []Point{{1, 1}, {2, 1}}, hits)
}

// Every pair of straight primitives must agree on whether and where they meet,
// whichever side asks.
func TestLinearIntersectionSymmetry(t *testing.T) {
	primitives := []Linear{
		mustLine(t, Point{0, -1}, Point{0, 1}),
		mustLine(t, Point{-1, 0}, Point{1, 0}),
		mustLine(t, Point{-3, -2}, Point{4, 5}),
		mustLine(t, Point{2, 0}, Point{2, 1}),
		mustRay(t, Point{-1, 1}, Vector{1, -1}),
		mustRay(t, Point{-1, -1}, Vector{1, 1}),
		mustRay(t, Point{-0.5, 0}, Vector{0, -1}),
		mustRay(t, Point{1, -0.5}, Vector{0, 1}),
		mustRay(t, Point{3, 3}, Vector{-2, 1}),
		mustSegment(t, Point{-1, -2}, Point{2, 1}),
		mustSegment(t, Point{1, 1}, Point{0, 1}),
		mustSegment(t, Point{-1, 0}, Point{-1, -1}),
		mustSegment(t, Point{-4, 2.5}, Point{3.5, -1.25}),
		mustSegment(t, Point{0, 0}, Point{0.25, 0.25}),
	}

	for i, a := range primitives {
		for j, b := range primitives {
			if i == j {
				continue
			}
			a, b := a, b
			t.Run(fmt.Sprintf("%s with %s", a.ToWkt(DP3), b.ToWkt(DP3)), func(t *testing.T) {
				assert.Equal(t, a.Intersects(b, DP3), b.Intersects(a, DP3))
				p, okA := a.Intersection(b, DP3)
				q, okB := b.Intersection(a, DP3)
				require.Equal(t, okA, okB)
				if okA {
					assertPointAlmostEqual(t, p, q, DP3)
					assert.True(t, a.Contains(p, DP3), "%v not on %v", p, a)
					assert.True(t, b.Contains(p, DP3), "%v not on %v", p, b)
				}
				assert.Equal(t, okA, a.Intersects(b, DP3))
			})
		}
	}
}

func TestKind(t *testing.T) {
	assert.Equal(t, "line segment", KindLineSegment.String())
	assert.Equal(t, "LINESTRING", KindLineSegment.Keyword())
	assert.Equal(t, "LINESTRING", KindPolyline.Keyword())
	assert.Equal(t, "TRIANGLE", KindTriangle.Keyword())
	assert.Equal(t, "unknown", Kind(-1).String())
	assert.Equal(t, "", Kind(99).Keyword())

	for _, g := range []Geometry{
		Point{}, Vector{}, Line{}, Ray{}, LineSegment{}, Polyline{}, Triangle{}, Polygon{},
	} {
		assert.NotEqual(t, "unknown", g.Kind().String())
	}
}
