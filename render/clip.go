package render

import (
	"sort"

	"github.com/osuushi/geom2d"
)

// box returns the viewport as a counterclockwise square.
func (v Viewport) box() geom2d.Polygon {
	poly, _ := geom2d.MakePolygon([]geom2d.Point{
		{X: v.Min, Y: v.Min},
		{X: v.Max, Y: v.Min},
		{X: v.Max, Y: v.Max},
		{X: v.Min, Y: v.Max},
	}, geom2d.DP9)
	return poly
}

// Clip cuts an unbounded line or ray down to the part that is visible in the
// viewport. It returns false when nothing of l is visible.
func Clip(l geom2d.Linear, viewport Viewport) (geom2d.LineSegment, bool) {
	const precision = geom2d.DP6
	box := viewport.box()

	var hits []geom2d.Point
	add := func(p geom2d.Point) {
		for _, h := range hits {
			if h.AlmostEquals(p, precision) {
				return
			}
		}
		hits = append(hits, p)
	}
	if r, ok := l.(geom2d.Ray); ok && box.Contains(r.Origin(), precision) {
		add(r.Origin())
	}
	for _, edge := range box.Edges() {
		if p, ok := l.Intersection(edge, precision); ok {
			add(p)
		}
	}
	if len(hits) < 2 {
		return geom2d.LineSegment{}, false
	}

	dir := direction(l)
	sort.Slice(hits, func(i, j int) bool {
		return hits[i].ToVector().Dot(dir) < hits[j].ToVector().Dot(dir)
	})
	segment, err := geom2d.MakeLineSegment(hits[0], hits[len(hits)-1], precision)
	if err != nil {
		return geom2d.LineSegment{}, false
	}
	return segment, true
}

func direction(l geom2d.Linear) geom2d.Vector {
	switch l := l.(type) {
	case geom2d.Line:
		return l.Direction()
	case geom2d.Ray:
		return l.Direction()
	case geom2d.LineSegment:
		return l.Vector()
	}
	return geom2d.Vector{X: 1}
}
