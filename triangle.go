package geom2d

import (
	"math"
	"sort"
)

// Triangle is three pairwise distinct vertices. Collinear vertices are
// allowed.
type Triangle struct {
	p0, p1, p2 Point
}

func MakeTriangle(p0, p1, p2 Point, precision int) (Triangle, error) {
	if p0.AlmostEquals(p1, precision) || p1.AlmostEquals(p2, precision) || p2.AlmostEquals(p0, precision) {
		return Triangle{}, constructionErrorf(KindTriangle, "vertices %v, %v, %v are not distinct", p0, p1, p2)
	}
	return Triangle{p0, p1, p2}, nil
}

func (t Triangle) Vertices() (Point, Point, Point) {
	return t.p0, t.p1, t.p2
}

// ToAxis returns the two edge vectors leaving the first vertex. They are the
// axes used by Contains, Location and Interpolate.
func (t Triangle) ToAxis() (Vector, Vector) {
	return t.p1.Sub(t.p0), t.p2.Sub(t.p0)
}

// Vertex-by-vertex comparison in order.
func (t Triangle) AlmostEquals(o Triangle, precision int) bool {
	return t.p0.AlmostEquals(o.p0, precision) &&
		t.p1.AlmostEquals(o.p1, precision) &&
		t.p2.AlmostEquals(o.p2, precision)
}

func (t Triangle) Centroid() Point {
	return Point{(t.p0.X + t.p1.X + t.p2.X) / 3, (t.p0.Y + t.p1.Y + t.p2.Y) / 3}
}

// SignedArea is positive when the vertices wind counterclockwise.
func (t Triangle) SignedArea() float64 {
	u, v := t.ToAxis()
	return u.Cross(v) / 2
}

func (t Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

func (t Triangle) Perimeter() float64 {
	var perimeter float64
	for _, edge := range t.edges() {
		perimeter += edge.Length()
	}
	return perimeter
}

// Contains projects p onto both axes and accepts when both fractions lie in
// [0, 1]. This is the parallelogram spanned by the axes, so some points
// outside the triangle near its third edge are accepted.
func (t Triangle) Contains(p Point, precision int) bool {
	u, v := t.ToAxis()
	w := p.Sub(t.p0)
	wu := w.Dot(u) / u.Dot(u)
	wv := w.Dot(v) / v.Dot(v)
	return RoundTo(wu, precision) >= 0 && RoundTo(wu-1, precision) <= 0 &&
		RoundTo(wv, precision) >= 0 && RoundTo(wv-1, precision) <= 0
}

// Location returns the coordinates (a, b) of p in the axes of ToAxis, so that
// Interpolate(a, b) is p again. Both are +Inf when p is not contained or the
// axes are parallel.
func (t Triangle) Location(p Point, precision int) (float64, float64) {
	u, v := t.ToAxis()
	det := u.Cross(v)
	if !t.Contains(p, precision) || AlmostZero(det, precision) {
		return math.Inf(1), math.Inf(1)
	}
	w := p.Sub(t.p0)
	return w.Cross(v) / det, u.Cross(w) / det
}

func (t Triangle) Interpolate(a, b float64) Point {
	u, v := t.ToAxis()
	return t.p0.Add(u.Scale(a)).Add(v.Scale(b))
}

func (t Triangle) DistanceTo(p Point, precision int) float64 {
	if t.Contains(p, precision) {
		return 0
	}
	dist := math.Inf(1)
	for _, edge := range t.edges() {
		dist = math.Min(dist, edge.DistanceTo(p, precision))
	}
	return dist
}

// Intersection clips other against the edges. A single distinct hit is a
// point; two hits are the chord between them, ordered along other.
func (t Triangle) Intersection(other Linear, precision int) Intersection {
	var hits []Point
	for _, edge := range t.edges() {
		if p, ok := edge.Intersection(other, precision); ok {
			hits = appendHit(hits, p, precision)
		}
	}
	if len(hits) != 2 {
		return pointsIntersection(hits)
	}

	c := other.carrier()
	sort.Slice(hits, func(i, j int) bool {
		return hits[i].Sub(c.origin).Dot(c.dir) < hits[j].Sub(c.origin).Dot(c.dir)
	})
	return Intersection{kind: SegmentIntersection, segment: LineSegment{p0: hits[0], p1: hits[1]}}
}

func (t Triangle) Intersects(other Linear, precision int) bool {
	return t.Intersection(other, precision).Ok()
}

// ToPolygon keeps the vertex order.
func (t Triangle) ToPolygon() Polygon {
	return Polygon{vertices: []Point{t.p0, t.p1, t.p2}}
}

func (t Triangle) edges() [3]LineSegment {
	return [3]LineSegment{{t.p0, t.p1}, {t.p1, t.p2}, {t.p2, t.p0}}
}

func (t Triangle) Kind() Kind { return KindTriangle }

func (t Triangle) ToWkt(precision int) string {
	return formatWkt(KindTriangle, false, precision, t.p0, t.p1, t.p2)
}

func (t Triangle) String() string {
	return t.ToWkt(DefaultPrecision)
}

func (t Triangle) ToFile(path string, precision int) error {
	return writeWkt(path, t, precision)
}

// TriangleFromWkt decodes "TRIANGLE (x0 y0, x1 y1, x2 y2)".
func TriangleFromWkt(text string) (Triangle, error) {
	lit, err := expectWkt(text, KindTriangle, 3)
	if err != nil {
		return Triangle{}, err
	}
	pts := lit.points()
	return MakeTriangle(pts[0], pts[1], pts[2], lit.Decimals)
}

func TriangleFromFile(path string) (Triangle, error) {
	text, err := readWkt(path)
	if err != nil {
		return Triangle{}, err
	}
	return TriangleFromWkt(text)
}
