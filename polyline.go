package geom2d

import (
	"math"

	"github.com/osuushi/geom2d/internal/wkt"
)

// Polyline is a chain of at least two knots. Adjacent duplicates and interior
// collinear knots are removed when it is made. The zero Polyline is empty: it
// has no segments, zero length, and contains nothing.
type Polyline struct {
	knots []Point
}

func MakePolyline(points []Point, precision int) (Polyline, error) {
	knots := RemoveCollinear(RemoveDuplicates(points, precision), precision)
	if len(knots) < 2 {
		return Polyline{}, constructionErrorf(KindPolyline, "needs 2 distinct knots, got %d", len(knots))
	}
	return Polyline{knots: knots}, nil
}

// Knots returns a copy of the knots.
func (pl Polyline) Knots() []Point {
	return append([]Point(nil), pl.knots...)
}

func (pl Polyline) IsEmpty() bool { return len(pl.knots) == 0 }

func (pl Polyline) Size() int { return len(pl.knots) }

// First and Last are the end knots, or the origin for an empty polyline.
func (pl Polyline) First() Point {
	if pl.IsEmpty() {
		return Point{}
	}
	return pl.knots[0]
}

func (pl Polyline) Last() Point {
	if pl.IsEmpty() {
		return Point{}
	}
	return pl.knots[len(pl.knots)-1]
}

// ToSegments returns the Size()-1 segments between consecutive knots.
func (pl Polyline) ToSegments() []LineSegment {
	if len(pl.knots) < 2 {
		return nil
	}
	segments := make([]LineSegment, 0, len(pl.knots)-1)
	for i := 1; i < len(pl.knots); i++ {
		segments = append(segments, LineSegment{p0: pl.knots[i-1], p1: pl.knots[i]})
	}
	return segments
}

func (pl Polyline) Length() float64 {
	var length float64
	for _, s := range pl.ToSegments() {
		length += s.Length()
	}
	return length
}

// Knot-by-knot comparison. Both polylines must have the same size.
func (pl Polyline) AlmostEquals(o Polyline, precision int) bool {
	if len(pl.knots) != len(o.knots) {
		return false
	}
	for i := range pl.knots {
		if !pl.knots[i].AlmostEquals(o.knots[i], precision) {
			return false
		}
	}
	return true
}

func (pl Polyline) Contains(p Point, precision int) bool {
	for _, s := range pl.ToSegments() {
		if s.Contains(p, precision) {
			return true
		}
	}
	return false
}

func (pl Polyline) DistanceTo(p Point, precision int) float64 {
	dist := math.Inf(1)
	for _, s := range pl.ToSegments() {
		dist = math.Min(dist, s.DistanceTo(p, precision))
	}
	return dist
}

// Location is a fraction of the total length, not an absolute arc length: 0 at
// the first knot, 1 at the last, and the arc length walked to p divided by
// Length() in between. Points on the extension behind the first segment are
// negative and points on the extension past the last segment are above 1.
// Anything else off the polyline, and every point for an empty polyline, is
// +Inf.
func (pl Polyline) Location(p Point, precision int) float64 {
	segments := pl.ToSegments()
	if len(segments) == 0 {
		return math.Inf(1)
	}
	total := pl.Length()

	var walked float64
	for _, s := range segments {
		if s.Contains(p, precision) {
			return (walked + s.Location(p, precision)*s.Length()) / total
		}
		walked += s.Length()
	}

	first := segments[0]
	if loc := first.Location(p, precision); !IsOffAxis(loc) && loc < 0 {
		return loc * first.Length() / total
	}
	last := segments[len(segments)-1]
	if loc := last.Location(p, precision); !IsOffAxis(loc) && loc > 1 {
		return (total - last.Length() + loc*last.Length()) / total
	}
	return math.Inf(1)
}

// Interpolate is the point at fraction pct of the total length, clamped to the
// end knots. An empty polyline interpolates to the origin.
func (pl Polyline) Interpolate(pct float64) Point {
	switch {
	case RoundTo(pct, DP9) <= 0:
		return pl.First()
	case RoundTo(pct, DP9) >= 1:
		return pl.Last()
	}

	target := pct * pl.Length()
	var walked float64
	for _, s := range pl.ToSegments() {
		length := s.Length()
		if walked+length >= target {
			return s.Interpolate((target - walked) / length)
		}
		walked += length
	}
	return pl.Last()
}

// Intersection collects every point where other crosses one of the segments.
func (pl Polyline) Intersection(other Linear, precision int) Intersection {
	var hits []Point
	for _, s := range pl.ToSegments() {
		if p, ok := s.Intersection(other, precision); ok {
			hits = appendHit(hits, p, precision)
		}
	}
	return pointsIntersection(hits)
}

func (pl Polyline) Intersects(other Linear, precision int) bool {
	return pl.Intersection(other, precision).Ok()
}

// IntersectionPolyline tests every pair of segments, in order along pl.
func (pl Polyline) IntersectionPolyline(other Polyline, precision int) Intersection {
	var hits []Point
	for _, s := range pl.ToSegments() {
		for _, o := range other.ToSegments() {
			if p, ok := s.Intersection(o, precision); ok {
				hits = appendHit(hits, p, precision)
			}
		}
	}
	return pointsIntersection(hits)
}

func (pl Polyline) IntersectsPolyline(other Polyline, precision int) bool {
	return pl.IntersectionPolyline(other, precision).Ok()
}

func (pl Polyline) Kind() Kind { return KindPolyline }

// ToWkt gives "LINESTRING EMPTY" for an empty polyline.
func (pl Polyline) ToWkt(precision int) string {
	if pl.IsEmpty() {
		return wkt.FormatEmpty(KindPolyline.Keyword())
	}
	return formatWkt(KindPolyline, false, precision, pl.knots...)
}

func (pl Polyline) String() string {
	return pl.ToWkt(DefaultPrecision)
}

func (pl Polyline) ToFile(path string, precision int) error {
	return writeWkt(path, pl, precision)
}

// PolylineFromWkt decodes "LINESTRING (x0 y0, x1 y1, ...)" or
// "LINESTRING EMPTY". Duplicates and collinear knots are removed at the
// literal's own decimal precision.
func PolylineFromWkt(text string) (Polyline, error) {
	lit, err := expectWkt(text, KindPolyline, -2)
	if err != nil {
		return Polyline{}, err
	}
	if lit.Empty {
		return Polyline{}, nil
	}
	return MakePolyline(lit.points(), lit.Decimals)
}

func PolylineFromFile(path string) (Polyline, error) {
	text, err := readWkt(path)
	if err != nil {
		return Polyline{}, err
	}
	return PolylineFromWkt(text)
}
