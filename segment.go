package geom2d

import "math"

// LineSegment is the bounded piece of a line between two distinct endpoints.
type LineSegment struct {
	p0, p1 Point
}

func MakeLineSegment(p0, p1 Point, precision int) (LineSegment, error) {
	if p0.AlmostEquals(p1, precision) {
		return LineSegment{}, constructionErrorf(KindLineSegment, "endpoints %v and %v coincide", p0, p1)
	}
	return LineSegment{p0: p0, p1: p1}, nil
}

func (s LineSegment) First() Point { return s.p0 }
func (s LineSegment) Last() Point  { return s.p1 }

// Vector is the displacement from First to Last.
func (s LineSegment) Vector() Vector {
	return s.p1.Sub(s.p0)
}

func (s LineSegment) Length() float64 {
	return s.Vector().Length()
}

func (s LineSegment) AlmostEquals(o LineSegment, precision int) bool {
	return s.p0.AlmostEquals(o.p0, precision) && s.p1.AlmostEquals(o.p1, precision)
}

// ToLine is the line supporting the segment.
func (s LineSegment) ToLine() Line {
	return Line{p0: s.p0, p1: s.p1, dir: s.Vector().Normalize()}
}

// Location is the signed position of p along the segment: 0 at First, 1 at
// Last, negative before First and above 1 past Last. It is +Inf when p is off
// the supporting line.
func (s LineSegment) Location(p Point, precision int) float64 {
	if !s.ToLine().Contains(p, precision) {
		return math.Inf(1)
	}
	w := p.Sub(s.p0)
	return Sign(w.Dot(s.Vector()), precision) * w.Length() / s.Length()
}

func (s LineSegment) Contains(p Point, precision int) bool {
	loc := s.Location(p, precision)
	if IsOffAxis(loc) {
		return false
	}
	return RoundTo(loc, precision) >= 0 && RoundTo(loc-1, precision) <= 0
}

// DistanceTo measures to the nearest point of the segment, which is an
// endpoint when the perpendicular foot falls outside it.
func (s LineSegment) DistanceTo(p Point, precision int) float64 {
	v := s.Vector()
	loc := p.Sub(s.p0).Dot(v) / v.Dot(v)
	switch {
	case loc < 0:
		return s.p0.DistanceTo(p, precision)
	case loc > 1:
		return s.p1.DistanceTo(p, precision)
	default:
		return s.ToLine().DistanceTo(p, precision)
	}
}

// Interpolate is the point at fraction pct of the way from First to Last,
// clamped to the endpoints.
func (s LineSegment) Interpolate(pct float64) Point {
	switch {
	case RoundTo(pct, DP9) < 0:
		return s.p0
	case RoundTo(pct, DP9) > 1:
		return s.p1
	default:
		return s.p0.Add(s.Vector().Scale(pct))
	}
}

func (s LineSegment) Intersection(other Linear, precision int) (Point, bool) {
	return intersect(s.carrier(), other.carrier(), precision)
}

func (s LineSegment) Intersects(other Linear, precision int) bool {
	_, ok := s.Intersection(other, precision)
	return ok
}

func (s LineSegment) carrier() carrier {
	return carrier{origin: s.p0, dir: s.Vector().Normalize(), within: s.Contains}
}

func (s LineSegment) Kind() Kind { return KindLineSegment }

func (s LineSegment) ToWkt(precision int) string {
	return formatWkt(KindLineSegment, false, precision, s.p0, s.p1)
}

func (s LineSegment) String() string {
	return s.ToWkt(DefaultPrecision)
}

func (s LineSegment) ToFile(path string, precision int) error {
	return writeWkt(path, s, precision)
}

// LineSegmentFromWkt decodes a two-vertex "LINESTRING (x0 y0, x1 y1)".
func LineSegmentFromWkt(text string) (LineSegment, error) {
	lit, err := expectWkt(text, KindLineSegment, 2)
	if err != nil {
		return LineSegment{}, err
	}
	pts := lit.points()
	return MakeLineSegment(pts[0], pts[1], lit.Decimals)
}

func LineSegmentFromFile(path string) (LineSegment, error) {
	text, err := readWkt(path)
	if err != nil {
		return LineSegment{}, err
	}
	return LineSegmentFromWkt(text)
}
