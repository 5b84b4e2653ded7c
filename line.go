package geom2d

import "math"

// Line is the infinite line through two distinct points.
type Line struct {
	p0, p1 Point
	dir    Vector
}

// MakeLine builds the line through p0 and p1. The points must differ at
// precision.
func MakeLine(p0, p1 Point, precision int) (Line, error) {
	if p0.AlmostEquals(p1, precision) {
		return Line{}, constructionErrorf(KindLine, "points %v and %v coincide", p0, p1)
	}
	return Line{p0: p0, p1: p1, dir: p1.Sub(p0).Normalize()}, nil
}

// MakeLineDir builds the line through origin along dir. The second defining
// point is origin+dir.
func MakeLineDir(origin Point, dir Vector, precision int) (Line, error) {
	if AlmostZero(dir.Length(), precision) {
		return Line{}, constructionErrorf(KindLine, "direction %v has zero length", dir)
	}
	return Line{p0: origin, p1: origin.Add(dir), dir: dir.Normalize()}, nil
}

func (l Line) First() Point      { return l.p0 }
func (l Line) Last() Point       { return l.p1 }
func (l Line) Origin() Point     { return l.p0 }
func (l Line) Direction() Vector { return l.dir }

// Two lines are equal when both defining points and the direction match.
func (l Line) AlmostEquals(o Line, precision int) bool {
	return l.p0.AlmostEquals(o.p0, precision) &&
		l.p1.AlmostEquals(o.p1, precision) &&
		l.dir.AlmostEquals(o.dir, precision)
}

func (l Line) Contains(p Point, precision int) bool {
	return AlmostZero(p.Sub(l.p0).Cross(l.dir), precision)
}

// DistanceTo is the perpendicular distance from p to the line.
func (l Line) DistanceTo(p Point, precision int) float64 {
	return RoundTo(math.Abs(p.Sub(l.p0).Cross(l.dir)), precision)
}

// ProjectOnto is the foot of the perpendicular from p.
func (l Line) ProjectOnto(p Point) Point {
	return l.p0.Add(l.dir.Scale(p.Sub(l.p0).Dot(l.dir)))
}

// Location is the signed position of p along the line, 0 at First and 1 at
// Last, or +Inf when p is off the line.
func (l Line) Location(p Point, precision int) float64 {
	if !l.Contains(p, precision) {
		return math.Inf(1)
	}
	return p.Sub(l.p0).Dot(l.dir) / l.p1.Sub(l.p0).Length()
}

func (l Line) Intersection(other Linear, precision int) (Point, bool) {
	return intersect(l.carrier(), other.carrier(), precision)
}

// Lines meet unless they are parallel. Against a ray the same test rules out
// the parallel case before the ray's direction is checked.
func (l Line) Intersects(other Linear, precision int) bool {
	switch o := other.(type) {
	case Line:
		return !parallel(l.dir, o.dir, precision)
	case Ray:
		if parallel(l.dir, o.dir, precision) {
			return false
		}
	}
	_, ok := l.Intersection(other, precision)
	return ok
}

func (l Line) carrier() carrier {
	return carrier{origin: l.p0, dir: l.dir}
}

func (l Line) Kind() Kind { return KindLine }

func (l Line) ToWkt(precision int) string {
	return formatWkt(KindLine, false, precision, l.p0, l.p1)
}

func (l Line) String() string {
	return l.ToWkt(DefaultPrecision)
}

func (l Line) ToFile(path string, precision int) error {
	return writeWkt(path, l, precision)
}

// LineFromWkt decodes "LINE (x0 y0, x1 y1)". The tolerance used to validate
// the points is the largest number of decimals in the literal.
func LineFromWkt(text string) (Line, error) {
	lit, err := expectWkt(text, KindLine, 2)
	if err != nil {
		return Line{}, err
	}
	pts := lit.points()
	return MakeLine(pts[0], pts[1], lit.Decimals)
}

func LineFromFile(path string) (Line, error) {
	text, err := readWkt(path)
	if err != nil {
		return Line{}, err
	}
	return LineFromWkt(text)
}
