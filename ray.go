package geom2d

import "math"

// Ray starts at an origin and runs forever along a unit direction.
type Ray struct {
	origin Point
	dir    Vector
}

func MakeRay(origin Point, dir Vector, precision int) (Ray, error) {
	if AlmostZero(dir.Length(), precision) {
		return Ray{}, constructionErrorf(KindRay, "direction %v has zero length", dir)
	}
	return Ray{origin: origin, dir: dir.Normalize()}, nil
}

// MakeRayThrough builds the ray from origin through p.
func MakeRayThrough(origin, p Point, precision int) (Ray, error) {
	if origin.AlmostEquals(p, precision) {
		return Ray{}, constructionErrorf(KindRay, "points %v and %v coincide", origin, p)
	}
	return Ray{origin: origin, dir: p.Sub(origin).Normalize()}, nil
}

func (r Ray) Origin() Point     { return r.origin }
func (r Ray) Direction() Vector { return r.dir }

func (r Ray) AlmostEquals(o Ray, precision int) bool {
	return r.origin.AlmostEquals(o.origin, precision) && r.dir.AlmostEquals(o.dir, precision)
}

// ToLine is the line supporting the ray.
func (r Ray) ToLine() Line {
	return Line{p0: r.origin, p1: r.origin.Add(r.dir), dir: r.dir}
}

// IsAhead reports whether p lies on the forward side of the origin. The
// origin itself is ahead.
func (r Ray) IsAhead(p Point, precision int) bool {
	return RoundTo(r.dir.Dot(p.Sub(r.origin)), precision) >= 0
}

func (r Ray) IsBehind(p Point, precision int) bool {
	return !r.IsAhead(p, precision)
}

func (r Ray) Contains(p Point, precision int) bool {
	return r.ToLine().Contains(p, precision) && r.IsAhead(p, precision)
}

// DistanceTo is the perpendicular distance when p is ahead of the origin and
// the distance to the origin otherwise.
func (r Ray) DistanceTo(p Point, precision int) float64 {
	if r.IsAhead(p, precision) {
		return r.ToLine().DistanceTo(p, precision)
	}
	return r.origin.DistanceTo(p, precision)
}

// Location is the signed distance of p from the origin along the ray, or +Inf
// when p is off the supporting line.
func (r Ray) Location(p Point, precision int) float64 {
	if !r.ToLine().Contains(p, precision) {
		return math.Inf(1)
	}
	return p.Sub(r.origin).Dot(r.dir)
}

func (r Ray) Intersection(other Linear, precision int) (Point, bool) {
	return intersect(r.carrier(), other.carrier(), precision)
}

func (r Ray) Intersects(other Linear, precision int) bool {
	_, ok := r.Intersection(other, precision)
	return ok
}

func (r Ray) carrier() carrier {
	return carrier{origin: r.origin, dir: r.dir, within: r.IsAhead}
}

func (r Ray) Kind() Kind { return KindRay }

// ToWkt writes the origin followed by the unit direction.
func (r Ray) ToWkt(precision int) string {
	return formatWkt(KindRay, false, precision, r.origin, r.dir.ToPoint())
}

func (r Ray) String() string {
	return r.ToWkt(DefaultPrecision)
}

func (r Ray) ToFile(path string, precision int) error {
	return writeWkt(path, r, precision)
}

// RayFromWkt decodes "RAY (ox oy, dx dy)".
func RayFromWkt(text string) (Ray, error) {
	lit, err := expectWkt(text, KindRay, 2)
	if err != nil {
		return Ray{}, err
	}
	pts := lit.points()
	return MakeRay(pts[0], pts[1].ToVector(), lit.Decimals)
}

func RayFromFile(path string) (Ray, error) {
	text, err := readWkt(path)
	if err != nil {
		return Ray{}, err
	}
	return RayFromWkt(text)
}
