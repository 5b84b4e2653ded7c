package geom2d

// carrier is the parametric form origin + t*dir of a straight primitive along
// with the test that decides whether a point on its supporting line belongs
// to the primitive. A nil within means the primitive is unbounded.
type carrier struct {
	origin Point
	dir    Vector
	within func(p Point, precision int) bool
}

// intersect finds where a meets b. Parallel and coincident carriers never
// intersect. The returned point is computed on a.
func intersect(a, b carrier, precision int) (Point, bool) {
	vp := b.dir.Perp()
	denom := a.dir.Dot(vp)
	if AlmostZero(denom, precision) {
		return Point{}, false
	}
	w := a.origin.Sub(b.origin)
	t := -w.Dot(vp) / denom
	p := a.origin.Add(a.dir.Scale(t))
	if a.within != nil && !a.within(p, precision) {
		return Point{}, false
	}
	if b.within == nil {
		return p, true
	}

	up := a.dir.Perp()
	denom = b.dir.Dot(up)
	if AlmostZero(denom, precision) {
		return Point{}, false
	}
	s := w.Dot(up) / denom
	q := b.origin.Add(b.dir.Scale(s))
	if !b.within(q, precision) {
		return Point{}, false
	}
	return p, true
}

// parallel reports whether two unit directions are parallel or anti-parallel.
func parallel(u, v Vector, precision int) bool {
	return AlmostZero(u.Cross(v), precision)
}
