package geom2d

// IntersectionKind tags the shape of an Intersection.
type IntersectionKind int

const (
	NoIntersection IntersectionKind = iota
	PointIntersection
	MultiPointIntersection
	SegmentIntersection
)

var intersectionKindLabels = [...]string{
	NoIntersection:         "none",
	PointIntersection:      "point",
	MultiPointIntersection: "multipoint",
	SegmentIntersection:    "segment",
}

func (k IntersectionKind) String() string {
	if k < 0 || int(k) >= len(intersectionKindLabels) {
		return "unknown"
	}
	return intersectionKindLabels[k]
}

// Intersection is the result of intersecting a composite shape: nothing, one
// point, several points in the order they were found, or a segment.
type Intersection struct {
	kind    IntersectionKind
	points  []Point
	segment LineSegment
}

func (i Intersection) Kind() IntersectionKind { return i.kind }

// Ok reports whether anything was hit.
func (i Intersection) Ok() bool { return i.kind != NoIntersection }

func (i Intersection) Point() (Point, bool) {
	if i.kind != PointIntersection {
		return Point{}, false
	}
	return i.points[0], true
}

func (i Intersection) MultiPoint() ([]Point, bool) {
	if i.kind != MultiPointIntersection {
		return nil, false
	}
	return append([]Point(nil), i.points...), true
}

func (i Intersection) Segment() (LineSegment, bool) {
	if i.kind != SegmentIntersection {
		return LineSegment{}, false
	}
	return i.segment, true
}

// Points lists every point of the result. A segment contributes both
// endpoints.
func (i Intersection) Points() []Point {
	switch i.kind {
	case SegmentIntersection:
		return []Point{i.segment.First(), i.segment.Last()}
	default:
		return append([]Point(nil), i.points...)
	}
}

func pointsIntersection(points []Point) Intersection {
	switch len(points) {
	case 0:
		return Intersection{}
	case 1:
		return Intersection{kind: PointIntersection, points: points}
	default:
		return Intersection{kind: MultiPointIntersection, points: points}
	}
}

// A shared knot is hit once by each segment that ends there, so hits are
// deduplicated before being collected.
func appendHit(hits []Point, p Point, precision int) []Point {
	for _, hit := range hits {
		if hit.AlmostEquals(p, precision) {
			return hits
		}
	}
	return append(hits, p)
}
