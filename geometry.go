package geom2d

// Kind names a geometry type.
type Kind int

const (
	KindPoint Kind = iota
	KindVector
	KindLine
	KindRay
	KindLineSegment
	KindPolyline
	KindTriangle
	KindPolygon
)

var kindLabels = [...]string{
	KindPoint:       "point",
	KindVector:      "vector",
	KindLine:        "line",
	KindRay:         "ray",
	KindLineSegment: "line segment",
	KindPolyline:    "polyline",
	KindTriangle:    "triangle",
	KindPolygon:     "polygon",
}

// LineSegment and Polyline share the LINESTRING keyword.
var kindKeywords = [...]string{
	KindPoint:       "POINT",
	KindVector:      "VECTOR",
	KindLine:        "LINE",
	KindRay:         "RAY",
	KindLineSegment: "LINESTRING",
	KindPolyline:    "LINESTRING",
	KindTriangle:    "TRIANGLE",
	KindPolygon:     "POLYGON",
}

func (k Kind) valid() bool {
	return k >= 0 && int(k) < len(kindLabels)
}

func (k Kind) String() string {
	if !k.valid() {
		return "unknown"
	}
	return kindLabels[k]
}

// Keyword is the WKT keyword that introduces a literal of this kind.
func (k Kind) Keyword() string {
	if !k.valid() {
		return ""
	}
	return kindKeywords[k]
}

// Geometry is implemented by every primitive in the package.
type Geometry interface {
	Kind() Kind
	ToWkt(precision int) string
}

// Linear is implemented by the three straight primitives: Line, Ray and
// LineSegment. Any two of them can be intersected with each other.
type Linear interface {
	Geometry
	Contains(p Point, precision int) bool
	DistanceTo(p Point, precision int) float64
	Intersection(other Linear, precision int) (Point, bool)
	Intersects(other Linear, precision int) bool
	carrier() carrier
}

var (
	_ Geometry = Point{}
	_ Geometry = Vector{}
	_ Linear   = Line{}
	_ Linear   = Ray{}
	_ Linear   = LineSegment{}
	_ Geometry = Polyline{}
	_ Geometry = Triangle{}
	_ Geometry = Polygon{}
)
