package geom2d

import "github.com/osuushi/geom2d/internal/wkt"

// Polygon is a single closed ring of vertices. The closing edge from the last
// vertex back to the first is implicit. The zero Polygon is empty.
type Polygon struct {
	vertices []Point
}

// MakePolygon drops adjacent duplicates, including a last vertex repeating the
// first, and requires three vertices to remain.
func MakePolygon(points []Point, precision int) (Polygon, error) {
	vertices := RemoveDuplicates(points, precision)
	for len(vertices) > 1 && vertices[len(vertices)-1].AlmostEquals(vertices[0], precision) {
		vertices = vertices[:len(vertices)-1]
	}
	if len(vertices) < 3 {
		return Polygon{}, constructionErrorf(KindPolygon, "needs 3 distinct vertices, got %d", len(vertices))
	}
	return Polygon{vertices: vertices}, nil
}

func (poly Polygon) IsEmpty() bool { return len(poly.vertices) == 0 }

func (poly Polygon) Size() int { return len(poly.vertices) }

// Vertex wraps around, so Vertex(-1) is the last vertex. It is false for an
// empty polygon.
func (poly Polygon) Vertex(i int) (Point, bool) {
	if poly.IsEmpty() {
		return Point{}, false
	}
	return poly.vertex(i), true
}

func (poly Polygon) vertex(i int) Point {
	return poly.vertices[CircularIndex(i, len(poly.vertices))]
}

// Vertices returns a copy of the vertices.
func (poly Polygon) Vertices() []Point {
	return append([]Point(nil), poly.vertices...)
}

// Edges returns one segment per vertex, the last one closing the ring.
func (poly Polygon) Edges() []LineSegment {
	edges := make([]LineSegment, len(poly.vertices))
	for i, vertex := range poly.vertices {
		edges[i] = LineSegment{p0: vertex, p1: poly.vertex(i + 1)}
	}
	return edges
}

// Vertex-sequence equality. The rings must start at the same vertex.
func (poly Polygon) AlmostEquals(o Polygon, precision int) bool {
	if len(poly.vertices) != len(o.vertices) {
		return false
	}
	for i := range poly.vertices {
		if !poly.vertices[i].AlmostEquals(o.vertices[i], precision) {
			return false
		}
	}
	return true
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.vertices) - 1; i >= 0; i-- {
		newPoly.vertices = append(newPoly.vertices, poly.vertices[i])
	}
	return newPoly
}

// Contains uses the even-odd rule. Points on an edge are inside.
func (poly Polygon) Contains(p Point, precision int) bool {
	for _, edge := range poly.Edges() {
		if edge.Contains(p, precision) {
			return true
		}
	}
	return poly.CrossingCount(p)%2 == 1
}

// Crossing count helper for the even-odd rule: the number of edges crossed by
// a ray from p towards +X.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly.vertices {
		nextVertex := poly.vertex(i + 1)
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		x := vertex.X + (p.Y-vertex.Y)*(nextVertex.X-vertex.X)/(nextVertex.Y-vertex.Y)
		if p.X < x {
			crossingCount++
		}
	}
	return crossingCount
}

func (poly Polygon) Kind() Kind { return KindPolygon }

// ToWkt closes the ring by repeating the first vertex. An empty polygon is
// "POLYGON EMPTY".
func (poly Polygon) ToWkt(precision int) string {
	if poly.IsEmpty() {
		return wkt.FormatEmpty(KindPolygon.Keyword())
	}
	ring := append(poly.Vertices(), poly.vertices[0])
	return formatWkt(KindPolygon, true, precision, ring...)
}

func (poly Polygon) String() string {
	return poly.ToWkt(DefaultPrecision)
}

func (poly Polygon) ToFile(path string, precision int) error {
	return writeWkt(path, poly, precision)
}

// PolygonFromWkt decodes "POLYGON ((x0 y0, ..., x0 y0))" or "POLYGON EMPTY".
// Only a single ring is supported.
func PolygonFromWkt(text string) (Polygon, error) {
	lit, err := expectWkt(text, KindPolygon, -3)
	if err != nil {
		return Polygon{}, err
	}
	if lit.Empty {
		return Polygon{}, nil
	}
	return MakePolygon(lit.points(), lit.Decimals)
}

func PolygonFromFile(path string) (Polygon, error) {
	text, err := readWkt(path)
	if err != nil {
		return Polygon{}, err
	}
	return PolygonFromWkt(text)
}
