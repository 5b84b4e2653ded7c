package geom2d

import (
	"os"

	"github.com/osuushi/geom2d/internal/wkt"
	"github.com/pkg/errors"
)

type literal struct {
	wkt.Literal
}

func (lit literal) points() []Point {
	points := make([]Point, len(lit.Vertices))
	for i, v := range lit.Vertices {
		points[i] = Point{v[0], v[1]}
	}
	return points
}

// expectWkt decodes a literal of the given kind with n vertices. A negative n
// means at least -n vertices.
func expectWkt(text string, kind Kind, n int) (literal, error) {
	lit, err := wkt.Expect(text, kind.Keyword(), n)
	if err != nil {
		return literal{}, &ParseError{Kind: kind, Input: text, Err: err}
	}
	if lit.Ring != (kind == KindPolygon) && !lit.Empty {
		return literal{}, &ParseError{Kind: kind, Input: text, Err: errors.New("unexpected ring nesting")}
	}
	if lit.Empty && kind != KindPolygon && kind != KindPolyline {
		return literal{}, &ParseError{Kind: kind, Input: text, Err: errors.Errorf("%s cannot be empty", kind)}
	}
	return literal{lit}, nil
}

func formatWkt(kind Kind, ring bool, precision int, points ...Point) string {
	vertices := make([][2]float64, len(points))
	for i, p := range points {
		vertices[i] = [2]float64{RoundTo(p.X, precision), RoundTo(p.Y, precision)}
	}
	return wkt.Format(kind.Keyword(), ring, vertices...)
}

// The file holds exactly one literal. A failed write may leave the file empty
// or truncated.
func writeWkt(path string, g Geometry, precision int) error {
	if err := os.WriteFile(path, []byte(g.ToWkt(precision)), 0o644); err != nil {
		return &IOError{Path: path, Err: errors.Wrapf(err, "write %s", g.Kind())}
	}
	return nil
}

func readWkt(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", &IOError{Path: path, Err: errors.Wrap(err, "read")}
	}
	return string(content), nil
}
