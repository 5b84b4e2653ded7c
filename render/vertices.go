// Package render turns decoded geometries into drawable data: flat vertex
// buffers for a GPU pipeline, and PNG previews for the terminal.
package render

import (
	"github.com/osuushi/geom2d"
	"github.com/osuushi/geom2d/internal/logging"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrUnsupported is returned for geometries that have no finite vertex form,
// such as lines and rays.
var ErrUnsupported = errors.New("render: unsupported geometry")

// DrawMode says how consecutive vertices of a Shape are connected.
type DrawMode int

const (
	DrawPoints DrawMode = iota
	DrawLines
	DrawLineStrip
	DrawLineLoop
)

var drawModeLabels = [...]string{
	DrawPoints:    "points",
	DrawLines:     "lines",
	DrawLineStrip: "line strip",
	DrawLineLoop:  "line loop",
}

func (m DrawMode) String() string {
	if m < 0 || int(m) >= len(drawModeLabels) {
		return "unknown"
	}
	return drawModeLabels[m]
}

// Viewport is the square world region mapped onto normalized device
// coordinates [-1, 1].
type Viewport struct {
	Min, Max float64
}

var DefaultViewport = Viewport{Min: -10, Max: 10}

// Normalize maps x from the viewport onto [-1, 1].
func (v Viewport) Normalize(x float64) float32 {
	return float32(2*(x-v.Min)/(v.Max-v.Min) - 1)
}

func (v Viewport) valid() bool {
	return v.Max > v.Min
}

// Shape is a vertex buffer of (x, y, 0) triples.
type Shape struct {
	Mode     DrawMode
	Vertices []float32
}

// Count is the number of vertices in the buffer.
func (s Shape) Count() int { return len(s.Vertices) / 3 }

// Vertices converts g into a normalized vertex buffer.
func Vertices(g geom2d.Geometry, viewport Viewport) (Shape, error) {
	if !viewport.valid() {
		return Shape{}, errors.Errorf("render: empty viewport [%g, %g]", viewport.Min, viewport.Max)
	}
	var (
		mode   DrawMode
		points []geom2d.Point
	)
	switch g := g.(type) {
	case geom2d.Point:
		mode, points = DrawPoints, []geom2d.Point{g}
	case geom2d.LineSegment:
		mode, points = DrawLines, []geom2d.Point{g.First(), g.Last()}
	case geom2d.Polyline:
		if g.IsEmpty() {
			return Shape{}, errors.Wrap(ErrUnsupported, "empty polyline")
		}
		mode, points = DrawLineStrip, g.Knots()
	case geom2d.Triangle:
		p0, p1, p2 := g.Vertices()
		mode, points = DrawLineLoop, []geom2d.Point{p0, p1, p2}
	case geom2d.Polygon:
		if g.IsEmpty() {
			return Shape{}, errors.Wrap(ErrUnsupported, "empty polygon")
		}
		mode, points = DrawLineLoop, g.Vertices()
	default:
		return Shape{}, errors.Wrapf(ErrUnsupported, "%s", g.Kind())
	}

	vertices := make([]float32, 0, len(points)*3)
	for _, p := range points {
		vertices = append(vertices, viewport.Normalize(p.X), viewport.Normalize(p.Y), 0)
	}
	return Shape{Mode: mode, Vertices: vertices}, nil
}

// Shapes converts every supported geometry and logs the ones it skips.
func Shapes(geometries []geom2d.Geometry, viewport Viewport) []Shape {
	log := logging.Logger()
	shapes := make([]Shape, 0, len(geometries))
	for _, g := range geometries {
		shape, err := Vertices(g, viewport)
		if err != nil {
			log.WithFields(logrus.Fields{
				"kind":  g.Kind(),
				"error": err,
			}).Warn("unsupported geometry in rendering")
			continue
		}
		log.WithField("wkt", g.ToWkt(geom2d.DefaultPrecision)).Debug("rendering")
		shapes = append(shapes, shape)
	}
	return shapes
}
