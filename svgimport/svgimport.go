// Package svgimport reads the straight-edged shapes of an SVG document:
// <polygon>, <polyline> and <line> elements. Curves, paths and transforms are
// ignored.
package svgimport

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/geom2d"
	"github.com/osuushi/geom2d/internal/logging"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Options controls the conversion of SVG coordinates.
type Options struct {
	// FlipY negates y so that shapes drawn in SVG's downward y axis keep
	// their orientation.
	FlipY     bool
	Precision int
}

var DefaultOptions = Options{FlipY: true, Precision: geom2d.DefaultPrecision}

// Load reads every supported element of the SVG document at path.
func Load(path string, opts Options) ([]geom2d.Geometry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &geom2d.IOError{Path: path, Err: errors.Wrap(err, "open svg")}
	}
	defer file.Close()
	return Parse(file, opts)
}

// Parse reads every supported element in document order. Elements that do
// not describe a valid shape are logged and skipped.
func Parse(r io.Reader, opts Options) ([]geom2d.Geometry, error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}
	var result []geom2d.Geometry
	walk(root, func(el *svgparser.Element) {
		g, err := convert(el, opts)
		if err != nil {
			logging.Logger().WithFields(logrus.Fields{
				"element": el.Name,
				"id":      el.Attributes["id"],
				"error":   err,
			}).Warn("skipping svg element")
			return
		}
		if g != nil {
			result = append(result, g)
		}
	})
	return result, nil
}

func walk(el *svgparser.Element, visit func(*svgparser.Element)) {
	visit(el)
	for _, child := range el.Children {
		walk(child, visit)
	}
}

// convert returns nil for elements that are not shapes.
func convert(el *svgparser.Element, opts Options) (geom2d.Geometry, error) {
	switch el.Name {
	case "polygon":
		points, err := parsePoints(el.Attributes["points"], opts)
		if err != nil {
			return nil, err
		}
		return result(geom2d.MakePolygon(points, opts.Precision))
	case "polyline":
		points, err := parsePoints(el.Attributes["points"], opts)
		if err != nil {
			return nil, err
		}
		return result(geom2d.MakePolyline(points, opts.Precision))
	case "line":
		var coords [4]float64
		for i, name := range []string{"x1", "y1", "x2", "y2"} {
			value, err := parseNumber(el.Attributes[name])
			if err != nil {
				return nil, errors.Wrapf(err, "attribute %s", name)
			}
			coords[i] = value
		}
		p0 := point(coords[0], coords[1], opts)
		p1 := point(coords[2], coords[3], opts)
		return result(geom2d.MakeLineSegment(p0, p1, opts.Precision))
	}
	return nil, nil
}

func result(g geom2d.Geometry, err error) (geom2d.Geometry, error) {
	if err != nil {
		return nil, err
	}
	return g, nil
}

func point(x, y float64, opts Options) geom2d.Point {
	if opts.FlipY {
		y = -y
	}
	return geom2d.Point{X: x, Y: y}
}

// parsePoints reads a points attribute. Coordinates may be separated by
// commas, whitespace or both.
func parsePoints(attr string, opts Options) ([]geom2d.Point, error) {
	fields := strings.FieldsFunc(attr, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", attr)
	}
	points := make([]geom2d.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := parseNumber(fields[i])
		if err != nil {
			return nil, err
		}
		y, err := parseNumber(fields[i+1])
		if err != nil {
			return nil, err
		}
		points = append(points, point(x, y, opts))
	}
	return points, nil
}

// parseNumber accepts plain numbers and numbers with a "px" unit. A missing
// attribute is 0, as in SVG.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	if s == "" {
		return 0, nil
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Errorf("invalid number %q", s)
	}
	return value, nil
}
