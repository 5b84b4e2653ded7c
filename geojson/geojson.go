// Package geojson converts kernel geometries to and from GeoJSON geometry
// objects.
//
// Points map to Point, line segments and polylines to LineString, and
// triangles and polygons to single-ring Polygon. Vectors, lines and rays have
// no GeoJSON form.
package geojson

import (
	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/geojson"
	"github.com/osuushi/geom2d"
	"github.com/pkg/errors"
)

// ErrUnsupported is returned for geometries with no GeoJSON form.
var ErrUnsupported = errors.New("geojson: unsupported geometry")

// ToGeom converts g, rounding every coordinate to precision.
func ToGeom(g geom2d.Geometry, precision int) (geom.Geom, error) {
	switch g := g.(type) {
	case geom2d.Point:
		return toPoint(g, precision), nil
	case geom2d.LineSegment:
		return toLineString([]geom2d.Point{g.First(), g.Last()}, precision), nil
	case geom2d.Polyline:
		return toLineString(g.Knots(), precision), nil
	case geom2d.Triangle:
		return toPolygon(g.ToPolygon(), precision), nil
	case geom2d.Polygon:
		if g.IsEmpty() {
			return nil, errors.Wrap(ErrUnsupported, "empty polygon")
		}
		return toPolygon(g, precision), nil
	}
	return nil, errors.Wrapf(ErrUnsupported, "%s", g.Kind())
}

func toPoint(p geom2d.Point, precision int) geom.Point {
	return geom.Point{X: geom2d.RoundTo(p.X, precision), Y: geom2d.RoundTo(p.Y, precision)}
}

func toLineString(points []geom2d.Point, precision int) geom.LineString {
	result := make(geom.LineString, len(points))
	for i, p := range points {
		result[i] = toPoint(p, precision)
	}
	return result
}

// GeoJSON rings repeat their first vertex.
func toPolygon(poly geom2d.Polygon, precision int) geom.Polygon {
	vertices := poly.Vertices()
	ring := toLineString(append(vertices, vertices[0]), precision)
	return geom.Polygon{[]geom.Point(ring)}
}

// Encode marshals g as a GeoJSON geometry object.
func Encode(g geom2d.Geometry, precision int) ([]byte, error) {
	gg, err := ToGeom(g, precision)
	if err != nil {
		return nil, err
	}
	data, err := geojson.Encode(gg)
	return data, errors.Wrapf(err, "encode %s", g.Kind())
}

// FromGeom converts a decoded geometry. A two-vertex LineString becomes a
// LineSegment and a longer one a Polyline. Polygons with holes are rejected.
func FromGeom(g geom.Geom, precision int) (geom2d.Geometry, error) {
	switch g := g.(type) {
	case geom.Point:
		return geom2d.Point{X: g.X, Y: g.Y}, nil
	case geom.LineString:
		points := fromPoints(g)
		if len(points) == 2 {
			return result(geom2d.MakeLineSegment(points[0], points[1], precision))
		}
		return result(geom2d.MakePolyline(points, precision))
	case geom.Polygon:
		if len(g) != 1 {
			return nil, errors.Wrapf(ErrUnsupported, "polygon with %d rings", len(g))
		}
		return result(geom2d.MakePolygon(fromPoints(g[0]), precision))
	}
	return nil, errors.Wrapf(ErrUnsupported, "%T", g)
}

func fromPoints(points []geom.Point) []geom2d.Point {
	result := make([]geom2d.Point, len(points))
	for i, p := range points {
		result[i] = geom2d.Point{X: p.X, Y: p.Y}
	}
	return result
}

func result(g geom2d.Geometry, err error) (geom2d.Geometry, error) {
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Decode unmarshals a GeoJSON geometry object.
func Decode(data []byte, precision int) (geom2d.Geometry, error) {
	g, err := geojson.Decode(data)
	if err != nil {
		return nil, errors.Wrap(err, "decode geojson")
	}
	return FromGeom(g, precision)
}

// Bounds is the extent of g as reported by the geom package.
func Bounds(g geom2d.Geometry) (*geom.Bounds, error) {
	gg, err := ToGeom(g, geom2d.DP9)
	if err != nil {
		return nil, err
	}
	return gg.Bounds(), nil
}
