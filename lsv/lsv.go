// Package lsv reads line-separated geometry files: one WKT literal per line,
// with lines starting with '#' treated as comments.
//
// A line that cannot be decoded does not stop the reader. It is logged at
// warning level and skipped.
package lsv

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/osuushi/geom2d"
	"github.com/osuushi/geom2d/internal/logging"
	"github.com/osuushi/geom2d/internal/wkt"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrUnknownGeometry is returned by Decode for a line whose keyword names no
// supported geometry.
var ErrUnknownGeometry = errors.New("lsv: unknown geometry type")

// Reader is a pull cursor over the geometries of a stream. Call HasNext before
// each Next.
type Reader struct {
	scanner *bufio.Scanner
	closer  io.Closer
	line    int
	next    geom2d.Geometry
	skipped int
	err     error
}

// NewReader reads geometries from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Open reads geometries from the file at path. The caller must Close the
// reader.
func Open(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &geom2d.IOError{Path: path, Err: errors.Wrap(err, "open geometry file")}
	}
	r := NewReader(file)
	r.closer = file
	return r, nil
}

// HasNext reports whether another geometry is available. It consumes lines
// until one decodes or the stream ends.
func (r *Reader) HasNext() bool {
	if r.next != nil {
		return true
	}
	if r.err != nil {
		return false
	}
	for r.scanner.Scan() {
		r.line++
		text := strings.TrimSpace(r.scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		g, err := Decode(text)
		if err != nil {
			r.skipped++
			logging.Logger().WithFields(logrus.Fields{
				"line":  r.line,
				"text":  text,
				"error": err,
			}).Warn("unsupported geometry")
			continue
		}
		r.next = g
		return true
	}
	r.err = r.scanner.Err()
	if r.err == nil {
		r.err = io.EOF
	}
	return false
}

// Next returns the geometry found by HasNext. It returns false once the
// stream is exhausted.
func (r *Reader) Next() (geom2d.Geometry, bool) {
	if !r.HasNext() {
		return nil, false
	}
	g := r.next
	r.next = nil
	return g, true
}

// Line is the number of the last line consumed, starting at 1.
func (r *Reader) Line() int { return r.line }

// Skipped is the number of lines that failed to decode so far.
func (r *Reader) Skipped() int { return r.skipped }

// Err returns the first read error. Reaching the end of the stream is not an
// error.
func (r *Reader) Err() error {
	if r.err == io.EOF {
		return nil
	}
	return r.err
}

// Close closes the underlying file when the reader came from Open.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// ReadAll drains r.
func ReadAll(r *Reader) ([]geom2d.Geometry, error) {
	var result []geom2d.Geometry
	for r.HasNext() {
		g, _ := r.Next()
		result = append(result, g)
	}
	return result, r.Err()
}

// ReadFile opens path and returns every geometry it holds.
func ReadFile(path string) ([]geom2d.Geometry, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return ReadAll(r)
}

// Decode decodes a single literal, choosing the geometry type from its
// keyword. A LINESTRING with two vertices is a LineSegment, otherwise it is a
// Polyline.
func Decode(text string) (geom2d.Geometry, error) {
	text = strings.TrimSpace(text)
	upper := strings.ToUpper(text)
	switch {
	// LINESTRING must be tested before LINE.
	case strings.HasPrefix(upper, "LINESTRING"):
		if lit, err := wkt.Parse(text); err == nil && len(lit.Vertices) == 2 {
			return result(geom2d.LineSegmentFromWkt(text))
		}
		return result(geom2d.PolylineFromWkt(text))
	case strings.HasPrefix(upper, "LINE"):
		return result(geom2d.LineFromWkt(text))
	case strings.HasPrefix(upper, "RAY"):
		return result(geom2d.RayFromWkt(text))
	case strings.HasPrefix(upper, "POINT"):
		return result(geom2d.PointFromWkt(text))
	case strings.HasPrefix(upper, "TRIANGLE"):
		return result(geom2d.TriangleFromWkt(text))
	case strings.HasPrefix(upper, "POLYGON"):
		return result(geom2d.PolygonFromWkt(text))
	case strings.HasPrefix(upper, "VECTOR"):
		return result(geom2d.VectorFromWkt(text))
	}
	return nil, errors.Wrapf(ErrUnknownGeometry, "%q", text)
}

func result(g geom2d.Geometry, err error) (geom2d.Geometry, error) {
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Write writes one literal per line at the given precision.
func Write(w io.Writer, precision int, geometries ...geom2d.Geometry) error {
	bw := bufio.NewWriter(w)
	for _, g := range geometries {
		if _, err := bw.WriteString(g.ToWkt(precision) + "\n"); err != nil {
			return errors.Wrap(err, "write geometry")
		}
	}
	return errors.Wrap(bw.Flush(), "flush geometries")
}
