package render

import (
	"io"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/geom2d"
	"github.com/osuushi/geom2d/dbg"
	"github.com/osuushi/geom2d/internal/logging"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/basicfont"
)

// Padding around the viewport so shapes on its border stay visible
const drawPadding = 20

// Options controls a PNG preview.
type Options struct {
	Width, Height int
	Viewport      Viewport
	// PointRadius is in pixels.
	PointRadius float64
	// Labels draws a readable name next to every shape.
	Labels bool
	// Precision is used to clip lines and rays and to name shapes.
	Precision int
}

var DefaultOptions = Options{
	Width:       800,
	Height:      600,
	Viewport:    DefaultViewport,
	PointRadius: 4,
	Precision:   geom2d.DefaultPrecision,
}

// canvas maps world coordinates onto the image, with the origin at the
// bottom left.
type canvas struct {
	*gg.Context
	opts           Options
	scaleX, scaleY float64
}

func newCanvas(opts Options) (*canvas, error) {
	if opts.Width <= 2*drawPadding || opts.Height <= 2*drawPadding {
		return nil, errors.Errorf("render: image %dx%d is too small", opts.Width, opts.Height)
	}
	if !opts.Viewport.valid() {
		return nil, errors.Errorf("render: empty viewport [%g, %g]", opts.Viewport.Min, opts.Viewport.Max)
	}
	span := opts.Viewport.Max - opts.Viewport.Min
	c := &canvas{
		Context: gg.NewContext(opts.Width, opts.Height),
		opts:    opts,
		scaleX:  float64(opts.Width-2*drawPadding) / span,
		scaleY:  float64(opts.Height-2*drawPadding) / span,
	}
	c.SetFontFace(basicfont.Face7x13)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(opts.Width), float64(opts.Height))
	c.Fill()
	c.SetFillRuleEvenOdd()
	return c, nil
}

// pixel converts a world point to image coordinates.
func (c *canvas) pixel(p geom2d.Point) (float64, float64) {
	x := drawPadding + (p.X-c.opts.Viewport.Min)*c.scaleX
	y := float64(c.opts.Height) - drawPadding - (p.Y-c.opts.Viewport.Min)*c.scaleY
	return x, y
}

func (c *canvas) path(points []geom2d.Point, closed bool) {
	c.NewSubPath()
	for i, p := range points {
		x, y := c.pixel(p)
		if i == 0 {
			c.MoveTo(x, y)
		} else {
			c.LineTo(x, y)
		}
	}
	if closed {
		c.ClosePath()
	}
}

func (c *canvas) drawAxes() {
	c.SetRGBA(1, 1, 1, 0.2)
	c.SetLineWidth(1)
	lo, hi := c.opts.Viewport.Min, c.opts.Viewport.Max
	if lo < 0 && hi > 0 {
		c.path([]geom2d.Point{{X: lo, Y: 0}, {X: hi, Y: 0}}, false)
		c.path([]geom2d.Point{{X: 0, Y: lo}, {X: 0, Y: hi}}, false)
		c.Stroke()
	}
}

// draw adds one geometry to the canvas. It returns ErrUnsupported when g has
// no visible form.
func (c *canvas) draw(g geom2d.Geometry) error {
	var anchor geom2d.Point
	switch g := g.(type) {
	case geom2d.Point:
		x, y := c.pixel(g)
		c.DrawCircle(x, y, c.opts.PointRadius)
		c.SetRGB(1, 1, 0)
		c.Fill()
		anchor = g
	case geom2d.Vector:
		c.path([]geom2d.Point{geom2d.Origin(), g.ToPoint()}, false)
		c.SetRGB(1, 0.5, 0)
		c.SetLineWidth(2)
		c.Stroke()
		anchor = g.ToPoint()
	case geom2d.Line, geom2d.Ray:
		segment, ok := Clip(g.(geom2d.Linear), c.opts.Viewport)
		if !ok {
			return errors.Wrapf(ErrUnsupported, "%s outside viewport", g.Kind())
		}
		c.path([]geom2d.Point{segment.First(), segment.Last()}, false)
		c.SetRGB(1, 0, 1)
		c.SetLineWidth(1)
		c.Stroke()
		anchor = segment.Interpolate(0.5)
	case geom2d.LineSegment:
		c.path([]geom2d.Point{g.First(), g.Last()}, false)
		c.SetRGB(0, 1, 1)
		c.SetLineWidth(2)
		c.Stroke()
		anchor = g.Interpolate(0.5)
	case geom2d.Polyline:
		if g.IsEmpty() {
			return errors.Wrap(ErrUnsupported, "empty polyline")
		}
		c.path(g.Knots(), false)
		c.SetRGB(0, 1, 1)
		c.SetLineWidth(2)
		c.Stroke()
		anchor = g.Interpolate(0.5)
	case geom2d.Triangle:
		p0, p1, p2 := g.Vertices()
		c.fillPolygon([]geom2d.Point{p0, p1, p2})
		anchor = g.Centroid()
	case geom2d.Polygon:
		if g.IsEmpty() {
			return errors.Wrap(ErrUnsupported, "empty polygon")
		}
		c.fillPolygon(g.Vertices())
		anchor, _ = geom2d.Average(g.Vertices())
	default:
		return errors.Wrapf(ErrUnsupported, "%s", g.Kind())
	}

	if c.opts.Labels {
		c.label(dbg.Name(g.ToWkt(c.opts.Precision)), anchor)
	}
	return nil
}

func (c *canvas) fillPolygon(points []geom2d.Point) {
	c.path(points, true)
	c.SetLineWidth(2)
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()
}

func (c *canvas) label(name string, at geom2d.Point) {
	x, y := c.pixel(at)
	c.SetRGB(1, 1, 1)
	c.DrawStringAnchored(name, x, y, 0.5, 0.5)
}

// Draw renders geometries into an image. Geometries that cannot be drawn are
// logged and skipped.
func Draw(geometries []geom2d.Geometry, opts Options) (*gg.Context, error) {
	c, err := newCanvas(opts)
	if err != nil {
		return nil, err
	}
	c.drawAxes()
	log := logging.Logger()
	for _, g := range geometries {
		if err := c.draw(g); err != nil {
			log.WithFields(logrus.Fields{
				"kind":  g.Kind(),
				"error": err,
			}).Warn("unsupported geometry in rendering")
			continue
		}
		log.WithField("wkt", g.ToWkt(opts.Precision)).Debug("rendering")
	}
	return c.Context, nil
}

// DrawPNG renders geometries and saves the image to path.
func DrawPNG(path string, geometries []geom2d.Geometry, opts Options) error {
	c, err := Draw(geometries, opts)
	if err != nil {
		return err
	}
	if err := c.SavePNG(path); err != nil {
		return &geom2d.IOError{Path: path, Err: errors.Wrap(err, "save png")}
	}
	return nil
}

// WritePNG renders geometries and encodes the image to w.
func WritePNG(w io.Writer, geometries []geom2d.Geometry, opts Options) error {
	c, err := Draw(geometries, opts)
	if err != nil {
		return err
	}
	return errors.Wrap(c.EncodePNG(w), "encode png")
}

// CatPNG prints a saved PNG inline on terminals that support the iTerm image
// protocol.
func CatPNG(path string, w io.Writer) error {
	if _, err := os.Stat(path); err != nil {
		return &geom2d.IOError{Path: path, Err: errors.Wrap(err, "stat png")}
	}
	imgcat.CatFile(path, w)
	return nil
}
