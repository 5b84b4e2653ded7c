package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kr/pretty"
	"github.com/osuushi/geom2d"
	"github.com/osuushi/geom2d/dbg"
	"github.com/osuushi/geom2d/geojson"
	"github.com/osuushi/geom2d/internal/config"
	"github.com/osuushi/geom2d/internal/logging"
	"github.com/osuushi/geom2d/lsv"
	"github.com/osuushi/geom2d/render"
	"github.com/osuushi/geom2d/svgimport"
	"github.com/pkg/errors"
)

// readGeometries reads a geometry file, or stdin when path is "-".
func readGeometries(path string) ([]geom2d.Geometry, error) {
	if path == "-" {
		return lsv.ReadAll(lsv.NewReader(os.Stdin))
	}
	return lsv.ReadFile(path)
}

func runRender(w io.Writer, in, out string, c config.Config) error {
	geometries, err := readGeometries(in)
	if err != nil {
		return err
	}
	if err := render.DrawPNG(out, geometries, c.RenderOptions()); err != nil {
		return err
	}
	logging.Logger().WithField("path", out).Info("saved preview")
	if c.Imgcat {
		return render.CatPNG(out, w)
	}
	_, err = fmt.Fprintf(w, "%s %d geometries to %s\n", dbg.OK("rendered"), len(geometries), out)
	return err
}

func runVertices(w io.Writer, in string, c config.Config) error {
	geometries, err := readGeometries(in)
	if err != nil {
		return err
	}
	for _, g := range geometries {
		shape, err := render.Vertices(g, c.RenderViewport())
		if err != nil {
			fmt.Fprintf(w, "%s %s\n", dbg.Skipped("skipped"), dbg.Describe(g, c.Precision))
			continue
		}
		fmt.Fprintf(w, "%s %s %v\n", dbg.Kind(g.Kind()), shape.Mode, shape.Vertices)
	}
	return nil
}

func runGeoJSON(w io.Writer, in string, c config.Config) error {
	geometries, err := readGeometries(in)
	if err != nil {
		return err
	}
	for _, g := range geometries {
		data, err := geojson.Encode(g, c.Precision)
		if errors.Is(err, geojson.ErrUnsupported) {
			logging.Logger().WithField("kind", g.Kind()).Warn("no geojson form")
			continue
		}
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, string(data)); err != nil {
			return err
		}
	}
	return nil
}

func runSVG(w io.Writer, in string, flipY bool, c config.Config) error {
	geometries, err := svgimport.Load(in, svgimport.Options{FlipY: flipY, Precision: c.Precision})
	if err != nil {
		return err
	}
	return lsv.Write(w, c.Precision, geometries...)
}

func runPoints(w io.Writer, in string, c config.Config) error {
	r := io.Reader(os.Stdin)
	if in != "-" {
		file, err := os.Open(in)
		if err != nil {
			return &geom2d.IOError{Path: in, Err: errors.Wrap(err, "open point list")}
		}
		defer file.Close()
		r = file
	}
	polygons, err := readPolygons(r, c.Precision)
	if err != nil {
		return err
	}
	geometries := make([]geom2d.Geometry, len(polygons))
	for i, poly := range polygons {
		geometries[i] = poly
	}
	return lsv.Write(w, c.Precision, geometries...)
}

func runInspect(w io.Writer, in string, c config.Config) error {
	geometries, err := readGeometries(in)
	if err != nil {
		return err
	}
	for i, g := range geometries {
		if i > 0 {
			fmt.Fprintln(w, strings.Repeat("-", 40))
		}
		fmt.Fprintln(w, dbg.Describe(g, c.Precision))
		if _, err := pretty.Fprintf(w, "%# v\n", g); err != nil {
			return err
		}
	}
	return nil
}
