package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/geom2d"
	"github.com/pkg/errors"
)

// Reads polygons as newline separated points in the form "x y", with each
// polygon separated by an extra newline.
func readPolygons(in io.Reader, precision int) ([]geom2d.Polygon, error) {
	polygons := []geom2d.Polygon{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	points := []geom2d.Point{}
	lineNumber := 0
	flush := func() error {
		if len(points) == 0 {
			return nil
		}
		poly, err := geom2d.MakePolygon(points, precision)
		if err != nil {
			return errors.Wrapf(err, "polygon ending at line %d", lineNumber)
		}
		polygons = append(polygons, poly)
		points = []geom2d.Point{}
		return nil
	}
	for scanner.Scan() {
		lineNumber++
		// Read the next line
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}

		// Parse the point out of the line
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read point list")
	}

	// Handle trailing polygon if any
	if err := flush(); err != nil {
		return nil, err
	}
	return polygons, nil
}

func parsePoint(line string) (geom2d.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return geom2d.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return geom2d.Point{}, errors.Errorf("invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return geom2d.Point{}, errors.Errorf("invalid y value %q", parts[1])
	}
	return geom2d.Point{X: x, Y: y}, nil
}
