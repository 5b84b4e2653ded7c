// Command geomview inspects and previews files of WKT geometries, one literal
// per line.
package main

import (
	"io"
	"os"
	"time"

	"github.com/osuushi/geom2d"
	"github.com/osuushi/geom2d/dbg"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app        = kingpin.New("geomview", "Inspect and preview 2D geometry files.")
	configPath = app.Flag("config", "YAML configuration file.").Envar("GEOMVIEW_CONFIG").ExistingFile()
	verbose    = app.Flag("verbose", "Log every rendered geometry.").Short('v').Bool()
	noColor    = app.Flag("no-color", "Disable colored output.").Bool()
	opts       = newSettings(app)

	renderCmd  = app.Command("render", "Draw a geometry file to a PNG image.")
	renderFile = renderCmd.Arg("file", "Geometry file, or - for stdin.").Default("-").String()
	renderOut  = renderCmd.Flag("out", "Output PNG path.").Short('o').Default("geometries.png").String()

	verticesCmd  = app.Command("vertices", "Print the normalized vertex buffers of a geometry file.")
	verticesFile = verticesCmd.Arg("file", "Geometry file, or - for stdin.").Default("-").String()

	geojsonCmd  = app.Command("geojson", "Convert a geometry file to GeoJSON geometries, one per line.")
	geojsonFile = geojsonCmd.Arg("file", "Geometry file, or - for stdin.").Default("-").String()

	svgCmd  = app.Command("svg", "Import the polygons, polylines and lines of an SVG document.")
	svgFile = svgCmd.Arg("file", "SVG document.").Required().ExistingFile()
	svgRaw  = svgCmd.Flag("raw-y", "Keep SVG's downward y axis.").Bool()

	pointsCmd  = app.Command("points", "Convert blank-line separated \"x y\" point lists into polygons.")
	pointsFile = pointsCmd.Arg("file", "Point list file, or - for stdin.").Default("-").String()

	inspectCmd  = app.Command("inspect", "Pretty-print the decoded values of a geometry file.")
	inspectFile = inspectCmd.Arg("file", "Geometry file, or - for stdin.").Default("-").String()
)

func main() {
	command, c, err := opts.parse(app, os.Args[1:], configPath)
	app.FatalIfError(err, "")

	geom2d.SetLogger(newLogger(os.Stderr, *verbose))
	dbg.SetColor(!*noColor)

	out := os.Stdout
	switch command {
	case renderCmd.FullCommand():
		err = runRender(out, *renderFile, *renderOut, c)
	case verticesCmd.FullCommand():
		err = runVertices(out, *verticesFile, c)
	case geojsonCmd.FullCommand():
		err = runGeoJSON(out, *geojsonFile, c)
	case svgCmd.FullCommand():
		err = runSVG(out, *svgFile, !*svgRaw, c)
	case pointsCmd.FullCommand():
		err = runPoints(out, *pointsFile, c)
	case inspectCmd.FullCommand():
		err = runInspect(out, *inspectFile, c)
	}
	app.FatalIfError(err, "%s", command)
}

func newLogger(out io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.Out = out
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		DisableSorting:  true,
	})
	logger.SetLevel(logrus.InfoLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}
