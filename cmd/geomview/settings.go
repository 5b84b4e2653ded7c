package main

import (
	"strconv"

	"github.com/osuushi/geom2d/internal/config"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

type setting struct {
	clause *kingpin.FlagClause
	// value formats the field the flag is bound to, for use as its default.
	value func(config.Config) string
}

// settings binds one flag per configuration field. Each flag reads its
// GEOMVIEW_* environment variable when it is not on the command line, and
// falls back to the configuration file.
type settings struct {
	config config.Config
	flags  []setting
}

func newSettings(app *kingpin.Application) *settings {
	s := &settings{}
	c := &s.config

	s.flag(app.Flag("precision", "Decimal places used for output and comparisons.").Envar("GEOMVIEW_PRECISION"),
		func(c config.Config) string { return strconv.Itoa(c.Precision) }).IntVar(&c.Precision)
	s.flag(app.Flag("viewport-min", "Lower bound of the rendered square, in world units.").Envar("GEOMVIEW_VIEWPORT_MIN"),
		func(c config.Config) string { return formatFloat(c.Viewport.Min) }).Float64Var(&c.Viewport.Min)
	s.flag(app.Flag("viewport-max", "Upper bound of the rendered square, in world units.").Envar("GEOMVIEW_VIEWPORT_MAX"),
		func(c config.Config) string { return formatFloat(c.Viewport.Max) }).Float64Var(&c.Viewport.Max)
	s.flag(app.Flag("width", "Image width in pixels.").Envar("GEOMVIEW_WIDTH"),
		func(c config.Config) string { return strconv.Itoa(c.Width) }).IntVar(&c.Width)
	s.flag(app.Flag("height", "Image height in pixels.").Envar("GEOMVIEW_HEIGHT"),
		func(c config.Config) string { return strconv.Itoa(c.Height) }).IntVar(&c.Height)
	s.flag(app.Flag("point-radius", "Radius of drawn points in pixels.").Envar("GEOMVIEW_POINT_RADIUS"),
		func(c config.Config) string { return formatFloat(c.PointRadius) }).Float64Var(&c.PointRadius)
	s.flag(app.Flag("labels", "Label every shape with a readable name.").Envar("GEOMVIEW_LABELS"),
		func(c config.Config) string { return strconv.FormatBool(c.Labels) }).BoolVar(&c.Labels)
	s.flag(app.Flag("imgcat", "Print rendered images inline in the terminal.").Envar("GEOMVIEW_IMGCAT"),
		func(c config.Config) string { return strconv.FormatBool(c.Imgcat) }).BoolVar(&c.Imgcat)
	return s
}

func (s *settings) flag(clause *kingpin.FlagClause, value func(config.Config) string) *kingpin.FlagClause {
	s.flags = append(s.flags, setting{clause: clause, value: value})
	return clause
}

// parse reads args once to find the configuration file named by
// configPath, then again with the file's values as the flag defaults, so
// the command line wins over the environment, which wins over the file.
func (s *settings) parse(app *kingpin.Application, args []string, configPath *string) (string, config.Config, error) {
	if _, err := app.Parse(args); err != nil {
		return "", config.Config{}, err
	}
	file, err := config.Load(*configPath)
	if err != nil {
		return "", config.Config{}, errors.Wrap(err, "configuration")
	}
	for _, f := range s.flags {
		f.clause.Default(f.value(file))
	}
	command, err := app.Parse(args)
	if err != nil {
		return "", config.Config{}, err
	}
	if err := s.config.Validate(); err != nil {
		return "", config.Config{}, errors.Wrap(err, "configuration")
	}
	return command, s.config, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
