package dbg

import (
	"sync/atomic"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/geom2d"
)

type palette struct {
	aurora.Aurora
}

var colors atomic.Value

func init() {
	colors.Store(palette{aurora.NewAurora(true)})
}

// SetColor turns terminal colors on or off for every label in the package.
func SetColor(enabled bool) {
	colors.Store(palette{aurora.NewAurora(enabled)})
}

func au() aurora.Aurora {
	return colors.Load().(palette).Aurora
}

// Status labels for command output.
func OK(s string) string      { return au().Green(s).String() }
func Skipped(s string) string { return au().Yellow(s).String() }
func Failed(s string) string  { return au().Red(s).String() }

// Kind colors a kind label: bounded shapes in green, unbounded lines in cyan.
func Kind(k geom2d.Kind) string {
	switch k {
	case geom2d.KindLine, geom2d.KindRay:
		return au().Cyan(k.String()).String()
	case geom2d.KindPoint, geom2d.KindVector:
		return au().Magenta(k.String()).String()
	}
	return au().Green(k.String()).String()
}

// Describe is a one-line summary of g: its colored kind, readable name and
// WKT.
func Describe(g geom2d.Geometry, precision int) string {
	text := g.ToWkt(precision)
	return Kind(g.Kind()) + " " + au().Bold(Name(text)).String() + " " + text
}
