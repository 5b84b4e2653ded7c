package geom2d

import (
	"github.com/osuushi/geom2d/internal/logging"
	"github.com/sirupsen/logrus"
)

// SetLogger configures the logger for the lsv, render and svgimport packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Levels used:
//   - Warn: input that was skipped, such as an unsupported line in an lsv
//     file or a geometry that cannot be rendered
//   - Debug: every geometry as it is rendered
//
// SetLogger is safe for concurrent use.
func SetLogger(l logrus.FieldLogger) {
	logging.Set(l)
}
