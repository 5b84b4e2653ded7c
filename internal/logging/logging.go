// Package logging holds the logger shared by the lsv, render and svgimport
// packages. Nothing is logged until a logger is installed with Set, which
// callers outside the module reach through geom2d.SetLogger.
package logging

import (
	"io"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

type holder struct {
	logrus.FieldLogger
}

var current atomic.Value

func init() {
	current.Store(holder{discard()})
}

func discard() logrus.FieldLogger {
	l := logrus.New()
	l.Out = io.Discard
	l.Level = logrus.PanicLevel
	return l
}

// Set installs l for every package of the module. Passing nil restores the
// silent default. Set is safe to call while other goroutines are logging.
func Set(l logrus.FieldLogger) {
	if l == nil {
		l = discard()
	}
	current.Store(holder{l})
}

// Logger returns the installed logger.
func Logger() logrus.FieldLogger {
	return current.Load().(holder).FieldLogger
}
