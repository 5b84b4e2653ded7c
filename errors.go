package geom2d

import (
	"fmt"

	"github.com/pkg/errors"
)

// ConstructionError is returned by the Make* constructors when the input would
// produce a degenerate primitive.
type ConstructionError struct {
	Kind   Kind
	Reason string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("geom2d: cannot make %s: %s", e.Kind, e.Reason)
}

func constructionErrorf(kind Kind, format string, args ...interface{}) error {
	return &ConstructionError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// ParseError is returned when a WKT literal is malformed or names the wrong
// geometry kind.
type ParseError struct {
	Kind  Kind
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("geom2d: cannot parse %s from %q: %v", e.Kind, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
func (e *ParseError) Cause() error  { return e.Err }

// IOError wraps a failure to read or write a geometry file.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("geom2d: %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
func (e *IOError) Cause() error  { return e.Err }

// IsConstructionError reports whether any error in err's chain is a
// *ConstructionError.
func IsConstructionError(err error) bool {
	var target *ConstructionError
	return errors.As(err, &target)
}

// IsParseError reports whether any error in err's chain is a *ParseError.
func IsParseError(err error) bool {
	var target *ParseError
	return errors.As(err, &target)
}

// ErrEmptyInput is returned by aggregate operations such as Average when
// given no points.
var ErrEmptyInput = errors.New("geom2d: empty input")
