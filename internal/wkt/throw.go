package wkt

import "github.com/pkg/errors"

// Threading an error out of every step of the tokenizer would bury the grammar
// under error checks. Instead, the tokenizer panics with a SyntaxError and the
// exported entry points recover it into a returned error.

type SyntaxError struct {
	err error
}

func (e *SyntaxError) Error() string { return e.err.Error() }
func (e *SyntaxError) Cause() error  { return e.err }

// Panic with a SyntaxError.
func fatalf(format string, args ...interface{}) {
	panic(&SyntaxError{err: errors.Errorf(format, args...)})
}

// Only SyntaxError panics are converted. Anything else is a bug and keeps
// unwinding.
func HandleSyntaxPanicRecover(r interface{}) error {
	if r != nil {
		if syntaxError, ok := r.(*SyntaxError); ok {
			return syntaxError
		}
		panic(r)
	}
	return nil
}
