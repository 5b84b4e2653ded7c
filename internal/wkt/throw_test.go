package wkt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleSyntaxPanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandleSyntaxPanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf("bad token %q", "x")
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, `bad token "x"`)
		assert.IsType(t, &SyntaxError{}, err)
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})
}
