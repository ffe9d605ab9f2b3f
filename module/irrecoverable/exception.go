package irrecoverable

import (
	"errors"
	"fmt"
)

// exception represents an unexpected error. An unexpected error is any error returned
// by a function, other than the error specifically documented as expected in that
// function's interface.
type exception struct {
	err error
}

var _ error = (*exception)(nil)

func (e exception) Error() string {
	return e.err.Error()
}

// IsException returns true if err is, or wraps, an exception.
func IsException(err error) bool {
	var e exception
	return errors.As(err, &e)
}

// NewException wraps the input error as an exception, stripping any sentinel error information.
// This ensures that all upper levels in the stack will consider this an unexpected error.
func NewException(err error) error {
	return exception{
		err: err,
	}
}

// NewExceptionf is NewException with fmt.Errorf semantics.
func NewExceptionf(msg string, args ...any) error {
	return NewException(fmt.Errorf(msg, args...))
}
