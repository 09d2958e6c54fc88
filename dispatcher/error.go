package dispatcher

import (
	"errors"
	"fmt"
)

// ErrMissingBody is wrapped by a ParseError if a method requiring
// a body was dispatched without one.
var ErrMissingBody = errors.New("missing body")

// ErrTrailingData is wrapped by a ParseError if the body holds more
// than one JSON value.
var ErrTrailingData = errors.New("unexpected data after top-level value")

// ParseError is returned if the body of a POST or PUT request
// cannot be parsed as JSON.
type ParseError struct {
	Method string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s body: %v", e.Method, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError reports whether err is or wraps a ParseError.
func IsParseError(err error) bool {
	if err == nil {
		return false
	}

	var parseErr *ParseError
	return errors.As(err, &parseErr)
}
