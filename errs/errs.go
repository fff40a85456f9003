// Package errs provides the error taxonomy used at the core's boundaries.
//
// Only two kinds of failure originate inside the core (see spec.md §7):
// a malformed HTTP response, and a CSS/layout value outside the recognized
// vocabulary. Both are returned to the caller verbatim; nothing downstream
// of a parsed DOM can fail structurally.
package errs

import "fmt"

// NetworkError is returned when response parsing cannot make sense of the
// input, e.g. a response with no status line.
type NetworkError struct {
	Message string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network: %s", e.Message)
}

// NewNetworkError builds a NetworkError from a format string.
func NewNetworkError(format string, args ...interface{}) *NetworkError {
	return &NetworkError{Message: fmt.Sprintf(format, args...)}
}

// UnexpectedInputError is returned when a CSS color or display-type value
// falls outside the recognized vocabulary.
type UnexpectedInputError struct {
	Message string
}

func (e *UnexpectedInputError) Error() string {
	return fmt.Sprintf("unexpected input: %s", e.Message)
}

// NewUnexpectedInputError builds an UnexpectedInputError from a format string.
func NewUnexpectedInputError(format string, args ...interface{}) *UnexpectedInputError {
	return &UnexpectedInputError{Message: fmt.Sprintf(format, args...)}
}
