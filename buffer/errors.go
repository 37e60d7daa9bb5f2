package buffer

import (
	"fmt"

	"github.com/c360/bytestream/errors"
)

// InsufficientDataError is the single recoverable failure the buffer types
// produce. It covers reads from an errored buffer and requests for more bytes
// than the buffer can supply. It unwraps to errors.ErrInsufficientData so
// callers can match it at any wrap depth with stderrors.Is.
type InsufficientDataError struct {
	Reason string
}

// Error implements the error interface
func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: %s", errors.ErrInsufficientData.Error(), e.Reason)
}

// Unwrap returns the library sentinel for classification
func (e *InsufficientDataError) Unwrap() error {
	return errors.ErrInsufficientData
}

// insufficient builds the standard failure for short reads and extracts.
func insufficient(reason string) error {
	return &InsufficientDataError{Reason: reason}
}
