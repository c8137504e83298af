package llm

import (
	"errors"
	"fmt"
	"strings"
)

// ErrModelNotFound is returned when the requested model is not present
// in the catalogue.
var ErrModelNotFound = errors.New("model not found")

// ReservedKeyError is returned when a caller requests additional data
// under one of the reserved reasoning keys.
type ReservedKeyError struct {
	Key string
}

func (e *ReservedKeyError) Error() string {
	return fmt.Sprintf("additional data key '%s' is reserved for internal use", e.Key)
}

// UnsupportedInputError is returned when attached files require input
// modalities the selected model does not support.
type UnsupportedInputError struct {
	Reasons []string
}

func (e *UnsupportedInputError) Error() string {
	return strings.Join(e.Reasons, "\n")
}

// UpstreamError wraps a failure from the upstream completion provider.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream completion failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
