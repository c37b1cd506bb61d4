package signal

import (
	"fmt"
	"strings"
)

// Both error types are recoverable: the pipeline logs a diagnostic and
// reports "no signal" for the headline instead of failing the run.

// MalformedResponseError means the raw model text contained no parseable
// JSON object.
type MalformedResponseError struct {
	Raw string
}

func (e *MalformedResponseError) Error() string {
	return "model response is not valid JSON"
}

// IncompleteSignalError means the response parsed but lacks one or more
// required keys.
type IncompleteSignalError struct {
	Record  string
	Missing []string
}

func (e *IncompleteSignalError) Error() string {
	return fmt.Sprintf("signal missing required keys: %s", strings.Join(e.Missing, ", "))
}
