package app

import "fmt"

// Fatal pipeline errors. Recoverable outcomes (malformed or incomplete model
// output) never surface here; they degrade to a no-signal result instead.

// BackendError means the model backend could not be reached or returned no
// usable response.
type BackendError struct {
	Provider string
	Err      error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("model backend %s: %v", e.Provider, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// PersistenceError means the signal log could not be opened or written.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("signal log: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
