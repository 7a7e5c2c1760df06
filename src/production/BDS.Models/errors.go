package bdsmodels

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced record does not exist. It is
// only surfaced by delete-by-id; read operations return empty collections.
var ErrNotFound = errors.New("bee data: not found")

// ValidationError reports a reading that failed a field-level constraint
// before reaching the store.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// StoreError wraps a failure from the underlying document store. The
// wrapped error is for logs only and must not be echoed to callers.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
