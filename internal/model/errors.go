package model

import "fmt"

// ValidationError reports a missing or empty required field. Always client-caused.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or empty required field: %s", e.Field)
}

// NotFoundError reports a reference to a route id that does not exist.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("route not found: %s", e.ID)
}

// StorageError wraps a record store failure. The operation is aborted, not retried.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
