// Package apperr defines the error taxonomy shared by all stores and
// services. Callers dispatch with errors.Is; none of these are fatal.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks bad caller input (empty title, blank comment).
	ErrValidation = errors.New("invalid input")

	// ErrConflict marks a uniqueness violation (duplicate username).
	ErrConflict = errors.New("already exists")

	// ErrNotFound marks an unknown identifier.
	ErrNotFound = errors.New("not found")

	// ErrFileMissing marks a catalog row whose backing media file is gone.
	// It matches ErrNotFound under errors.Is but can be told apart.
	ErrFileMissing = fmt.Errorf("backing file missing: %w", ErrNotFound)
)

// Validationf builds an ErrValidation with caller context.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Conflictf builds an ErrConflict with caller context.
func Conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// NotFoundf builds an ErrNotFound with caller context.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// StorageError wraps an underlying persistence failure with the operation
// that hit it. The cause stays reachable through Unwrap.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Storage wraps err as a StorageError. Returns nil for a nil err.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
