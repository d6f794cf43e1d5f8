// Package errors defines the service error taxonomy. Lookup failures are
// distinguished from not-found so handlers can map them to 500 vs 404.
package errors

import "errors"

// Common errors surfaced by the store and services.
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrNotFound      = errors.New("record not found")
)

// IsNotFound reports whether err denotes a missing record rather than a
// storage failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
