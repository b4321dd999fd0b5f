package service

import "errors"

// Domain error classes. Operations wrap these with detail via fmt.Errorf and
// %w; handlers translate them into HTTP statuses with errors.Is.
var (
	// ErrValidation marks malformed or missing input. Always detected
	// before the store is touched.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an unknown id or an empty result set. Empty query
	// results are errors here, not empty successes.
	ErrNotFound = errors.New("not found")

	// ErrInternal marks an unexpected failure, such as a serialization or
	// backend error.
	ErrInternal = errors.New("internal error")
)
