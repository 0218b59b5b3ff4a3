package domain

import "errors"

var (
	// ErrNotFound marks an id that has no record in the store. It is a
	// normal outcome, distinct from an empty successful result.
	ErrNotFound = errors.New("not found")

	// ErrSeedUnavailable marks a failed seed load. The store keeps its
	// previous state; the condition is reported to the operator, not
	// surfaced per-request.
	ErrSeedUnavailable = errors.New("seed data unavailable")
)
