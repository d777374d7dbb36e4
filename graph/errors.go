package graph

import "errors"

// Common store errors.
var (
	// ErrCorrupted signals that a consistency audit found the secondary
	// indices out of sync with primary storage. This is a bug, not a
	// transient condition; the store must not be trusted afterwards.
	ErrCorrupted = errors.New("triple store corrupted: index out of sync with primary storage")
)
