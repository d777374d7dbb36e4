package consolidator

import "errors"

// Common service errors.
var (
	// ErrNilDocument is returned when a nil document is submitted.
	ErrNilDocument = errors.New("nil document")

	// ErrMissingID is returned when a document has no ID.
	ErrMissingID = errors.New("document has no ID")

	// ErrNoPersister is returned by Persist/Restore when the service was
	// built without a persistence collaborator.
	ErrNoPersister = errors.New("no persister configured")
)
