package ingestion

import "errors"

// Configuration errors. These are fatal at startup: a process with invalid
// split parameters or an unreadable document must not serve requests.
var (
	// ErrInvalidChunkSize indicates a non-positive chunk size.
	ErrInvalidChunkSize = errors.New("chunk size must be positive")

	// ErrInvalidChunkOverlap indicates a negative overlap or an overlap
	// greater than or equal to the chunk size.
	ErrInvalidChunkOverlap = errors.New("chunk overlap must be non-negative and smaller than chunk size")
)
