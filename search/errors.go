package search

import "errors"

var (
	// ErrEmbedderRequired indicates no embedder was provided.
	ErrEmbedderRequired = errors.New("embedder is required")

	// ErrNoChunks indicates an index build was attempted with no chunks.
	ErrNoChunks = errors.New("at least one chunk is required")

	// ErrEmbeddingCountMismatch indicates the embedder returned a different
	// number of vectors than the number of chunks.
	ErrEmbeddingCountMismatch = errors.New("embedding count does not match chunk count")

	// ErrDimensionMismatch indicates chunk embeddings have inconsistent dimensions.
	ErrDimensionMismatch = errors.New("embedding dimensions are inconsistent")

	// ErrInvalidTopK indicates a non-positive retrieval limit.
	ErrInvalidTopK = errors.New("retrieval limit must be positive")
)
