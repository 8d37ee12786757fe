package qa

import "errors"

var (
	// ErrRetrieverRequired indicates no retriever was provided.
	ErrRetrieverRequired = errors.New("retriever is required")

	// ErrGeneratorRequired indicates no generator was provided.
	ErrGeneratorRequired = errors.New("generator is required")

	// ErrRetrieval classifies a failure while retrieving context chunks.
	// The underlying cause is wrapped alongside it.
	ErrRetrieval = errors.New("retrieval failed")

	// ErrGeneration classifies a failure while generating the answer.
	// The underlying cause is wrapped alongside it.
	ErrGeneration = errors.New("generation failed")
)
