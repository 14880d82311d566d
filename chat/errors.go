package chat

import "errors"

var (
	// ErrGeneratorRequired is returned when no generator is provided.
	ErrGeneratorRequired = errors.New("generator is required")

	// ErrGuardRequired is returned when no moderation guard is provided.
	ErrGuardRequired = errors.New("moderation guard is required")

	// ErrRetrieverRequired is returned when no retriever is provided.
	ErrRetrieverRequired = errors.New("retriever is required")
)
