package retrieval

import "errors"

var (
	// ErrEmbedderRequired is returned when no embedder is provided.
	ErrEmbedderRequired = errors.New("embedder is required")

	// ErrSourceRequired is returned when no chunk source is provided.
	ErrSourceRequired = errors.New("chunk source is required")

	// ErrIndexUnavailable is returned when the project's index cannot be
	// loaded at all. This is distinct from a search that simply matches
	// nothing, which returns an empty result set and no error.
	ErrIndexUnavailable = errors.New("index unavailable")
)
