package ingest

import "errors"

var (
	// ErrExtractorRequired is returned when no extractor is provided.
	ErrExtractorRequired = errors.New("extractor is required")

	// ErrEmbedderRequired is returned when no embedder is provided.
	ErrEmbedderRequired = errors.New("embedder is required")

	// ErrStoreRequired is returned when no project store is provided.
	ErrStoreRequired = errors.New("project store is required")

	// ErrNoContent is returned when no document yields usable text.
	ErrNoContent = errors.New("no usable content extracted")
)
