package summarize

import "errors"

var (
	// ErrGeneratorRequired is returned when no generator is provided.
	ErrGeneratorRequired = errors.New("generator is required")

	// ErrExtractorRequired is returned when no extractor is provided.
	ErrExtractorRequired = errors.New("extractor is required")

	// ErrInvalidRequest is returned for a malformed summarization request.
	ErrInvalidRequest = errors.New("invalid summarization request")

	// ErrNoContent is returned when no document yields usable text.
	ErrNoContent = errors.New("no usable content extracted")
)
