package recruit

import "errors"

var (
	// ErrGeneratorRequired is returned when no generator is provided.
	ErrGeneratorRequired = errors.New("generator is required")

	// ErrExtractorRequired is returned when no extractor is provided.
	ErrExtractorRequired = errors.New("extractor is required")

	// ErrScreenerRequired is returned when no screener is provided.
	ErrScreenerRequired = errors.New("screener is required")
)
