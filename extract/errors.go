package extract

import "errors"

var (
	// ErrExtraction wraps every per-document extraction failure. It is
	// always scoped to a single document and never aborts a batch.
	ErrExtraction = errors.New("extraction failed")

	// ErrUnsupportedType is returned for document types the pipeline has
	// no handler for.
	ErrUnsupportedType = errors.New("unsupported document type")
)
