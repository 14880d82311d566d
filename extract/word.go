package extract

import (
	"bytes"
	"fmt"

	"code.sajari.com/docconv/v2"
)

const (
	mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeODT  = "application/vnd.oasis.opendocument.text"
)

// convertWordProcessor extracts the paragraph text of a word-processor
// document. docconv joins paragraphs with newlines, which is exactly the
// shape the normalizer expects.
func convertWordProcessor(data []byte, mimeType string) (string, error) {
	result, err := docconv.Convert(bytes.NewReader(data), mimeType, false)
	if err != nil {
		return "", fmt.Errorf("converting document: %w", err)
	}
	return result.Body, nil
}
