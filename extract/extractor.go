// Copyright 2026 Atrium Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package extract

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/atriumlabs/converso/core"
)

// minExtractedChars is the noise floor: extractions at or below this
// length are discarded as empty.
const minExtractedChars = 5

// Extractor turns raw documents into normalized text, dispatching on the
// document's declared type.
type Extractor struct {
	logger *slog.Logger
}

// NewExtractor creates a text extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		logger: slog.Default().With("component", "extractor"),
	}
}

// Extract produces the normalized text of one document.
//
// The returned text has every whitespace run collapsed to a single space
// and is trimmed. Extractions of five characters or fewer are treated as
// noise and reported as (nil, nil) — absent, not an error. A failing
// format handler returns a wrapped ErrExtraction; callers decide whether
// that skips the document (ingestion) or produces an error record
// (screening).
func (e *Extractor) Extract(doc core.Document) (*core.ExtractedText, error) {
	if len(doc.Data) == 0 {
		return nil, fmt.Errorf("%w: %s: %w", ErrExtraction, doc.Name, core.ErrEmptyDocument)
	}

	var text string
	var err error

	switch doc.Type {
	case core.DocumentTypePlainText:
		text = string(doc.Data)
	case core.DocumentTypeCSV:
		text, err = renderCSV(doc.Data)
	case core.DocumentTypeXLSX:
		text, err = renderXLSX(doc.Data)
	case core.DocumentTypeJSON:
		text, err = reserializeJSON(doc.Data)
	case core.DocumentTypeYAML:
		text, err = reserializeYAML(doc.Data)
	case core.DocumentTypeDocx:
		text, err = convertWordProcessor(doc.Data, mimeDocx)
	case core.DocumentTypeODT:
		text, err = convertWordProcessor(doc.Data, mimeODT)
	case core.DocumentTypePDF:
		text, err = extractPDF(doc.Data)
	default:
		return nil, fmt.Errorf("%w: %s: %w", ErrExtraction, doc.Name, ErrUnsupportedType)
	}

	if err != nil {
		e.logger.Warn("extraction failed", "document", doc.Name, "err", err)
		return nil, fmt.Errorf("%w: %s: %w", ErrExtraction, doc.Name, err)
	}

	normalized := NormalizeWhitespace(text)
	if len(normalized) <= minExtractedChars {
		e.logger.Debug("extraction discarded as noise", "document", doc.Name, "length", len(normalized))
		return nil, nil
	}

	return &core.ExtractedText{
		Source:    doc.Name,
		Content:   normalized,
		WordCount: len(strings.Fields(normalized)),
		CharCount: len(normalized),
	}, nil
}

// NormalizeWhitespace collapses every run of whitespace into a single
// space and trims the result.
func NormalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// TypeFromName maps a file name to its declared document type by
// extension. Unrecognized extensions map to DocumentTypeUnknown.
func TypeFromName(name string) core.DocumentType {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		return core.DocumentTypePlainText
	case ".csv":
		return core.DocumentTypeCSV
	case ".xlsx":
		return core.DocumentTypeXLSX
	case ".json":
		return core.DocumentTypeJSON
	case ".yaml", ".yml":
		return core.DocumentTypeYAML
	case ".docx":
		return core.DocumentTypeDocx
	case ".odt":
		return core.DocumentTypeODT
	case ".pdf":
		return core.DocumentTypePDF
	case ".zip":
		return core.DocumentTypeArchive
	default:
		return core.DocumentTypeUnknown
	}
}
