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


package summarize

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/atriumlabs/converso/ai"
	"github.com/atriumlabs/converso/core"
	"github.com/atriumlabs/converso/extract"
)

// CombinedKey is the reserved map key holding the whole-corpus summary
// when all documents are summarized together.
const CombinedKey = "_All_Docs_"

// Request describes one summarization run.
type Request struct {
	WordLimit      int
	SummarizeAll   bool
	AdditionalInfo string
}

// Summarizer produces bounded summaries of documents.
type Summarizer struct {
	generator ai.Generator
	extractor *extract.Extractor
	logger    *slog.Logger
}

// NewSummarizer creates a document summarizer.
func NewSummarizer(generator ai.Generator, extractor *extract.Extractor, logger *slog.Logger) (*Summarizer, error) {
	if generator == nil {
		return nil, ErrGeneratorRequired
	}
	if extractor == nil {
		return nil, ErrExtractorRequired
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{
		generator: generator,
		extractor: extractor,
		logger:    logger.With("component", "summarize"),
	}, nil
}

// Summarize returns a summary per document name, or a single combined
// summary under CombinedKey when the request asks for one. Documents
// without usable text are skipped.
func (s *Summarizer) Summarize(ctx context.Context, docs []core.Document, req Request) (map[string]string, error) {
	if req.WordLimit < 1 {
		return nil, fmt.Errorf("%w: word limit %d", ErrInvalidRequest, req.WordLimit)
	}

	summaries := make(map[string]string)

	if req.SummarizeAll {
		var combined strings.Builder
		for _, doc := range docs {
			text := s.extractText(doc)
			if text == "" {
				continue
			}
			combined.WriteString(text)
			combined.WriteString("\n\n")
		}
		if combined.Len() == 0 {
			return nil, ErrNoContent
		}

		summary, err := s.summarizeText(ctx, combined.String(), req)
		if err != nil {
			return nil, err
		}
		summaries[CombinedKey] = summary
		return summaries, nil
	}

	for _, doc := range docs {
		text := s.extractText(doc)
		if text == "" {
			continue
		}
		summary, err := s.summarizeText(ctx, text, req)
		if err != nil {
			return nil, err
		}
		summaries[doc.Name] = summary
	}
	if len(summaries) == 0 {
		return nil, ErrNoContent
	}
	return summaries, nil
}

func (s *Summarizer) extractText(doc core.Document) string {
	text, err := s.extractor.Extract(doc)
	if err != nil {
		s.logger.Warn("skipping document", "name", doc.Name, "err", err)
		return ""
	}
	if text == nil {
		s.logger.Warn("skipping document with too little text", "name", doc.Name)
		return ""
	}
	return text.Content
}

func (s *Summarizer) summarizeText(ctx context.Context, text string, req Request) (string, error) {
	info := ""
	if req.AdditionalInfo != "" {
		info = "Informações adicionais: " + req.AdditionalInfo
	}

	prompt := strings.NewReplacer(
		"{additional_info}", info,
		"{word_limit}", strconv.Itoa(req.WordLimit),
		"{text}", text,
	).Replace(summaryPrompt)

	summary, err := s.generator.Generate(ctx, prompt, 0)
	if err != nil {
		return "", fmt.Errorf("generating summary: %w", err)
	}
	return strings.TrimSpace(summary), nil
}
