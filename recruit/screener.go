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


package recruit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/atriumlabs/converso/ai"
	"github.com/atriumlabs/converso/core"
	"github.com/atriumlabs/converso/extract"
)

// Screener extracts a structured candidate record from one CV document.
// Failures never escape: every document produces a ScreeningResult, with
// the failure recorded in Err and Raw when extraction or parsing breaks.
type Screener struct {
	generator ai.Generator
	extractor *extract.Extractor
	logger    *slog.Logger
}

// NewScreener creates a CV screener.
func NewScreener(generator ai.Generator, extractor *extract.Extractor, logger *slog.Logger) (*Screener, error) {
	if generator == nil {
		return nil, ErrGeneratorRequired
	}
	if extractor == nil {
		return nil, ErrExtractorRequired
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Screener{
		generator: generator,
		extractor: extractor,
		logger:    logger.With("component", "recruit"),
	}, nil
}

// Screen extracts, prompts and parses a single CV.
func (s *Screener) Screen(ctx context.Context, doc core.Document, jobTitle, jobDescription string) *core.ScreeningResult {
	text, err := s.extractor.Extract(doc)
	if err != nil {
		return failedResult(doc.Name, fmt.Sprintf("text extraction failed: %v", err), "")
	}
	if text == nil {
		return failedResult(doc.Name, "document yielded no usable text", "")
	}

	prompt := strings.NewReplacer(
		"<titulo>", jobTitle,
		"<descricao>", jobDescription,
		"<cv_text>", text.Content,
	).Replace(cvPrompt)

	reply, err := s.generator.Generate(ctx, prompt, 0)
	if err != nil {
		return failedResult(doc.Name, fmt.Sprintf("generation failed: %v", err), "")
	}

	profile, outcome, parseErr := parseProfile(reply)
	if parseErr != nil {
		s.logger.Warn("CV reply did not parse", "document", doc.Name, "err", parseErr)
		return failedResult(doc.Name, fmt.Sprintf("JSON parse failed: %v", parseErr), reply)
	}

	return &core.ScreeningResult{
		Source:  doc.Name,
		Outcome: outcome,
		Profile: profile,
	}
}

// parseProfile parses the model reply strictly, then once more against
// the first {...} span if the strict parse fails.
func parseProfile(reply string) (*core.CandidateProfile, core.ScreeningOutcome, error) {
	var profile core.CandidateProfile
	if err := json.Unmarshal([]byte(reply), &profile); err == nil {
		return &profile, core.OutcomeParsed, nil
	}

	span, ok := braceSpan(reply)
	if !ok {
		return nil, core.OutcomeFailed, fmt.Errorf("no JSON object found in reply")
	}
	if err := json.Unmarshal([]byte(span), &profile); err != nil {
		return nil, core.OutcomeFailed, err
	}
	return &profile, core.OutcomeRecovered, nil
}

// braceSpan returns the text after the first "{" cut at the first "}",
// re-wrapped in braces. A reply truncated before the closing brace still
// recovers its leading fields.
func braceSpan(reply string) (string, bool) {
	open := strings.Index(reply, "{")
	if open < 0 {
		return "", false
	}
	inner := reply[open+1:]
	if end := strings.Index(inner, "}"); end >= 0 {
		inner = inner[:end]
	}
	return "{" + inner + "}", true
}

func failedResult(source, errMsg, raw string) *core.ScreeningResult {
	return &core.ScreeningResult{
		Source:  source,
		Outcome: core.OutcomeFailed,
		Err:     errMsg,
		Raw:     raw,
	}
}
