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


package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/atriumlabs/converso/ai"
	"github.com/atriumlabs/converso/core"
	"github.com/atriumlabs/converso/moderation"
)

// Retriever finds grounded context for a query. *retrieval.Engine
// implements it.
type Retriever interface {
	Retrieve(ctx context.Context, project, query string) ([]*core.RetrievalResult, error)
}

// Bot answers user turns for one project. Each turn walks a strict tier
// ladder: moderation block, knowledge blob, ungrounded fallback, grounded
// answer with retrieved context.
type Bot struct {
	generator      ai.Generator
	guard          *moderation.Guard
	retriever      Retriever
	project        string
	knowledge      string
	temperature    float64
	groundedPrompt string
	transcript     []*core.Turn
	logger         *slog.Logger
}

// Option configures a Bot.
type Option func(*Bot) error

// WithKnowledge puts the bot in knowledge-blob mode. Retrieval is skipped
// and every non-blocked turn is answered from the blob.
func WithKnowledge(content string) Option {
	return func(b *Bot) error {
		b.knowledge = content
		return nil
	}
}

// WithTemperature sets the generation temperature for replies.
func WithTemperature(temperature float64) Option {
	return func(b *Bot) error {
		if temperature < 0 || temperature > 1 {
			return fmt.Errorf("temperature must be in [0,1], got %f", temperature)
		}
		b.temperature = temperature
		return nil
	}
}

// WithGroundedPrompt replaces the default grounded prompt. The context
// and question slots are appended automatically.
func WithGroundedPrompt(prompt string) Option {
	return func(b *Bot) error {
		prompt = strings.TrimSpace(prompt)
		if prompt == "" {
			return fmt.Errorf("grounded prompt must not be empty")
		}
		b.groundedPrompt = prompt + "\n" + promptSuffix
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bot) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// NewBot creates a conversation bot for the given project.
func NewBot(project string, generator ai.Generator, guard *moderation.Guard, retriever Retriever, opts ...Option) (*Bot, error) {
	if generator == nil {
		return nil, ErrGeneratorRequired
	}
	if guard == nil {
		return nil, ErrGuardRequired
	}
	if retriever == nil {
		return nil, ErrRetrieverRequired
	}

	b := &Bot{
		generator:      generator,
		guard:          guard,
		retriever:      retriever,
		project:        project,
		temperature:    0.3,
		groundedPrompt: promptGrounded,
		logger:         slog.Default().With("component", "chat", "project", project),
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Respond evaluates one user turn through the tier ladder and appends the
// resulting turn to the transcript.
func (b *Bot) Respond(ctx context.Context, input string) (*core.Turn, error) {
	turn, err := b.respond(ctx, input)
	if err != nil {
		return nil, err
	}
	b.transcript = append(b.transcript, turn)
	return turn, nil
}

func (b *Bot) respond(ctx context.Context, input string) (*core.Turn, error) {
	if b.guard.Check(ctx, input) {
		b.logger.Info("turn blocked by moderation")
		return &core.Turn{
			Tier:     core.TierBlocked,
			Response: BlockedReply,
		}, nil
	}

	if b.knowledge != "" {
		reply, err := b.generate(ctx, promptKnowledge, map[string]string{
			"{KB}":       b.knowledge,
			"{question}": input,
		})
		if err != nil {
			return nil, err
		}
		return &core.Turn{
			Tier:     core.TierKnowledge,
			Response: reply,
		}, nil
	}

	results, err := b.retriever.Retrieve(ctx, b.project, input)
	if err != nil {
		// An unreadable index degrades to an ungrounded answer.
		b.logger.Warn("retrieval failed, answering without context", "err", err)
		results = nil
	}

	if len(results) == 0 {
		reply, err := b.generate(ctx, promptUngrounded, map[string]string{
			"{question}": input,
		})
		if err != nil {
			return nil, err
		}
		return &core.Turn{
			Tier:     core.TierUngrounded,
			Response: reply,
		}, nil
	}

	contextText := buildContext(results)
	reply, err := b.generate(ctx, b.groundedPrompt, map[string]string{
		"{context}":  contextText,
		"{question}": input,
	})
	if err != nil {
		return nil, err
	}

	turn := &core.Turn{
		Tier:     core.TierGrounded,
		Response: reply,
	}
	if strings.TrimSpace(reply) == RefusalSentinel {
		// The model refused: keep the tier but drop the citation.
		b.logger.Info("grounded reply hit the refusal sentinel, clearing citations")
		return turn, nil
	}

	turn.Context = contextText
	turn.Documents = uniqueSources(results)
	return turn, nil
}

// Transcript returns the turns answered so far, oldest first.
func (b *Bot) Transcript() []*core.Turn {
	return b.transcript
}

func (b *Bot) generate(ctx context.Context, template string, slots map[string]string) (string, error) {
	pairs := make([]string, 0, len(slots)*2)
	for slot, value := range slots {
		pairs = append(pairs, slot, value)
	}
	prompt := strings.NewReplacer(pairs...).Replace(template)

	reply, err := b.generator.Generate(ctx, prompt, b.temperature)
	if err != nil {
		return "", fmt.Errorf("generating reply: %w", err)
	}
	return strings.TrimSpace(reply), nil
}

// buildContext concatenates each result with a header and footer naming
// its source document.
func buildContext(results []*core.RetrievalResult) string {
	var sb strings.Builder
	for _, result := range results {
		fmt.Fprintf(&sb, "Documento: %s\n", result.Source)
		fmt.Fprintf(&sb, "### Início do conteúdo do documento: %s\n%s\n", result.Source, result.Content)
		fmt.Fprintf(&sb, "### Fim do documento: %s\n\n", result.Source)
	}
	return sb.String()
}

// uniqueSources deduplicates source names preserving first-seen order.
func uniqueSources(results []*core.RetrievalResult) []string {
	seen := make(map[string]bool, len(results))
	var sources []string
	for _, result := range results {
		if seen[result.Source] {
			continue
		}
		seen[result.Source] = true
		sources = append(sources, result.Source)
	}
	return sources
}
