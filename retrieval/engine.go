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


package retrieval

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/atriumlabs/converso/ai"
	"github.com/atriumlabs/converso/core"
)

const (
	defaultMaxDocs        = 4
	defaultScoreThreshold = float32(0.8)

	// overFetchFactor widens the nearest-neighbor pass so the score
	// filter still has candidates to reject.
	overFetchFactor = 4
)

// ChunkSource loads the indexed chunks of a project. An error means the
// index itself could not be read, not that it is empty.
type ChunkSource interface {
	Chunks(ctx context.Context, project string) ([]*core.IndexedChunk, error)
}

// Engine finds the chunks nearest to a query embedding. Scores are squared
// Euclidean distances, so lower is better and results are sorted ascending.
type Engine struct {
	embedder       ai.Embedder
	source         ChunkSource
	maxDocs        int
	scoreThreshold float32
	logger         *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithMaxDocs sets the maximum number of results returned per query.
func WithMaxDocs(n int) Option {
	return func(e *Engine) error {
		if n < 1 {
			return fmt.Errorf("max docs must be positive, got %d", n)
		}
		e.maxDocs = n
		return nil
	}
}

// WithScoreThreshold sets the distance above which results are discarded.
func WithScoreThreshold(threshold float32) Option {
	return func(e *Engine) error {
		if threshold < 0 {
			return fmt.Errorf("score threshold must be non-negative, got %f", threshold)
		}
		e.scoreThreshold = threshold
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEngine creates a retrieval engine.
func NewEngine(embedder ai.Embedder, source ChunkSource, opts ...Option) (*Engine, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if source == nil {
		return nil, ErrSourceRequired
	}

	e := &Engine{
		embedder:       embedder,
		source:         source,
		maxDocs:        defaultMaxDocs,
		scoreThreshold: defaultScoreThreshold,
		logger:         slog.Default().With("component", "retrieval"),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Retrieve embeds the query and returns the nearest chunks whose distance
// is within the threshold, closest first. A project without an index
// yields an empty result set; a project whose index exists but cannot be
// read returns ErrIndexUnavailable. Callers that treat both the same may
// still want the distinction in their logs.
func (e *Engine) Retrieve(ctx context.Context, project, query string) ([]*core.RetrievalResult, error) {
	chunks, err := e.source.Chunks(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("%w: project %q: %w", ErrIndexUnavailable, project, err)
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	queryVector, err := e.embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	type scored struct {
		chunk *core.IndexedChunk
		score float32
	}

	candidates := make([]scored, 0, len(chunks))
	for _, chunk := range chunks {
		if len(chunk.Vector) == 0 {
			continue
		}
		candidates = append(candidates, scored{
			chunk: chunk,
			score: squaredDistance(queryVector, chunk.Vector),
		})
	}

	slices.SortFunc(candidates, func(a, b scored) int {
		if a.score < b.score {
			return -1
		}
		if a.score > b.score {
			return 1
		}
		return 0
	})

	// Keep a wider nearest set before filtering so the threshold acts on
	// genuine neighbors rather than on an already capped list.
	fetch := e.maxDocs * overFetchFactor
	if fetch > len(candidates) {
		fetch = len(candidates)
	}
	candidates = candidates[:fetch]

	var results []*core.RetrievalResult
	for _, c := range candidates {
		if c.score > e.scoreThreshold {
			continue
		}
		results = append(results, &core.RetrievalResult{
			Source:  c.chunk.Source,
			Content: c.chunk.Content,
			Score:   c.score,
		})
		if len(results) == e.maxDocs {
			break
		}
	}

	e.logger.Debug("retrieval complete",
		"project", project, "candidates", len(candidates), "results", len(results))

	return results, nil
}

// squaredDistance computes the squared Euclidean distance between two
// vectors. Missing trailing dimensions count as zero.
func squaredDistance(a, b []float32) float32 {
	long, short := a, b
	if len(b) > len(a) {
		long, short = b, a
	}

	var sum float32
	for i := range short {
		d := long[i] - short[i]
		sum += d * d
	}
	for i := len(short); i < len(long); i++ {
		sum += long[i] * long[i]
	}
	return sum
}
