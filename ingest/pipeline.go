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


package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/atriumlabs/converso/ai"
	"github.com/atriumlabs/converso/core"
	"github.com/atriumlabs/converso/extract"
)

const (
	defaultChunkSize         = 1000
	defaultChunkOverlap      = 200
	defaultMaxKnowledgeWords = 1000
	defaultEmbedBatchSize    = 128
)

// ProjectStore persists the outcome of an ingestion run. Exactly one of
// SaveKnowledge or RebuildIndex is called per run.
type ProjectStore interface {
	// SaveKnowledge stores the full text as the project's knowledge blob.
	SaveKnowledge(ctx context.Context, project, content string) error
	// RebuildIndex atomically replaces the project's chunk index.
	RebuildIndex(ctx context.Context, project string, chunks []*core.IndexedChunk) error
}

// Pipeline turns raw documents into a project's knowledge blob or chunk
// index. Documents are expanded, extracted, and normalized; small
// single-document inputs become a knowledge blob, everything else is
// split, embedded, and indexed.
type Pipeline struct {
	extractor         *extract.Extractor
	embedder          ai.Embedder
	store             ProjectStore
	splitter          *Splitter
	chunkSize         int
	chunkOverlap      int
	maxKnowledgeWords int
	embedBatchSize    int
	logger            *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithChunking sets the chunk size and overlap used by the splitter.
func WithChunking(chunkSize, overlap int) Option {
	return func(p *Pipeline) error {
		if err := core.ValidateChunking(chunkSize, overlap); err != nil {
			return err
		}
		p.chunkSize = chunkSize
		p.chunkOverlap = overlap
		return nil
	}
}

// WithMaxKnowledgeWords sets the word count below which a single document
// is stored as a knowledge blob instead of being indexed.
func WithMaxKnowledgeWords(words int) Option {
	return func(p *Pipeline) error {
		if words < 1 {
			return fmt.Errorf("max knowledge words must be positive, got %d", words)
		}
		p.maxKnowledgeWords = words
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates an ingestion pipeline.
func NewPipeline(extractor *extract.Extractor, embedder ai.Embedder, store ProjectStore, opts ...Option) (*Pipeline, error) {
	if extractor == nil {
		return nil, ErrExtractorRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if store == nil {
		return nil, ErrStoreRequired
	}

	p := &Pipeline{
		extractor:         extractor,
		embedder:          embedder,
		store:             store,
		chunkSize:         defaultChunkSize,
		chunkOverlap:      defaultChunkOverlap,
		maxKnowledgeWords: defaultMaxKnowledgeWords,
		embedBatchSize:    defaultEmbedBatchSize,
		logger:            slog.Default().With("component", "ingest"),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	splitter, err := NewSplitter(p.chunkSize, p.chunkOverlap)
	if err != nil {
		return nil, err
	}
	p.splitter = splitter

	return p, nil
}

// Report summarizes an ingestion run.
type Report struct {
	Mode      core.StorageMode
	Files     []FileStat // sources that contributed text, in input order
	Discarded []string   // documents skipped for broken or too-short content
	Chunks    int        // chunks indexed; zero in knowledge mode
}

// FileStat pairs a contributing source with its extracted word count.
// Callers persist these in the project metadata.
type FileStat struct {
	Name  string
	Words int
}

// Ingest processes documents into the named project. Archives are expanded
// to their leaf documents first. A single surviving document short enough
// for direct prompting is stored as a knowledge blob; otherwise all texts
// are chunked, embedded, and the project index is rebuilt.
func (p *Pipeline) Ingest(ctx context.Context, project string, docs []core.Document) (*Report, error) {
	leaves, err := extract.ExpandArchives(docs)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	var texts []*core.ExtractedText
	for _, doc := range leaves {
		extracted, err := p.extractor.Extract(doc)
		if err != nil {
			// A broken document never aborts the run; it is skipped
			// like one that yielded no usable text.
			if errors.Is(err, extract.ErrExtraction) {
				p.logger.Warn("skipping document after extraction failure", "name", doc.Name, "err", err)
				report.Discarded = append(report.Discarded, doc.Name)
				continue
			}
			return nil, err
		}
		if extracted == nil {
			p.logger.Warn("discarding document with too little text", "name", doc.Name)
			report.Discarded = append(report.Discarded, doc.Name)
			continue
		}
		texts = append(texts, extracted)
		report.Files = append(report.Files, FileStat{Name: extracted.Source, Words: extracted.WordCount})
	}

	if len(texts) == 0 {
		return nil, ErrNoContent
	}

	if len(texts) == 1 && texts[0].WordCount <= p.maxKnowledgeWords {
		p.logger.Info("storing project as knowledge blob",
			"project", project, "source", texts[0].Source, "words", texts[0].WordCount)
		if err := p.store.SaveKnowledge(ctx, project, texts[0].Content); err != nil {
			return nil, err
		}
		report.Mode = core.StorageModeKnowledge
		return report, nil
	}

	var chunks []core.Chunk
	for _, text := range texts {
		chunks = append(chunks, p.splitter.Split(text.Source, text.Content)...)
	}

	indexed, err := p.embedChunks(ctx, chunks)
	if err != nil {
		return nil, err
	}

	p.logger.Info("rebuilding project index",
		"project", project, "documents", len(texts), "chunks", len(indexed))
	if err := p.store.RebuildIndex(ctx, project, indexed); err != nil {
		return nil, err
	}

	report.Mode = core.StorageModeVector
	report.Chunks = len(indexed)
	return report, nil
}

// embedChunks generates embeddings in batches and pairs each chunk with
// its vector.
func (p *Pipeline) embedChunks(ctx context.Context, chunks []core.Chunk) ([]*core.IndexedChunk, error) {
	indexed := make([]*core.IndexedChunk, 0, len(chunks))

	for start := 0; start < len(chunks); start += p.embedBatchSize {
		end := start + p.embedBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		contents := make([]string, len(batch))
		for i, chunk := range batch {
			contents[i] = chunk.Content
		}

		p.logger.Debug("embedding chunk batch", "chunks", len(contents))
		vectors, err := p.embedder.EmbedTexts(ctx, contents)
		if err != nil {
			return nil, fmt.Errorf("embedding chunks: %w", err)
		}
		if len(vectors) != len(batch) {
			return nil, fmt.Errorf("embedding result mismatch. expected %d, received %d", len(batch), len(vectors))
		}

		for i, chunk := range batch {
			indexed = append(indexed, &core.IndexedChunk{
				Id:      core.ChunkID(chunk.Source, chunk.Seq, chunk.Content),
				Source:  chunk.Source,
				Seq:     chunk.Seq,
				Content: chunk.Content,
				Vector:  vectors[i],
			})
		}
	}

	return indexed, nil
}
