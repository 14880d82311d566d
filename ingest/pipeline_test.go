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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atriumlabs/converso/ai/mock"
	"github.com/atriumlabs/converso/core"
	"github.com/atriumlabs/converso/extract"
)

// fakeStore records what the pipeline persisted.
type fakeStore struct {
	knowledgeProject string
	knowledge        string
	knowledgeCalls   int
	indexProject     string
	indexed          []*core.IndexedChunk
	rebuildCalls     int
}

func (f *fakeStore) SaveKnowledge(ctx context.Context, project, content string) error {
	f.knowledgeCalls++
	f.knowledgeProject = project
	f.knowledge = content
	return nil
}

func (f *fakeStore) RebuildIndex(ctx context.Context, project string, chunks []*core.IndexedChunk) error {
	f.rebuildCalls++
	f.indexProject = project
	f.indexed = chunks
	return nil
}

func newTestPipeline(t *testing.T, store *fakeStore, opts ...Option) *Pipeline {
	t.Helper()
	p, err := NewPipeline(extract.NewExtractor(), mock.NewMockEmbedder(), store, opts...)
	require.NoError(t, err)
	return p
}

func TestNewPipelineRequiresDependencies(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	store := &fakeStore{}

	_, err := NewPipeline(nil, embedder, store)
	assert.ErrorIs(t, err, ErrExtractorRequired)

	_, err = NewPipeline(extract.NewExtractor(), nil, store)
	assert.ErrorIs(t, err, ErrEmbedderRequired)

	_, err = NewPipeline(extract.NewExtractor(), embedder, nil)
	assert.ErrorIs(t, err, ErrStoreRequired)
}

func TestIngestSingleShortDocumentBecomesKnowledge(t *testing.T) {
	store := &fakeStore{}
	p := newTestPipeline(t, store)

	docs := []core.Document{
		{
			Name: "politica.txt",
			Type: core.DocumentTypePlainText,
			Data: []byte("A política de férias permite trinta dias por ano."),
		},
	}

	report, err := p.Ingest(context.Background(), "rh", docs)
	require.NoError(t, err)

	assert.Equal(t, core.StorageModeKnowledge, report.Mode)
	assert.Equal(t, 1, store.knowledgeCalls)
	assert.Equal(t, 0, store.rebuildCalls)
	assert.Equal(t, "rh", store.knowledgeProject)
	assert.Contains(t, store.knowledge, "trinta dias")
}

func TestIngestLongDocumentIsIndexed(t *testing.T) {
	store := &fakeStore{}
	p := newTestPipeline(t, store, WithMaxKnowledgeWords(10), WithChunking(80, 16))

	docs := []core.Document{
		{
			Name: "manual.txt",
			Type: core.DocumentTypePlainText,
			Data: []byte(strings.Repeat("O horário de trabalho é flexível para todos. ", 10)),
		},
	}

	report, err := p.Ingest(context.Background(), "rh", docs)
	require.NoError(t, err)

	assert.Equal(t, core.StorageModeVector, report.Mode)
	assert.Equal(t, 0, store.knowledgeCalls)
	assert.Equal(t, 1, store.rebuildCalls)
	assert.Equal(t, "rh", store.indexProject)
	require.NotEmpty(t, store.indexed)
	assert.Equal(t, len(store.indexed), report.Chunks)

	for _, chunk := range store.indexed {
		assert.Equal(t, "manual.txt", chunk.Source)
		assert.NotEmpty(t, chunk.Content)
		assert.NotEmpty(t, chunk.Vector)
		assert.Equal(t, core.ChunkID(chunk.Source, chunk.Seq, chunk.Content), chunk.Id)
	}
}

func TestIngestMultipleDocumentsAlwaysIndexed(t *testing.T) {
	store := &fakeStore{}
	p := newTestPipeline(t, store)

	// Both documents are short, but two documents never become a blob.
	docs := []core.Document{
		{Name: "a.txt", Type: core.DocumentTypePlainText, Data: []byte("Primeiro documento da base.")},
		{Name: "b.txt", Type: core.DocumentTypePlainText, Data: []byte("Segundo documento da base.")},
	}

	report, err := p.Ingest(context.Background(), "docs", docs)
	require.NoError(t, err)

	assert.Equal(t, core.StorageModeVector, report.Mode)
	assert.Equal(t, 1, store.rebuildCalls)
	require.Len(t, report.Files, 2)
	assert.ElementsMatch(t, []string{"a.txt", "b.txt"}, []string{report.Files[0].Name, report.Files[1].Name})
	for _, file := range report.Files {
		assert.Positive(t, file.Words)
	}

	sources := map[string]bool{}
	for _, chunk := range store.indexed {
		sources[chunk.Source] = true
	}
	assert.Len(t, sources, 2)
}

func TestIngestDiscardsTinyDocuments(t *testing.T) {
	store := &fakeStore{}
	p := newTestPipeline(t, store)

	docs := []core.Document{
		{Name: "vazio.txt", Type: core.DocumentTypePlainText, Data: []byte("  ab  ")},
		{Name: "util.txt", Type: core.DocumentTypePlainText, Data: []byte("Conteúdo aproveitável do documento.")},
	}

	report, err := p.Ingest(context.Background(), "docs", docs)
	require.NoError(t, err)

	assert.Equal(t, []string{"vazio.txt"}, report.Discarded)
	require.Len(t, report.Files, 1)
	assert.Equal(t, "util.txt", report.Files[0].Name)
	assert.Equal(t, 4, report.Files[0].Words)
	// The surviving document is alone and short, so it becomes a blob.
	assert.Equal(t, core.StorageModeKnowledge, report.Mode)
}

func TestIngestSkipsBrokenDocuments(t *testing.T) {
	store := &fakeStore{}
	p := newTestPipeline(t, store)

	// The malformed JSON fails extraction; the run must still ingest
	// the healthy document instead of aborting.
	docs := []core.Document{
		{Name: "ruim.json", Type: core.DocumentTypeJSON, Data: []byte("isto não é json")},
		{Name: "bom.txt", Type: core.DocumentTypePlainText, Data: []byte("Conteúdo aproveitável do documento.")},
	}

	report, err := p.Ingest(context.Background(), "docs", docs)
	require.NoError(t, err)

	assert.Equal(t, []string{"ruim.json"}, report.Discarded)
	require.Len(t, report.Files, 1)
	assert.Equal(t, "bom.txt", report.Files[0].Name)
	assert.Equal(t, core.StorageModeKnowledge, report.Mode)
}

func TestIngestNoUsableContent(t *testing.T) {
	store := &fakeStore{}
	p := newTestPipeline(t, store)

	docs := []core.Document{
		{Name: "quase.txt", Type: core.DocumentTypePlainText, Data: []byte(" a b ")},
	}

	_, err := p.Ingest(context.Background(), "docs", docs)
	assert.ErrorIs(t, err, ErrNoContent)
	assert.Equal(t, 0, store.knowledgeCalls)
	assert.Equal(t, 0, store.rebuildCalls)
}
