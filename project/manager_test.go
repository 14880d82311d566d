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


package project

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atriumlabs/converso/core"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })
	return m
}

func testChunks(n int) []*core.IndexedChunk {
	chunks := make([]*core.IndexedChunk, n)
	for i := range chunks {
		content := "trecho " + strings.Repeat("x", i+1)
		chunks[i] = &core.IndexedChunk{
			Id:      core.ChunkID("doc.txt", i, content),
			Source:  "doc.txt",
			Seq:     i,
			Content: content,
			Vector:  []float32{float32(i), 1},
		}
	}
	return chunks
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("rh"))
	assert.ErrorIs(t, ValidateName(""), ErrInvalidName)
	assert.ErrorIs(t, ValidateName(strings.Repeat("a", 30)), ErrInvalidName)
	assert.ErrorIs(t, ValidateName("a/b"), ErrInvalidName)
	assert.ErrorIs(t, ValidateName(".."), ErrInvalidName)
}

func TestCreateAndList(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.Create("rh", "maria"))
	require.NoError(t, m.Create("juridico", "joao"))

	err := m.Create("rh", "outra")
	assert.ErrorIs(t, err, ErrProjectExists)

	names, err := m.List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"rh", "juridico"}, names)

	meta, err := m.Metadata("rh")
	require.NoError(t, err)
	assert.Equal(t, "rh", meta.Name)
	assert.Equal(t, "maria", meta.Owner)
	assert.False(t, meta.CreatedAt.IsZero())
}

func TestCreateValidation(t *testing.T) {
	m := newTestManager(t)

	assert.ErrorIs(t, m.Create("", "maria"), ErrInvalidName)
	assert.ErrorIs(t, m.Create("rh", ""), ErrInvalidOwner)
	assert.ErrorIs(t, m.Create("rh", strings.Repeat("o", 30)), ErrInvalidOwner)
}

func TestKnowledgeLifecycle(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.Create("rh", "maria"))
	require.NoError(t, m.SaveKnowledge(ctx, "rh", "O prazo é 30 dias."))

	mode, err := m.StorageMode("rh")
	require.NoError(t, err)
	assert.Equal(t, core.StorageModeKnowledge, mode)

	content, ok, err := m.Knowledge("rh")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "O prazo é 30 dias.", content)

	chunks, err := m.Chunks(ctx, "rh")
	require.NoError(t, err)
	assert.Nil(t, chunks, "knowledge projects have no index")
}

func TestIndexLifecycle(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.Create("docs", "maria"))
	require.NoError(t, m.RebuildIndex(ctx, "docs", testChunks(5)))

	mode, err := m.StorageMode("docs")
	require.NoError(t, err)
	assert.Equal(t, core.StorageModeVector, mode)

	chunks, err := m.Chunks(ctx, "docs")
	require.NoError(t, err)
	assert.Len(t, chunks, 5)

	_, ok, err := m.Knowledge("docs")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExactlyOneStorageForm(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.Create("p", "maria"))

	// Knowledge then index: the blob must disappear.
	require.NoError(t, m.SaveKnowledge(ctx, "p", "blob"))
	require.NoError(t, m.RebuildIndex(ctx, "p", testChunks(2)))

	_, ok, err := m.Knowledge("p")
	require.NoError(t, err)
	assert.False(t, ok)

	mode, err := m.StorageMode("p")
	require.NoError(t, err)
	assert.Equal(t, core.StorageModeVector, mode)

	// Index then knowledge: the index must disappear.
	require.NoError(t, m.SaveKnowledge(ctx, "p", "blob de novo"))

	chunks, err := m.Chunks(ctx, "p")
	require.NoError(t, err)
	assert.Nil(t, chunks)

	mode, err = m.StorageMode("p")
	require.NoError(t, err)
	assert.Equal(t, core.StorageModeKnowledge, mode)
}

func TestRebuildReplacesIndex(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.Create("docs", "maria"))
	require.NoError(t, m.RebuildIndex(ctx, "docs", testChunks(8)))
	require.NoError(t, m.RebuildIndex(ctx, "docs", testChunks(3)))

	chunks, err := m.Chunks(ctx, "docs")
	require.NoError(t, err)
	assert.Len(t, chunks, 3)
}

func TestStorageModeNotIngested(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.Create("vazio", "maria"))
	_, err := m.StorageMode("vazio")
	assert.ErrorIs(t, err, ErrNotIngested)
}

func TestDeleteRemovesEverything(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.Create("docs", "maria"))
	require.NoError(t, m.RebuildIndex(ctx, "docs", testChunks(2)))
	require.NoError(t, m.Delete("docs"))

	_, err := m.Metadata("docs")
	assert.ErrorIs(t, err, ErrProjectNotFound)

	names, err := m.List()
	require.NoError(t, err)
	assert.Empty(t, names)

	assert.ErrorIs(t, m.Delete("docs"), ErrProjectNotFound)
}

func TestRecordFiles(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.Create("docs", "maria"))
	require.NoError(t, m.RecordFiles("docs", []FileRecord{
		{FileName: "a.txt", WordCount: 120},
		{FileName: "b.pdf", WordCount: 3400},
	}))

	meta, err := m.Metadata("docs")
	require.NoError(t, err)
	require.Len(t, meta.Files, 2)
	assert.Equal(t, "a.txt", meta.Files[0].FileName)
	assert.Equal(t, 3400, meta.Files[1].WordCount)
}

func TestPromptLifecycle(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.Create("docs", "maria"))

	_, ok, err := m.Prompt("docs")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, m.SavePrompt("docs", "curto"), ErrInvalidPrompt)
	assert.ErrorIs(t, m.SavePrompt("docs", strings.Repeat("p", 2500)), ErrInvalidPrompt)

	prompt := "Você é um assistente de RH focado em responder dúvidas sobre benefícios."
	require.NoError(t, m.SavePrompt("docs", prompt))

	got, ok, err := m.Prompt("docs")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, prompt, got)
}

func TestPasswordLifecycle(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.Create("docs", "maria"))

	meta, err := m.Metadata("docs")
	require.NoError(t, err)
	assert.False(t, meta.Protected)
	assert.Empty(t, meta.Password)

	// Stored opaque; the manager never interprets the credential
	require.NoError(t, m.SetPassword("docs", "Z0FBQUFBQm9v=="))

	meta, err = m.Metadata("docs")
	require.NoError(t, err)
	assert.True(t, meta.Protected)
	assert.Equal(t, "Z0FBQUFBQm9v==", meta.Password)

	require.NoError(t, m.SetPassword("docs", ""))

	meta, err = m.Metadata("docs")
	require.NoError(t, err)
	assert.False(t, meta.Protected)

	assert.ErrorIs(t, m.SetPassword("nada", "x"), ErrProjectNotFound)
}

func TestOperationsOnMissingProject(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	assert.ErrorIs(t, m.SaveKnowledge(ctx, "nada", "x"), ErrProjectNotFound)
	assert.ErrorIs(t, m.RebuildIndex(ctx, "nada", nil), ErrProjectNotFound)

	_, err := m.Chunks(ctx, "nada")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}
