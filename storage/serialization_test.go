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


package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atriumlabs/converso/core"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero", core.ID(0)},
		{"small", core.ID(42)},
		{"large", core.ID(18446744073709551615)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestMarshalUnmarshalIndexedChunk(t *testing.T) {
	tests := []struct {
		name  string
		chunk *core.IndexedChunk
	}{
		{
			name: "full chunk",
			chunk: &core.IndexedChunk{
				Id:      core.ChunkID("politica.pdf", 3, "Os benefícios incluem vale refeição."),
				Source:  "politica.pdf",
				Seq:     3,
				Content: "Os benefícios incluem vale refeição.",
				Vector:  []float32{0.1, -0.2, 0.3, 0.4},
			},
		},
		{
			name: "empty vector",
			chunk: &core.IndexedChunk{
				Id:      core.ID(7),
				Source:  "manual.txt",
				Seq:     0,
				Content: "conteúdo",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalIndexedChunk(tt.chunk)
			decoded, err := UnmarshalIndexedChunk(data)
			require.NoError(t, err)

			assert.Equal(t, tt.chunk.Id, decoded.Id)
			assert.Equal(t, tt.chunk.Source, decoded.Source)
			assert.Equal(t, tt.chunk.Seq, decoded.Seq)
			assert.Equal(t, tt.chunk.Content, decoded.Content)
			if len(tt.chunk.Vector) == 0 {
				assert.Empty(t, decoded.Vector)
			} else {
				assert.Equal(t, tt.chunk.Vector, decoded.Vector)
			}
		})
	}
}

func TestUnmarshalIndexedChunkCorrupt(t *testing.T) {
	chunk := &core.IndexedChunk{
		Id:      core.ID(1),
		Source:  "doc.txt",
		Seq:     1,
		Content: "texto",
		Vector:  []float32{1, 2, 3},
	}
	data := MarshalIndexedChunk(chunk)

	_, err := UnmarshalIndexedChunk(data[:len(data)/2])
	assert.Error(t, err)
}
