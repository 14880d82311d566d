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


package badger

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/atriumlabs/converso/core"
	"github.com/atriumlabs/converso/storage"
)

// writeBatchSize bounds the number of chunks written per transaction so
// a large index rebuild does not exceed BadgerDB's transaction limits.
const writeBatchSize = 500

// IndexStore is a BadgerDB-backed implementation of storage.IndexStore.
type IndexStore struct {
	backend *Backend
}

var _ storage.IndexStore = (*IndexStore)(nil)

// NewIndexStore opens a chunk index store at the given directory.
func NewIndexStore(path string) (storage.IndexStore, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, err
	}
	return &IndexStore{backend: backend}, nil
}

// NewMemoryIndexStore creates an in-memory index store for testing.
func NewMemoryIndexStore() (storage.IndexStore, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, err
	}
	return &IndexStore{backend: backend}, nil
}

// ReplaceChunks replaces the full contents of the index with the given chunks.
func (s *IndexStore) ReplaceChunks(ctx context.Context, chunks []*core.IndexedChunk) error {
	if s.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	if err := s.backend.DropAll(); err != nil {
		return fmt.Errorf("clearing index: %w", err)
	}

	for start := 0; start < len(chunks); start += writeBatchSize {
		if err := ctx.Err(); err != nil {
			return err
		}

		end := start + writeBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		err := s.backend.WithTx(func(tx *badger.Txn) error {
			for _, chunk := range batch {
				key := makeChunkKey(chunk.Id)
				if err := tx.Set(key, storage.MarshalIndexedChunk(chunk)); err != nil {
					return err
				}
			}
			return tx.Commit()
		}, true)
		if err != nil {
			return fmt.Errorf("writing chunks: %w", err)
		}
	}

	return nil
}

// AllChunks loads every indexed chunk from the store.
func (s *IndexStore) AllChunks(ctx context.Context) ([]*core.IndexedChunk, error) {
	if s.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var chunks []*core.IndexedChunk

	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(chunkRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			item := iter.Item()
			var chunk *core.IndexedChunk
			err := item.Value(func(val []byte) error {
				var err error
				chunk, err = storage.UnmarshalIndexedChunk(val)
				return err
			})
			if err != nil {
				return fmt.Errorf("%w: key %q: %w", storage.ErrCorruptIndex, item.Key(), err)
			}
			chunks = append(chunks, chunk)
		}

		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	return chunks, nil
}

// Close closes the underlying database.
func (s *IndexStore) Close() error {
	return s.backend.Close()
}
