package storage

import (
	"context"

	"github.com/atriumlabs/converso/core"
)

// IndexStore persists a project's vector index. A store holds the full
// set of indexed chunks for exactly one project; it is written wholesale
// at build time and read wholesale at conversation start, never
// incrementally mutated.
//
// Implementations must be thread-safe and support concurrent readers.
type IndexStore interface {
	// ReplaceChunks replaces the entire stored chunk set with the given
	// chunks. Existing chunks are removed first; the replacement is
	// all-or-nothing.
	ReplaceChunks(ctx context.Context, chunks []*core.IndexedChunk) error

	// AllChunks loads every stored chunk. Corrupt records surface as a
	// wrapped ErrCorruptIndex rather than being silently skipped, so
	// callers can distinguish "empty index" from "broken index".
	AllChunks(ctx context.Context) ([]*core.IndexedChunk, error)

	// Close closes the storage backend and releases resources.
	Close() error
}
