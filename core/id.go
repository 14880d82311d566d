package core

import (
	"encoding/binary"
	"strconv"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities, generated by
// content-based hashing so identical content produces identical IDs.
type ID uint64

// IDFromContent generates a deterministic ID from text content using
// BLAKE2b hashing.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// ChunkID derives the ID for a chunk from its provenance and content.
// Two chunks with the same source, position, and text collide on purpose.
func ChunkID(source string, seq int, content string) ID {
	return IDFromContent(source + "#" + strconv.Itoa(seq) + "#" + content)
}
