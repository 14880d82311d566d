package badger

import (
	"fmt"

	"github.com/atriumlabs/converso/core"
)

// Key prefixes for the chunk index
const (
	chunkRecordPrefix = "chkrec"
)

// makeChunkKey generates a key for an indexed chunk by ID.
func makeChunkKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", chunkRecordPrefix, id))
}
