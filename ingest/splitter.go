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
	"strings"
	"unicode/utf8"

	"github.com/atriumlabs/converso/core"
)

// defaultSeparators is the boundary cascade tried in order when choosing
// where to end a chunk. Earlier entries mark stronger boundaries.
var defaultSeparators = []string{"\n\n", "\n", ".", "!", "?", ","}

// Splitter cuts text into overlapping chunks, preferring to end each chunk
// at a natural boundary.
type Splitter struct {
	chunkSize  int
	overlap    int
	separators []string
}

// NewSplitter creates a splitter with the given chunk size and overlap.
// The overlap must be smaller than the chunk size.
func NewSplitter(chunkSize, overlap int) (*Splitter, error) {
	if err := core.ValidateChunking(chunkSize, overlap); err != nil {
		return nil, err
	}
	return &Splitter{
		chunkSize:  chunkSize,
		overlap:    overlap,
		separators: defaultSeparators,
	}, nil
}

// Split cuts text into chunks of at most chunkSize bytes. Each chunk
// repeats the trailing overlap bytes of its predecessor, so no text is
// lost at chunk boundaries. Overlap is measured in bytes and snapped
// forward to the next rune start, so for multi-byte text the retained
// overlap can fall a few characters short of the configured value.
func (s *Splitter) Split(source, text string) []core.Chunk {
	if text == "" {
		return nil
	}

	var chunks []core.Chunk
	start := 0
	seq := 0

	for {
		remaining := len(text) - start
		if remaining <= s.chunkSize {
			chunks = append(chunks, core.Chunk{
				Source:  source,
				Seq:     seq,
				Content: text[start:],
			})
			return chunks
		}

		end := s.cutPoint(text, start)
		chunks = append(chunks, core.Chunk{
			Source:  source,
			Seq:     seq,
			Content: text[start:end],
		})
		seq++
		start = end - s.overlap
		// The overlap carry may land inside a multi-byte character.
		for start < end && !utf8.RuneStart(text[start]) {
			start++
		}
	}
}

// cutPoint picks the end offset of the chunk beginning at start. It takes
// the last occurrence of the strongest separator inside the window, keeping
// the separator in the chunk. Without a usable separator it cuts hard at
// the size limit. The result always exceeds start+overlap so the loop in
// Split makes progress.
func (s *Splitter) cutPoint(text string, start int) int {
	limit := start + s.chunkSize

	for _, sep := range s.separators {
		idx := strings.LastIndex(text[start:limit], sep)
		if idx < 0 {
			continue
		}
		end := start + idx + len(sep)
		if end > start+s.overlap {
			return end
		}
	}

	// Hard cut, backed off to a rune boundary so multi-byte characters
	// are never split across chunks.
	for limit > start+s.overlap+1 && !utf8.RuneStart(text[limit]) {
		limit--
	}
	return limit
}
