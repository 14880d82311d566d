package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierString(t *testing.T) {
	assert.Equal(t, "blocked", TierBlocked.String())
	assert.Equal(t, "knowledge", TierKnowledge.String())
	assert.Equal(t, "ungrounded", TierUngrounded.String())
	assert.Equal(t, "grounded", TierGrounded.String())
	assert.Equal(t, "unknown", Tier(0).String())
	assert.Equal(t, "unknown", Tier(99).String())
}

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := IDFromContent("o prazo é 30 dias")
		b := IDFromContent("o prazo é 30 dias")
		assert.Equal(t, a, b)
	})

	t.Run("different content different id", func(t *testing.T) {
		a := IDFromContent("primeiro")
		b := IDFromContent("segundo")
		assert.NotEqual(t, a, b)
	})
}

func TestChunkID(t *testing.T) {
	t.Run("same provenance collides", func(t *testing.T) {
		a := ChunkID("manual.pdf", 3, "conteúdo")
		b := ChunkID("manual.pdf", 3, "conteúdo")
		assert.Equal(t, a, b)
	})

	t.Run("sequence position matters", func(t *testing.T) {
		a := ChunkID("manual.pdf", 3, "conteúdo")
		b := ChunkID("manual.pdf", 4, "conteúdo")
		assert.NotEqual(t, a, b)
	})

	t.Run("source matters", func(t *testing.T) {
		a := ChunkID("manual.pdf", 3, "conteúdo")
		b := ChunkID("faq.txt", 3, "conteúdo")
		assert.NotEqual(t, a, b)
	})
}
