package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := IDFromContent("A cat sat.")
		b := IDFromContent("A cat sat.")
		assert.Equal(t, a, b)
	})

	t.Run("distinct content yields distinct IDs", func(t *testing.T) {
		a := IDFromContent("A cat sat.")
		b := IDFromContent("A dog ran.")
		assert.NotEqual(t, a, b)
	})

	t.Run("empty content is valid input", func(t *testing.T) {
		assert.NotPanics(t, func() {
			IDFromContent("")
		})
	})
}

func TestDocumentValidate(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		doc := &Document{Source: "doc.md", Text: "hello"}
		require.NoError(t, doc.Validate())
	})

	t.Run("missing source", func(t *testing.T) {
		doc := &Document{Text: "hello"}
		assert.Equal(t, ErrEmptySource, doc.Validate())
	})

	t.Run("missing text", func(t *testing.T) {
		doc := &Document{Source: "doc.md"}
		assert.Equal(t, ErrEmptyDocument, doc.Validate())
	})
}

func TestQueryResultChunkTexts(t *testing.T) {
	result := &QueryResult{
		Question: "what sat?",
		Chunks: []*Chunk{
			{Seq: 0, Text: "A cat sat. "},
			{Seq: 2, Text: "A bird flew."},
		},
	}
	assert.Equal(t, []string{"A cat sat. ", "A bird flew."}, result.ChunkTexts())
}
