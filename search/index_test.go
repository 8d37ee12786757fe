package search

import (
	"context"
	"errors"
	"testing"

	"github.com/raglab/docqa/ai/mock"
	"github.com/raglab/docqa/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChunks(texts ...string) []*core.Chunk {
	chunks := make([]*core.Chunk, len(texts))
	for i, text := range texts {
		chunks[i] = &core.Chunk{
			Id:     core.IDFromContent(text),
			Seq:    i,
			Source: "test.md",
			Text:   text,
		}
	}
	return chunks
}

func TestBuildIndex(t *testing.T) {
	ctx := context.Background()

	t.Run("builds from chunks", func(t *testing.T) {
		idx, err := BuildIndex(ctx, testChunks("A cat sat. ", "A dog ran. "), mock.NewMockEmbedder())
		require.NoError(t, err)
		assert.Equal(t, 2, idx.Len())
		assert.Equal(t, 384, idx.Dimensions())
	})

	t.Run("normalizes chunk vectors", func(t *testing.T) {
		chunks := testChunks("one", "two")
		_, err := BuildIndex(ctx, chunks, mock.NewMockEmbedder())
		require.NoError(t, err)

		for _, c := range chunks {
			var mag float32
			for _, v := range c.Vector {
				mag += v * v
			}
			assert.InDelta(t, 1.0, mag, 1e-4)
		}
	})

	t.Run("nil embedder", func(t *testing.T) {
		_, err := BuildIndex(ctx, testChunks("one"), nil)
		assert.Equal(t, ErrEmbedderRequired, err)
	})

	t.Run("no chunks", func(t *testing.T) {
		_, err := BuildIndex(ctx, nil, mock.NewMockEmbedder())
		assert.Equal(t, ErrNoChunks, err)
	})

	t.Run("embedding failure is fatal", func(t *testing.T) {
		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			return nil, errors.New("connection refused")
		}

		_, err := BuildIndex(ctx, testChunks("one"), embedder)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "index build failed")
	})

	t.Run("embedding count mismatch", func(t *testing.T) {
		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			return [][]float32{{1, 0}}, nil
		}

		_, err := BuildIndex(ctx, testChunks("one", "two"), embedder)
		assert.Equal(t, ErrEmbeddingCountMismatch, err)
	})

	t.Run("inconsistent dimensions", func(t *testing.T) {
		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			return [][]float32{{1, 0}, {1, 0, 0}}, nil
		}

		_, err := BuildIndex(ctx, testChunks("one", "two"), embedder)
		assert.Equal(t, ErrDimensionMismatch, err)
	})
}

func TestRetrieve(t *testing.T) {
	ctx := context.Background()

	t.Run("identical query ranks its chunk first", func(t *testing.T) {
		// The mock embedder maps identical texts to identical vectors, so
		// a query equal to a chunk's text must score maximal similarity.
		chunks := testChunks("A cat sat. ", "A dog ran. ", "A bird flew.")
		idx, err := BuildIndex(ctx, chunks, mock.NewMockEmbedder())
		require.NoError(t, err)

		for _, want := range chunks {
			results, err := idx.Retrieve(ctx, want.Text, 1)
			require.NoError(t, err)
			require.Len(t, results, 1)
			assert.Equal(t, want.Text, results[0].Text)
		}
	})

	t.Run("returns at most k chunks", func(t *testing.T) {
		idx, err := BuildIndex(ctx, testChunks("one", "two", "three"), mock.NewMockEmbedder())
		require.NoError(t, err)

		results, err := idx.Retrieve(ctx, "query", 2)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("k larger than index size", func(t *testing.T) {
		idx, err := BuildIndex(ctx, testChunks("one", "two"), mock.NewMockEmbedder())
		require.NoError(t, err)

		results, err := idx.Retrieve(ctx, "query", 10)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("ties break by chunk order", func(t *testing.T) {
		embedder := mock.NewMockEmbedder()
		same := []float32{1, 0, 0}
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			vectors := make([][]float32, len(texts))
			for i := range texts {
				vectors[i] = same
			}
			return vectors, nil
		}
		embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
			return same, nil
		}

		chunks := testChunks("first", "second", "third")
		idx, err := BuildIndex(ctx, chunks, embedder)
		require.NoError(t, err)

		results, err := idx.Retrieve(ctx, "anything", 3)
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "first", results[0].Text)
		assert.Equal(t, "second", results[1].Text)
		assert.Equal(t, "third", results[2].Text)
	})

	t.Run("invalid k", func(t *testing.T) {
		idx, err := BuildIndex(ctx, testChunks("one"), mock.NewMockEmbedder())
		require.NoError(t, err)

		_, err = idx.Retrieve(ctx, "query", 0)
		assert.Equal(t, ErrInvalidTopK, err)
	})

	t.Run("query embedding failure propagates", func(t *testing.T) {
		embedder := mock.NewMockEmbedder()
		idx, err := BuildIndex(ctx, testChunks("one"), embedder)
		require.NoError(t, err)

		embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
			return nil, errors.New("rate limited")
		}

		_, err = idx.Retrieve(ctx, "query", 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "query embedding failed")
	})
}
