// Copyright 2025 Raglab Systems
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


package search

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/raglab/docqa/ai"
	"github.com/raglab/docqa/core"
)

// Retriever maps a query string to its top-K most similar chunks,
// ranked by similarity descending.
type Retriever interface {
	Retrieve(ctx context.Context, query string, k int) ([]*core.Chunk, error)
}

// Index is an in-memory similarity index over document chunks.
// It is built once at startup, never mutated afterward, and safe for
// concurrent readers without locking.
type Index struct {
	chunks   []*core.Chunk
	embedder ai.Embedder
	dim      int
	logger   *slog.Logger
}

var _ Retriever = (*Index)(nil)

// BuildIndex embeds every chunk in one batch and builds the index.
// Building is synchronous and blocking. An embedding failure here is a
// startup precondition failure: the caller must not serve requests.
// Chunk vectors are unit-normalized so retrieval can score by dot product.
func BuildIndex(ctx context.Context, chunks []*core.Chunk, embedder ai.Embedder) (*Index, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if len(chunks) == 0 {
		return nil, ErrNoChunks
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}

	vectors, err := embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("index build failed: %w", err)
	}
	if len(vectors) != len(chunks) {
		return nil, ErrEmbeddingCountMismatch
	}

	dim := len(vectors[0])
	for i, c := range chunks {
		if len(vectors[i]) != dim {
			return nil, ErrDimensionMismatch
		}
		c.Vector = NormalizeVector(vectors[i])
	}

	logger := slog.Default().With("component", "search-index")
	logger.Debug("index built", "chunks", len(chunks), "dimensions", dim)

	return &Index{
		chunks:   chunks,
		embedder: embedder,
		dim:      dim,
		logger:   logger,
	}, nil
}

// Len returns the number of indexed chunks.
func (idx *Index) Len() int {
	return len(idx.chunks)
}

// Dimensions returns the embedding dimensionality of the index.
func (idx *Index) Dimensions() int {
	return idx.dim
}

// Retrieve embeds the query and returns up to k chunks ranked by cosine
// similarity descending, ties broken by original chunk order.
func (idx *Index) Retrieve(ctx context.Context, query string, k int) ([]*core.Chunk, error) {
	if k <= 0 {
		return nil, ErrInvalidTopK
	}

	vector, err := idx.embedder.EmbedText(ctx, query)
	if err != nil {
		idx.logger.Error("error generating embedding for query", "err", err)
		return nil, fmt.Errorf("query embedding failed: %w", err)
	}
	vector = NormalizeVector(vector)

	scored := make([]core.ScoredChunk, len(idx.chunks))
	for i, c := range idx.chunks {
		scored[i] = core.ScoredChunk{
			Chunk: c,
			Score: dotProduct(vector, c.Vector),
		}
	}

	// Sort by similarity descending, ties by ascending sequence
	slices.SortFunc(scored, func(a, b core.ScoredChunk) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return a.Chunk.Seq - b.Chunk.Seq
	})

	if k > len(scored) {
		k = len(scored)
	}
	results := make([]*core.Chunk, k)
	for i := 0; i < k; i++ {
		results[i] = scored[i].Chunk
	}

	idx.logger.Debug("retrieved chunks", "query_length", len(query), "hits", len(results))
	return results, nil
}
