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


// Package docqa answers questions about a single preloaded Markdown document
// using retrieval-augmented generation: the document is split into
// overlapping chunks, the chunks are embedded into an in-memory similarity
// index, and each question retrieves its most relevant chunks, feeds them
// with the question into a language model, and highlights the retrieved
// passages inside the original document.
package docqa

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/raglab/docqa/ai"
	"github.com/raglab/docqa/ai/openai"
	"github.com/raglab/docqa/core"
	"github.com/raglab/docqa/ingestion"
	"github.com/raglab/docqa/qa"
	"github.com/raglab/docqa/search"
)

// Engine holds everything built at startup: the document, its chunks, the
// vector index, and the query executor. It is immutable after construction
// and safe for concurrent use; request handlers receive it by reference
// instead of reaching for package-level state.
type Engine struct {
	config   *Config
	document *core.Document
	chunks   []*core.Chunk
	index    *search.Index
	executor *qa.Executor
	provider ai.AIProvider
	logger   *slog.Logger
}

// EngineOption configures engine construction.
type EngineOption func(*engineOptions)

type engineOptions struct {
	provider ai.AIProvider
}

// WithProvider overrides the AI provider. Used by tests to substitute mock
// embedding and generation services.
func WithProvider(provider ai.AIProvider) EngineOption {
	return func(o *engineOptions) {
		o.provider = provider
	}
}

// NewEngine loads the document, splits it, and builds the vector index.
// Any failure here, including an unreachable embedding provider, is fatal:
// the process must not serve requests without a complete index.
func NewEngine(ctx context.Context, config *Config, opts ...EngineOption) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	options := &engineOptions{}
	for _, opt := range opts {
		opt(options)
	}

	logger := slog.Default().With("component", "engine")

	document, err := ingestion.LoadDocument(config.DocumentPath)
	if err != nil {
		return nil, err
	}

	splitter, err := ingestion.NewSplitter(config.ChunkSize, config.ChunkOverlap)
	if err != nil {
		return nil, err
	}
	chunks, err := splitter.Split(document)
	if err != nil {
		return nil, err
	}
	logger.Info("document split", "source", document.Source, "chunks", len(chunks))

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(config.AI)
		if err != nil {
			return nil, err
		}
	}

	index, err := search.BuildIndex(ctx, chunks, provider.Embedder())
	if err != nil {
		provider.Close()
		return nil, err
	}
	logger.Info("index built", "chunks", index.Len(), "dimensions", index.Dimensions())

	executor, err := qa.NewExecutor(index, provider.Generator(), qa.WithTopK(config.TopK))
	if err != nil {
		provider.Close()
		return nil, err
	}

	return &Engine{
		config:   config,
		document: document,
		chunks:   chunks,
		index:    index,
		executor: executor,
		provider: provider,
		logger:   logger,
	}, nil
}

// Answer runs the pipeline for one question and returns the generated
// answer together with the document text in which the retrieved passages
// are wrapped in <mark> markers.
//
// The call is stateless and idempotent with respect to the index; the only
// side effects are outbound calls to the embedding and generation services.
// Failures propagate to the caller classified as qa.ErrRetrieval or
// qa.ErrGeneration; mapping them to a user-facing message is the request
// boundary's job, not the engine's.
func (e *Engine) Answer(ctx context.Context, question string) (answer, highlighted string, err error) {
	result, err := e.executor.Execute(ctx, question)
	if err != nil {
		return "", "", fmt.Errorf("answering question: %w", err)
	}

	highlighted = qa.Highlight(e.document.Text, result.ChunkTexts())
	return result.Answer, highlighted, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() *Config {
	return e.config
}

// Document returns the loaded source document.
func (e *Engine) Document() *core.Document {
	return e.document
}

// Index returns the vector index.
func (e *Engine) Index() *search.Index {
	return e.index
}

// Close releases the AI provider.
func (e *Engine) Close() error {
	return e.provider.Close()
}
