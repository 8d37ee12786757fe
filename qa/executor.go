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


package qa

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/raglab/docqa/ai"
	"github.com/raglab/docqa/core"
	"github.com/raglab/docqa/search"
)

// DefaultTopK is the number of chunks retrieved per question when no
// override is configured.
const DefaultTopK = 5

// Executor orchestrates one question: retrieve the most similar chunks,
// then generate an answer conditioned on them. Pure orchestration: no
// retries, no caching, no timeouts beyond what the collaborators impose.
// Failures are classified so the request boundary can map them to a
// user-facing fallback while keeping the cause for logging.
type Executor struct {
	retriever search.Retriever
	generator ai.Generator
	topK      int
	logger    *slog.Logger
}

// Option configures an Executor.
type Option func(*Executor) error

// WithTopK sets the number of chunks retrieved per question.
// Default is DefaultTopK.
func WithTopK(k int) Option {
	return func(e *Executor) error {
		if k <= 0 {
			return search.ErrInvalidTopK
		}
		e.topK = k
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Executor) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewExecutor creates a new query executor.
func NewExecutor(retriever search.Retriever, generator ai.Generator, opts ...Option) (*Executor, error) {
	if retriever == nil {
		return nil, ErrRetrieverRequired
	}
	if generator == nil {
		return nil, ErrGeneratorRequired
	}

	e := &Executor{
		retriever: retriever,
		generator: generator,
		topK:      DefaultTopK,
		logger:    slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Execute runs the pipeline for one question and returns the retrieved
// chunks together with the generated answer. Either step failing aborts the
// request; a partially valid result is never returned.
func (e *Executor) Execute(ctx context.Context, question string) (*core.QueryResult, error) {
	if strings.TrimSpace(question) == "" {
		return nil, core.ErrEmptyQuestion
	}

	chunks, err := e.retriever.Retrieve(ctx, question, e.topK)
	if err != nil {
		e.logger.Error("error retrieving chunks for question", "err", err)
		return nil, fmt.Errorf("%w: %w", ErrRetrieval, err)
	}

	result := &core.QueryResult{
		Question: question,
		Chunks:   chunks,
	}

	answer, err := e.generator.GenerateAnswer(ctx, result.ChunkTexts(), question)
	if err != nil {
		e.logger.Error("error generating answer", "err", err)
		return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	result.Answer = answer

	e.logger.Debug("query executed",
		"question_length", len(question),
		"chunks", len(chunks),
		"answer_length", len(answer))

	return result, nil
}
