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


package docqa

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/raglab/docqa/ai"
)

// Supported interface languages. The language selects the localized text
// bundle and the default document variant.
const (
	LangEnglish = "en"
	LangChinese = "cn"
)

// Default document paths per language variant.
const (
	defaultDocumentEN = "documents/lightzero.en.md"
	defaultDocumentZH = "documents/lightzero.zh.md"
)

// Config is the application configuration, read once from the environment
// at startup. Invalid or missing required settings fail startup; nothing
// degrades silently.
type Config struct {
	// Lang selects the localized text bundle: "en" or "cn".
	Lang string

	// DocumentPath is the Markdown document served by this process.
	// Defaults to the per-language variant under documents/.
	DocumentPath string

	// Concurrency bounds how many answer pipelines run at once.
	// Defaults to the available processor count.
	Concurrency int

	// TopK is the number of chunks retrieved per question.
	TopK int

	// ChunkSize and ChunkOverlap control document splitting, in bytes.
	ChunkSize    int
	ChunkOverlap int

	// AI configures the embedding and generation providers.
	AI *ai.Config
}

// LoadConfig reads the configuration from the environment.
//
// Recognized variables: DOCQA_LANG, DOCQA_DOCUMENT, DOCQA_CONCURRENCY,
// DOCQA_TOP_K, DOCQA_CHUNK_SIZE, DOCQA_CHUNK_OVERLAP, DOCQA_EMBEDDING_HOST,
// DOCQA_EMBEDDING_MODEL, DOCQA_CHAT_HOST, DOCQA_CHAT_MODEL, DOCQA_API_TOKEN.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Lang: getenv("DOCQA_LANG", LangEnglish),
	}

	switch cfg.Lang {
	case LangEnglish:
		cfg.DocumentPath = getenv("DOCQA_DOCUMENT", defaultDocumentEN)
	case LangChinese:
		cfg.DocumentPath = getenv("DOCQA_DOCUMENT", defaultDocumentZH)
	default:
		return nil, fmt.Errorf("config: DOCQA_LANG must be %q or %q, got %q", LangEnglish, LangChinese, cfg.Lang)
	}

	var err error
	if cfg.Concurrency, err = getenvInt("DOCQA_CONCURRENCY", runtime.NumCPU()); err != nil {
		return nil, err
	}
	if cfg.TopK, err = getenvInt("DOCQA_TOP_K", 5); err != nil {
		return nil, err
	}
	if cfg.ChunkSize, err = getenvInt("DOCQA_CHUNK_SIZE", 1000); err != nil {
		return nil, err
	}
	if cfg.ChunkOverlap, err = getenvInt("DOCQA_CHUNK_OVERLAP", 200); err != nil {
		return nil, err
	}

	var aiOpts []ai.ConfigOption
	if host := os.Getenv("DOCQA_EMBEDDING_HOST"); host != "" {
		aiOpts = append(aiOpts, ai.WithEmbeddingHost(host))
	}
	if model := os.Getenv("DOCQA_EMBEDDING_MODEL"); model != "" {
		aiOpts = append(aiOpts, ai.WithEmbeddingModel(model))
	}
	if host := os.Getenv("DOCQA_CHAT_HOST"); host != "" {
		aiOpts = append(aiOpts, ai.WithChatHost(host))
	}
	if model := os.Getenv("DOCQA_CHAT_MODEL"); model != "" {
		aiOpts = append(aiOpts, ai.WithChatModel(model))
	}
	if token := os.Getenv("DOCQA_API_TOKEN"); token != "" {
		aiOpts = append(aiOpts, ai.WithToken(token))
	}
	cfg.AI = ai.NewConfig(aiOpts...)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration can serve requests.
func (c *Config) Validate() error {
	if c.Lang != LangEnglish && c.Lang != LangChinese {
		return fmt.Errorf("config: unsupported language %q", c.Lang)
	}
	if c.DocumentPath == "" {
		return fmt.Errorf("config: document path is required")
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("config: concurrency must be positive, got %d", c.Concurrency)
	}
	if c.TopK <= 0 {
		return fmt.Errorf("config: top-k must be positive, got %d", c.TopK)
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("config: chunk size must be positive, got %d", c.ChunkSize)
	}
	if c.ChunkOverlap < 0 || c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("config: chunk overlap %d must be non-negative and smaller than chunk size %d", c.ChunkOverlap, c.ChunkSize)
	}
	if c.AI == nil {
		return fmt.Errorf("config: ai configuration is required")
	}
	return c.AI.Validate()
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer, got %q", key, v)
	}
	return n, nil
}
