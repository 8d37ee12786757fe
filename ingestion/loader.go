package ingestion

import (
	"fmt"
	"os"

	"github.com/raglab/docqa/core"
)

// LoadDocument reads a text or Markdown file into an in-memory document.
// The document is loaded once at startup and is immutable afterward.
// A missing or empty file is a configuration error.
func LoadDocument(path string) (*core.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	doc := &core.Document{
		Source: path,
		Text:   string(data),
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid document %s: %w", path, err)
	}

	return doc, nil
}
