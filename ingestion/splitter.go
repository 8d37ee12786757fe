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


package ingestion

import (
	"unicode/utf8"

	"github.com/raglab/docqa/core"
)

// Splitter splits a document into an ordered sequence of overlapping chunks.
//
// Boundary semantics, which are deterministic for a given document and
// parameter pair:
//
//   - Each chunk is a window of at most chunkSize bytes starting where the
//     previous chunk ended minus chunkOverlap bytes.
//   - If the window does not reach the end of the text, the cut moves back
//     to just after the last whitespace byte inside the window, so words
//     are not split. A window with no whitespace is cut at chunkSize,
//     adjusted back to the nearest rune boundary.
//   - The final chunk may be shorter than chunkSize.
//
// Every chunk text is a raw substring of the document text. Highlighting
// relies on that: a transformed chunk could no longer be located verbatim.
type Splitter struct {
	chunkSize    int
	chunkOverlap int
}

// NewSplitter creates a splitter with the given parameters.
// Fails fast on invalid parameters: chunkSize must be positive and
// chunkOverlap must satisfy 0 <= chunkOverlap < chunkSize.
func NewSplitter(chunkSize, chunkOverlap int) (*Splitter, error) {
	if chunkSize <= 0 {
		return nil, ErrInvalidChunkSize
	}
	if chunkOverlap < 0 || chunkOverlap >= chunkSize {
		return nil, ErrInvalidChunkOverlap
	}
	return &Splitter{
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
	}, nil
}

// Split produces the chunk sequence for a document. The same document and
// parameters always yield an identical sequence, byte for byte.
func (s *Splitter) Split(doc *core.Document) ([]*core.Chunk, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	text := doc.Text
	var chunks []*core.Chunk

	start := 0
	for start < len(text) {
		end := start + s.chunkSize
		if end >= len(text) {
			end = len(text)
		} else {
			end = cutPoint(text, start, end)
		}

		chunkText := text[start:end]
		chunks = append(chunks, &core.Chunk{
			Id:     core.IDFromContent(chunkText),
			Seq:    len(chunks),
			Source: doc.Source,
			Text:   chunkText,
		})

		if end == len(text) {
			break
		}

		next := end - s.chunkOverlap
		// Guarantee forward progress even when the overlap swallows the
		// whole previous window.
		if next <= start {
			next = start + 1
		}
		start = next
	}

	return chunks, nil
}

// cutPoint returns the exclusive end of the window [start, limit), moved
// back to just after the last whitespace byte when one exists, otherwise
// back to the nearest rune boundary.
func cutPoint(text string, start, limit int) int {
	for i := limit - 1; i > start; i-- {
		if isSpace(text[i]) {
			return i + 1
		}
	}

	// No whitespace in the window: hard cut, but never in the middle of a
	// UTF-8 sequence.
	end := limit
	for end > start+1 && !utf8.RuneStart(text[end]) {
		end--
	}
	return end
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\t' || b == '\r'
}
