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


package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Document is a source text loaded once at startup.
// It is immutable after loading.
type Document struct {
	Source string // Path or identifier the document was loaded from
	Text   string // Full document text
}

// Chunk is a contiguous segment of a document's text, the unit of retrieval.
// Chunk texts may overlap in source ranges, but each Text is always an exact
// substring of the owning document's Text. Highlighting depends on that.
type Chunk struct {
	Id     ID
	Seq    int    // Position in the split order, starting at 0
	Source string // Back-reference to Document.Source
	Text   string
	Vector []float32 // Unit-normalized embedding (populated at index build)
}

// ScoredChunk is a chunk paired with its similarity score for a query.
type ScoredChunk struct {
	Chunk *Chunk
	Score float32
}

// QueryResult holds everything produced for one question: the retrieved
// chunks, ranked by similarity descending, and the generated answer.
// Results are ephemeral and never cached across requests.
type QueryResult struct {
	Question string
	Chunks   []*Chunk
	Answer   string
}

// ChunkTexts returns the texts of the retrieved chunks in rank order.
func (r *QueryResult) ChunkTexts() []string {
	texts := make([]string, len(r.Chunks))
	for i, c := range r.Chunks {
		texts[i] = c.Text
	}
	return texts
}
