// Package search provides the in-memory vector index and retriever.
//
// The index stores unit-normalized chunk embeddings and scores queries by
// dot product, which equals cosine similarity for normalized vectors.
// Search is brute force: the chunk set of a single document is small enough
// that nearest-neighbor structures would not pay for themselves.
package search
