// Package ingestion loads the source document and splits it into chunks.
//
// Loading and splitting happen exactly once, at process startup. Both
// operations are deterministic, and every produced chunk text is an exact
// substring of the loaded document, which the highlighter depends on.
package ingestion
