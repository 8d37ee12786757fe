// Package qa executes questions against the retrieval index and marks the
// retrieved passages inside the source document.
//
// The executor classifies failures as retrieval or generation errors so the
// outermost request boundary can convert them into a fixed user-facing
// fallback without losing the cause. The highlighter merges matched ranges
// before marking, replacing the naive per-chunk replace-all approach whose
// behavior was undefined for overlapping matches.
package qa
