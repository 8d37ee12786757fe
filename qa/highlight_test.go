package qa

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stripMarks(s string) string {
	s = strings.ReplaceAll(s, markOpen, "")
	return strings.ReplaceAll(s, markClose, "")
}

func TestHighlight(t *testing.T) {
	const doc = "A cat sat. A dog ran. A bird flew."

	t.Run("single chunk", func(t *testing.T) {
		got := Highlight(doc, []string{"A cat sat. "})
		assert.Equal(t, "<mark>A cat sat. </mark>A dog ran. A bird flew.", got)
	})

	t.Run("disjoint chunks mark exactly their ranges", func(t *testing.T) {
		got := Highlight(doc, []string{"A cat sat. ", "A bird flew."})
		assert.Equal(t, "<mark>A cat sat. </mark>A dog ran. <mark>A bird flew.</mark>", got)
		assert.Equal(t, doc, stripMarks(got))
	})

	t.Run("chunk order does not matter", func(t *testing.T) {
		a := Highlight(doc, []string{"A cat sat. ", "A bird flew."})
		b := Highlight(doc, []string{"A bird flew.", "A cat sat. "})
		assert.Equal(t, a, b)
	})

	t.Run("overlapping chunks merge into one region", func(t *testing.T) {
		got := Highlight(doc, []string{"A cat sat. A dog", "dog ran. "})
		assert.Equal(t, "<mark>A cat sat. A dog ran. </mark>A bird flew.", got)
		assert.NotContains(t, got, "<mark><mark>")
	})

	t.Run("adjacent chunks merge into one region", func(t *testing.T) {
		got := Highlight(doc, []string{"A cat sat. ", "A dog ran. "})
		assert.Equal(t, "<mark>A cat sat. A dog ran. </mark>A bird flew.", got)
	})

	t.Run("absent chunk is a no-op", func(t *testing.T) {
		got := Highlight(doc, []string{"A fish swam."})
		assert.Equal(t, doc, got)
	})

	t.Run("absent chunk does not affect present ones", func(t *testing.T) {
		got := Highlight(doc, []string{"A fish swam.", "A dog ran. "})
		assert.Equal(t, "A cat sat. <mark>A dog ran. </mark>A bird flew.", got)
	})

	t.Run("whitespace mismatch is a no-op", func(t *testing.T) {
		got := Highlight(doc, []string{"A  cat  sat."})
		assert.Equal(t, doc, got)
	})

	t.Run("repeated occurrences are all marked", func(t *testing.T) {
		got := Highlight("go go go", []string{"go"})
		assert.Equal(t, "<mark>go</mark> <mark>go</mark> <mark>go</mark>", got)
	})

	t.Run("empty chunk list", func(t *testing.T) {
		assert.Equal(t, doc, Highlight(doc, nil))
	})

	t.Run("empty chunk text is ignored", func(t *testing.T) {
		assert.Equal(t, doc, Highlight(doc, []string{""}))
	})

	t.Run("duplicate chunk texts mark once", func(t *testing.T) {
		got := Highlight(doc, []string{"A dog ran. ", "A dog ran. "})
		assert.Equal(t, "A cat sat. <mark>A dog ran. </mark>A bird flew.", got)
	})

	t.Run("text outside matches is untouched", func(t *testing.T) {
		got := Highlight(doc, []string{"dog"})
		assert.Equal(t, doc, stripMarks(got))
	})
}
