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
	"slices"
	"strings"
)

const (
	markOpen  = "<mark>"
	markClose = "</mark>"
)

type span struct {
	start int
	end   int
}

// Highlight returns a copy of text with every occurrence of every chunk
// text wrapped in <mark> markers.
//
// Overlap policy: all matched ranges are collected first, then overlapping
// or adjacent ranges are merged into one marked region. Markers therefore
// never nest and never split, regardless of chunk order or chunk overlap.
// A chunk text that does not occur verbatim in text contributes nothing;
// text outside matched ranges is returned unchanged.
func Highlight(text string, chunkTexts []string) string {
	var spans []span
	for _, chunk := range chunkTexts {
		if chunk == "" {
			continue
		}
		// Collect every non-overlapping occurrence of this chunk,
		// scanning left to right.
		from := 0
		for {
			i := strings.Index(text[from:], chunk)
			if i < 0 {
				break
			}
			start := from + i
			spans = append(spans, span{start: start, end: start + len(chunk)})
			from = start + len(chunk)
		}
	}

	if len(spans) == 0 {
		return text
	}

	slices.SortFunc(spans, func(a, b span) int {
		if a.start != b.start {
			return a.start - b.start
		}
		return a.end - b.end
	})

	// Merge overlapping and adjacent spans
	merged := spans[:1]
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.start <= last.end {
			if s.end > last.end {
				last.end = s.end
			}
			continue
		}
		merged = append(merged, s)
	}

	var b strings.Builder
	b.Grow(len(text) + len(merged)*(len(markOpen)+len(markClose)))
	pos := 0
	for _, s := range merged {
		b.WriteString(text[pos:s.start])
		b.WriteString(markOpen)
		b.WriteString(text[s.start:s.end])
		b.WriteString(markClose)
		pos = s.end
	}
	b.WriteString(text[pos:])
	return b.String()
}
