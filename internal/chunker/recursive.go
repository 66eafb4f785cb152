package chunker

import (
	"strings"

	"ytdigest/internal/transcript"
)

// Separator candidates from coarsest to finest. A range that none of them
// can split further is a single word and is emitted whole, even over
// budget.
var recursiveSeparators = []string{"\n\n", ". ", " "}

// recursive splits the joined transcript text on natural boundaries under
// the token budget, then extends every chunk after the first backward by
// the configured overlap. Chunk boundaries always sit on separator edges,
// so concatenating the un-overlapped spans reproduces the joined text
// byte for byte.
func (c *implChunker) recursive(t *transcript.Transcript) []Chunk {
	m := newOffsetMap(t.Segments)
	if m.text == "" {
		return nil
	}

	// Overlap counts toward the chunk budget so the extended chunk still
	// fits MaxChunkTokens.
	budget := c.cfg.MaxChunkTokens - c.cfg.OverlapTokens
	spans := splitRange(m.text, 0, len(m.text), 0, budget)

	overlapWords := wordsForTokens(c.cfg.OverlapTokens)
	chunks := make([]Chunk, 0, len(spans))
	for i, sp := range spans {
		start := sp[0]
		if i > 0 && overlapWords > 0 {
			start = extendBack(m.text, sp[0], spans[i-1][0], overlapWords)
		}
		chunks = append(chunks, Chunk{
			Index:        i,
			Text:         m.text[start:sp[1]],
			StartSeconds: m.secondsAt(start),
			EndSeconds:   m.secondsAt(sp[1]),
		})
	}
	return chunks
}

// splitRange splits text[start:end] into contiguous spans of at most
// budget tokens, trying the separator at sepIdx and recursing to finer
// separators for any piece still over budget. Pieces keep their trailing
// separator, so the returned spans tile the input range exactly.
func splitRange(text string, start, end, sepIdx, budget int) [][2]int {
	if start >= end {
		return nil
	}
	if estimateTokens(wordCount(text[start:end])) <= budget {
		return [][2]int{{start, end}}
	}
	if sepIdx >= len(recursiveSeparators) {
		// Single oversized word: no sub-word splitting
		return [][2]int{{start, end}}
	}

	parts := cutAt(text, start, end, recursiveSeparators[sepIdx])
	if len(parts) == 1 {
		return splitRange(text, start, end, sepIdx+1, budget)
	}

	var out [][2]int
	packStart := -1
	packWords := 0
	for _, p := range parts {
		pw := wordCount(text[p[0]:p[1]])
		if estimateTokens(pw) > budget {
			if packStart >= 0 {
				out = append(out, [2]int{packStart, p[0]})
				packStart, packWords = -1, 0
			}
			out = append(out, splitRange(text, p[0], p[1], sepIdx+1, budget)...)
			continue
		}
		if packStart < 0 {
			packStart, packWords = p[0], pw
			continue
		}
		if estimateTokens(packWords+pw) <= budget {
			packWords += pw
			continue
		}
		out = append(out, [2]int{packStart, p[0]})
		packStart, packWords = p[0], pw
	}
	if packStart >= 0 {
		out = append(out, [2]int{packStart, parts[len(parts)-1][1]})
	}
	return out
}

// cutAt splits text[start:end] into contiguous parts, each ending right
// after an occurrence of sep (the separator stays with the preceding part).
func cutAt(text string, start, end int, sep string) [][2]int {
	var parts [][2]int
	cur := start
	rest := start
	for {
		j := strings.Index(text[rest:end], sep)
		if j < 0 {
			break
		}
		boundary := rest + j + len(sep)
		parts = append(parts, [2]int{cur, boundary})
		cur = boundary
		rest = boundary
	}
	if cur < end {
		parts = append(parts, [2]int{cur, end})
	}
	if len(parts) == 0 {
		parts = append(parts, [2]int{start, end})
	}
	return parts
}

// extendBack moves the offset backward to include n more words, never
// crossing floor (the start of the previous chunk's core span).
func extendBack(text string, from, floor, n int) int {
	i := from
	words := 0
	for i > floor && words < n {
		for i > floor && isSpaceByte(text[i-1]) {
			i--
		}
		if i <= floor {
			break
		}
		for i > floor && !isSpaceByte(text[i-1]) {
			i--
		}
		words++
	}
	return i
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\n' || b == '\t'
}
