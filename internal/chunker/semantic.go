package chunker

import (
	"context"

	"ytdigest/internal/embedding"
	"ytdigest/internal/transcript"
)

// semantic splits the transcript where the embedding distance between
// adjacent sentence windows exceeds the breakpoint threshold. Chunks that
// end up below MinChunkTokens are merged into their following neighbor.
//
// Fails with embedding.ErrUnavailable when no usable provider is wired;
// provider request errors propagate untouched so the caller can tell
// transient failures apart from a missing backend.
func (c *implChunker) semantic(ctx context.Context, t *transcript.Transcript) ([]Chunk, error) {
	if c.provider == nil || !c.provider.Available() {
		return nil, embedding.ErrUnavailable
	}

	m := newOffsetMap(t.Segments)
	if m.text == "" {
		return nil, nil
	}

	sentences := splitSentences(m.text)
	windows := groupSpans(sentences, c.cfg.SentenceWindow)
	if len(windows) < 2 {
		return []Chunk{{
			Index:        0,
			Text:         m.text,
			StartSeconds: 0,
			EndSeconds:   t.TotalDuration(),
		}}, nil
	}

	texts := make([]string, len(windows))
	for i, w := range windows {
		texts[i] = m.text[w[0]:w[1]]
	}

	vectors, err := c.provider.Embed(ctx, texts)
	if err != nil {
		return nil, err
	}

	distances := make([]float64, len(windows)-1)
	for i := range distances {
		distances[i] = cosineDistance(vectors[i], vectors[i+1])
	}
	threshold := breakpointThreshold(distances, c.cfg.Breakpoint)

	// A boundary after window i wherever the distance jumps past the threshold
	var spans [][2]int
	groupStart := windows[0][0]
	for i, d := range distances {
		if d > threshold {
			spans = append(spans, [2]int{groupStart, windows[i][1]})
			groupStart = windows[i+1][0]
		}
	}
	spans = append(spans, [2]int{groupStart, windows[len(windows)-1][1]})

	spans = c.mergeSmallSpans(m.text, spans)

	chunks := make([]Chunk, 0, len(spans))
	for i, sp := range spans {
		chunks = append(chunks, Chunk{
			Index:        i,
			Text:         m.text[sp[0]:sp[1]],
			StartSeconds: m.secondsAt(sp[0]),
			EndSeconds:   m.secondsAt(sp[1]),
		})
	}
	return chunks, nil
}

// mergeSmallSpans folds spans under MinChunkTokens into their following
// neighbor; a trailing small span merges backward instead.
func (c *implChunker) mergeSmallSpans(text string, spans [][2]int) [][2]int {
	if c.cfg.MinChunkTokens <= 0 || len(spans) < 2 {
		return spans
	}

	var out [][2]int
	carry := -1 // start offset of pending small spans
	for i, sp := range spans {
		start := sp[0]
		if carry >= 0 {
			start = carry
			carry = -1
		}
		if estimateTokens(wordCount(text[start:sp[1]])) < c.cfg.MinChunkTokens && i < len(spans)-1 {
			carry = start
			continue
		}
		out = append(out, [2]int{start, sp[1]})
	}

	// The final span was small too: fold it into the previous one
	if len(out) >= 2 {
		last := out[len(out)-1]
		if estimateTokens(wordCount(text[last[0]:last[1]])) < c.cfg.MinChunkTokens {
			out[len(out)-2][1] = last[1]
			out = out[:len(out)-1]
		}
	}
	return out
}

// splitSentences finds sentence spans using terminal punctuation followed
// by whitespace. The trailing punctuation and whitespace stay with the
// preceding sentence so the spans tile the text.
func splitSentences(text string) [][2]int {
	var spans [][2]int
	start := 0
	i := 0
	for i < len(text) {
		ch := text[i]
		if ch == '.' || ch == '!' || ch == '?' {
			j := i + 1
			// Consume runs of closing punctuation, then whitespace
			for j < len(text) && (text[j] == '.' || text[j] == '!' || text[j] == '?' || text[j] == '"' || text[j] == '\'') {
				j++
			}
			if j >= len(text) || isSpaceByte(text[j]) {
				for j < len(text) && isSpaceByte(text[j]) {
					j++
				}
				spans = append(spans, [2]int{start, j})
				start = j
				i = j
				continue
			}
		}
		i++
	}
	if start < len(text) {
		spans = append(spans, [2]int{start, len(text)})
	}
	return spans
}

// groupSpans packs consecutive spans into groups of size n, keeping the
// contiguous [start, end) shape.
func groupSpans(spans [][2]int, n int) [][2]int {
	if len(spans) == 0 {
		return nil
	}
	var groups [][2]int
	for i := 0; i < len(spans); i += n {
		j := i + n
		if j > len(spans) {
			j = len(spans)
		}
		groups = append(groups, [2]int{spans[i][0], spans[j-1][1]})
	}
	return groups
}
