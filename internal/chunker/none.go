package chunker

import (
	"ytdigest/internal/transcript"
)

// none emits the whole transcript as a single chunk spanning the full
// video duration.
func (c *implChunker) none(t *transcript.Transcript) []Chunk {
	m := newOffsetMap(t.Segments)
	if m.text == "" {
		return nil
	}
	return []Chunk{{
		Index:        0,
		Text:         m.text,
		StartSeconds: 0,
		EndSeconds:   t.TotalDuration(),
	}}
}
