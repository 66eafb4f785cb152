package summarizer

import (
	"context"

	"ytdigest/internal/chunker"
	"ytdigest/internal/transcript"
)

// Summarizer turns a transcript and its chunks into a summary report.
// A single chunk is summarized in one prompt; multiple chunks go through
// a map-reduce pass (per-chunk summaries, then a combining prompt).
type Summarizer interface {
	Summarize(ctx context.Context, t *transcript.Transcript, chunks []chunker.Chunk, format string) (*Summary, error)
}
