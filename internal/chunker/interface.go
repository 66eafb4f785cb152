package chunker

import (
	"context"

	"ytdigest/internal/transcript"
)

// Chunker partitions a transcript into ordered, time-annotated chunks.
// Implementations are pure: identical inputs produce identical output,
// and an empty transcript yields an empty chunk sequence, not an error.
type Chunker interface {
	Chunk(ctx context.Context, t *transcript.Transcript) ([]Chunk, error)
}
