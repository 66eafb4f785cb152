package chunker

import (
	"context"
	"errors"
	"fmt"

	"ytdigest/internal/embedding"
	"ytdigest/internal/transcript"
)

// Chunk dispatches to the configured strategy. AUTO resolves to a concrete
// strategy from the video duration first; if that resolution lands on the
// semantic strategy and the embedding backend turns out to be unavailable,
// it degrades to recursive instead of failing. An explicitly requested
// semantic strategy propagates the error.
func (c *implChunker) Chunk(ctx context.Context, t *transcript.Transcript) ([]Chunk, error) {
	if t == nil || len(t.Segments) == 0 {
		return nil, nil
	}

	strategy := c.cfg.Strategy
	auto := strategy == StrategyAuto
	if auto {
		strategy = SelectStrategy(t.TotalDuration(), c.provider != nil && c.provider.Available())
	}

	switch strategy {
	case StrategyNone:
		return c.none(t), nil
	case StrategyRecursive:
		return c.recursive(t), nil
	case StrategyTimestamp:
		return c.timestamp(t), nil
	case StrategySemantic:
		chunks, err := c.semantic(ctx, t)
		if auto && errors.Is(err, embedding.ErrUnavailable) {
			return c.recursive(t), nil
		}
		return chunks, err
	default:
		return nil, fmt.Errorf("%w: unknown strategy %v", ErrInvalidConfig, strategy)
	}
}
