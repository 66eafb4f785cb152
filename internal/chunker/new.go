package chunker

import (
	"ytdigest/internal/embedding"
)

type implChunker struct {
	cfg      Config
	provider embedding.Provider
}

// New creates a Chunker for the given config. The embedding provider is
// only needed for the semantic strategy and may be nil otherwise.
func New(cfg Config, provider embedding.Provider) (Chunker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &implChunker{
		cfg:      cfg,
		provider: provider,
	}, nil
}
