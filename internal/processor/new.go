package processor

import (
	"ytdigest/internal/chunker"
	"ytdigest/internal/config"
	"ytdigest/internal/logger"
	"ytdigest/internal/summarizer"
	"ytdigest/internal/transcript"
)

type implProcessor struct {
	cfg        *config.Config
	fetcher    transcript.Fetcher
	chunker    chunker.Chunker
	summarizer summarizer.Summarizer
	logger     logger.Logger
}

// New creates a Processor wiring the fetch → chunk → summarize → write
// pipeline together.
func New(cfg *config.Config, fetcher transcript.Fetcher, chk chunker.Chunker, sum summarizer.Summarizer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		fetcher:    fetcher,
		chunker:    chk,
		summarizer: sum,
		logger:     log,
	}
}
