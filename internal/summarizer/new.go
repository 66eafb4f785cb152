package summarizer

import (
	"ytdigest/internal/logger"
)

type implSummarizer struct {
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
}

// New creates a Summarizer that rotates through the supplied Gemini API
// keys on quota errors.
func New(apiKeys []string, model string, log logger.Logger) Summarizer {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &implSummarizer{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}
}
