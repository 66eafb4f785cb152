package transcript

import (
	"net/http"
	"time"

	"ytdigest/internal/logger"
	"ytdigest/pkg/executor"
)

type implFetcher struct {
	client    *http.Client
	executor  executor.Executor
	ytdlpPath string
	languages []string
	allowAuto bool
	logger    logger.Logger
}

// NewFetcher creates a Fetcher that reads YouTube's caption tracks directly
// and falls back to yt-dlp when the direct route fails.
func NewFetcher(exec executor.Executor, ytdlpPath string, languages []string, allowAuto bool, log logger.Logger) Fetcher {
	if len(languages) == 0 {
		languages = []string{"en"}
	}
	if ytdlpPath == "" {
		ytdlpPath = "yt-dlp"
	}
	return &implFetcher{
		client:    &http.Client{Timeout: 30 * time.Second},
		executor:  exec,
		ytdlpPath: ytdlpPath,
		languages: languages,
		allowAuto: allowAuto,
		logger:    log,
	}
}
