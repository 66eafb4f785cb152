package transcript

import "context"

// Fetcher resolves a YouTube URL or video ID to a time-coded transcript.
type Fetcher interface {
	Fetch(ctx context.Context, urlOrID string) (*Transcript, error)
}
