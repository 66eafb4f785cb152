package processor

import "context"

// Processor runs the full pipeline for one video: transcript in,
// markdown summary on disk out.
type Processor interface {
	// ProcessURL fetches the transcript for a YouTube URL or video ID.
	ProcessURL(ctx context.Context, urlOrID string) error

	// ProcessFile reads a transcript file (.srt or .json) dropped into
	// the input directory, then moves it to the processed directory.
	ProcessFile(ctx context.Context, path string) error
}
