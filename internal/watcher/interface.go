package watcher

import "context"

// Watcher monitors the input directory for new transcript files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is called for each new transcript file.
type EventHandler func(ctx context.Context, filePath string) error
