package embedding

import (
	"context"
	"errors"
)

var (
	// ErrUnavailable means no embedding backend is configured or reachable.
	// Callers that can degrade (e.g. automatic strategy selection) check
	// for this kind specifically.
	ErrUnavailable = errors.New("embedding backend unavailable")

	// ErrRequestFailed means the backend was reachable but the embedding
	// request itself failed. Retrying is the caller's decision.
	ErrRequestFailed = errors.New("embedding request failed")
)

// Provider turns texts into vector embeddings.
type Provider interface {
	// Embed returns one vector per input text, in input order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// Available reports whether the provider is configured well enough
	// to attempt requests.
	Available() bool
}
