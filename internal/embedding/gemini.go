package embedding

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"ytdigest/internal/logger"
)

type implGemini struct {
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
}

// NewGemini creates a Provider backed by the Gemini embedding API,
// rotating through the supplied API keys on quota errors.
func NewGemini(apiKeys []string, model string, log logger.Logger) Provider {
	if model == "" {
		model = "gemini-embedding-001"
	}
	return &implGemini{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}
}

func (g *implGemini) Available() bool {
	return len(g.apiKeys) > 0
}

// Embed embeds all texts in one batched request. Rotates API keys on
// 429 / quota errors, same as the summarizer client.
func (g *implGemini) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if !g.Available() {
		return nil, ErrUnavailable
	}
	if len(texts) == 0 {
		return nil, nil
	}

	contents := make([]*genai.Content, 0, len(texts))
	for _, text := range texts {
		contents = append(contents, genai.NewContentFromText(text, genai.RoleUser))
	}

	attempts := len(g.apiKeys)
	var lastErr error

	for range attempts {
		key := g.apiKeys[g.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			g.rotateKey()
			continue
		}

		result, err := client.Models.EmbedContent(ctx, g.model, contents, nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				g.logger.Warn(ctx, "Embedding key %d rate limited, rotating...", g.currentKey+1)
				g.rotateKey()
				lastErr = err
				continue
			}
			return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
		}

		if result == nil || len(result.Embeddings) != len(texts) {
			return nil, fmt.Errorf("%w: got %d embeddings for %d texts", ErrRequestFailed, embeddingCount(result), len(texts))
		}

		vectors := make([][]float32, len(result.Embeddings))
		for i, emb := range result.Embeddings {
			vectors[i] = emb.Values
		}
		return vectors, nil
	}

	return nil, fmt.Errorf("%w: all API keys exhausted: %v", ErrUnavailable, lastErr)
}

func (g *implGemini) rotateKey() {
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
}

func embeddingCount(r *genai.EmbedContentResponse) int {
	if r == nil {
		return 0
	}
	return len(r.Embeddings)
}
