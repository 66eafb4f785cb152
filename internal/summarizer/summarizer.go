package summarizer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"ytdigest/internal/chunker"
	"ytdigest/internal/transcript"
)

// Summarize produces the summary report for one video. With zero or one
// chunks the whole transcript goes into a single prompt; otherwise each
// chunk is summarized on its own and a reduce prompt combines the parts.
func (s *implSummarizer) Summarize(ctx context.Context, t *transcript.Transcript, chunks []chunker.Chunk, format string) (*Summary, error) {
	if t == nil || len(t.Segments) == 0 {
		return nil, fmt.Errorf("nothing to summarize: empty transcript")
	}
	if _, ok := formatInstructions[format]; !ok {
		return nil, fmt.Errorf("unknown summary format %q", format)
	}

	var body string
	var err error
	switch {
	case len(chunks) <= 1:
		text := t.FullText()
		if len(chunks) == 1 {
			text = chunks[0].Text
		}
		body, err = s.callGemini(ctx, buildSinglePrompt(t, text, format))
	default:
		body, err = s.mapReduce(ctx, t, chunks, format)
	}
	if err != nil {
		return nil, err
	}

	return &Summary{
		JobID:       uuid.NewString(),
		VideoID:     t.VideoID,
		Title:       t.Title,
		Channel:     t.Channel,
		URL:         t.URL,
		Duration:    t.TotalDuration(),
		Language:    t.Language,
		Format:      format,
		ChunkCount:  len(chunks),
		Body:        strings.TrimSpace(body),
		GeneratedAt: time.Now(),
	}, nil
}

func (s *implSummarizer) mapReduce(ctx context.Context, t *transcript.Transcript, chunks []chunker.Chunk, format string) (string, error) {
	partials := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		if chunk.Text == "" {
			// Empty timestamp windows carry no content worth a request
			continue
		}
		s.logger.Info(ctx, "[%d/%d] Summarizing chunk %s", i+1, len(chunks), chunk.TimeRange())
		partial, err := s.callGemini(ctx, buildChunkPrompt(t, chunk, i+1, len(chunks)))
		if err != nil {
			return "", fmt.Errorf("summarize chunk %d: %w", i, err)
		}
		partials = append(partials, partial)
	}

	if len(partials) == 0 {
		return "", fmt.Errorf("nothing to summarize: all chunks empty")
	}
	if len(partials) == 1 {
		return partials[0], nil
	}

	s.logger.Info(ctx, "Combining %d part summaries", len(partials))
	combined, err := s.callGemini(ctx, buildReducePrompt(t, partials, format))
	if err != nil {
		return "", fmt.Errorf("combine summaries: %w", err)
	}
	return combined, nil
}

// callGemini sends the prompt to Gemini and returns the response text.
// Rotates API keys on 429 / quota errors.
func (s *implSummarizer) callGemini(ctx context.Context, prompt string) (string, error) {
	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key := s.apiKeys[s.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", s.currentKey+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implSummarizer) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}
