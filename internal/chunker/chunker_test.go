package chunker

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"ytdigest/internal/embedding"
	"ytdigest/internal/transcript"
)

// fakeProvider is a scripted embedding.Provider for tests.
type fakeProvider struct {
	vectors   [][]float32
	err       error
	available bool
	calls     int
}

func (f *fakeProvider) Available() bool { return f.available }

func (f *fakeProvider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if len(texts) != len(f.vectors) {
		return nil, fmt.Errorf("fake provider scripted for %d texts, got %d", len(f.vectors), len(texts))
	}
	return f.vectors, nil
}

// makeTranscript builds a transcript of evenly timed segments.
func makeTranscript(segTexts []string, segDuration float64) *transcript.Transcript {
	segments := make([]transcript.Segment, 0, len(segTexts))
	for i, text := range segTexts {
		segments = append(segments, transcript.Segment{
			Text:     text,
			Start:    float64(i) * segDuration,
			Duration: segDuration,
		})
	}
	return &transcript.Transcript{
		VideoID:  "test-video",
		Duration: float64(len(segTexts)) * segDuration,
		Language: "en",
		Segments: segments,
	}
}

func mustChunker(t *testing.T, cfg Config, provider *fakeProvider) Chunker {
	t.Helper()
	var p Chunker
	var err error
	if provider == nil {
		p, err = New(cfg, nil)
	} else {
		p, err = New(cfg, provider)
	}
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return p
}

func TestNoneStrategy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Strategy = StrategyNone
	c := mustChunker(t, cfg, nil)

	tr := makeTranscript([]string{"hello there", "general kenobi", "you are  bold"}, 10)
	chunks, err := c.Chunk(context.Background(), tr)
	if err != nil {
		t.Fatalf("Chunk() error = %v", err)
	}

	if len(chunks) != 1 {
		t.Fatalf("got %d chunks, want 1", len(chunks))
	}
	want := "hello there general kenobi you are bold"
	if chunks[0].Text != want {
		t.Errorf("text = %q, want %q", chunks[0].Text, want)
	}
	if chunks[0].StartSeconds != 0 {
		t.Errorf("start = %v, want 0", chunks[0].StartSeconds)
	}
	if chunks[0].EndSeconds != 30 {
		t.Errorf("end = %v, want 30", chunks[0].EndSeconds)
	}
	if chunks[0].Index != 0 {
		t.Errorf("index = %d, want 0", chunks[0].Index)
	}
}

func TestEmptyTranscript(t *testing.T) {
	strategies := []Strategy{StrategyNone, StrategyRecursive, StrategySemantic, StrategyTimestamp, StrategyAuto}
	for _, strategy := range strategies {
		t.Run(strategy.String(), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Strategy = strategy
			c := mustChunker(t, cfg, &fakeProvider{available: true})

			chunks, err := c.Chunk(context.Background(), &transcript.Transcript{VideoID: "empty"})
			if err != nil {
				t.Fatalf("Chunk() error = %v", err)
			}
			if len(chunks) != 0 {
				t.Errorf("got %d chunks, want 0", len(chunks))
			}
		})
	}
}

func TestSelectStrategy(t *testing.T) {
	tests := []struct {
		name      string
		duration  float64
		available bool
		want      Strategy
	}{
		{"short video", 300, true, StrategyNone},
		{"medium video", 1200, true, StrategyRecursive},
		{"long video with embeddings", 2400, true, StrategySemantic},
		{"long video without embeddings", 2400, false, StrategyRecursive},
		{"boundary ten minutes", 600, false, StrategyRecursive},
		{"boundary thirty minutes", 1800, true, StrategySemantic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectStrategy(tt.duration, tt.available)
			if got != tt.want {
				t.Errorf("SelectStrategy(%v, %v) = %v, want %v", tt.duration, tt.available, got, tt.want)
			}
		})
	}
}

func TestAutoFallsBackWhenEmbeddingUnavailable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Strategy = StrategyAuto
	cfg.MaxChunkTokens = 30
	cfg.OverlapTokens = 0

	// Claims availability, fails at request time
	provider := &fakeProvider{available: true, err: embedding.ErrUnavailable}
	c := mustChunker(t, cfg, provider)

	// 2400s video so AUTO resolves to semantic first
	texts := make([]string, 40)
	for i := range texts {
		texts[i] = fmt.Sprintf("word%03da word%03db word%03dc", i, i, i)
	}
	tr := makeTranscript(texts, 60)

	chunks, err := c.Chunk(context.Background(), tr)
	if err != nil {
		t.Fatalf("Chunk() error = %v, want recursive fallback", err)
	}
	if len(chunks) < 2 {
		t.Errorf("got %d chunks, want several from the recursive fallback", len(chunks))
	}
	if provider.calls == 0 {
		t.Error("embedding provider was never tried")
	}
}

func TestExplicitSemanticPropagatesUnavailable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Strategy = StrategySemantic
	c := mustChunker(t, cfg, &fakeProvider{available: false})

	chunks, err := c.Chunk(context.Background(), makeTranscript([]string{"some text here."}, 10))
	if !errors.Is(err, embedding.ErrUnavailable) {
		t.Fatalf("error = %v, want embedding.ErrUnavailable", err)
	}
	if chunks != nil {
		t.Errorf("got %d chunks, want none", len(chunks))
	}
}

func TestIdempotence(t *testing.T) {
	texts := make([]string, 30)
	for i := range texts {
		texts[i] = fmt.Sprintf("alpha%02d beta%02d gamma%02d delta%02d.", i, i, i, i)
	}
	tr := makeTranscript(texts, 20)

	for _, strategy := range []Strategy{StrategyNone, StrategyRecursive, StrategyTimestamp} {
		t.Run(strategy.String(), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Strategy = strategy
			cfg.MaxChunkTokens = 40
			cfg.OverlapTokens = 8
			c := mustChunker(t, cfg, nil)

			first, err := c.Chunk(context.Background(), tr)
			if err != nil {
				t.Fatalf("first Chunk() error = %v", err)
			}
			second, err := c.Chunk(context.Background(), tr)
			if err != nil {
				t.Fatalf("second Chunk() error = %v", err)
			}
			if !reflect.DeepEqual(first, second) {
				t.Error("identical inputs produced different chunk sequences")
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero max tokens", func(c *Config) { c.MaxChunkTokens = 0 }, true},
		{"negative max tokens", func(c *Config) { c.MaxChunkTokens = -5 }, true},
		{"negative overlap", func(c *Config) { c.OverlapTokens = -1 }, true},
		{"overlap equals max", func(c *Config) { c.OverlapTokens = c.MaxChunkTokens }, true},
		{"zero interval", func(c *Config) { c.TimestampIntervalSeconds = 0 }, true},
		{"negative interval", func(c *Config) { c.TimestampIntervalSeconds = -30 }, true},
		{"zero sentence window", func(c *Config) { c.SentenceWindow = 0 }, true},
		{"percentile out of range", func(c *Config) { c.Breakpoint.Amount = 101 }, true},
		{"stddev amount ok", func(c *Config) {
			c.Breakpoint = BreakpointConfig{Method: BreakpointStdDev, Amount: 2}
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error %v does not wrap ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfigValidateFillsBreakpointDefaults(t *testing.T) {
	tests := []struct {
		method BreakpointMethod
		want   float64
	}{
		{BreakpointPercentile, 95},
		{BreakpointStdDev, 3},
		{BreakpointIQR, 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.method.String(), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Breakpoint = BreakpointConfig{Method: tt.method}
			if err := cfg.Validate(); err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if cfg.Breakpoint.Amount != tt.want {
				t.Errorf("amount = %v, want %v", cfg.Breakpoint.Amount, tt.want)
			}
		})
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		input   string
		want    Strategy
		wantErr bool
	}{
		{"none", StrategyNone, false},
		{"recursive", StrategyRecursive, false},
		{"semantic", StrategySemantic, false},
		{"timestamp", StrategyTimestamp, false},
		{"auto", StrategyAuto, false},
		{"", StrategyAuto, false},
		{"bogus", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseStrategy(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseStrategy(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseStrategy(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
