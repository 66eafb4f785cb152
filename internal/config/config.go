package config

import (
	"fmt"

	"ytdigest/internal/chunker"
)

type Config struct {
	Gemini      GeminiConfig      `yaml:"gemini"`
	Chunking    ChunkingConfig    `yaml:"chunking"`
	Transcript  TranscriptConfig  `yaml:"transcript"`
	Output      OutputConfig      `yaml:"output"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type GeminiConfig struct {
	Model          string   `yaml:"model"`
	EmbeddingModel string   `yaml:"embedding_model"`
	APIKeys        []string `yaml:"api_keys"`
}

type ChunkingConfig struct {
	Strategy                 string  `yaml:"strategy"`
	MaxChunkTokens           int     `yaml:"max_chunk_tokens"`
	OverlapTokens            int     `yaml:"overlap_tokens"`
	TimestampIntervalSeconds int     `yaml:"timestamp_interval_seconds"`
	SkipEmptyWindows         bool    `yaml:"skip_empty_windows"`
	SentenceWindow           int     `yaml:"sentence_window"`
	MinChunkTokens           int     `yaml:"min_chunk_tokens"`
	BreakpointMethod         string  `yaml:"breakpoint_method"`
	BreakpointAmount         float64 `yaml:"breakpoint_amount"`
}

type TranscriptConfig struct {
	Languages []string `yaml:"languages"`
	// ManualOnly refuses auto-generated caption tracks instead of
	// falling back to them.
	ManualOnly bool   `yaml:"manual_only"`
	YtDlpPath  string `yaml:"ytdlp_path"`
}

type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"`
	Docx   bool   `yaml:"docx"`
}

type PathsConfig struct {
	Input     string `yaml:"input"`
	Processed string `yaml:"processed"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

var summaryFormats = map[string]bool{
	"concise":       true,
	"detailed":      true,
	"bullet_points": true,
}

func (c *Config) Validate() error {
	if len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("gemini.api_keys is required (or set GEMINI_API_KEY)")
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.EmbeddingModel == "" {
		c.Gemini.EmbeddingModel = "gemini-embedding-001"
	}

	if c.Output.Dir == "" {
		c.Output.Dir = "summaries"
	}
	if c.Output.Format == "" {
		c.Output.Format = "detailed"
	}
	if !summaryFormats[c.Output.Format] {
		return fmt.Errorf("output.format must be one of concise, detailed, bullet_points; got %q", c.Output.Format)
	}

	if len(c.Transcript.Languages) == 0 {
		c.Transcript.Languages = []string{"en"}
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Processed == "" {
		c.Paths.Processed = "data/processed"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	// Surface chunking mistakes at startup rather than per video
	if _, err := c.Chunking.ChunkerConfig(); err != nil {
		return err
	}

	return nil
}

// ChunkerConfig lowers the yaml chunking section onto the chunker's
// defaults. Zero-valued fields keep the documented defaults.
func (c ChunkingConfig) ChunkerConfig() (chunker.Config, error) {
	cfg := chunker.DefaultConfig()

	strategy, err := chunker.ParseStrategy(c.Strategy)
	if err != nil {
		return chunker.Config{}, err
	}
	cfg.Strategy = strategy

	if c.MaxChunkTokens != 0 {
		cfg.MaxChunkTokens = c.MaxChunkTokens
	}
	if c.OverlapTokens != 0 {
		cfg.OverlapTokens = c.OverlapTokens
	}
	if c.TimestampIntervalSeconds != 0 {
		cfg.TimestampIntervalSeconds = c.TimestampIntervalSeconds
	}
	if c.SentenceWindow != 0 {
		cfg.SentenceWindow = c.SentenceWindow
	}
	cfg.SkipEmptyWindows = c.SkipEmptyWindows
	cfg.MinChunkTokens = c.MinChunkTokens

	method, err := chunker.ParseBreakpointMethod(c.BreakpointMethod)
	if err != nil {
		return chunker.Config{}, err
	}
	cfg.Breakpoint = chunker.BreakpointConfig{Method: method, Amount: c.BreakpointAmount}

	if err := cfg.Validate(); err != nil {
		return chunker.Config{}, err
	}
	return cfg, nil
}
