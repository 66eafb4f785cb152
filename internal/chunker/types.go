package chunker

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every config validation failure.
var ErrInvalidConfig = errors.New("invalid chunking config")

// Strategy selects how a transcript is partitioned into chunks.
type Strategy int

const (
	// StrategyNone emits the whole transcript as a single chunk.
	StrategyNone Strategy = iota
	// StrategyRecursive splits on natural text boundaries under a token budget.
	StrategyRecursive
	// StrategySemantic splits at topic shifts detected via embeddings.
	StrategySemantic
	// StrategyTimestamp splits on fixed wall-clock intervals.
	StrategyTimestamp
	// StrategyAuto picks a concrete strategy from the video duration.
	StrategyAuto
)

func (s Strategy) String() string {
	switch s {
	case StrategyNone:
		return "none"
	case StrategyRecursive:
		return "recursive"
	case StrategySemantic:
		return "semantic"
	case StrategyTimestamp:
		return "timestamp"
	case StrategyAuto:
		return "auto"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps a config/CLI name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "none":
		return StrategyNone, nil
	case "recursive":
		return StrategyRecursive, nil
	case "semantic":
		return StrategySemantic, nil
	case "timestamp":
		return StrategyTimestamp, nil
	case "auto", "":
		return StrategyAuto, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfig, name)
	}
}

// BreakpointMethod selects how the semantic strategy derives its
// boundary threshold from the adjacent-window distance distribution.
type BreakpointMethod int

const (
	BreakpointPercentile BreakpointMethod = iota
	BreakpointStdDev
	BreakpointIQR
)

func (m BreakpointMethod) String() string {
	switch m {
	case BreakpointPercentile:
		return "percentile"
	case BreakpointStdDev:
		return "stddev"
	case BreakpointIQR:
		return "iqr"
	default:
		return fmt.Sprintf("breakpoint(%d)", int(m))
	}
}

// ParseBreakpointMethod maps a config name to a BreakpointMethod.
func ParseBreakpointMethod(name string) (BreakpointMethod, error) {
	switch name {
	case "percentile", "":
		return BreakpointPercentile, nil
	case "stddev", "standard_deviation":
		return BreakpointStdDev, nil
	case "iqr", "interquartile":
		return BreakpointIQR, nil
	default:
		return 0, fmt.Errorf("%w: unknown breakpoint method %q", ErrInvalidConfig, name)
	}
}

// BreakpointConfig parameterizes semantic boundary detection.
// Amount is the percentile for BreakpointPercentile, the multiplier
// for the other methods. Zero means the method's default.
type BreakpointConfig struct {
	Method BreakpointMethod
	Amount float64
}

// Chunk is one bounded span of transcript text with its time range.
// Chunks from a single call are ordered by Index and StartSeconds.
type Chunk struct {
	Index        int
	Text         string
	StartSeconds float64
	EndSeconds   float64
}

// TimeRange returns the chunk's span as "[MM:SS - MM:SS]" style text.
func (c Chunk) TimeRange() string {
	return fmt.Sprintf("%s - %s", formatSeconds(c.StartSeconds), formatSeconds(c.EndSeconds))
}

// Config controls chunking. Construct from DefaultConfig and override;
// the zero value fails validation on purpose.
type Config struct {
	Strategy Strategy

	// MaxChunkTokens bounds each chunk, overlap included.
	MaxChunkTokens int
	// OverlapTokens worth of trailing content from the previous chunk is
	// duplicated at the front of each subsequent recursive chunk.
	OverlapTokens int

	// TimestampIntervalSeconds is the window width of the timestamp strategy.
	TimestampIntervalSeconds int
	// SkipEmptyWindows drops timestamp windows with no segments instead of
	// emitting them with empty text.
	SkipEmptyWindows bool

	// SentenceWindow is how many sentences are embedded together.
	SentenceWindow int
	// MinChunkTokens merges semantic chunks below this size into their
	// following neighbor. Zero disables merging.
	MinChunkTokens int
	Breakpoint     BreakpointConfig
}

// DefaultConfig returns the documented defaults: auto strategy, 1000-token
// chunks with 200 tokens of overlap, 300-second timestamp windows.
func DefaultConfig() Config {
	return Config{
		Strategy:                 StrategyAuto,
		MaxChunkTokens:           1000,
		OverlapTokens:            200,
		TimestampIntervalSeconds: 300,
		SentenceWindow:           3,
		Breakpoint:               BreakpointConfig{Method: BreakpointPercentile},
	}
}

// Validate fails fast on unusable settings and fills the per-method
// breakpoint default amount.
func (c *Config) Validate() error {
	if c.MaxChunkTokens <= 0 {
		return fmt.Errorf("%w: max_chunk_tokens must be positive, got %d", ErrInvalidConfig, c.MaxChunkTokens)
	}
	if c.OverlapTokens < 0 {
		return fmt.Errorf("%w: overlap_tokens must not be negative, got %d", ErrInvalidConfig, c.OverlapTokens)
	}
	if c.OverlapTokens >= c.MaxChunkTokens {
		return fmt.Errorf("%w: overlap_tokens (%d) must be smaller than max_chunk_tokens (%d)", ErrInvalidConfig, c.OverlapTokens, c.MaxChunkTokens)
	}
	if c.TimestampIntervalSeconds <= 0 {
		return fmt.Errorf("%w: timestamp_interval_seconds must be positive, got %d", ErrInvalidConfig, c.TimestampIntervalSeconds)
	}
	if c.SentenceWindow <= 0 {
		return fmt.Errorf("%w: sentence_window must be positive, got %d", ErrInvalidConfig, c.SentenceWindow)
	}
	if c.MinChunkTokens < 0 {
		return fmt.Errorf("%w: min_chunk_tokens must not be negative, got %d", ErrInvalidConfig, c.MinChunkTokens)
	}

	if c.Breakpoint.Amount == 0 {
		switch c.Breakpoint.Method {
		case BreakpointPercentile:
			c.Breakpoint.Amount = 95
		case BreakpointStdDev:
			c.Breakpoint.Amount = 3
		case BreakpointIQR:
			c.Breakpoint.Amount = 1.5
		}
	}
	switch c.Breakpoint.Method {
	case BreakpointPercentile:
		if c.Breakpoint.Amount < 0 || c.Breakpoint.Amount > 100 {
			return fmt.Errorf("%w: breakpoint percentile must be within [0, 100], got %v", ErrInvalidConfig, c.Breakpoint.Amount)
		}
	case BreakpointStdDev, BreakpointIQR:
		if c.Breakpoint.Amount < 0 {
			return fmt.Errorf("%w: breakpoint amount must not be negative, got %v", ErrInvalidConfig, c.Breakpoint.Amount)
		}
	default:
		return fmt.Errorf("%w: unknown breakpoint method %v", ErrInvalidConfig, c.Breakpoint.Method)
	}

	return nil
}

func formatSeconds(seconds float64) string {
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
