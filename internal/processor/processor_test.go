package processor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ytdigest/internal/chunker"
	"ytdigest/internal/config"
	"ytdigest/internal/logger"
	"ytdigest/internal/summarizer"
	"ytdigest/internal/transcript"
)

type fakeFetcher struct {
	t   *transcript.Transcript
	err error
}

func (f *fakeFetcher) Fetch(ctx context.Context, urlOrID string) (*transcript.Transcript, error) {
	return f.t, f.err
}

type fakeChunker struct {
	chunks []chunker.Chunk
	err    error
}

func (f *fakeChunker) Chunk(ctx context.Context, t *transcript.Transcript) ([]chunker.Chunk, error) {
	return f.chunks, f.err
}

type fakeSummarizer struct {
	summary *summarizer.Summary
	err     error
	format  string
}

func (f *fakeSummarizer) Summarize(ctx context.Context, t *transcript.Transcript, chunks []chunker.Chunk, format string) (*summarizer.Summary, error) {
	f.format = format
	if f.err != nil {
		return nil, f.err
	}
	s := *f.summary
	s.VideoID = t.VideoID
	return &s, nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Output: config.OutputConfig{Dir: filepath.Join(dir, "summaries"), Format: "detailed"},
		Paths: config.PathsConfig{
			Input:     filepath.Join(dir, "input"),
			Processed: filepath.Join(dir, "processed"),
		},
	}
}

func sampleTranscript() *transcript.Transcript {
	return &transcript.Transcript{
		VideoID:  "dQw4w9WgXcQ",
		Title:    "A Talk",
		Language: "en",
		Segments: []transcript.Segment{{Text: "hello world", Start: 0, Duration: 5}},
	}
}

func TestProcessURLWritesSummary(t *testing.T) {
	cfg := testConfig(t)
	sum := &fakeSummarizer{summary: &summarizer.Summary{Body: "The summary body."}}
	p := New(cfg, &fakeFetcher{t: sampleTranscript()}, &fakeChunker{}, sum, logger.New("error"))

	if err := p.ProcessURL(context.Background(), "dQw4w9WgXcQ"); err != nil {
		t.Fatalf("ProcessURL() error = %v", err)
	}

	if sum.format != "detailed" {
		t.Errorf("summarizer got format %q, want %q", sum.format, "detailed")
	}

	data, err := os.ReadFile(filepath.Join(cfg.Output.Dir, "dQw4w9WgXcQ.md"))
	if err != nil {
		t.Fatalf("summary file not written: %v", err)
	}
	if !strings.Contains(string(data), "The summary body.") {
		t.Error("summary file missing the body")
	}
}

func TestProcessURLFetchError(t *testing.T) {
	cfg := testConfig(t)
	p := New(cfg, &fakeFetcher{err: errors.New("no captions")}, &fakeChunker{}, &fakeSummarizer{}, logger.New("error"))

	err := p.ProcessURL(context.Background(), "dQw4w9WgXcQ")
	if err == nil || !strings.Contains(err.Error(), "fetch transcript") {
		t.Errorf("error = %v, want a fetch error", err)
	}
}

func TestProcessURLChunkError(t *testing.T) {
	cfg := testConfig(t)
	p := New(cfg, &fakeFetcher{t: sampleTranscript()}, &fakeChunker{err: errors.New("bad config")}, &fakeSummarizer{}, logger.New("error"))

	err := p.ProcessURL(context.Background(), "dQw4w9WgXcQ")
	if err == nil || !strings.Contains(err.Error(), "chunk transcript") {
		t.Errorf("error = %v, want a chunking error", err)
	}
}

func TestProcessFileMovesToProcessed(t *testing.T) {
	cfg := testConfig(t)
	if err := os.MkdirAll(cfg.Paths.Input, 0755); err != nil {
		t.Fatal(err)
	}
	srtPath := filepath.Join(cfg.Paths.Input, "talk.srt")
	content := "1\n00:00:00,000 --> 00:00:02,000\nHello from a file\n"
	if err := os.WriteFile(srtPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	sum := &fakeSummarizer{summary: &summarizer.Summary{Body: "File summary."}}
	p := New(cfg, &fakeFetcher{}, &fakeChunker{}, sum, logger.New("error"))

	if err := p.ProcessFile(context.Background(), srtPath); err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}

	if _, err := os.Stat(srtPath); !os.IsNotExist(err) {
		t.Error("input file was not moved out of the input directory")
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.Processed, "talk.srt")); err != nil {
		t.Errorf("input file not found in processed dir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.Output.Dir, "talk.md")); err != nil {
		t.Errorf("summary not written: %v", err)
	}
}

func TestWriteOutputsSanitizesVideoID(t *testing.T) {
	cfg := testConfig(t)
	sum := &fakeSummarizer{summary: &summarizer.Summary{Body: "body"}}
	tr := sampleTranscript()
	tr.VideoID = "weird/id with spaces"
	p := New(cfg, &fakeFetcher{t: tr}, &fakeChunker{}, sum, logger.New("error"))

	if err := p.ProcessURL(context.Background(), "whatever"); err != nil {
		t.Fatalf("ProcessURL() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.Output.Dir, "weird_id_with_spaces.md")); err != nil {
		t.Errorf("sanitized summary file not found: %v", err)
	}
}
