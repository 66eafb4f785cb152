package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"ytdigest/internal/summarizer"
	"ytdigest/internal/transcript"
)

// ProcessURL fetches the transcript for a YouTube URL or video ID and
// runs it through the pipeline.
func (p *implProcessor) ProcessURL(ctx context.Context, urlOrID string) error {
	started := time.Now()
	p.logger.Info(ctx, "Processing video: %s", urlOrID)

	t, err := p.fetcher.Fetch(ctx, urlOrID)
	if err != nil {
		return fmt.Errorf("fetch transcript: %w", err)
	}
	p.logger.Info(ctx, "Transcript fetched: %d segments, %s, language %s",
		len(t.Segments), transcript.FormatTimestamp(t.TotalDuration()), t.Language)

	if err := p.process(ctx, t); err != nil {
		return err
	}

	p.logger.Info(ctx, "Completed %s in %s", t.VideoID, time.Since(started).Round(time.Millisecond))
	return nil
}

// ProcessFile reads a transcript file, summarizes it, and moves the file
// to the processed directory so it is not picked up again.
func (p *implProcessor) ProcessFile(ctx context.Context, path string) error {
	started := time.Now()
	p.logger.Info(ctx, "Processing transcript file: %s", path)

	t, err := transcript.LoadFile(path)
	if err != nil {
		return fmt.Errorf("load transcript: %w", err)
	}

	if err := p.process(ctx, t); err != nil {
		return err
	}

	if err := os.MkdirAll(p.cfg.Paths.Processed, 0755); err != nil {
		return fmt.Errorf("create processed dir: %w", err)
	}
	dest := filepath.Join(p.cfg.Paths.Processed, filepath.Base(path))
	if err := os.Rename(path, dest); err != nil {
		p.logger.Warn(ctx, "Failed to move %s to processed: %v", path, err)
	}

	p.logger.Info(ctx, "Completed %s in %s", filepath.Base(path), time.Since(started).Round(time.Millisecond))
	return nil
}

func (p *implProcessor) process(ctx context.Context, t *transcript.Transcript) error {
	chunks, err := p.chunker.Chunk(ctx, t)
	if err != nil {
		return fmt.Errorf("chunk transcript: %w", err)
	}
	p.logger.Info(ctx, "Chunked into %d chunk(s)", len(chunks))

	summary, err := p.summarizer.Summarize(ctx, t, chunks, p.cfg.Output.Format)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	return p.writeOutputs(ctx, summary)
}

var reUnsafePath = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func (p *implProcessor) writeOutputs(ctx context.Context, summary *summarizer.Summary) error {
	if err := os.MkdirAll(p.cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	base := reUnsafePath.ReplaceAllString(summary.VideoID, "_")
	mdPath := filepath.Join(p.cfg.Output.Dir, base+".md")
	if err := os.WriteFile(mdPath, []byte(summary.Markdown()), 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	p.logger.Info(ctx, "[DONE] %s -> %s", summary.VideoID, mdPath)

	if p.cfg.Output.Docx {
		docxPath := filepath.Join(p.cfg.Output.Dir, base+".docx")
		title := summary.Title
		if title == "" {
			title = summary.VideoID
		}
		if err := summarizer.WriteDocx(title, summary.Markdown(), docxPath); err != nil {
			return fmt.Errorf("write docx: %w", err)
		}
		p.logger.Info(ctx, "[DONE] %s -> %s", summary.VideoID, docxPath)
	}

	return nil
}
