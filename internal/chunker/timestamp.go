package chunker

import (
	"math"
	"strings"

	"ytdigest/internal/transcript"
)

// timestamp partitions [0, duration) into fixed-width windows and fills
// each window with the segments starting inside it. Chunk boundaries are
// the window edges, not the segment edges; the final window is clipped to
// the video duration. Windows without any segment are emitted with empty
// text to keep the timeline uniform, unless SkipEmptyWindows is set.
func (c *implChunker) timestamp(t *transcript.Transcript) []Chunk {
	duration := t.TotalDuration()
	if duration <= 0 {
		return nil
	}

	interval := float64(c.cfg.TimestampIntervalSeconds)
	windows := int(math.Ceil(duration / interval))

	var chunks []Chunk
	for i := 0; i < windows; i++ {
		windowStart := float64(i) * interval
		windowEnd := windowStart + interval
		last := i == windows-1

		var texts []string
		for _, seg := range t.Segments {
			if seg.Start < windowStart {
				continue
			}
			// Straggler segments past the clipped end belong to the
			// final window.
			if seg.Start >= windowEnd && !last {
				continue
			}
			if text := strings.Join(strings.Fields(seg.Text), " "); text != "" {
				texts = append(texts, text)
			}
		}

		text := strings.Join(texts, " ")
		if text == "" && c.cfg.SkipEmptyWindows {
			continue
		}

		chunks = append(chunks, Chunk{
			Index:        len(chunks),
			Text:         text,
			StartSeconds: windowStart,
			EndSeconds:   math.Min(windowEnd, duration),
		})
	}
	return chunks
}
