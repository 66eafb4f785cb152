package summarizer

import (
	"fmt"
	"strings"
	"time"

	"ytdigest/internal/transcript"
)

// Summary is the finished report for one video.
type Summary struct {
	JobID       string
	VideoID     string
	Title       string
	Channel     string
	URL         string
	Duration    float64
	Language    string
	Format      string
	ChunkCount  int
	Body        string
	GeneratedAt time.Time
}

// Markdown renders the report: a metadata header, the model's summary
// body, and a generation footer.
func (s *Summary) Markdown() string {
	title := s.Title
	if title == "" {
		title = s.VideoID
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Video Summary: %s\n\n", title)

	b.WriteString("## Metadata\n")
	fmt.Fprintf(&b, "- **Video ID**: %s\n", s.VideoID)
	if s.URL != "" {
		fmt.Fprintf(&b, "- **URL**: %s\n", s.URL)
	}
	if s.Channel != "" {
		fmt.Fprintf(&b, "- **Channel**: %s\n", s.Channel)
	}
	if s.Duration > 0 {
		fmt.Fprintf(&b, "- **Duration**: %s\n", transcript.FormatTimestamp(s.Duration))
	}
	if s.Language != "" {
		fmt.Fprintf(&b, "- **Language**: %s\n", s.Language)
	}

	b.WriteString("\n")
	b.WriteString(strings.TrimSpace(s.Body))
	b.WriteString("\n\n---\n")
	fmt.Fprintf(&b, "**Summary Generated**: %s\n", s.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "**Job**: %s\n", s.JobID)
	if s.URL != "" {
		fmt.Fprintf(&b, "**Original Video**: %s\n", s.URL)
	}
	return b.String()
}
