package transcript

import (
	"fmt"
	"strings"
)

// Segment is a single time-coded piece of transcript text.
// Segments are ordered by Start ascending and do not overlap.
type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// End returns the end time of the segment in seconds.
func (s Segment) End() float64 {
	return s.Start + s.Duration
}

// StartTimestamp returns the formatted start time (MM:SS or HH:MM:SS).
func (s Segment) StartTimestamp() string {
	return FormatTimestamp(s.Start)
}

// Transcript is the full time-coded transcript of one video,
// plus the metadata needed for the summary report.
type Transcript struct {
	VideoID       string    `json:"video_id"`
	Title         string    `json:"title,omitempty"`
	Channel       string    `json:"channel,omitempty"`
	URL           string    `json:"url,omitempty"`
	Duration      float64   `json:"duration,omitempty"`
	Language      string    `json:"language"`
	AutoGenerated bool      `json:"is_auto_generated,omitempty"`
	Segments      []Segment `json:"segments"`
}

// FullText returns the whole transcript as one space-joined string.
func (t *Transcript) FullText() string {
	texts := make([]string, 0, len(t.Segments))
	for _, seg := range t.Segments {
		texts = append(texts, strings.Join(strings.Fields(seg.Text), " "))
	}
	return strings.Join(texts, " ")
}

// FullTextWithTimestamps returns the transcript with one [MM:SS] prefixed
// line per segment.
func (t *Transcript) FullTextWithTimestamps() string {
	var b strings.Builder
	for i, seg := range t.Segments {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "[%s] %s", seg.StartTimestamp(), strings.TrimSpace(seg.Text))
	}
	return b.String()
}

// TotalDuration returns the declared video duration, falling back to the
// end of the last segment when the metadata did not carry one.
func (t *Transcript) TotalDuration() float64 {
	if t.Duration > 0 {
		return t.Duration
	}
	if n := len(t.Segments); n > 0 {
		return t.Segments[n-1].End()
	}
	return 0
}

// FormatTimestamp formats seconds as MM:SS, or HH:MM:SS past the hour mark.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
