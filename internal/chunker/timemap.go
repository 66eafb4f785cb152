package chunker

import (
	"sort"
	"strings"

	"ytdigest/internal/transcript"
)

// offsetMap holds the whitespace-normalized, space-joined transcript text
// together with each segment's character span, so chunk boundaries found
// at a text offset can be mapped back to a timestamp.
type offsetMap struct {
	text  string
	spans []segmentSpan
}

type segmentSpan struct {
	off      int // first character of the segment in text
	length   int
	start    float64 // seconds
	duration float64
}

// newOffsetMap normalizes each segment's whitespace and joins the texts
// with single spaces. Segments that normalize to nothing are dropped.
func newOffsetMap(segments []transcript.Segment) *offsetMap {
	var b strings.Builder
	spans := make([]segmentSpan, 0, len(segments))

	for _, seg := range segments {
		text := strings.Join(strings.Fields(seg.Text), " ")
		if text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		spans = append(spans, segmentSpan{
			off:      b.Len(),
			length:   len(text),
			start:    seg.Start,
			duration: seg.Duration,
		})
		b.WriteString(text)
	}

	return &offsetMap{text: b.String(), spans: spans}
}

// secondsAt maps a character offset to a timestamp by interpolating the
// owning segment's start/duration across its character span. Offsets in
// the joining space between segments map to the preceding segment's end,
// which keeps the mapping monotonically non-decreasing.
func (m *offsetMap) secondsAt(offset int) float64 {
	if len(m.spans) == 0 {
		return 0
	}
	if offset <= 0 {
		return m.spans[0].start
	}

	// Last span starting at or before offset
	i := sort.Search(len(m.spans), func(i int) bool {
		return m.spans[i].off > offset
	}) - 1
	if i < 0 {
		i = 0
	}

	sp := m.spans[i]
	if offset >= sp.off+sp.length || sp.length == 0 {
		return sp.start + sp.duration
	}
	frac := float64(offset-sp.off) / float64(sp.length)
	return sp.start + sp.duration*frac
}
