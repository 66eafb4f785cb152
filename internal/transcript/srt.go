package transcript

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var reSrtTime = regexp.MustCompile(`(\d{2}):(\d{2}):(\d{2})[,.](\d{3})\s*-->\s*(\d{2}):(\d{2}):(\d{2})[,.](\d{3})`)

// ParseSRT parses SubRip subtitle content into a Transcript.
// The name parameter becomes the title; language is left to the caller.
func ParseSRT(name, content string) (*Transcript, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	blocks := strings.Split(content, "\n\n")

	var segments []Segment
	for _, block := range blocks {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 2 {
			continue
		}

		// Optional numeric cue index on the first line
		timeLine := lines[0]
		textStart := 1
		if _, err := strconv.Atoi(strings.TrimSpace(lines[0])); err == nil && len(lines) >= 3 {
			timeLine = lines[1]
			textStart = 2
		}

		m := reSrtTime.FindStringSubmatch(timeLine)
		if m == nil {
			continue
		}

		start := srtSeconds(m[1], m[2], m[3], m[4])
		end := srtSeconds(m[5], m[6], m[7], m[8])
		text := strings.Join(strings.Fields(strings.Join(lines[textStart:], " ")), " ")
		if text == "" {
			continue
		}

		segments = append(segments, Segment{
			Text:     text,
			Start:    start,
			Duration: end - start,
		})
	}

	if len(segments) == 0 {
		return nil, fmt.Errorf("no cues found in SRT content")
	}

	return &Transcript{
		VideoID:  name,
		Title:    name,
		Duration: segments[len(segments)-1].End(),
		Segments: segments,
	}, nil
}

func srtSeconds(h, m, s, ms string) float64 {
	hours, _ := strconv.Atoi(h)
	minutes, _ := strconv.Atoi(m)
	secs, _ := strconv.Atoi(s)
	millis, _ := strconv.Atoi(ms)
	return float64(hours*3600+minutes*60+secs) + float64(millis)/1000
}
