package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadFile reads a transcript from disk. Supported formats are SubRip
// (.srt) and the tool's own JSON transcript schema (.json).
func LoadFile(path string) (*Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript file: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt":
		return ParseSRT(name, string(data))
	case ".json":
		return ParseJSON(name, data)
	default:
		return nil, fmt.Errorf("unsupported transcript format: %s", filepath.Ext(path))
	}
}

// ParseJSON parses a JSON transcript. Segments are re-sorted by start time
// so downstream consumers can rely on ordering.
func ParseJSON(name string, data []byte) (*Transcript, error) {
	var t Transcript
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse transcript JSON: %w", err)
	}
	if len(t.Segments) == 0 {
		return nil, fmt.Errorf("transcript JSON has no segments")
	}
	if t.VideoID == "" {
		t.VideoID = name
	}
	if t.Title == "" {
		t.Title = name
	}

	sort.SliceStable(t.Segments, func(i, j int) bool {
		return t.Segments[i].Start < t.Segments[j].Start
	})
	return &t, nil
}
