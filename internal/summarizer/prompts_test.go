package summarizer

import (
	"strings"
	"testing"

	"ytdigest/internal/chunker"
	"ytdigest/internal/transcript"
)

func TestBuildSinglePrompt(t *testing.T) {
	tr := &transcript.Transcript{VideoID: "abc123def45", Title: "Intro to Channels"}
	prompt := buildSinglePrompt(tr, "the transcript text", "concise")

	if !strings.Contains(prompt, `"Intro to Channels"`) {
		t.Error("prompt missing the video title")
	}
	if !strings.Contains(prompt, "the transcript text") {
		t.Error("prompt missing the transcript")
	}
	if !strings.Contains(prompt, "concise summary") {
		t.Error("prompt missing the format instructions")
	}
}

func TestBuildChunkPrompt(t *testing.T) {
	tr := &transcript.Transcript{VideoID: "abc123def45"}
	chunk := chunker.Chunk{Index: 1, Text: "chunk body", StartSeconds: 300, EndSeconds: 600}

	prompt := buildChunkPrompt(tr, chunk, 2, 5)

	if !strings.Contains(prompt, "part 2 of 5") {
		t.Error("prompt missing part numbering")
	}
	if !strings.Contains(prompt, "05:00") || !strings.Contains(prompt, "10:00") {
		t.Error("prompt missing the chunk time range")
	}
	if !strings.Contains(prompt, "chunk body") {
		t.Error("prompt missing the chunk text")
	}
	// Untitled video falls back to its ID
	if !strings.Contains(prompt, `"abc123def45"`) {
		t.Error("prompt missing the fallback title")
	}
}

func TestBuildReducePrompt(t *testing.T) {
	tr := &transcript.Transcript{Title: "Long Talk"}
	prompt := buildReducePrompt(tr, []string{"first part summary", "second part summary"}, "bullet_points")

	if !strings.Contains(prompt, "2 parts") {
		t.Error("prompt missing the part count")
	}
	if !strings.Contains(prompt, "Part 1:\nfirst part summary") {
		t.Error("prompt missing part 1")
	}
	if !strings.Contains(prompt, "Part 2:\nsecond part summary") {
		t.Error("prompt missing part 2")
	}
	if !strings.Contains(prompt, "bullet list") {
		t.Error("prompt missing the format instructions")
	}
}

func TestFormatInstructionsCoverAllFormats(t *testing.T) {
	for _, format := range []string{"concise", "detailed", "bullet_points"} {
		if _, ok := formatInstructions[format]; !ok {
			t.Errorf("no instructions for format %q", format)
		}
	}
}
