package summarizer

import (
	"fmt"
	"strings"

	"ytdigest/internal/chunker"
	"ytdigest/internal/transcript"
)

var formatInstructions = map[string]string{
	"concise": `Write a concise summary (3-5 paragraphs) covering the main argument and conclusions.
Skip minor asides and tangents.`,

	"detailed": `Write a detailed summary with these markdown sections:
## Executive Summary (2-3 sentences)
## Key Points (bulleted)
## Detailed Summary (cover every major topic in order of appearance)
## Topics Covered (bulleted)
## Notable Quotes (verbatim, if any stand out)
## Resources Mentioned (tools, books, links, if any)`,

	"bullet_points": `Summarize the whole video as a nested markdown bullet list, one top-level
bullet per major topic, ordered by appearance. No prose paragraphs.`,
}

const singlePromptTemplate = `You are an expert at analyzing video content. Below is the full transcript of a video titled %q.

Transcript:
---
%s
---

%s

Bold important terms. Do not invent content that is not in the transcript.`

const chunkPromptTemplate = `You are summarizing a long video titled %q in parts. This is part %d of %d, covering [%s] of the video.

Transcript part:
---
%s
---

Summarize this part: state the topics discussed, key claims, and any notable quotes or resources mentioned. Keep timestamps in mind but write flowing prose. Do not add an introduction or conclusion about the video as a whole.`

const reducePromptTemplate = `You are an expert at analyzing video content. A video titled %q was summarized in %d parts; the part summaries are below, in order.

Part summaries:
---
%s
---

Combine them into one coherent summary of the whole video.

%s

Bold important terms. Resolve overlap between parts; do not mention the parts themselves.`

func buildSinglePrompt(t *transcript.Transcript, text, format string) string {
	return fmt.Sprintf(singlePromptTemplate, displayTitle(t), text, formatInstructions[format])
}

func buildChunkPrompt(t *transcript.Transcript, chunk chunker.Chunk, index, total int) string {
	return fmt.Sprintf(chunkPromptTemplate, displayTitle(t), index, total, chunk.TimeRange(), chunk.Text)
}

func buildReducePrompt(t *transcript.Transcript, partials []string, format string) string {
	var b strings.Builder
	for i, p := range partials {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "Part %d:\n%s", i+1, strings.TrimSpace(p))
	}
	return fmt.Sprintf(reducePromptTemplate, displayTitle(t), len(partials), b.String(), formatInstructions[format])
}

func displayTitle(t *transcript.Transcript) string {
	if t.Title != "" {
		return t.Title
	}
	return t.VideoID
}
