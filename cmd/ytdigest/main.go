// ytdigest downloads YouTube video transcripts, chunks them with a
// configurable strategy, summarizes the chunks with Gemini, and writes a
// markdown report per video.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
