package chunker

import (
	"math"
	"strings"
)

// tokensPerWord is the fixed word→token estimate used everywhere a token
// budget is enforced. Transcript text is prose, so a sub-word tokenizer
// would buy little over this ratio.
const tokensPerWord = 0.75

// estimateTokens approximates the token count of a text of n words.
func estimateTokens(words int) int {
	return int(math.Ceil(float64(words) * tokensPerWord))
}

// wordsForTokens is the inverse: how many words fit a token budget.
func wordsForTokens(tokens int) int {
	return int(float64(tokens) / tokensPerWord)
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}

// EstimateTokens approximates the token count of arbitrary text with the
// same ratio the chunker applies internally.
func EstimateTokens(text string) int {
	return estimateTokens(wordCount(text))
}
