// Package summary reduces article body text to a short display summary by
// sentence truncation. Deterministic, no external calls.
package summary

import "strings"

const (
	// NoContent is returned for empty input.
	NoContent = "No content available."

	maxSentences   = 5
	maxWords       = 120
	fallbackWords  = 80
	ellipsisMarker = " ..."
)

// Summarize joins the first five sentences of text, trimming the result to
// 120 words. When no sentence boundary is found the first 80 words are used
// instead. Whitespace runs are collapsed first.
func Summarize(text string) string {
	if strings.TrimSpace(text) == "" {
		return NoContent
	}

	collapsed := strings.Join(strings.Fields(text), " ")

	sentences := splitSentences(collapsed)
	if len(sentences) == 0 {
		words := strings.Fields(collapsed)
		if len(words) > fallbackWords {
			return strings.Join(words[:fallbackWords], " ") + ellipsisMarker
		}
		return strings.Join(words, " ")
	}

	if len(sentences) > maxSentences {
		sentences = sentences[:maxSentences]
	}
	result := strings.Join(sentences, " ")

	words := strings.Fields(result)
	if len(words) > maxWords {
		result = strings.Join(words[:maxWords], " ") + ellipsisMarker
	}
	return result
}

// splitSentences breaks text on `.`, `!` or `?` followed by whitespace and
// drops empty fragments. The trailing fragment counts as a sentence even
// without closing punctuation.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	runes := []rune(text)

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 < len(runes) && runes[i+1] == ' ' {
			s := strings.TrimSpace(string(runes[start : i+1]))
			if s != "" {
				sentences = append(sentences, s)
			}
			start = i + 1
		}
	}

	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}
