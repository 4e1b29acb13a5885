package summary

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, NoContent, Summarize(""))
	assert.Equal(t, NoContent, Summarize("   \n\t "))
}

func TestSummarize_FirstFiveSentences(t *testing.T) {
	var sentences []string
	for i := 1; i <= 8; i++ {
		sentences = append(sentences, fmt.Sprintf("Sentence number %d here.", i))
	}
	text := strings.Join(sentences, " ")

	want := strings.Join(sentences[:5], " ")
	assert.Equal(t, want, Summarize(text))
}

func TestSummarize_CollapsesWhitespace(t *testing.T) {
	text := "First  sentence\nhere. Second\t\tsentence. Third one."
	assert.Equal(t, "First sentence here. Second sentence. Third one.", Summarize(text))
}

func TestSummarize_MixedTerminators(t *testing.T) {
	text := "One! Two? Three. Four! Five? Six."
	assert.Equal(t, "One! Two? Three. Four! Five?", Summarize(text))
}

func TestSummarize_WordLimitWithEllipsis(t *testing.T) {
	// Five long sentences totalling well over 120 words.
	sentence := strings.Repeat("word ", 29) + "end."
	text := strings.TrimSpace(strings.Repeat(sentence+" ", 5))

	got := Summarize(text)
	assert.True(t, strings.HasSuffix(got, " ..."), "expected ellipsis marker, got %q", got)
	assert.Len(t, strings.Fields(strings.TrimSuffix(got, " ...")), 120)
}

func TestSummarize_NoPunctuation(t *testing.T) {
	// A single run of words with no sentence boundary is one "sentence",
	// so the 120-word trim applies.
	text := strings.TrimSpace(strings.Repeat("alpha ", 150))
	got := Summarize(text)
	assert.True(t, strings.HasSuffix(got, " ..."))
	assert.Len(t, strings.Fields(strings.TrimSuffix(got, " ...")), 120)
}

func TestSummarize_ShortTextUnchanged(t *testing.T) {
	assert.Equal(t, "Just a few words", Summarize("Just a few words"))
	assert.Equal(t, "One sentence only.", Summarize("One sentence only."))
}

func TestSummarize_Deterministic(t *testing.T) {
	text := "A. B. C. D. E. F. G."
	first := Summarize(text)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, Summarize(text))
	}
}
