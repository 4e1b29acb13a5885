package score

import "strings"

// CredibilityLabel buckets the numeric score.
type CredibilityLabel string

const (
	RealLikely CredibilityLabel = "Real News likely"
	Uncertain  CredibilityLabel = "Uncertain"
	FakeLikely CredibilityLabel = "Fake News likely"
)

// Credibility carries the label and its bounded confidence score.
type Credibility struct {
	Label CredibilityLabel
	Score int // always in [0,100]
}

var trustedSources = []string{
	"BBC", "NDTV", "The Hindu", "Times of India", "CNN",
	"Google News", "Reuters", "Al Jazeera", "Washington Post", "Indian Express",
}

var signalWords = []string{"research", "study", "report", "official"}

var sensationalWords = []string{"shocking", "miracle", "unbelievable", "guaranteed", "scandal"}

// Score rates an article on a fixed additive point scale. All checks are
// case-insensitive substring or word-membership tests on independent
// conditions; the result is clamped to [0,100].
func Score(title, text, source string) Credibility {
	score := 50

	if source != "" && containsAnyFold(source, trustedSources) {
		score += 30
	}
	if len(strings.Fields(text)) > 120 {
		score += 15
	}
	if text != "" && containsAnyFold(text, signalWords) {
		score += 10
	}
	if containsDigit(text) {
		score += 5
	}
	if text != "" && containsAnyFold(text, sensationalWords) {
		score -= 25
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	label := FakeLikely
	switch {
	case score >= 80:
		label = RealLikely
	case score >= 55:
		label = Uncertain
	}

	return Credibility{Label: label, Score: score}
}

func containsAnyFold(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, k := range keywords {
		if strings.Contains(lower, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

func containsDigit(text string) bool {
	for _, r := range text {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
