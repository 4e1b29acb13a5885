package score

import (
	"context"
	"strings"
	"unicode"
)

// LexiconAnalyzer is the default polarity scorer: it counts occurrences of
// positive and negative vocabulary and returns their normalized difference.
// Crude, but dependency-free and deterministic.
type LexiconAnalyzer struct{}

var positiveLexicon = map[string]bool{
	"good": true, "great": true, "excellent": true, "positive": true,
	"success": true, "successful": true, "win": true, "wins": true,
	"growth": true, "improve": true, "improved": true, "improves": true,
	"gain": true, "gains": true, "boost": true, "record": true,
	"strong": true, "breakthrough": true, "progress": true, "hope": true,
	"happy": true, "celebrate": true, "achievement": true, "rise": true,
	"rises": true, "recovery": true, "benefit": true, "benefits": true,
}

var negativeLexicon = map[string]bool{
	"bad": true, "poor": true, "negative": true, "fail": true,
	"fails": true, "failed": true, "failure": true, "loss": true,
	"losses": true, "crisis": true, "crash": true, "decline": true,
	"declines": true, "drop": true, "drops": true, "fear": true,
	"death": true, "dead": true, "war": true, "attack": true,
	"threat": true, "weak": true, "worst": true, "fall": true,
	"falls": true, "damage": true, "injured": true, "killed": true,
}

func (LexiconAnalyzer) Polarity(_ context.Context, text string) (float64, error) {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	if len(words) == 0 {
		return 0, nil
	}

	var pos, neg int
	for _, w := range words {
		if positiveLexicon[w] {
			pos++
		}
		if negativeLexicon[w] {
			neg++
		}
	}

	return float64(pos-neg) / float64(len(words)), nil
}
