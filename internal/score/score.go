// Package score derives sentiment labels and heuristic credibility scores
// from article text. Sentiment polarity is a pluggable strategy so the
// default lexicon scorer can be swapped for an AI-backed one without touching
// the pipeline.
package score

import (
	"context"
	"strings"
)

// Sentiment is the label shown next to an article.
type Sentiment string

const (
	Positive Sentiment = "Positive"
	Negative Sentiment = "Negative"
	Neutral  Sentiment = "Neutral"
)

// Analyzer scores text polarity: positive values mean positive sentiment,
// negative mean negative, zero means neutral.
type Analyzer interface {
	Polarity(ctx context.Context, text string) (float64, error)
}

// SentimentLabel maps analyzer polarity to a label. Empty text or an
// analyzer failure yields Neutral, never an error.
func SentimentLabel(ctx context.Context, a Analyzer, text string) Sentiment {
	if strings.TrimSpace(text) == "" || a == nil {
		return Neutral
	}
	p, err := a.Polarity(ctx, text)
	if err != nil {
		return Neutral
	}
	switch {
	case p > 0:
		return Positive
	case p < 0:
		return Negative
	default:
		return Neutral
	}
}
