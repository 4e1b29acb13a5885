// Package ai provides a Gemini-backed polarity analyzer, the swap-in
// alternative to the lexicon scorer.
package ai

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiAnalyzer struct {
	client *genai.Client
	model  string
}

func NewGeminiAnalyzer(ctx context.Context, apiKey string) (*GeminiAnalyzer, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiAnalyzer{client: client, model: "gemini-1.5-flash"}, nil
}

func (g *GeminiAnalyzer) Close() {
	if g.client != nil {
		g.client.Close()
	}
}

// Polarity asks the model for a single number in [-1,1]. Prompt text is
// whitespace-collapsed and capped to keep request sizes bounded.
func (g *GeminiAnalyzer) Polarity(ctx context.Context, text string) (float64, error) {
	text = strings.Join(strings.Fields(text), " ")
	const maxChars = 4000
	if utf8.RuneCountInString(text) > maxChars {
		runes := []rune(text)
		text = string(runes[:maxChars])
	}

	prompt := fmt.Sprintf(`Rate the overall sentiment of the following news text.
Respond with a single decimal number between -1.0 (very negative) and 1.0 (very positive), 0 for neutral.
No words, no explanation, only the number.

Text:
%s`, text)

	model := g.client.GenerativeModel(g.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return 0, fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return 0, fmt.Errorf("no response from Gemini")
	}

	raw := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	return parsePolarity(raw)
}

// parsePolarity extracts the first numeric token from a model response. The
// model occasionally wraps the number in prose despite the prompt.
func parsePolarity(raw string) (float64, error) {
	for _, field := range strings.Fields(raw) {
		token := strings.Trim(field, ".,;:()[]\"'")
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			continue
		}
		if v < -1 {
			v = -1
		}
		if v > 1 {
			v = 1
		}
		return v, nil
	}
	return 0, fmt.Errorf("could not parse polarity from response: %q", raw)
}
