// Package translate forwards summary text to an external translation call.
// Google's public endpoint is tried first, OpenAI second when a token is
// configured; any failure collapses to a fixed sentinel string so the
// pipeline never stalls on a translation outage.
package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"newslens/internal/cache"
	"newslens/internal/logger"
	"newslens/internal/metrics"
)

// ErrorSentinel is what callers display when every provider fails.
const ErrorSentinel = "Translation error"

const defaultEndpoint = "https://translate.googleapis.com/translate_a/single"

// langCodes maps the closed set of display language names to provider codes.
var langCodes = map[string]string{
	"English":   "en",
	"Kannada":   "kn",
	"Hindi":     "hi",
	"Tamil":     "ta",
	"Telugu":    "te",
	"Malayalam": "ml",
}

// Code resolves a display language name to its provider code, defaulting to
// English for anything outside the closed set.
func Code(language string) string {
	if code, ok := langCodes[language]; ok {
		return code
	}
	return "en"
}

type Translator struct {
	endpoint     string
	httpClient   *http.Client
	openaiClient *openai.Client
	limiter      *rate.Limiter
	cache        *cache.Cache
	cacheTTL     time.Duration
}

type Option func(*Translator)

// WithEndpoint overrides the Google endpoint, used by tests.
func WithEndpoint(endpoint string) Option {
	return func(t *Translator) { t.endpoint = endpoint }
}

// WithOpenAI enables the OpenAI fallback provider.
func WithOpenAI(token string) Option {
	return func(t *Translator) {
		if token != "" {
			t.openaiClient = openai.NewClient(token)
		}
	}
}

func New(cacheTTL time.Duration, opts ...Option) *Translator {
	t := &Translator{
		endpoint:   defaultEndpoint,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		// One outbound translation per second with a small burst; the
		// public endpoint throttles aggressively above that.
		limiter:  rate.NewLimiter(rate.Limit(1), 3),
		cache:    cache.New(),
		cacheTTL: cacheTTL,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Translate renders text in the target display language. Empty input yields
// empty output. English targets skip the providers since summaries are
// already English. Failures yield the sentinel string, never an error.
func (t *Translator) Translate(ctx context.Context, text, language string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	code := Code(language)
	if code == "en" {
		return text
	}

	key := cache.Key(text, code)
	if cached, ok := t.cache.Get(key); ok {
		return cached
	}

	if err := t.limiter.Wait(ctx); err != nil {
		metrics.Global.IncrementFailedTranslations()
		return ErrorSentinel
	}

	result, err := t.translateWithGoogle(ctx, text, code)
	if err == nil && result != "" {
		metrics.Global.IncrementSuccessfulTranslations()
		t.cache.Set(key, result, t.cacheTTL)
		return result
	}
	logger.Warn("google translate failed", "lang", code, "error", err)

	if t.openaiClient != nil {
		result, err = t.translateWithOpenAI(ctx, text, language)
		if err == nil && result != "" {
			metrics.Global.IncrementSuccessfulTranslations()
			t.cache.Set(key, result, t.cacheTTL)
			return result
		}
		logger.Warn("openai translate failed", "lang", code, "error", err)
	}

	metrics.Global.IncrementFailedTranslations()
	return ErrorSentinel
}

// translateWithGoogle uses the public Google Translate endpoint.
func (t *Translator) translateWithGoogle(ctx context.Context, text, code string) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", "auto")
	params.Set("tl", code)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response: %w", err)
	}

	return parseGoogleResponse(body)
}

// parseGoogleResponse unpacks the endpoint's nested-array payload: the first
// element holds chunk arrays whose first element is the translated text.
func parseGoogleResponse(body []byte) (string, error) {
	var response []interface{}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", err
	}
	if len(response) == 0 {
		return "", errors.New("empty response from translate endpoint")
	}

	chunks, ok := response[0].([]interface{})
	if !ok {
		return "", errors.New("unexpected response format")
	}

	var result strings.Builder
	for _, chunk := range chunks {
		if arr, ok := chunk.([]interface{}); ok && len(arr) > 0 {
			if translated, ok := arr[0].(string); ok {
				result.WriteString(translated)
			}
		}
	}

	return result.String(), nil
}

// translateWithOpenAI is the fallback provider.
func (t *Translator) translateWithOpenAI(ctx context.Context, text, language string) (string, error) {
	prompt := fmt.Sprintf(`Translate the following English news summary to %s.
Keep the meaning and tone of the original.
Translate only the text itself, without additional comments.

Text to translate:
%s`, language, text)

	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	resp, err := t.openaiClient.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT3Dot5Turbo,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxCompletionTokens: 2000,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response from OpenAI")
	}

	return SanitizeAIText(strings.TrimSpace(resp.Choices[0].Message.Content)), nil
}
