// Package news fetches articles from the NewsAPI provider with an RSS
// fallback tier and normalizes both sources into one Article shape.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"newslens/internal/logger"
	"newslens/internal/metrics"
	"newslens/internal/retry"
)

// Article is one fetched news item. Transient: it only has identity through
// its position in the current fetch batch. Missing fields are empty strings,
// never a reason to fail downstream.
type Article struct {
	Title        string
	URL          string
	Source       string
	PublishedRaw string
	Description  string
	Content      string
}

// Body returns the best available text for an article: full content when the
// provider supplies it, description otherwise.
func (a Article) Body() string {
	if a.Content != "" {
		return a.Content
	}
	return a.Description
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	retryCfg   retry.Config
	parser     *gofeed.Parser
}

func NewClient(apiKey, baseURL string, timeout time.Duration, retryCfg retry.Config) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		retryCfg:   retryCfg,
		parser:     gofeed.NewParser(),
	}
}

// apiResponse mirrors the provider's JSON envelope.
type apiResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Title  string `json:"title"`
		URL    string `json:"url"`
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		PublishedAt string `json:"publishedAt"`
		Description string `json:"description"`
		Content     string `json:"content"`
	} `json:"articles"`
}

// FetchPrimary queries NewsAPI. A keyword selects the search endpoint,
// otherwise top headlines are requested. Any transport error, non-2xx status
// or provider-reported failure yields an empty slice, never an error: the
// caller decides whether to fall back.
func (c *Client) FetchPrimary(ctx context.Context, keyword, category string, limit int) []Article {
	if c.apiKey == "" {
		return nil
	}
	if limit < 1 {
		limit = 1
	}
	if limit > 50 {
		limit = 50
	}

	endpoint := c.baseURL + "/top-headlines"
	if keyword != "" {
		endpoint = c.baseURL + "/everything"
	}

	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("pageSize", fmt.Sprintf("%d", limit))
	params.Set("language", "en")
	if keyword != "" {
		params.Set("q", keyword)
	}
	if category != "" && category != "All" {
		params.Set("category", strings.ToLower(category))
	}

	var parsed apiResponse
	err := retry.Do(ctx, c.retryCfg, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
		if err != nil {
			return err
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("news request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("news provider returned status %d", resp.StatusCode)
		}

		parsed = apiResponse{}
		if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
			return fmt.Errorf("decode news response: %w", err)
		}
		return nil
	})
	if err != nil {
		logger.Warn("primary fetch failed", "error", err)
		metrics.Global.IncrementPrimaryFailures()
		return nil
	}

	if parsed.Status != "ok" {
		logger.Warn("primary fetch rejected by provider", "status", parsed.Status)
		metrics.Global.IncrementPrimaryFailures()
		return nil
	}

	out := make([]Article, 0, len(parsed.Articles))
	for _, a := range parsed.Articles {
		out = append(out, Article{
			Title:        a.Title,
			URL:          a.URL,
			Source:       a.Source.Name,
			PublishedRaw: a.PublishedAt,
			Description:  a.Description,
			Content:      a.Content,
		})
	}
	metrics.Global.AddArticlesFetched(len(out))
	return out
}

// FetchFallback parses each feed URL independently, skipping feeds that fail
// to parse, and caps the result per feed rather than globally.
func (c *Client) FetchFallback(ctx context.Context, feedURLs []string, limit int) []Article {
	if limit < 1 {
		limit = 1
	}

	var out []Article
	successCount := 0

	for _, feedURL := range feedURLs {
		feed, err := c.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			logger.Warn("skipping unparseable feed", "url", feedURL, "error", err)
			continue
		}
		successCount++

		for i, item := range feed.Items {
			if i >= limit {
				break
			}
			published := item.Published
			if published == "" {
				published = item.Updated
			}
			out = append(out, Article{
				Title:        item.Title,
				URL:          item.Link,
				Source:       feed.Title,
				PublishedRaw: published,
				Description:  item.Description,
				Content:      item.Description,
			})
		}
	}

	logger.Info("fallback feeds processed", "ok", successCount, "total", len(feedURLs), "articles", len(out))
	metrics.Global.AddArticlesFetched(len(out))
	return out
}
