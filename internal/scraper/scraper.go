// Package scraper recovers article body text for link-only feed items by
// fetching the page and extracting paragraph text. Best effort: every failure
// returns an error the caller is expected to swallow.
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

type Extractor struct {
	httpClient *http.Client
}

func New(timeout time.Duration) *Extractor {
	return &Extractor{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// selector ladder, most specific first; "p" last as the catch-all
var contentSelectors = []string{
	"article p",
	".article-body p",
	".article-content p",
	".post-content p",
	".entry-content p",
	".content p",
	"main p",
	"p",
}

// ExtractBody fetches url and returns readable paragraph text, capped to keep
// downstream summarization bounded.
func (e *Extractor) ExtractBody(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error loading page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error parsing HTML: %w", err)
	}

	content := extractParagraphs(doc)
	if content == "" {
		return "", fmt.Errorf("no readable content at %s", url)
	}
	return content, nil
}

func extractParagraphs(doc *goquery.Document) string {
	var paragraphs []string

	for _, selector := range contentSelectors {
		doc.Find(selector).Each(func(i int, s *goquery.Selection) {
			text := strings.TrimSpace(s.Text())
			if len(text) > 20 {
				paragraphs = append(paragraphs, text)
			}
		})
		if len(paragraphs) >= 3 {
			break
		}
	}

	if len(paragraphs) == 0 {
		return ""
	}

	content := strings.Join(paragraphs, "\n\n")

	// Keep whole paragraphs under a fixed budget
	if len(content) > 1800 {
		parts := strings.Split(content, "\n\n")
		var selected []string
		total := 0
		for _, p := range parts {
			if total+len(p) >= 1600 {
				break
			}
			selected = append(selected, p)
			total += len(p) + 2
		}
		if len(selected) > 0 {
			content = strings.Join(selected, "\n\n")
		} else {
			content = content[:1600]
		}
	}

	return strings.TrimSpace(content)
}
