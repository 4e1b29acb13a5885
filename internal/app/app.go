// Package app wires the fetch, derive and feedback components into the
// request pipeline behind the dashboard.
package app

import (
	"context"
	"errors"
	"time"

	"newslens/internal/config"
	"newslens/internal/feedback"
	"newslens/internal/logger"
	"newslens/internal/metrics"
	"newslens/internal/news"
	"newslens/internal/score"
	"newslens/internal/summary"
	"newslens/internal/timefmt"
)

// Fetcher is the two-tier article retrieval strategy.
type Fetcher interface {
	FetchPrimary(ctx context.Context, keyword, category string, limit int) []news.Article
	FetchFallback(ctx context.Context, feedURLs []string, limit int) []news.Article
}

// Translator renders summary text in a target display language.
type Translator interface {
	Translate(ctx context.Context, text, language string) string
}

// BodyExtractor recovers article text for link-only items. Optional.
type BodyExtractor interface {
	ExtractBody(ctx context.Context, url string) (string, error)
}

// Request is one dashboard fetch interaction.
type Request struct {
	Keyword  string
	Category string
	Limit    int
	Language string
}

// AnalyzedArticle is an Article plus every derived display field.
type AnalyzedArticle struct {
	Index       int // 1-based position in the batch
	Article     news.Article
	Published   string
	Summary     string
	Translated  string
	Sentiment   score.Sentiment
	Credibility score.Credibility
}

// Result of one fetch pass.
type Result struct {
	Articles     []AnalyzedArticle
	UsedFallback bool
}

// ErrEmptyFeedback mirrors the store's validation for handler use.
var ErrEmptyFeedback = feedback.ErrEmptyFeedback

type App struct {
	cfg        *config.Config
	fetcher    Fetcher
	translator Translator
	analyzer   score.Analyzer
	extractor  BodyExtractor
	formatter  *timefmt.Formatter
	store      *feedback.Store
}

func New(cfg *config.Config, fetcher Fetcher, translator Translator, analyzer score.Analyzer, extractor BodyExtractor, formatter *timefmt.Formatter, store *feedback.Store) *App {
	return &App{
		cfg:        cfg,
		fetcher:    fetcher,
		translator: translator,
		analyzer:   analyzer,
		extractor:  extractor,
		formatter:  formatter,
		store:      store,
	}
}

// FetchAndAnalyze runs one synchronous pipeline pass: primary fetch, fallback
// on empty, then per-article derivation. An empty result means "no articles
// found" and no derivation happens.
func (a *App) FetchAndAnalyze(ctx context.Context, req Request) *Result {
	startTime := time.Now()
	defer func() {
		metrics.Global.RecordProcessingTime(time.Since(startTime))
		metrics.Global.SetLastRun()
	}()

	limit := req.Limit
	if limit < 1 || limit > 50 {
		limit = a.cfg.DefaultLimit
	}

	articles := a.fetcher.FetchPrimary(ctx, req.Keyword, req.Category, limit)
	usedFallback := false
	if len(articles) == 0 && len(a.cfg.FeedURLs) > 0 {
		logger.Info("primary fetch empty, trying fallback feeds", "feeds", len(a.cfg.FeedURLs))
		metrics.Global.IncrementFallbackFetches()
		articles = a.fetcher.FetchFallback(ctx, a.cfg.FeedURLs, limit)
		usedFallback = true
	}

	if len(articles) == 0 {
		metrics.Global.IncrementEmptyResults()
		return &Result{UsedFallback: usedFallback}
	}

	analyzed := make([]AnalyzedArticle, 0, len(articles))
	for i, art := range articles {
		body := art.Body()
		if body == "" && art.URL != "" && a.extractor != nil {
			if extracted, err := a.extractor.ExtractBody(ctx, art.URL); err == nil {
				body = extracted
			} else {
				logger.Debug("body extraction failed", "url", art.URL, "error", err)
			}
		}

		sum := summary.Summarize(body)
		analyzed = append(analyzed, AnalyzedArticle{
			Index:       i + 1,
			Article:     art,
			Published:   a.formatter.Format(art.PublishedRaw),
			Summary:     sum,
			Translated:  a.translator.Translate(ctx, sum, req.Language),
			Sentiment:   score.SentimentLabel(ctx, a.analyzer, body),
			Credibility: score.Score(art.Title, body, art.Source),
		})
	}

	logger.Info("fetch pass complete", "articles", len(analyzed), "fallback", usedFallback)
	return &Result{Articles: analyzed, UsedFallback: usedFallback}
}

// SubmitFeedback validates and records one feedback submission. Empty text is
// rejected before the record reaches the store. A persistence failure is
// returned as *feedback.PersistError while the in-memory record stands.
func (a *App) SubmitFeedback(articleIndex int, title, text, source, url string) error {
	if text == "" {
		return ErrEmptyFeedback
	}

	err := a.store.Append(feedback.Record{
		ArticleIndex: articleIndex,
		Title:        title,
		FeedbackText: text,
		Timestamp:    a.formatter.Now(),
		Source:       source,
		URL:          url,
	})

	var persistErr *feedback.PersistError
	if errors.As(err, &persistErr) {
		logger.Warn("feedback persisted in memory only", "error", err)
		return err
	}
	return err
}

// Store exposes the feedback store to the presentation layer.
func (a *App) Store() *feedback.Store {
	return a.store
}

// Formatter exposes the display-time formatter to the presentation layer.
func (a *App) Formatter() *timefmt.Formatter {
	return a.formatter
}
