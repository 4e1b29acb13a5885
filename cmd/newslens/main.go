package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"newslens/internal/ai"
	"newslens/internal/app"
	"newslens/internal/config"
	"newslens/internal/feedback"
	"newslens/internal/logger"
	"newslens/internal/metrics"
	"newslens/internal/news"
	"newslens/internal/retry"
	"newslens/internal/score"
	"newslens/internal/scraper"
	"newslens/internal/timefmt"
	"newslens/internal/translate"
	"newslens/internal/web"
)

func main() {
	// Best effort: a missing .env just means plain environment variables.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Init(false)
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger.Init(cfg.Debug)

	loc, err := time.LoadLocation(cfg.DisplayTimezone)
	if err != nil {
		logger.Error("cannot load display timezone", "zone", cfg.DisplayTimezone, "error", err)
		os.Exit(1)
	}
	formatter := timefmt.New(loc)

	store := feedback.NewStore(cfg.FeedbackFilePath)
	if err := store.Load(); err != nil {
		logger.Error("cannot load feedback store", "error", err)
		os.Exit(1)
	}

	fetcher := news.NewClient(cfg.NewsAPIKey, cfg.NewsAPIBaseURL, cfg.RequestTimeout, retry.Config{
		MaxAttempts: cfg.RetryAttempts,
		Delay:       cfg.RetryDelay,
		Backoff:     true,
	})

	translator := translate.New(cfg.TranslationTTL, translate.WithOpenAI(cfg.OpenAIAPIKey))

	var analyzer score.Analyzer = score.LexiconAnalyzer{}
	if cfg.GeminiAPIKey != "" {
		gem, err := ai.NewGeminiAnalyzer(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			logger.Warn("gemini analyzer unavailable, using lexicon scorer", "error", err)
		} else {
			defer gem.Close()
			analyzer = gem
			logger.Info("sentiment analyzer: gemini")
		}
	}

	extractor := scraper.New(cfg.RequestTimeout)

	application := app.New(cfg, fetcher, translator, analyzer, extractor, formatter, store)

	server, err := web.NewServer(application, cfg)
	if err != nil {
		logger.Error("cannot build web server", "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()
	server.Routes(mux)
	mux.HandleFunc("/health", healthHandler)
	mux.HandleFunc("/metrics", metricsHandler)

	logger.Info("starting dashboard", "addr", cfg.ListenAddr, "feedback_file", cfg.FeedbackFilePath)
	if err := http.ListenAndServe(cfg.ListenAddr, mux); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	stats := metrics.Global.GetStats()

	status := "ok"
	if !stats["is_healthy"].(bool) {
		status = "error"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	response := map[string]interface{}{
		"status":     status,
		"last_run":   stats["last_run_time"],
		"last_error": stats["last_error"],
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func metricsHandler(w http.ResponseWriter, r *http.Request) {
	stats := metrics.Global.GetStats()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
