package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu sync.RWMutex

	// Counters
	ArticlesFetched        int64
	PrimaryFailures        int64
	FallbackFetches        int64
	EmptyResults           int64
	SuccessfulTranslations int64
	FailedTranslations     int64
	FeedbackSaved          int64
	FeedbackWriteErrors    int64

	// Timings
	LastProcessingTime    time.Duration
	AverageProcessingTime time.Duration
	TotalProcessingTime   time.Duration
	ProcessingCount       int64

	// Status
	LastRunTime   time.Time
	LastErrorTime time.Time
	LastError     string
	IsHealthy     bool
}

var Global = &Metrics{IsHealthy: true}

func (m *Metrics) AddArticlesFetched(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesFetched += int64(n)
}

func (m *Metrics) IncrementPrimaryFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PrimaryFailures++
}

func (m *Metrics) IncrementFallbackFetches() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FallbackFetches++
}

func (m *Metrics) IncrementEmptyResults() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EmptyResults++
}

func (m *Metrics) IncrementSuccessfulTranslations() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SuccessfulTranslations++
}

func (m *Metrics) IncrementFailedTranslations() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FailedTranslations++
}

func (m *Metrics) IncrementFeedbackSaved() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FeedbackSaved++
}

func (m *Metrics) IncrementFeedbackWriteErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FeedbackWriteErrors++
}

func (m *Metrics) RecordProcessingTime(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastProcessingTime = duration
	m.TotalProcessingTime += duration
	m.ProcessingCount++

	if m.ProcessingCount > 0 {
		m.AverageProcessingTime = m.TotalProcessingTime / time.Duration(m.ProcessingCount)
	}
}

func (m *Metrics) SetLastRun() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRunTime = time.Now()
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"articles_fetched":           m.ArticlesFetched,
		"primary_failures":           m.PrimaryFailures,
		"fallback_fetches":           m.FallbackFetches,
		"empty_results":              m.EmptyResults,
		"successful_translations":    m.SuccessfulTranslations,
		"failed_translations":        m.FailedTranslations,
		"feedback_saved":             m.FeedbackSaved,
		"feedback_write_errors":      m.FeedbackWriteErrors,
		"last_processing_time_ms":    m.LastProcessingTime.Milliseconds(),
		"average_processing_time_ms": m.AverageProcessingTime.Milliseconds(),
		"last_run_time":              m.LastRunTime.Format(time.RFC3339),
		"last_error_time":            m.LastErrorTime.Format(time.RFC3339),
		"last_error":                 m.LastError,
		"is_healthy":                 m.IsHealthy,
	}
}
