package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Categories accepted by the headlines endpoint, plus "All" meaning no filter.
var Categories = []string{"All", "Business", "Sports", "Entertainment", "Health", "Technology", "Science"}

// Languages the translator accepts as targets.
var Languages = []string{"English", "Kannada", "Hindi", "Tamil", "Telugu", "Malayalam"}

type Config struct {
	// NewsAPI settings
	NewsAPIKey     string
	NewsAPIBaseURL string
	DefaultLimit   int // articles per fetch, 1..50

	// Fallback feeds
	FeedsConfigPath string
	FeedURLs        []string

	// Optional AI sentiment / translation fallback
	GeminiAPIKey string
	OpenAIAPIKey string

	// Display settings
	DisplayTimezone string

	// Feedback store
	FeedbackFilePath string

	// App settings
	Debug          bool
	RequestTimeout time.Duration
	RetryAttempts  int
	RetryDelay     time.Duration
	TranslationTTL time.Duration
	ListenAddr     string
}

func Load() (*Config, error) {
	cfg := &Config{
		NewsAPIBaseURL:   "https://newsapi.org/v2",
		DefaultLimit:     10,
		FeedsConfigPath:  "configs/feeds.yaml",
		DisplayTimezone:  "Asia/Kolkata",
		FeedbackFilePath: "feedback_store.csv",
		RequestTimeout:   8 * time.Second,
		RetryAttempts:    2,
		RetryDelay:       2 * time.Second,
		TranslationTTL:   12 * time.Hour,
		ListenAddr:       ":8080",
	}

	// The API key is required with no baked-in fallback.
	cfg.NewsAPIKey = os.Getenv("NEWSAPI_KEY")
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")

	cfg.FeedsConfigPath = getEnvOrDefault("FEEDS_CONFIG_PATH", cfg.FeedsConfigPath)
	cfg.DisplayTimezone = getEnvOrDefault("DISPLAY_TIMEZONE", cfg.DisplayTimezone)
	cfg.FeedbackFilePath = getEnvOrDefault("FEEDBACK_FILE_PATH", cfg.FeedbackFilePath)
	cfg.ListenAddr = getEnvOrDefault("LISTEN_ADDR", cfg.ListenAddr)

	if v := getEnvIntOrDefault("DEFAULT_ARTICLE_LIMIT", cfg.DefaultLimit); v >= 1 && v <= 50 {
		cfg.DefaultLimit = v
	}
	if v := getEnvIntOrDefault("REQUEST_TIMEOUT_SECONDS", 0); v > 0 {
		cfg.RequestTimeout = time.Duration(v) * time.Second
	}
	if v := getEnvIntOrDefault("RETRY_ATTEMPTS", 0); v > 0 {
		cfg.RetryAttempts = v
	}
	if v := getEnvIntOrDefault("TRANSLATION_TTL_HOURS", 0); v > 0 {
		cfg.TranslationTTL = time.Duration(v) * time.Hour
	}

	if os.Getenv("DEBUG") == "true" {
		cfg.Debug = true
	}

	// Missing feeds file is not fatal: the fallback tier just has nothing to try.
	if feeds, err := LoadFeeds(cfg.FeedsConfigPath); err == nil {
		cfg.FeedURLs = feeds
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.NewsAPIKey == "" {
		return fmt.Errorf("NEWSAPI_KEY is required")
	}
	if c.DefaultLimit < 1 || c.DefaultLimit > 50 {
		return fmt.Errorf("DEFAULT_ARTICLE_LIMIT must be between 1 and 50")
	}
	if _, err := time.LoadLocation(c.DisplayTimezone); err != nil {
		return fmt.Errorf("DISPLAY_TIMEZONE %q is not a valid zone: %w", c.DisplayTimezone, err)
	}
	return nil
}

// FeedsConfig is the YAML config structure:
//
//	feeds:
//	  - https://...
type FeedsConfig struct {
	Feeds []string `yaml:"feeds"`
}

// LoadFeeds reads the fallback feed URL list from a YAML file.
func LoadFeeds(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var fc FeedsConfig
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&fc); err != nil {
		return nil, err
	}
	return fc.Feeds, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
