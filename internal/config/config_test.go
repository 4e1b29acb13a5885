package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresAPIKey(t *testing.T) {
	t.Setenv("NEWSAPI_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NEWSAPI_KEY")
}

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	t.Setenv("NEWSAPI_KEY", "k")
	t.Setenv("DISPLAY_TIMEZONE", "UTC")
	t.Setenv("DEFAULT_ARTICLE_LIMIT", "25")
	t.Setenv("FEEDBACK_FILE_PATH", "/tmp/fb.csv")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "k", cfg.NewsAPIKey)
	assert.Equal(t, "https://newsapi.org/v2", cfg.NewsAPIBaseURL)
	assert.Equal(t, 25, cfg.DefaultLimit)
	assert.Equal(t, "UTC", cfg.DisplayTimezone)
	assert.Equal(t, "/tmp/fb.csv", cfg.FeedbackFilePath)
	assert.Equal(t, ":8080", cfg.ListenAddr)
}

func TestLoad_RejectsBadTimezone(t *testing.T) {
	t.Setenv("NEWSAPI_KEY", "k")
	t.Setenv("DISPLAY_TIMEZONE", "Mars/Olympus_Mons")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadFeeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feeds.yaml")
	data := "feeds:\n  - https://example.com/a.xml\n  - https://example.com/b.xml\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	feeds, err := LoadFeeds(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/a.xml", "https://example.com/b.xml"}, feeds)
}

func TestLoadFeeds_MissingFile(t *testing.T) {
	_, err := LoadFeeds(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
