package translate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	assert.Equal(t, "kn", Code("Kannada"))
	assert.Equal(t, "hi", Code("Hindi"))
	assert.Equal(t, "ta", Code("Tamil"))
	assert.Equal(t, "te", Code("Telugu"))
	assert.Equal(t, "ml", Code("Malayalam"))
	assert.Equal(t, "en", Code("English"))
	// Outside the closed set falls back to English.
	assert.Equal(t, "en", Code("Klingon"))
}

func TestTranslate_EmptyInput(t *testing.T) {
	tr := New(time.Hour)
	assert.Equal(t, "", tr.Translate(context.Background(), "", "Hindi"))
	assert.Equal(t, "", tr.Translate(context.Background(), "   ", "Hindi"))
}

func TestTranslate_EnglishPassesThrough(t *testing.T) {
	// Must not hit the network: endpoint deliberately unroutable.
	tr := New(time.Hour, WithEndpoint("http://127.0.0.1:1/translate"))
	assert.Equal(t, "hello there", tr.Translate(context.Background(), "hello there", "English"))
}

func TestTranslate_GoogleEndpoint(t *testing.T) {
	var gotTL string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTL = r.URL.Query().Get("tl")
		fmt.Fprint(w, `[[["नमस्ते","hello",null,null]],null,"en"]`)
	}))
	defer srv.Close()

	tr := New(time.Hour, WithEndpoint(srv.URL))
	got := tr.Translate(context.Background(), "hello", "Hindi")

	assert.Equal(t, "hi", gotTL)
	assert.Equal(t, "नमस्ते", got)
}

func TestTranslate_FailureYieldsSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	tr := New(time.Hour, WithEndpoint(srv.URL))
	assert.Equal(t, ErrorSentinel, tr.Translate(context.Background(), "hello", "Tamil"))
}

func TestTranslate_CachesResults(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprint(w, `[[["ನಮಸ್ಕಾರ","hello",null,null]]]`)
	}))
	defer srv.Close()

	tr := New(time.Hour, WithEndpoint(srv.URL))
	first := tr.Translate(context.Background(), "hello", "Kannada")
	second := tr.Translate(context.Background(), "hello", "Kannada")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, hits)
}

func TestParseGoogleResponse_MultiChunk(t *testing.T) {
	body := []byte(`[[["Part one. ","x",null],["Part two.","y",null]],null,"en"]`)
	got, err := parseGoogleResponse(body)
	assert.NoError(t, err)
	assert.Equal(t, "Part one. Part two.", got)
}

func TestParseGoogleResponse_Malformed(t *testing.T) {
	for _, body := range []string{"", "{}", "[]", `"just a string"`} {
		_, err := parseGoogleResponse([]byte(body))
		assert.Error(t, err, "body %q", body)
	}
}
