// Package web is the dashboard presentation layer: three server-rendered
// views over the fetch pipeline and the feedback store.
package web

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"newslens/internal/app"
	"newslens/internal/config"
	"newslens/internal/feedback"
	"newslens/internal/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

type Server struct {
	app       *app.App
	cfg       *config.Config
	templates *template.Template
}

func NewServer(a *app.App, cfg *config.Config) (*Server, error) {
	funcs := template.FuncMap{
		"widthPercent": func(count, max int) int {
			if max <= 0 {
				return 0
			}
			return count * 100 / max
		},
	}
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Server{app: a, cfg: cfg, templates: tmpl}, nil
}

func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/", s.handleHome)
	mux.HandleFunc("/feedback", s.handleSubmitFeedback)
	mux.HandleFunc("/feedback/all", s.handleAllFeedback)
	mux.HandleFunc("/analytics", s.handleAnalytics)
}

// basePage carries the fields every view shares.
type basePage struct {
	Now            string
	TotalFeedback  int
	RecentFeedback []feedback.Record
	Categories     []string
	Languages      []string
	Flash          string
	FlashIsWarning bool
}

func (s *Server) base(flash string, warning bool) basePage {
	return basePage{
		Now:            s.app.Formatter().Now(),
		TotalFeedback:  s.app.Store().Len(),
		RecentFeedback: s.app.Store().Recent(6),
		Categories:     config.Categories,
		Languages:      config.Languages,
		Flash:          flash,
		FlashIsWarning: warning,
	}
}

type homePage struct {
	basePage
	Fetched      bool
	NoArticles   bool
	UsedFallback bool
	Keyword      string
	Category     string
	Limit        int
	Language     string
	Articles     []app.AnalyzedArticle
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	page := homePage{
		basePage: s.base(r.URL.Query().Get("flash"), r.URL.Query().Get("warn") == "1"),
		Category: "All",
		Limit:    s.cfg.DefaultLimit,
		Language: "English",
	}

	if r.URL.Query().Get("fetch") == "1" {
		page.Fetched = true
		page.Keyword = strings.TrimSpace(r.URL.Query().Get("keyword"))
		if c := r.URL.Query().Get("category"); c != "" {
			page.Category = c
		}
		if n, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && n >= 1 && n <= 50 {
			page.Limit = n
		}
		if l := r.URL.Query().Get("language"); l != "" {
			page.Language = l
		}

		result := s.app.FetchAndAnalyze(r.Context(), app.Request{
			Keyword:  page.Keyword,
			Category: page.Category,
			Limit:    page.Limit,
			Language: page.Language,
		})
		page.Articles = result.Articles
		page.UsedFallback = result.UsedFallback
		page.NoArticles = len(result.Articles) == 0
	}

	s.render(w, "home.html", page)
}

func (s *Server) handleSubmitFeedback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	index, _ := strconv.Atoi(r.PostFormValue("article_index"))
	text := strings.TrimSpace(r.PostFormValue("feedback"))

	err := s.app.SubmitFeedback(
		index,
		r.PostFormValue("title"),
		text,
		r.PostFormValue("source"),
		r.PostFormValue("url"),
	)

	switch {
	case errors.Is(err, app.ErrEmptyFeedback):
		s.redirectFlash(w, r, "Please enter feedback before submitting.", true)
	case err != nil:
		// Record kept in memory; only the file write failed.
		s.redirectFlash(w, r, "Feedback saved for this session but could not be written to disk.", true)
	default:
		s.redirectFlash(w, r, "Feedback saved.", false)
	}
}

func (s *Server) redirectFlash(w http.ResponseWriter, r *http.Request, msg string, warning bool) {
	q := "/?flash=" + template.URLQueryEscaper(msg)
	if warning {
		q += "&warn=1"
	}
	http.Redirect(w, r, q, http.StatusSeeOther)
}

type feedbackPage struct {
	basePage
	Records []feedback.Record
}

func (s *Server) handleAllFeedback(w http.ResponseWriter, r *http.Request) {
	records := s.app.Store().All()

	// Time descending; display strings that no longer parse (hand-edited
	// files) fall back to lexicographic order.
	fmtr := s.app.Formatter()
	sort.SliceStable(records, func(i, j int) bool {
		ti, oki := fmtr.Parse(records[i].Timestamp)
		tj, okj := fmtr.Parse(records[j].Timestamp)
		if oki && okj {
			return ti.After(tj)
		}
		return records[i].Timestamp > records[j].Timestamp
	})

	s.render(w, "feedback.html", feedbackPage{
		basePage: s.base("", false),
		Records:  records,
	})
}

type articleCount struct {
	ArticleIndex int
	Count        int
}

type analyticsPage struct {
	basePage
	Counts   []articleCount
	MaxCount int
	Last10   []feedback.Record
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	counts := s.app.Store().CountByArticle()

	rows := make([]articleCount, 0, len(counts))
	maxCount := 0
	for idx, n := range counts {
		rows = append(rows, articleCount{ArticleIndex: idx, Count: n})
		if n > maxCount {
			maxCount = n
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ArticleIndex < rows[j].ArticleIndex })

	s.render(w, "analytics.html", analyticsPage{
		basePage: s.base("", false),
		Counts:   rows,
		MaxCount: maxCount,
		Last10:   s.app.Store().Recent(10),
	})
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		logger.Error("template render failed", "template", name, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
