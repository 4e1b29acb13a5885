// Package feedback holds the ordered table of user feedback records. The
// in-memory sequence is authoritative for the running process; a CSV file
// mirrors it for cross-session persistence and is rewritten in full on every
// append.
package feedback

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"

	"newslens/internal/logger"
	"newslens/internal/metrics"
)

// Columns is the fixed CSV schema, in order. Every record carries exactly
// these six fields even when some are empty.
var Columns = []string{"Article", "Title", "Feedback", "Time", "Source", "URL"}

// Record is one user-submitted comment tied to an article's position in the
// last fetch batch.
type Record struct {
	ArticleIndex int // 1-based position within the fetch batch
	Title        string
	FeedbackText string
	Timestamp    string // display format, not machine time
	Source       string
	URL          string
}

// ErrEmptyFeedback rejects records with no feedback text. Callers validate
// before appending; the store enforces it again to protect the invariant.
var ErrEmptyFeedback = errors.New("feedback text must not be empty")

// PersistError reports that the durable mirror could not be written. The
// in-memory append still stands.
type PersistError struct {
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("feedback saved in memory but not persisted: %v", e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

type Store struct {
	mu       sync.Mutex
	filePath string
	records  []Record
}

func NewStore(filePath string) *Store {
	return &Store{filePath: filePath}
}

// Load reads the durable file if present. A missing file is an empty store;
// so is an unreadable or unparseable one. Columns are normalized to the
// fixed schema: missing ones synthesized empty, extras dropped.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil

	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		return nil
	}

	f, err := os.Open(s.filePath)
	if err != nil {
		logger.Warn("feedback file unreadable, starting empty", "path", s.filePath, "error", err)
		return nil
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // rows may predate the current schema

	rows, err := reader.ReadAll()
	if err != nil {
		logger.Warn("feedback file unparseable, starting empty", "path", s.filePath, "error", err)
		return nil
	}
	if len(rows) == 0 {
		return nil
	}

	// Header-mapped: the stored column order may differ from the schema.
	colIndex := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		colIndex[name] = i
	}

	field := func(row []string, name string) string {
		idx, ok := colIndex[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	for _, row := range rows[1:] {
		idx, _ := strconv.Atoi(field(row, "Article"))
		s.records = append(s.records, Record{
			ArticleIndex: idx,
			Title:        field(row, "Title"),
			FeedbackText: field(row, "Feedback"),
			Timestamp:    field(row, "Time"),
			Source:       field(row, "Source"),
			URL:          field(row, "URL"),
		})
	}

	logger.Info("feedback store loaded", "records", len(s.records), "path", s.filePath)
	return nil
}

// Append adds a record to the ordered sequence and rewrites the durable
// mirror. On a write failure the in-memory append stands and a *PersistError
// is returned so the caller can warn without losing the record.
func (s *Store) Append(r Record) error {
	if r.FeedbackText == "" {
		return ErrEmptyFeedback
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, r)
	metrics.Global.IncrementFeedbackSaved()

	if err := s.persistLocked(); err != nil {
		metrics.Global.IncrementFeedbackWriteErrors()
		return &PersistError{Err: err}
	}
	return nil
}

// persistLocked rewrites the whole file from the in-memory sequence. The
// write goes through a temp file and rename so a crash mid-write cannot leave
// a truncated mirror.
func (s *Store) persistLocked() error {
	tmp := s.filePath + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create feedback file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(Columns); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range s.records {
		row := []string{
			strconv.Itoa(r.ArticleIndex),
			r.Title,
			r.FeedbackText,
			r.Timestamp,
			r.Source,
			r.URL,
		}
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("write record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush feedback file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close feedback file: %w", err)
	}

	if err := os.Rename(tmp, s.filePath); err != nil {
		return fmt.Errorf("replace feedback file: %w", err)
	}
	return nil
}

// All returns the records in insertion order.
func (s *Store) All() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len reports the number of records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Recent returns up to n records, newest first.
func (s *Store) Recent(n int) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n > len(s.records) {
		n = len(s.records)
	}
	out := make([]Record, 0, n)
	for i := len(s.records) - 1; i >= len(s.records)-n; i-- {
		out = append(out, s.records[i])
	}
	return out
}

// CountByArticle maps article index to the number of feedback records it
// received, for the aggregate view.
func (s *Store) CountByArticle() map[int]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[int]int)
	for _, r := range s.records {
		counts[r.ArticleIndex]++
	}
	return counts
}
