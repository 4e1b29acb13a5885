// Package timefmt turns the raw timestamp strings that news providers emit
// into a single localized display format. Unparseable input falls back to the
// current time rather than a blank: a plausible timestamp is preferred over an
// empty column, at the cost of occasional inaccuracy.
package timefmt

import (
	"strings"
	"time"
)

// DisplayPattern is the fixed layout every timestamp is rendered in.
const DisplayPattern = "02-01-2006 03:04 PM"

const (
	isoPrefixLayout = "2006-01-02T15:04:05"
	rssPrefixLayout = "Mon, 02 Jan 2006 15:04:05"
)

type Formatter struct {
	loc *time.Location
	now func() time.Time // overridable in tests
}

func New(loc *time.Location) *Formatter {
	if loc == nil {
		loc = time.UTC
	}
	return &Formatter{loc: loc, now: time.Now}
}

// Now returns the current time rendered in the display pattern.
func (f *Formatter) Now() string {
	return f.now().In(f.loc).Format(DisplayPattern)
}

// Format parses raw as one of the accepted provider shapes, interprets it as
// UTC, converts to the display zone and renders it. Empty or unparseable
// input yields the current local time.
func (f *Formatter) Format(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return f.Now()
	}

	// ISO-8601 with Z, with an embedded offset, or bare: the first 19
	// characters always carry the date and wall-clock part.
	if strings.Contains(s, "T") {
		if len(s) >= len(isoPrefixLayout) {
			if dt, err := time.ParseInLocation(isoPrefixLayout, s[:len(isoPrefixLayout)], time.UTC); err == nil {
				return dt.In(f.loc).Format(DisplayPattern)
			}
		}
		return f.Now()
	}

	// RFC-822-style textual date as produced by many RSS feeds, e.g.
	// "Mon, 01 Dec 2025 03:06:00 GMT". Zone suffix is ignored; UTC assumed.
	prefix := s
	if len(prefix) > 25 {
		prefix = prefix[:25]
	}
	if dt, err := time.ParseInLocation(rssPrefixLayout, prefix, time.UTC); err == nil {
		return dt.In(f.loc).Format(DisplayPattern)
	}

	return f.Now()
}

// Parse converts a previously rendered display string back into an instant in
// the display zone. Used when ordering stored records by time.
func (f *Formatter) Parse(display string) (time.Time, bool) {
	dt, err := time.ParseInLocation(DisplayPattern, strings.TrimSpace(display), f.loc)
	if err != nil {
		return time.Time{}, false
	}
	return dt, true
}
