package timefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// IST without depending on the host tz database.
var ist = time.FixedZone("IST", 5*3600+30*60)

func fixedFormatter(t *testing.T) *Formatter {
	t.Helper()
	f := New(ist)
	f.now = func() time.Time {
		return time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	}
	return f
}

func TestFormat_ISOWithZ(t *testing.T) {
	f := fixedFormatter(t)
	// 12:34:56 UTC is 18:04 IST
	assert.Equal(t, "01-12-2025 06:04 PM", f.Format("2025-12-01T12:34:56Z"))
}

func TestFormat_ISOWithOffset(t *testing.T) {
	f := fixedFormatter(t)
	// Embedded offsets are ignored; the wall-clock part is taken as UTC.
	assert.Equal(t, "01-12-2025 06:04 PM", f.Format("2025-12-01T12:34:56+02:00"))
}

func TestFormat_ISOWithoutZone(t *testing.T) {
	f := fixedFormatter(t)
	assert.Equal(t, "01-12-2025 06:04 PM", f.Format("2025-12-01T12:34:56"))
}

func TestFormat_RSSDate(t *testing.T) {
	f := fixedFormatter(t)
	// 03:06 UTC is 08:36 IST
	assert.Equal(t, "01-12-2025 08:36 AM", f.Format("Mon, 01 Dec 2025 03:06:00 GMT"))
}

func TestFormat_EmptyFallsBackToNow(t *testing.T) {
	f := fixedFormatter(t)
	// now is 10:30 UTC = 16:00 IST
	assert.Equal(t, "15-03-2026 04:00 PM", f.Format(""))
	assert.Equal(t, "15-03-2026 04:00 PM", f.Format("   "))
}

func TestFormat_GarbageFallsBackToNow(t *testing.T) {
	f := fixedFormatter(t)
	for _, raw := range []string{"not a date", "2025-13-99T99:99:99Z", "Xyz, 99 Qqq 2025", "T"} {
		got := f.Format(raw)
		assert.Equal(t, "15-03-2026 04:00 PM", got, "input %q", raw)
	}
}

func TestFormat_NeverEmptyAndMatchesPattern(t *testing.T) {
	f := New(ist)
	for _, raw := range []string{"", "garbage", "2025-12-01T12:34:56Z", "Mon, 01 Dec 2025 03:06:00 GMT"} {
		got := f.Format(raw)
		require.NotEmpty(t, got)
		_, err := time.Parse(DisplayPattern, got)
		assert.NoError(t, err, "output %q should match the display pattern", got)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	f := fixedFormatter(t)
	display := f.Format("2025-12-01T12:34:56Z")
	parsed, ok := f.Parse(display)
	require.True(t, ok)
	assert.Equal(t, "01-12-2025 06:04 PM", parsed.Format(DisplayPattern))

	_, ok = f.Parse("never a timestamp")
	assert.False(t, ok)
}
