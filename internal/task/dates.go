package task

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the date-only input and display layout.
const DateLayout = "2006-01-02"

// ParseDate parses an RFC 3339 date-time or a YYYY-MM-DD date. The result
// is in UTC; bare dates resolve to midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("date required")
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date: %s (want YYYY-MM-DD or RFC 3339)", s)
	}
	return t, nil
}

// FormatTimestamp renders t as an RFC 3339 string in UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
