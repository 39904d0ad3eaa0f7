package goquery

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// isoLayouts are the ISO-8601 shapes seen in article metadata.
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseTime parses a published time. ISO-8601 layouts are tried first,
// then dateparse in strict mode so ambiguous day/month orders are refused.
// Unparsable values yield nil.
func parseTime(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	if t, ok := parseLenient(s); ok {
		return &t
	}
	return nil
}

// parseLenient wraps dateparse, which panics on some malformed inputs.
func parseLenient(s string) (t time.Time, ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	t, err := dateparse.ParseStrict(s)
	return t, err == nil
}

// isDateLike reports whether s reads as a date rather than a name.
func isDateLike(s string) bool {
	if dateLikeRe.MatchString(s) {
		return true
	}
	if !strings.ContainsAny(s, "0123456789") {
		return false
	}
	_, ok := parseLenient(s)
	return ok
}
