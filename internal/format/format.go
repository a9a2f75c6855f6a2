// Package format holds small presentation helpers shared by templates.
package format

import (
	"strings"
	"time"
)

// ParseDate accepts the date shapes the content API emits: RFC3339
// timestamps and bare dates.
func ParseDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	layouts := []string{time.RFC3339, "2006-01-02"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Date formats a full date for career ranges and article bylines.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// ShortDate formats the compact month/day form used on blog cards.
func ShortDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2")
}
