package format

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2025-06-15T10:30:00Z", time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)},
		{"2025-06-15", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
		{" 2025-06-15 ", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"", time.Time{}},
		{"15/06/2025", time.Time{}},
	}
	for _, tc := range cases {
		if got := ParseDate(tc.in); !got.Equal(tc.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDateFormats(t *testing.T) {
	ts := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	if got := Date(ts); got != "Jun 15, 2025" {
		t.Fatalf("Date = %q", got)
	}
	if got := ShortDate(ts); got != "Jun 15" {
		t.Fatalf("ShortDate = %q", got)
	}
	if got := Date(time.Time{}); got != "" {
		t.Fatalf("zero Date = %q, want empty", got)
	}
	if got := ShortDate(time.Time{}); got != "" {
		t.Fatalf("zero ShortDate = %q, want empty", got)
	}
}
