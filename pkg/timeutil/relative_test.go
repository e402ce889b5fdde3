package timeutil

import (
	"testing"
	"time"
)

func TestRelative(t *testing.T) {
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		then time.Time
		want string
	}{
		{"zero time", time.Time{}, "No data yet"},
		{"under a minute", now.Add(-59 * time.Second), "Just now"},
		{"exactly one minute", now.Add(-60 * time.Second), "1 min ago"},
		{"ninety seconds", now.Add(-90 * time.Second), "1 min ago"},
		{"five minutes", now.Add(-5 * time.Minute), "5 mins ago"},
		{"one hour", now.Add(-time.Hour), "1 hour ago"},
		{"several hours", now.Add(-7 * time.Hour), "7 hours ago"},
		{"one day", now.Add(-24 * time.Hour), "1 day ago"},
		{"three days", now.Add(-3 * 24 * time.Hour), "3 days ago"},
		{"one month", now.Add(-31 * 24 * time.Hour), "1 month ago"},
		{"one year", now.Add(-366 * 24 * time.Hour), "1 year ago"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Relative(tc.then, now); got != tc.want {
				t.Fatalf("Relative(%v) = %q, want %q", tc.then, got, tc.want)
			}
		})
	}
}
