package app

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/robogirl96/pottypanda/pkg/tracker"
)

// ErrNoLogs signals there is nothing to export for the profile.
var ErrNoLogs = errors.New("app: no logs to export")

const (
	reportDateLayout = "January 2, 2006"
	reportTimeLayout = "15:04"
)

// ExportText builds the plain-text report for the active profile.
func (s *Service) ExportText(now time.Time) (string, error) {
	return BuildReport(s.ActiveProfile(), s.Logs(), now)
}

// BuildReport renders logs as a chronological narrative: a header with the
// profile name and generation date, then one date-labeled section per
// calendar day. This is the one place sort order is ascending rather than
// the newest-first display order.
func BuildReport(profile tracker.Profile, logs []*tracker.Entry, now time.Time) (string, error) {
	if len(logs) == 0 {
		return "", ErrNoLogs
	}

	sorted := append([]*tracker.Entry(nil), logs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp.Time)
	})

	var b strings.Builder
	fmt.Fprintf(&b, "Potty Panda Log for %s\n", profile.Name)
	fmt.Fprintf(&b, "Generated on: %s\n\n", now.Local().Format(reportDateLayout))

	currentDay := ""
	for _, entry := range sorted {
		day := entry.Timestamp.Local().Format(reportDateLayout)
		if day != currentDay {
			if currentDay != "" {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "--- %s ---\n", day)
			currentDay = day
		}
		fmt.Fprintf(&b, "[%s] %s - %s%s\n",
			entry.Timestamp.Local().Format(reportTimeLayout),
			entry.Kind.Title(),
			entry.Result.Display(),
			noteSuffix(entry.Note))
	}
	b.WriteString("\n")

	return b.String(), nil
}

func noteSuffix(note string) string {
	if note == "" {
		return ""
	}
	return fmt.Sprintf(" [Note: %s]", note)
}
