package app

import (
	"testing"
	"time"

	"github.com/robogirl96/pottypanda/pkg/tracker"
)

func TestLogsForFiltersByOwner(t *testing.T) {
	snap := tracker.DefaultSnapshot()
	snap.Profiles = append(snap.Profiles, tracker.Profile{ID: "p2", Name: "Suzie"})
	at := tracker.Now(time.Date(2025, time.June, 9, 8, 0, 0, 0, time.Local))
	snap.Logs = []*tracker.Entry{
		{ID: "a", ChildID: "p2", Kind: tracker.Pee, Result: tracker.Success, Timestamp: at},
		{ID: "b", ChildID: "", Kind: tracker.Poop, Result: tracker.Success, Timestamp: at},
		{ID: "c", ChildID: tracker.DefaultProfileID, Kind: tracker.Pee, Result: tracker.Accident, Timestamp: at},
	}
	svc := newTestService(t, newMemoryPersistence(snap))

	defaults := svc.LogsFor(tracker.DefaultProfileID)
	if len(defaults) != 2 || defaults[0].ID != "b" || defaults[1].ID != "c" {
		t.Fatalf("expected legacy and owned entries in store order, got %d", len(defaults))
	}
	if got := svc.LogsFor("p2"); len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("expected only Suzie's entry")
	}
}

func TestLogsTodayUsesLocalCalendarDay(t *testing.T) {
	now := time.Date(2025, time.June, 10, 9, 30, 0, 0, time.Local)
	snap := tracker.DefaultSnapshot()
	snap.Logs = []*tracker.Entry{
		{ID: "early", ChildID: tracker.DefaultProfileID, Kind: tracker.Pee, Result: tracker.Success,
			Timestamp: tracker.Now(time.Date(2025, time.June, 10, 0, 0, 1, 0, time.Local))},
		{ID: "late", ChildID: tracker.DefaultProfileID, Kind: tracker.Pee, Result: tracker.Success,
			Timestamp: tracker.Now(time.Date(2025, time.June, 10, 23, 59, 0, 0, time.Local))},
		{ID: "yesterday", ChildID: tracker.DefaultProfileID, Kind: tracker.Pee, Result: tracker.Success,
			Timestamp: tracker.Now(time.Date(2025, time.June, 9, 23, 59, 0, 0, time.Local))},
	}
	svc := newTestService(t, newMemoryPersistence(snap))

	today := svc.LogsToday(now)
	if len(today) != 2 {
		t.Fatalf("expected 2 entries today, got %d", len(today))
	}
	for _, entry := range today {
		if entry.ID == "yesterday" {
			t.Fatalf("yesterday's entry leaked into today")
		}
	}
}

func TestActiveProfileFallsBackToFirst(t *testing.T) {
	snap := tracker.DefaultSnapshot()
	snap.ActiveID = "stale"
	svc := newTestService(t, newMemoryPersistence(snap))

	if got := svc.ActiveProfile().ID; got != tracker.DefaultProfileID {
		t.Fatalf("expected fallback to first profile, got %q", got)
	}
}

func TestResolveProfileByIDThenName(t *testing.T) {
	snap := tracker.DefaultSnapshot()
	snap.Profiles = append(snap.Profiles, tracker.Profile{ID: "p2", Name: "Suzie"})
	svc := newTestService(t, newMemoryPersistence(snap))

	if p, ok := svc.ResolveProfile("p2"); !ok || p.Name != "Suzie" {
		t.Fatalf("expected id match")
	}
	if p, ok := svc.ResolveProfile("suzie"); !ok || p.ID != "p2" {
		t.Fatalf("expected case-insensitive name match")
	}
	if _, ok := svc.ResolveProfile("nobody"); ok {
		t.Fatalf("expected no match")
	}
}

func TestLastLog(t *testing.T) {
	svc := newTestService(t, newMemoryPersistence(nil))
	if _, ok := svc.LastLog(); ok {
		t.Fatalf("expected no last log on empty history")
	}

	svc.AddLog(tracker.DefaultProfileID, tracker.Pee, tracker.Success, "")
	want := svc.AddLog(tracker.DefaultProfileID, tracker.Poop, tracker.Success, "")

	last, ok := svc.LastLog()
	if !ok || last.ID != want.ID {
		t.Fatalf("expected the most recent entry")
	}
}
