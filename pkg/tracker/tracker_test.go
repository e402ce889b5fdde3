package tracker

import (
	"testing"
	"time"
)

func TestParseKind(t *testing.T) {
	if k, err := ParseKind("  Pee "); err != nil || k != Pee {
		t.Fatalf("ParseKind(Pee) = %v, %v", k, err)
	}
	if k, err := ParseKind("POOP"); err != nil || k != Poop {
		t.Fatalf("ParseKind(POOP) = %v, %v", k, err)
	}
	if _, err := ParseKind("banana"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestParseResultAcceptsMissedAlias(t *testing.T) {
	if r, err := ParseResult("missed"); err != nil || r != Accident {
		t.Fatalf("ParseResult(missed) = %v, %v", r, err)
	}
	if r, err := ParseResult("Accident"); err != nil || r != Accident {
		t.Fatalf("ParseResult(Accident) = %v, %v", r, err)
	}
	if r, err := ParseResult("success"); err != nil || r != Success {
		t.Fatalf("ParseResult(success) = %v, %v", r, err)
	}
	if _, err := ParseResult("maybe"); err == nil {
		t.Fatalf("expected error for unknown result")
	}
}

func TestOwnerMapsLegacyEntriesToDefault(t *testing.T) {
	legacy := &Entry{ID: "a"}
	if legacy.Owner() != DefaultProfileID {
		t.Fatalf("expected legacy entry owned by default profile")
	}
	owned := &Entry{ID: "b", ChildID: "p2"}
	if owned.Owner() != "p2" {
		t.Fatalf("expected explicit owner")
	}
}

func TestSameDayUsesLocalCalendar(t *testing.T) {
	ts := Now(time.Date(2025, time.June, 10, 0, 0, 1, 0, time.Local))
	if !ts.SameDay(time.Date(2025, time.June, 10, 23, 59, 0, 0, time.Local)) {
		t.Fatalf("expected same local day")
	}
	if ts.SameDay(time.Date(2025, time.June, 11, 0, 0, 1, 0, time.Local)) {
		t.Fatalf("expected different day")
	}
}

func TestParseTimeAcceptsDatetimeLocal(t *testing.T) {
	got, err := ParseTime("2025-06-10T08:30")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := time.Date(2025, time.June, 10, 8, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if _, err := ParseTime("yesterday-ish"); err == nil {
		t.Fatalf("expected error for junk input")
	}
}

func TestSnapshotCloneDoesNotAliasEntries(t *testing.T) {
	snap := DefaultSnapshot()
	snap.Logs = []*Entry{{ID: "a", Note: "original"}}

	cp := snap.Clone()
	cp.Logs[0].Note = "changed"
	cp.Profiles[0].Name = "changed"

	if snap.Logs[0].Note != "original" {
		t.Fatalf("clone aliased an entry")
	}
	if snap.Profiles[0].Name != DefaultProfileName {
		t.Fatalf("clone aliased the profiles slice")
	}
}
