package teaui

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"github.com/robogirl96/pottypanda/pkg/app"
	"github.com/robogirl96/pottypanda/pkg/store"
	"github.com/robogirl96/pottypanda/pkg/tracker"
)

type fakePersistence struct {
	snap   *tracker.Snapshot
	saves  int
	events chan store.Event
}

func newFakePersistence(snap *tracker.Snapshot) *fakePersistence {
	if snap == nil {
		snap = tracker.DefaultSnapshot()
	}
	return &fakePersistence{snap: snap, events: make(chan store.Event)}
}

func (f *fakePersistence) Snapshot(_ context.Context) *tracker.Snapshot {
	return f.snap.Clone()
}

func (f *fakePersistence) Save(snap *tracker.Snapshot) error {
	f.snap = snap.Clone()
	f.saves++
	return nil
}

func (f *fakePersistence) Watch(_ context.Context) (<-chan store.Event, error) {
	return f.events, nil
}

func newTestModel(t *testing.T, snap *tracker.Snapshot) (Model, *app.Service) {
	t.Helper()
	svc, err := app.Load(context.Background(), newFakePersistence(snap))
	if err != nil {
		t.Fatalf("load service: %v", err)
	}
	counter := 0
	svc.NewID = func() string {
		counter++
		return fmt.Sprintf("id-%d", counter)
	}
	svc.Clock = func() time.Time {
		return time.Date(2025, time.June, 10, 9, 30, 0, 0, time.Local)
	}
	return New(svc), svc
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, key := range keys {
		var msg tea.KeyPressMsg
		switch key {
		case "enter":
			msg = tea.KeyPressMsg{Code: tea.KeyEnter}
		case "esc":
			msg = tea.KeyPressMsg{Code: tea.KeyEscape}
		default:
			runes := []rune(key)
			if len(runes) != 1 {
				t.Fatalf("unsupported key %q", key)
			}
			msg = tea.KeyPressMsg{Code: runes[0], Text: key}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func snapshotWithLogs(entries ...*tracker.Entry) *tracker.Snapshot {
	snap := tracker.DefaultSnapshot()
	snap.Logs = entries
	return snap
}

func testEntry(id string, kind tracker.Kind, result tracker.Result, at time.Time) *tracker.Entry {
	return &tracker.Entry{
		ID:        id,
		ChildID:   tracker.DefaultProfileID,
		Kind:      kind,
		Result:    result,
		Timestamp: tracker.Now(at),
	}
}

func TestHomeLogsSelectedKindAndResult(t *testing.T) {
	m, svc := newTestModel(t, nil)

	m = press(t, m, "o", "m", "enter")

	logs := svc.Logs()
	if len(logs) != 1 {
		t.Fatalf("expected 1 log, got %d", len(logs))
	}
	if logs[0].Kind != tracker.Poop || logs[0].Result != tracker.Accident {
		t.Fatalf("unexpected entry %s %s", logs[0].Kind, logs[0].Result)
	}

	view := stripANSI(m.View())
	if !strings.Contains(view, "Logged Poop - Missed") {
		t.Fatalf("expected log confirmation in status; view=%q", view)
	}
}

func TestHomeNoteIsAttachedAndCleared(t *testing.T) {
	m, svc := newTestModel(t, nil)

	m = press(t, m, "n", "h", "i", "enter", "enter")

	logs := svc.Logs()
	if len(logs) != 1 {
		t.Fatalf("expected 1 log, got %d", len(logs))
	}
	if logs[0].Note != "hi" {
		t.Fatalf("expected note %q, got %q", "hi", logs[0].Note)
	}
	if m.note.Value() != "" {
		t.Fatalf("expected note input cleared after logging, got %q", m.note.Value())
	}
}

func TestDeleteEntryRequiresConfirmation(t *testing.T) {
	at := time.Date(2025, time.June, 10, 8, 0, 0, 0, time.Local)
	m, svc := newTestModel(t, snapshotWithLogs(
		testEntry("e1", tracker.Pee, tracker.Success, at),
	))

	m = press(t, m, "h", "d")
	if m.confirm == nil {
		t.Fatalf("expected confirmation overlay before delete")
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "Delete Entry?") {
		t.Fatalf("expected delete prompt; view=%q", view)
	}

	m = press(t, m, "n")
	if len(svc.Logs()) != 1 {
		t.Fatalf("cancelled delete must not remove the entry")
	}

	m = press(t, m, "d", "y")
	if len(svc.Logs()) != 0 {
		t.Fatalf("confirmed delete should remove the entry")
	}
}

func TestClearHistoryConfirmCancelKeepsLogs(t *testing.T) {
	at := time.Date(2025, time.June, 9, 20, 0, 0, 0, time.Local)
	m, svc := newTestModel(t, snapshotWithLogs(
		testEntry("e1", tracker.Pee, tracker.Success, at),
		testEntry("e2", tracker.Poop, tracker.Accident, at.Add(time.Hour)),
	))

	m = press(t, m, "c", "C", "esc")
	if len(svc.Logs()) != 2 {
		t.Fatalf("cancelled clear must keep logs, got %d", len(svc.Logs()))
	}

	m = press(t, m, "C", "y")
	if len(svc.Logs()) != 0 {
		t.Fatalf("confirmed clear should remove all logs, got %d", len(svc.Logs()))
	}
}

func TestDeleteLastProfileShowsNotice(t *testing.T) {
	m, svc := newTestModel(t, nil)

	m = press(t, m, "c", "D")
	if m.confirm == nil || m.confirm.kind != confirmAlert {
		t.Fatalf("expected acknowledge-only notice for last profile")
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "You must have at least one profile in the app.") {
		t.Fatalf("expected last-profile message; view=%q", view)
	}

	m = press(t, m, "enter")
	if m.confirm != nil {
		t.Fatalf("notice should dismiss on enter")
	}
	if len(svc.Profiles()) != 1 {
		t.Fatalf("profile must survive, got %d profiles", len(svc.Profiles()))
	}
}

func TestAddProfileBecomesActive(t *testing.T) {
	m, svc := newTestModel(t, nil)

	m = press(t, m, "c", "a", "Z", "o", "e", "enter")

	if got := svc.ActiveProfile().Name; got != "Zoe" {
		t.Fatalf("expected Zoe active, got %q", got)
	}
	if len(svc.Profiles()) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(svc.Profiles()))
	}
}

func TestExportWithoutLogsShowsNoDataNotice(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m = press(t, m, "h", "x")
	if m.confirm == nil || m.confirm.kind != confirmAlert {
		t.Fatalf("expected notice when exporting an empty history")
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "No Data") {
		t.Fatalf("expected No Data title; view=%q", view)
	}
}

func TestToastClearsOnTimerMessage(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.showToast = true
	m.toastText = "Log copied to clipboard!"

	if !strings.Contains(stripANSI(m.View()), "Log copied to clipboard!") {
		t.Fatalf("expected toast in view while shown")
	}

	next, _ := m.Update(toastClearMsg{})
	m = next.(Model)
	if strings.Contains(stripANSI(m.View()), "Log copied to clipboard!") {
		t.Fatalf("toast should disappear after the clear message")
	}
}

func TestEditPreservesEntryPosition(t *testing.T) {
	at := time.Date(2025, time.June, 9, 8, 0, 0, 0, time.Local)
	m, svc := newTestModel(t, snapshotWithLogs(
		testEntry("newest", tracker.Pee, tracker.Success, at.Add(2*time.Hour)),
		testEntry("target", tracker.Poop, tracker.Accident, at),
	))

	m = press(t, m, "h", "j", "e")
	if m.screen != screenEdit || m.editID != "target" {
		t.Fatalf("expected edit screen for target, got screen=%d id=%q", m.screen, m.editID)
	}

	// Toggle result, then save.
	m = press(t, m, "j", "l", "enter")

	logs := svc.Logs()
	if logs[1].ID != "target" {
		t.Fatalf("edited entry must keep its position, got order %s, %s", logs[0].ID, logs[1].ID)
	}
	if logs[1].Result != tracker.Success {
		t.Fatalf("expected result toggled to Success, got %s", logs[1].Result)
	}
}
