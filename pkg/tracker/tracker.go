// Package tracker defines the potty training domain model: child profiles
// and the log entries recorded against them.
package tracker

import (
	"fmt"
	"strings"
)

// DefaultProfileID is the reserved id of the built-in profile. Log entries
// written before multi-profile support carry no child id and belong to it.
const (
	DefaultProfileID   = "default"
	DefaultProfileName = "My Child"
)

// Kind is the event category.
type Kind string

const (
	Pee  Kind = "pee"
	Poop Kind = "poop"
)

// ParseKind converts user input to a Kind.
func ParseKind(raw string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(raw))) {
	case Pee:
		return Pee, nil
	case Poop:
		return Poop, nil
	}
	return "", fmt.Errorf("tracker: unknown kind %q", raw)
}

// Title renders the kind capitalized for reports ("Pee", "Poop").
func (k Kind) Title() string {
	s := string(k)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Result is the outcome of an event.
type Result string

const (
	Success  Result = "success"
	Accident Result = "accident"
)

// ParseResult converts user input to a Result. "missed" is accepted as an
// alias for accident since that is how the outcome is displayed.
func ParseResult(raw string) (Result, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(Success):
		return Success, nil
	case string(Accident), "missed":
		return Accident, nil
	}
	return "", fmt.Errorf("tracker: unknown result %q", raw)
}

// Display renders the result for reports and lists.
func (r Result) Display() string {
	if r == Success {
		return "Success"
	}
	return "Missed"
}

// Profile is a named child whose events are tracked independently.
type Profile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Entry is one recorded event. The JSON shape matches the persisted records
// of earlier releases, childId included.
type Entry struct {
	ID        string    `json:"id"`
	ChildID   string    `json:"childId"`
	Kind      Kind      `json:"type"`
	Result    Result    `json:"result"`
	Timestamp Timestamp `json:"timestamp"`
	Note      string    `json:"note"`
}

// Owner resolves the profile an entry belongs to, mapping legacy entries
// without a child id onto the default profile.
func (e *Entry) Owner() string {
	if e.ChildID == "" {
		return DefaultProfileID
	}
	return e.ChildID
}

// Snapshot is the full persisted state: every profile, every log entry
// (newest first), and the active profile pointer.
type Snapshot struct {
	Profiles []Profile
	ActiveID string
	Logs     []*Entry
}

// DefaultSnapshot returns the state a fresh install starts from.
func DefaultSnapshot() *Snapshot {
	return &Snapshot{
		Profiles: []Profile{{ID: DefaultProfileID, Name: DefaultProfileName}},
		ActiveID: DefaultProfileID,
		Logs:     []*Entry{},
	}
}

// Clone deep-copies a snapshot so callers can hand out state without
// aliasing the store's entries.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	cp := &Snapshot{
		Profiles: append([]Profile(nil), s.Profiles...),
		ActiveID: s.ActiveID,
		Logs:     make([]*Entry, 0, len(s.Logs)),
	}
	for _, e := range s.Logs {
		if e == nil {
			continue
		}
		dup := *e
		cp.Logs = append(cp.Logs, &dup)
	}
	return cp
}
