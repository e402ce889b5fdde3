// Package app holds the authoritative in-memory tracker state and the
// mutation operations over it. Every mutation persists the full snapshot
// synchronously; a failed write is reported on stderr and the in-memory
// state keeps serving the session.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/robogirl96/pottypanda/pkg/store"
	"github.com/robogirl96/pottypanda/pkg/tracker"
)

var (
	// ErrEmptyName rejects profile names that trim to nothing.
	ErrEmptyName = errors.New("app: profile name required")
	// ErrLastProfile rejects deleting the only remaining profile.
	ErrLastProfile = errors.New("app: cannot delete the last profile")
	// ErrProfileNotFound signals an id that matches no profile.
	ErrProfileNotFound = errors.New("app: profile not found")
)

// Service owns the profiles, logs, and active-profile pointer.
type Service struct {
	Persistence store.Persistence

	snap *tracker.Snapshot

	// Overridable for tests.
	Clock func() time.Time
	NewID func() string
}

// Load reads the persisted snapshot and returns a Service over it.
func Load(ctx context.Context, p store.Persistence) (*Service, error) {
	if p == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return &Service{
		Persistence: p,
		snap:        p.Snapshot(ctx),
		Clock:       time.Now,
		NewID:       uuid.NewString,
	}, nil
}

// Reload replaces the in-memory state with the persisted snapshot. Used
// when the store watch reports an external change.
func (s *Service) Reload(ctx context.Context) {
	if s.Persistence == nil {
		return
	}
	s.snap = s.Persistence.Snapshot(ctx)
}

// Snapshot returns a deep copy of the current state.
func (s *Service) Snapshot() *tracker.Snapshot {
	return s.snap.Clone()
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.Watch(ctx)
}

// AddLog records a new event for the given profile: fresh id, stamped with
// the current time, note trimmed, prepended so the collection stays newest
// first.
func (s *Service) AddLog(profileID string, kind tracker.Kind, result tracker.Result, note string) *tracker.Entry {
	entry := &tracker.Entry{
		ID:        s.NewID(),
		ChildID:   profileID,
		Kind:      kind,
		Result:    result,
		Timestamp: tracker.Now(s.Clock()),
		Note:      strings.TrimSpace(note),
	}
	s.snap.Logs = append([]*tracker.Entry{entry}, s.snap.Logs...)
	s.persist()
	return entry
}

// DeleteLog removes the entry with the given id. Removing an id that is
// already gone is a no-op, not an error.
func (s *Service) DeleteLog(id string) {
	kept := s.snap.Logs[:0]
	removed := false
	for _, entry := range s.snap.Logs {
		if entry.ID == id {
			removed = true
			continue
		}
		kept = append(kept, entry)
	}
	s.snap.Logs = kept
	if removed {
		s.persist()
	}
}

// EditLog replaces the mutable fields of the matching entry. The position
// of the entry is preserved: display order stays insertion order even when
// the timestamp changes. Returns false when the id is not found.
func (s *Service) EditLog(id string, kind tracker.Kind, result tracker.Result, at time.Time, note string) bool {
	for _, entry := range s.snap.Logs {
		if entry.ID != id {
			continue
		}
		entry.Kind = kind
		entry.Result = result
		entry.Timestamp = tracker.Now(at)
		entry.Note = strings.TrimSpace(note)
		s.persist()
		return true
	}
	return false
}

// ClearLogsForProfile removes every entry belonging to the profile,
// legacy entries without a child id included when it is the default
// profile. Returns how many entries were removed.
func (s *Service) ClearLogsForProfile(profileID string) int {
	kept := s.snap.Logs[:0]
	removed := 0
	for _, entry := range s.snap.Logs {
		if entry.Owner() == profileID {
			removed++
			continue
		}
		kept = append(kept, entry)
	}
	s.snap.Logs = kept
	if removed > 0 {
		s.persist()
	}
	return removed
}

// AddProfile creates a profile with a fresh id and makes it active.
func (s *Service) AddProfile(name string) (tracker.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return tracker.Profile{}, ErrEmptyName
	}
	profile := tracker.Profile{ID: s.NewID(), Name: name}
	s.snap.Profiles = append(s.snap.Profiles, profile)
	s.snap.ActiveID = profile.ID
	s.persist()
	return profile, nil
}

// RenameProfile updates the matching profile's display name.
func (s *Service) RenameProfile(id, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return ErrEmptyName
	}
	for i := range s.snap.Profiles {
		if s.snap.Profiles[i].ID == id {
			s.snap.Profiles[i].Name = newName
			s.persist()
			return nil
		}
	}
	return ErrProfileNotFound
}

// DeleteProfile removes the profile and cascades deletion of its entries.
// The last remaining profile cannot be deleted. If the deleted profile was
// active, the first remaining profile becomes active.
func (s *Service) DeleteProfile(id string) error {
	if len(s.snap.Profiles) <= 1 {
		return ErrLastProfile
	}
	kept := s.snap.Profiles[:0]
	found := false
	for _, profile := range s.snap.Profiles {
		if profile.ID == id {
			found = true
			continue
		}
		kept = append(kept, profile)
	}
	if !found {
		return ErrProfileNotFound
	}
	s.snap.Profiles = kept

	logs := s.snap.Logs[:0]
	for _, entry := range s.snap.Logs {
		if entry.Owner() == id {
			continue
		}
		logs = append(logs, entry)
	}
	s.snap.Logs = logs

	if s.snap.ActiveID == id {
		s.snap.ActiveID = s.snap.Profiles[0].ID
	}
	s.persist()
	return nil
}

// SetActiveProfile repoints the active profile. Guarded with an existence
// check so the pointer always resolves.
func (s *Service) SetActiveProfile(id string) error {
	for _, profile := range s.snap.Profiles {
		if profile.ID == id {
			s.snap.ActiveID = id
			s.persist()
			return nil
		}
	}
	return ErrProfileNotFound
}

func (s *Service) persist() {
	if s.Persistence == nil {
		return
	}
	if err := s.Persistence.Save(s.snap); err != nil {
		fmt.Fprintf(os.Stderr, "app: persist snapshot: %v\n", err)
	}
}
