package app

import (
	"strings"
	"time"

	"github.com/robogirl96/pottypanda/pkg/tracker"
)

// Derived views. All of these recompute from the current state on every
// call; nothing here caches.

// Profiles returns every profile in collection order.
func (s *Service) Profiles() []tracker.Profile {
	return append([]tracker.Profile(nil), s.snap.Profiles...)
}

// ActiveProfile returns the profile the active pointer resolves to,
// falling back to the first profile if the pointer is stale.
func (s *Service) ActiveProfile() tracker.Profile {
	for _, profile := range s.snap.Profiles {
		if profile.ID == s.snap.ActiveID {
			return profile
		}
	}
	return s.snap.Profiles[0]
}

// ResolveProfile finds a profile by id or, failing that, by exact name.
func (s *Service) ResolveProfile(idOrName string) (tracker.Profile, bool) {
	idOrName = strings.TrimSpace(idOrName)
	for _, profile := range s.snap.Profiles {
		if profile.ID == idOrName {
			return profile, true
		}
	}
	for _, profile := range s.snap.Profiles {
		if strings.EqualFold(profile.Name, idOrName) {
			return profile, true
		}
	}
	return tracker.Profile{}, false
}

// Logs returns the active profile's entries, newest first.
func (s *Service) Logs() []*tracker.Entry {
	return s.LogsFor(s.ActiveProfile().ID)
}

// LogsFor filters the log collection down to one profile, preserving
// store order.
func (s *Service) LogsFor(profileID string) []*tracker.Entry {
	out := make([]*tracker.Entry, 0, len(s.snap.Logs))
	for _, entry := range s.snap.Logs {
		if entry.Owner() == profileID {
			out = append(out, entry)
		}
	}
	return out
}

// LogsToday narrows the active profile's entries to the current local
// calendar day.
func (s *Service) LogsToday(now time.Time) []*tracker.Entry {
	logs := s.Logs()
	out := make([]*tracker.Entry, 0, len(logs))
	for _, entry := range logs {
		if entry.Timestamp.SameDay(now) {
			out = append(out, entry)
		}
	}
	return out
}

// LastLog returns the most recent entry for the active profile.
func (s *Service) LastLog() (*tracker.Entry, bool) {
	logs := s.Logs()
	if len(logs) == 0 {
		return nil, false
	}
	return logs[0], true
}

// FindLog looks an entry up by id across all profiles.
func (s *Service) FindLog(id string) (*tracker.Entry, bool) {
	for _, entry := range s.snap.Logs {
		if entry.ID == id {
			return entry, true
		}
	}
	return nil, false
}
