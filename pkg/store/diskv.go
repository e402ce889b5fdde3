package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"github.com/robogirl96/pottypanda/pkg/tracker"
)

// The snapshot lives as three independent records in the key-value store.
const (
	keyProfiles = "profiles"
	keyActive   = "active"
	keyLogs     = "logs"
)

// Persistence is the storage contract for the tracker snapshot. Loading
// never hard-fails on bad content: each record falls back to a documented
// default so a damaged store still starts.
type Persistence interface {
	Snapshot(ctx context.Context) *tracker.Snapshot
	Save(snap *tracker.Snapshot) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Snapshot(_ context.Context) *tracker.Snapshot {
	snap := &tracker.Snapshot{
		Profiles: p.readProfiles(),
		Logs:     p.readLogs(),
	}
	if len(snap.Profiles) == 0 {
		snap.Profiles = tracker.DefaultSnapshot().Profiles
	}

	active := ""
	if raw, err := p.d.Read(keyActive); err == nil {
		active = strings.TrimSpace(string(raw))
	}
	snap.ActiveID = active
	if !hasProfile(snap.Profiles, snap.ActiveID) {
		snap.ActiveID = snap.Profiles[0].ID
	}
	return snap
}

func (p *persistence) Save(snap *tracker.Snapshot) error {
	if snap == nil {
		return fmt.Errorf("store: nil snapshot")
	}
	profiles, err := json.MarshalIndent(snap.Profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshal profiles: %w", err)
	}
	logs, err := json.MarshalIndent(snap.Logs, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshal logs: %w", err)
	}
	if err := p.d.Write(keyProfiles, profiles); err != nil {
		return fmt.Errorf("store: write profiles: %w", err)
	}
	if err := p.d.Write(keyActive, []byte(snap.ActiveID)); err != nil {
		return fmt.Errorf("store: write active profile: %w", err)
	}
	if err := p.d.Write(keyLogs, logs); err != nil {
		return fmt.Errorf("store: write logs: %w", err)
	}
	return nil
}

// readProfiles salvages whatever valid elements the profiles record holds.
// A malformed record or element is skipped, not fatal.
func (p *persistence) readProfiles() []tracker.Profile {
	raw, err := p.d.Read(keyProfiles)
	if err != nil {
		return nil
	}
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s record unreadable: %s\n", keyProfiles, err)
		return nil
	}
	profiles := make([]tracker.Profile, 0, len(elements))
	seen := make(map[string]bool, len(elements))
	for _, element := range elements {
		var profile tracker.Profile
		if err := json.Unmarshal(element, &profile); err != nil {
			fmt.Fprintf(os.Stderr, "store: skipping profile: %s\n", err)
			continue
		}
		profile.ID = strings.TrimSpace(profile.ID)
		profile.Name = strings.TrimSpace(profile.Name)
		if profile.ID == "" || seen[profile.ID] {
			continue
		}
		if profile.Name == "" {
			profile.Name = tracker.DefaultProfileName
		}
		seen[profile.ID] = true
		profiles = append(profiles, profile)
	}
	return profiles
}

// readLogs salvages log entries element by element. Within an element,
// fields fall back individually: an unparsable timestamp becomes the zero
// time and unknown kind/result values take the capture-form defaults.
func (p *persistence) readLogs() []*tracker.Entry {
	raw, err := p.d.Read(keyLogs)
	if err != nil {
		return []*tracker.Entry{}
	}
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s record unreadable: %s\n", keyLogs, err)
		return []*tracker.Entry{}
	}
	logs := make([]*tracker.Entry, 0, len(elements))
	seen := make(map[string]bool, len(elements))
	for _, element := range elements {
		var record struct {
			ID        string `json:"id"`
			ChildID   string `json:"childId"`
			Kind      string `json:"type"`
			Result    string `json:"result"`
			Timestamp string `json:"timestamp"`
			Note      string `json:"note"`
		}
		if err := json.Unmarshal(element, &record); err != nil {
			fmt.Fprintf(os.Stderr, "store: skipping log entry: %s\n", err)
			continue
		}
		if record.ID == "" || seen[record.ID] {
			continue
		}
		seen[record.ID] = true

		entry := &tracker.Entry{
			ID:      record.ID,
			ChildID: record.ChildID,
			Note:    strings.TrimSpace(record.Note),
		}
		if kind, err := tracker.ParseKind(record.Kind); err == nil {
			entry.Kind = kind
		} else {
			entry.Kind = tracker.Pee
		}
		if result, err := tracker.ParseResult(record.Result); err == nil {
			entry.Result = result
		} else {
			entry.Result = tracker.Success
		}
		if ts, err := tracker.ParseTime(record.Timestamp); err == nil {
			entry.Timestamp = tracker.Now(ts)
		}
		logs = append(logs, entry)
	}
	return logs
}

func hasProfile(profiles []tracker.Profile, id string) bool {
	for _, profile := range profiles {
		if profile.ID == id {
			return true
		}
	}
	return false
}
