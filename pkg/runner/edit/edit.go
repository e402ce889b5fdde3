package edit

import (
	"context"
	"errors"
	"fmt"

	"github.com/robogirl96/pottypanda/pkg/app"
	"github.com/robogirl96/pottypanda/pkg/tracker"
)

// Edit replaces fields on an existing log entry. Flags that were not set
// keep the entry's current value.
type Edit struct {
	Service *app.Service

	ID     string
	Kind   string // empty means keep
	Result string // empty means keep
	At     string // RFC 3339 or datetime-local; empty means keep
	Note   *string
}

func (e *Edit) Do(ctx context.Context) error {
	if e.Service == nil {
		return errors.New("can not edit, no service")
	}

	entry, ok := e.Service.FindLog(e.ID)
	if !ok {
		fmt.Printf("No log entry with id %s.\n", e.ID)
		return nil
	}

	kind := entry.Kind
	if e.Kind != "" {
		parsed, err := tracker.ParseKind(e.Kind)
		if err != nil {
			return err
		}
		kind = parsed
	}

	result := entry.Result
	if e.Result != "" {
		parsed, err := tracker.ParseResult(e.Result)
		if err != nil {
			return err
		}
		result = parsed
	}

	at := entry.Timestamp.Time
	if e.At != "" {
		parsed, err := tracker.ParseTime(e.At)
		if err != nil {
			return fmt.Errorf("invalid timestamp %q: %w", e.At, err)
		}
		at = parsed
	}

	note := entry.Note
	if e.Note != nil {
		note = *e.Note
	}

	e.Service.EditLog(e.ID, kind, result, at, note)
	fmt.Println("Entry updated.")
	return nil
}
