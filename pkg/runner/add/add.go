package add

import (
	"context"
	"errors"
	"fmt"

	"github.com/robogirl96/pottypanda/pkg/app"
	"github.com/robogirl96/pottypanda/pkg/tracker"
)

// Add records one event from the command line.
type Add struct {
	Service *app.Service

	Kind    tracker.Kind
	Missed  bool
	Note    string
	Profile string // id or name; empty means the active profile
}

func (a *Add) Do(ctx context.Context) error {
	if a.Service == nil {
		return errors.New("can not add, no service")
	}

	target := a.Service.ActiveProfile()
	if a.Profile != "" {
		found, ok := a.Service.ResolveProfile(a.Profile)
		if !ok {
			return fmt.Errorf("no profile matching %q", a.Profile)
		}
		target = found
	}

	result := tracker.Success
	if a.Missed {
		result = tracker.Accident
	}

	entry := a.Service.AddLog(target.ID, a.Kind, result, a.Note)
	fmt.Printf("Logged %s - %s for %s at %s\n",
		entry.Kind.Title(), entry.Result.Display(), target.Name,
		entry.Timestamp.Local().Format("15:04"))
	return nil
}
