package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robogirl96/pottypanda/pkg/app"
	"github.com/robogirl96/pottypanda/pkg/printers"
	"github.com/robogirl96/pottypanda/pkg/timeutil"
)

// Get prints the history for a profile.
type Get struct {
	Service *app.Service

	ShowID  bool
	Today   bool
	Profile string // id or name; empty means the active profile
}

func (g *Get) Do(ctx context.Context) error {
	if g.Service == nil {
		return errors.New("can not get, no service")
	}

	target := g.Service.ActiveProfile()
	if g.Profile != "" {
		found, ok := g.Service.ResolveProfile(g.Profile)
		if !ok {
			return fmt.Errorf("no profile matching %q", g.Profile)
		}
		target = found
	}

	now := time.Now()
	logs := g.Service.LogsFor(target.ID)
	if g.Today {
		filtered := logs[:0]
		for _, entry := range logs {
			if entry.Timestamp.SameDay(now) {
				filtered = append(filtered, entry)
			}
		}
		logs = filtered
	}

	pp := printers.PrettyPrint{ShowID: g.ShowID}
	fmt.Println("")
	title := fmt.Sprintf("History for %s", target.Name)
	if g.Today {
		title = fmt.Sprintf("Today for %s", target.Name)
	}
	pp.Title(title)

	if len(logs) > 0 {
		last := logs[0]
		pp.LastSeen("Last went", timeutil.Relative(last.Timestamp.Time, now), last.Timestamp.Time)
	}
	pp.History(logs...)
	return nil
}
