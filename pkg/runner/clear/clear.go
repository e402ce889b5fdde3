package clear

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/robogirl96/pottypanda/pkg/app"
	"github.com/robogirl96/pottypanda/pkg/runner/confirm"
)

// Clear wipes the active profile's history, gated by confirmation.
type Clear struct {
	Service *app.Service

	Yes bool
}

func (c *Clear) Do(ctx context.Context) error {
	if c.Service == nil {
		return errors.New("can not clear, no service")
	}

	profile := c.Service.ActiveProfile()
	if !c.Yes {
		msg := fmt.Sprintf("Clear ALL history for %s?", profile.Name)
		if !confirm.Ask(os.Stdout, os.Stdin, msg) {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	removed := c.Service.ClearLogsForProfile(profile.ID)
	switch removed {
	case 1:
		fmt.Printf("Removed 1 entry for %s.\n", profile.Name)
	default:
		fmt.Printf("Removed %d entries for %s.\n", removed, profile.Name)
	}
	return nil
}
