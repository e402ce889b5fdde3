package remove

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/robogirl96/pottypanda/pkg/app"
	"github.com/robogirl96/pottypanda/pkg/runner/confirm"
)

// Remove deletes a single log entry by id, gated by confirmation.
type Remove struct {
	Service *app.Service

	ID  string
	Yes bool
}

func (r *Remove) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("can not remove, no service")
	}

	entry, ok := r.Service.FindLog(r.ID)
	if !ok {
		fmt.Printf("No log entry with id %s.\n", r.ID)
		return nil
	}

	if !r.Yes {
		msg := fmt.Sprintf("Delete the %s entry from %s?",
			entry.Kind.Title(), entry.Timestamp.Local().Format("Jan 2 15:04"))
		if !confirm.Ask(os.Stdout, os.Stdin, msg) {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	r.Service.DeleteLog(r.ID)
	fmt.Println("Entry deleted.")
	return nil
}
