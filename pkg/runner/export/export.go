package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"

	"github.com/robogirl96/pottypanda/pkg/app"
)

// Export builds the plain-text report for the active profile and delivers
// it to the clipboard, or stdout when requested.
type Export struct {
	Service *app.Service

	Stdout bool
}

func (e *Export) Do(ctx context.Context) error {
	if e.Service == nil {
		return errors.New("can not export, no service")
	}

	report, err := e.Service.ExportText(time.Now())
	if errors.Is(err, app.ErrNoLogs) {
		fmt.Printf("There are no logs to export for %s.\n", e.Service.ActiveProfile().Name)
		return nil
	}
	if err != nil {
		return err
	}

	if e.Stdout {
		fmt.Print(report)
		return nil
	}

	if err := clipboard.WriteAll(report); err != nil {
		// Clipboard access is flaky on headless sessions; keep the report
		// usable instead of failing the command.
		fmt.Println("Could not copy to clipboard; printing instead.")
		fmt.Print(report)
		return nil
	}
	fmt.Println("Log copied to clipboard!")
	return nil
}
