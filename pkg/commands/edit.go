package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/robogirl96/pottypanda/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	var (
		kind   string
		result string
		at     string
		note   string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing log entry",
		Example: `
pottypanda edit 7b45 --result=accident
pottypanda edit 7b45 --at="2025-06-10T08:30" --note="nap time"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a log entry id, find one with history --show-id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}

			s := edit.Edit{
				Service: svc,
				ID:      args[0],
				Kind:    kind,
				Result:  result,
				At:      at,
			}
			if cmd.Flags().Changed("note") {
				s.Note = &note
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&kind, "type", "", "Change the event type, pee or poop.")
	cmd.Flags().StringVar(&result, "result", "", "Change the result, success or accident.")
	cmd.Flags().StringVar(&at, "at", "", `Change the timestamp, example: --at="2025-06-10T08:30".`)
	cmd.Flags().StringVar(&note, "note", "", "Replace the note. An empty value clears it.")

	topLevel.AddCommand(cmd)
}
