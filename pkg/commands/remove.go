package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/robogirl96/pottypanda/pkg/commands/options"
	"github.com/robogirl96/pottypanda/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm", "delete"},
		Short:   "Delete a single log entry",
		Example: `
pottypanda remove 7b45
pottypanda remove 7b45 --yes
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

			s := remove.Remove{
				Service: svc,
				ID:      args[0],
				Yes:     co.Yes,
			}
			return s.Do(context.Background())
		},
	}

	options.AddYesArg(cmd, co)
	topLevel.AddCommand(cmd)
}
