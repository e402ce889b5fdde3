package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/robogirl96/pottypanda/pkg/commands/options"
	"github.com/robogirl96/pottypanda/pkg/runner/clear"
)

func addClear(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete ALL history for the active profile",
		Example: `
pottypanda clear
pottypanda clear --yes
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}

			s := clear.Clear{
				Service: svc,
				Yes:     co.Yes,
			}
			return s.Do(context.Background())
		},
	}

	options.AddYesArg(cmd, co)
	topLevel.AddCommand(cmd)
}
