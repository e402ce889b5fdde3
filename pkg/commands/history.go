package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/robogirl96/pottypanda/pkg/commands/options"
	"github.com/robogirl96/pottypanda/pkg/runner/get"
)

func addHistory(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	po := &options.ProfileOptions{}
	today := false

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the log history for a profile",
		Example: `
pottypanda history
pottypanda history --today
pottypanda history --profile=Suzie --show-id
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}

			s := get.Get{
				Service: svc,
				ShowID:  io.ShowID,
				Today:   today,
				Profile: po.Profile,
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().BoolVarP(&today, "today", "t", false,
		"Only show entries from today.")
	options.AddShowIDArgs(cmd, io)
	options.AddProfileArgs(cmd, po)
	topLevel.AddCommand(cmd)
}
