package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/robogirl96/pottypanda/pkg/commands/options"
	"github.com/robogirl96/pottypanda/pkg/runner/add"
	"github.com/robogirl96/pottypanda/pkg/tracker"
)

func addLog(topLevel *cobra.Command) {
	lo := &options.LogOptions{}
	po := &options.ProfileOptions{}

	kind := tracker.Pee

	cmd := &cobra.Command{
		Use:   "log [pee|poop]",
		Short: "Log a potty event",
		Example: `
pottypanda log pee
pottypanda log poop --missed
pottypanda log pee --note="self-initiated" --profile=Suzie
`,
		ValidArgs: []string{"pee", "poop"},
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires an event type, pee or poop")
			}
			parsed, err := tracker.ParseKind(args[0])
			if err != nil {
				return err
			}
			kind = parsed
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}

			s := add.Add{
				Service: svc,
				Kind:    kind,
				Missed:  lo.Missed,
				Note:    lo.Note,
				Profile: po.Profile,
			}
			return s.Do(context.Background())
		},
	}

	options.AddLogArgs(cmd, lo)
	options.AddProfileArgs(cmd, po)
	topLevel.AddCommand(cmd)
}
