package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"github.com/robogirl96/pottypanda/pkg/app"
	"github.com/robogirl96/pottypanda/pkg/store"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "pottypanda",
		Short: base.Wrap80("Potty training tracking on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addLog(topLevel)
	addHistory(topLevel)
	addExport(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addClear(topLevel)
	addProfile(topLevel)
	addVersion(topLevel)
}

// loadService opens the on-disk store and hydrates the tracker state.
func loadService(ctx context.Context) (*app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	return app.Load(ctx, p)
}
