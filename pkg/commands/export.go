package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/robogirl96/pottypanda/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	stdout := false

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Copy the active profile's log to the clipboard as text",
		Example: `
pottypanda export
pottypanda export --stdout > suzie.txt
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}

			s := export.Export{
				Service: svc,
				Stdout:  stdout,
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().BoolVar(&stdout, "stdout", false,
		"Print the report instead of copying it to the clipboard.")
	topLevel.AddCommand(cmd)
}
