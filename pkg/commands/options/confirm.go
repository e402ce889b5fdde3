package options

import (
	"github.com/spf13/cobra"
)

// ConfirmOptions lets destructive commands skip the interactive prompt.
type ConfirmOptions struct {
	Yes bool
}

func AddYesArg(cmd *cobra.Command, o *ConfirmOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Skip the confirmation prompt.")
}
