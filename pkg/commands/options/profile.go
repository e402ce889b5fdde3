package options

import (
	"github.com/spf13/cobra"
)

// ProfileOptions selects which child profile a command operates on.
type ProfileOptions struct {
	Profile string
}

func AddProfileArgs(cmd *cobra.Command, o *ProfileOptions) {
	cmd.Flags().StringVarP(&o.Profile, "profile", "p", "",
		"Specify the child profile by name or id. Defaults to the active profile.")
}
