package options

import (
	"github.com/spf13/cobra"
)

// LogOptions captures the flags shared by logging commands.
type LogOptions struct {
	Missed bool
	Note   string
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.Flags().BoolVarP(&o.Missed, "missed", "m", false,
		"Record the event as an accident instead of a success.")
	cmd.Flags().StringVarP(&o.Note, "note", "n", "",
		`Attach a note, example: --note="self-initiated".`)
}
