package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robogirl96/pottypanda/pkg/commands/options"
	"github.com/robogirl96/pottypanda/pkg/runner/profile"
)

func addProfile(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage child profiles",
		Example: `
pottypanda profile
pottypanda profile add Suzie
pottypanda profile use Suzie
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}

			s := profile.List{Service: svc, ShowID: io.ShowID}
			return s.Do(context.Background())
		},
	}
	options.AddShowIDArgs(cmd, io)

	addProfileAdd(cmd)
	addProfileRename(cmd)
	addProfileDelete(cmd)
	addProfileUse(cmd)

	topLevel.AddCommand(cmd)
}

func addProfileAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a child profile and make it active",
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}

			s := profile.Add{Service: svc, Name: strings.Join(args, " ")}
			return s.Do(context.Background())
		},
	}
	topLevel.AddCommand(cmd)
}

func addProfileRename(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rename <profile> <new name>",
		Short: "Rename a child profile",
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 2 {
				return errors.New("requires a profile and a new name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}

			s := profile.Rename{
				Service: svc,
				Target:  args[0],
				NewName: strings.Join(args[1:], " "),
			}
			return s.Do(context.Background())
		},
	}
	topLevel.AddCommand(cmd)
}

func addProfileDelete(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "delete <profile>",
		Short: "Delete a child profile and all of their logs",
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a profile")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}

			s := profile.Delete{Service: svc, Target: args[0], Yes: co.Yes}
			return s.Do(context.Background())
		},
	}
	options.AddYesArg(cmd, co)
	topLevel.AddCommand(cmd)
}

func addProfileUse(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "use <profile>",
		Short: "Switch the active profile",
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a profile")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}

			s := profile.Use{Service: svc, Target: args[0]}
			return s.Do(context.Background())
		},
	}
	topLevel.AddCommand(cmd)
}
