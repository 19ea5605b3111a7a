package cli

import (
	"github.com/spf13/cobra"

	"scaffkit.dev/scaffkit/internal/actions"
	"scaffkit.dev/scaffkit/internal/cli/common"
	"scaffkit.dev/scaffkit/internal/runtime"
)

// newRemoteCmd creates the remote command and its subcommands
func newRemoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Manage the repository's remotes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, actions.RemoteListAction)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List remotes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, actions.RemoteListAction)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name> <url>",
		Short: "Add a remote",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.RemoteAddAction(ctx, args[0], args[1])
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:               "remove <name>...",
		Aliases:           []string{"rm"},
		Short:             "Remove remotes",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: common.CompleteRemotes,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.RunWithArgs(cmd, args, actions.RemoteRemoveAction)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:               "rename <old> <new>",
		Short:             "Rename a remote",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: common.CompleteRemotes,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.RunWithArgs(cmd, args, func(ctx *runtime.Context, args []string) error {
				if len(args) != 2 {
					return cobra.ExactArgs(2)(cmd, args)
				}
				return actions.RemoteRenameAction(ctx, args[0], args[1])
			})
		},
	})

	return cmd
}
