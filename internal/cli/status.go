package cli

import (
	"github.com/spf13/cobra"

	"scaffkit.dev/scaffkit/internal/actions"
	"scaffkit.dev/scaffkit/internal/cli/common"
	"scaffkit.dev/scaffkit/internal/runtime"
)

// newStatusCmd creates the status command
func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [dir]",
		Short: "Show the state of a repository directory",
		Long: `Show the state of a repository directory.

The directory is classified as not a repository, a repository without commits,
one with a merge, rebase, cherry-pick or revert in progress, dirty or clean.
For repositories with history the current branch, commit count and last
commit are shown too.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.RunWithArgs(cmd, args, func(ctx *runtime.Context, args []string) error {
				opts := actions.StatusOptions{}
				if len(args) > 0 {
					opts.Dir = args[0]
				}
				return actions.StatusAction(ctx, opts)
			})
		},
	}
	return cmd
}
