package cli

import (
	"github.com/spf13/cobra"

	"scaffkit.dev/scaffkit/internal/actions"
	"scaffkit.dev/scaffkit/internal/cli/common"
	"scaffkit.dev/scaffkit/internal/runtime"
)

// newNewCmd creates the new command
func newNewCmd() *cobra.Command {
	var (
		branch  string
		remote  string
		message string
	)

	cmd := &cobra.Command{
		Use:   "new <dir>",
		Short: "Create a repository with a README and a first commit",
		Long: `Create a repository with a README and a first commit.

The directory is created if needed and initialized unless it is already a
repository. An existing README.md is backed up to README.md.<N> first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.RunWithArgs(cmd, args, func(ctx *runtime.Context, args []string) error {
				dir := ""
				if len(args) > 0 {
					dir = args[0]
				}
				return actions.NewAction(ctx, actions.NewOptions{
					Dir:     dir,
					Branch:  branch,
					Remote:  remote,
					Message: message,
				})
			})
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Initial branch (default \"main\")")
	cmd.Flags().StringVar(&remote, "remote", "", "URL to add as the origin remote")
	cmd.Flags().StringVarP(&message, "message", "m", "", "First commit message (default \"Initial commit\")")

	return cmd
}
