package cli

import (
	"github.com/spf13/cobra"

	"scaffkit.dev/scaffkit/internal/actions"
	"scaffkit.dev/scaffkit/internal/cli/common"
	"scaffkit.dev/scaffkit/internal/runtime"
)

// newGitCmd creates the git escape hatch. Its arguments are passed to git
// untouched.
func newGitCmd() *cobra.Command {
	var (
		allowStatus []int
		color       bool
	)

	cmd := &cobra.Command{
		Use:   "git <subcommand> [args]...",
		Short: "Run a git subcommand in the working directory",
		Long: `Run a git subcommand in the working directory.

Flags for scaffkit must come before the subcommand; everything after it is
passed to git. Exit codes listed with --allow-status are not failures.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.GitAction(ctx, actions.GitOptions{
					Subcommand:  args[0],
					Args:        args[1:],
					AllowStatus: allowStatus,
					Color:       color,
				})
			})
		},
	}

	cmd.Flags().SetInterspersed(false)
	cmd.Flags().IntSliceVar(&allowStatus, "allow-status", nil, "Exit codes to treat as success")
	cmd.Flags().BoolVar(&color, "color", false, "Keep git's colours in the output")

	return cmd
}
