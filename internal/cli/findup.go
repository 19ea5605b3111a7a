package cli

import (
	"github.com/spf13/cobra"

	"scaffkit.dev/scaffkit/internal/actions"
	"scaffkit.dev/scaffkit/internal/cli/common"
	"scaffkit.dev/scaffkit/internal/runtime"
)

// newFindUpCmd creates the find-up command
func newFindUpCmd() *cobra.Command {
	var (
		allowDir bool
		entry    bool
	)

	cmd := &cobra.Command{
		Use:   "find-up <name>",
		Short: "Print the nearest ancestor directory containing a file",
		Long: `Print the nearest ancestor directory containing a file.

The search starts in the working directory and walks up to the filesystem
root. Directories with the name only count with --dir.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.RunWithArgs(cmd, args, func(ctx *runtime.Context, args []string) error {
				name := ""
				if len(args) > 0 {
					name = args[0]
				}
				return actions.FindUpAction(ctx, actions.FindUpOptions{
					Name:     name,
					AllowDir: allowDir,
					Entry:    entry,
				})
			})
		},
	}

	cmd.Flags().BoolVar(&allowDir, "dir", false, "Match directories as well as files")
	cmd.Flags().BoolVar(&entry, "entry", false, "Print the matching entry instead of its parent directory")

	return cmd
}
