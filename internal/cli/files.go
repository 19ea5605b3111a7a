package cli

import (
	"github.com/spf13/cobra"

	"scaffkit.dev/scaffkit/internal/actions"
	"scaffkit.dev/scaffkit/internal/cli/common"
	"scaffkit.dev/scaffkit/internal/runtime"
)

// newFilesCmd creates the files command
func newFilesCmd() *cobra.Command {
	var (
		absolute bool
		binary   bool
	)

	cmd := &cobra.Command{
		Use:   "files [path]...",
		Short: "List tracked files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.RunWithArgs(cmd, args, func(ctx *runtime.Context, args []string) error {
				return actions.FilesAction(ctx, actions.FilesOptions{
					Paths:    args,
					Absolute: absolute,
					Binary:   binary,
				})
			})
		},
	}

	cmd.Flags().BoolVar(&absolute, "abs", false, "Print absolute paths")
	cmd.Flags().BoolVar(&binary, "binary", false, "Only list binary files")

	return cmd
}
