package cli

import (
	"github.com/spf13/cobra"

	"scaffkit.dev/scaffkit/internal/actions"
	"scaffkit.dev/scaffkit/internal/cli/common"
	"scaffkit.dev/scaffkit/internal/runtime"
)

// newCleanCmd creates the clean command
func newCleanCmd() *cobra.Command {
	var (
		match    string
		keepRoot bool
		yes      bool
	)

	cmd := &cobra.Command{
		Use:   "clean <dir>",
		Short: "Delete a directory tree whose every path matches a pattern",
		Long: `Delete a directory tree whose every path matches a pattern.

Every absolute path that would be deleted is checked against --match before
anything is removed; one mismatch aborts the whole operation. Without --match
only paths inside <dir> are accepted. Symlinks are removed, never followed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.RunWithArgs(cmd, args, func(ctx *runtime.Context, args []string) error {
				dir := ""
				if len(args) > 0 {
					dir = args[0]
				}
				return actions.CleanAction(ctx, actions.CleanOptions{
					Dir:      dir,
					Match:    match,
					KeepRoot: keepRoot,
					Yes:      yes,
				})
			})
		},
	}

	cmd.Flags().StringVar(&match, "match", "", "Regular expression every deleted path must match")
	cmd.Flags().BoolVar(&keepRoot, "keep-root", false, "Remove the contents but keep the directory itself")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation prompt")

	return cmd
}
