package cli

import (
	"github.com/spf13/cobra"

	"scaffkit.dev/scaffkit/internal/actions"
	"scaffkit.dev/scaffkit/internal/cli/common"
	"scaffkit.dev/scaffkit/internal/runtime"
)

// newTagCmd creates the tag command
func newTagCmd() *cobra.Command {
	var (
		message string
		move    bool
		del     bool
	)

	cmd := &cobra.Command{
		Use:   "tag [name] [ref]",
		Short: "Create, move, delete or list tags",
		Long: `Create, move, delete or list tags.

Without a name the existing tags are listed. A message makes an annotated
tag; pass "-m -" to read it from stdin.`,
		Args:              cobra.MaximumNArgs(2),
		ValidArgsFunction: common.CompleteTags,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.RunWithArgs(cmd, args, func(ctx *runtime.Context, args []string) error {
				opts := actions.TagOptions{Message: message, Move: move, Delete: del}
				if len(args) > 0 {
					opts.Name = args[0]
				}
				if len(args) > 1 {
					opts.Ref = args[1]
				}
				return actions.TagAction(ctx, opts)
			})
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Annotated tag message")
	cmd.Flags().BoolVarP(&move, "move", "f", false, "Move the tag if it already exists")
	cmd.Flags().BoolVarP(&del, "delete", "d", false, "Delete the tag")
	cmd.MarkFlagsMutuallyExclusive("move", "delete")

	return cmd
}
