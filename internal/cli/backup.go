package cli

import (
	"github.com/spf13/cobra"

	"scaffkit.dev/scaffkit/internal/actions"
	"scaffkit.dev/scaffkit/internal/cli/common"
	"scaffkit.dev/scaffkit/internal/runtime"
)

// newBackupCmd creates the backup command
func newBackupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup <path>...",
		Short: "Move files aside to their next numbered version",
		Long: `Move files aside to their next numbered version.

Each path is renamed to <path>.<N>, where N is one more than the highest
existing numbered sibling, or 1 when there is none.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.RunWithArgs(cmd, args, func(ctx *runtime.Context, args []string) error {
				return actions.BackupAction(ctx, actions.BackupOptions{Paths: args})
			})
		},
	}
	return cmd
}
