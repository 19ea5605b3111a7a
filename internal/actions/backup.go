package actions

import (
	"fmt"

	"scaffkit.dev/scaffkit/internal/runtime"
)

// BackupOptions contains options for the backup command
type BackupOptions struct {
	Paths []string
}

// BackupAction moves each path aside to its next numbered version,
// e.g. notes.txt becomes notes.txt.3 when notes.txt.2 exists
func BackupAction(ctx *runtime.Context, opts BackupOptions) error {
	if len(opts.Paths) == 0 {
		return fmt.Errorf("no paths given")
	}
	for _, p := range opts.Paths {
		path := ctx.Resolve(p)
		if !path.Exists() {
			return fmt.Errorf("cannot back up %s: no such file or directory", path)
		}
		dest, err := path.RenameToNextVer()
		if err != nil {
			return fmt.Errorf("failed to back up %s: %w", path, err)
		}
		ctx.Splog.Info("%s -> %s", path, dest.Base())
	}
	return nil
}
