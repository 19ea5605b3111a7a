package actions

import (
	"fmt"
	"regexp"

	"scaffkit.dev/scaffkit/internal/abspath"
	"scaffkit.dev/scaffkit/internal/runtime"
	"scaffkit.dev/scaffkit/internal/utils"
)

// CleanOptions contains options for the clean command
type CleanOptions struct {
	Dir string
	// Match must match every absolute path that gets deleted; defaults to
	// everything under Dir
	Match string
	// KeepRoot removes the contents of Dir but not Dir itself
	KeepRoot bool
	// Yes skips the confirmation prompt
	Yes bool
}

// CleanAction deletes a directory tree, refusing to delete anything when a
// single path in it falls outside Match
func CleanAction(ctx *runtime.Context, opts CleanOptions) error {
	if opts.Dir == "" {
		return fmt.Errorf("directory is required")
	}
	dir := ctx.Resolve(opts.Dir)
	if !dir.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	match := opts.Match
	if match == "" {
		match = "^" + regexp.QuoteMeta(dir.String()) + "(/|$)"
	}
	pattern, err := regexp.Compile(match)
	if err != nil {
		return fmt.Errorf("invalid --match pattern: %w", err)
	}

	if !opts.Yes && ctx.Config.Clean.Confirm && utils.IsInteractive() {
		ok, err := confirmFunc(fmt.Sprintf("Delete everything in %s?", dir), false)
		if err != nil {
			return err
		}
		if !ok {
			ctx.Splog.Info("Nothing deleted.")
			ctx.Splog.Tip("Pass --yes to delete without asking.")
			return nil
		}
	}

	files, dirs := 0, 0
	err = dir.RmrfDir(pattern, !opts.KeepRoot, func(entry abspath.Path, event abspath.WalkEvent) bool {
		switch event {
		case abspath.VisitFile:
			files++
			ctx.Splog.Debug("rm %s", entry)
		case abspath.LeaveDir:
			dirs++
			ctx.Splog.Debug("rmdir %s", entry)
		}
		return ctx.Err() != nil
	})
	if err != nil {
		return err
	}
	ctx.Splog.Info("Removed %d files and %d directories from %s.", files, dirs, dir)
	return nil
}
