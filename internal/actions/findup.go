package actions

import (
	"fmt"

	"scaffkit.dev/scaffkit/internal/abspath"
	"scaffkit.dev/scaffkit/internal/runtime"
)

// FindUpOptions contains options for the find-up command
type FindUpOptions struct {
	Name string
	// AllowDir also matches directories called Name
	AllowDir bool
	// Entry prints the matching entry instead of the directory holding it
	Entry bool
}

// ErrNotFound is returned when no ancestor holds the requested entry
var ErrNotFound = fmt.Errorf("not found")

// FindUp searches from start towards the root
func FindUp(start abspath.Path, opts FindUpOptions) (abspath.Path, error) {
	if opts.Name == "" {
		return abspath.Unset(), fmt.Errorf("name is required")
	}
	var found abspath.Path
	if opts.Entry {
		found = start.FindUpwardsEntry(opts.Name, opts.AllowDir)
	} else {
		found = start.FindUpwards(opts.Name, opts.AllowDir)
	}
	if !found.IsSet() {
		return found, fmt.Errorf("%s above %s: %w", opts.Name, start, ErrNotFound)
	}
	return found, nil
}

// FindUpAction prints the nearest ancestor of the working directory holding Name
func FindUpAction(ctx *runtime.Context, opts FindUpOptions) error {
	found, err := FindUp(ctx.Cwd, opts)
	if err != nil {
		return err
	}
	ctx.Splog.Info("%s", found)
	return nil
}
