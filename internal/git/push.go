package git

import (
	"context"
	"fmt"
)

// PushOptions controls Push
type PushOptions struct {
	// SetUpstream records the remote branch as the branch's upstream
	SetUpstream bool
	// ForceWithLease overwrites the remote branch if it still matches our view of it
	ForceWithLease bool
	Tags           bool
}

// Push pushes branch to remote
func (r *Repo) Push(ctx context.Context, remote, branch string, opts PushOptions) error {
	args := []string{}
	if opts.SetUpstream {
		args = append(args, "-u")
	}
	if opts.ForceWithLease {
		args = append(args, "--force-with-lease")
	}
	if opts.Tags {
		args = append(args, "--tags")
	}
	args = append(args, remote)
	if branch != "" {
		args = append(args, branch)
	}
	if _, err := r.Run(ctx, "push", args); err != nil {
		return fmt.Errorf("failed to push %s to %s: %w", branch, remote, err)
	}
	return nil
}
