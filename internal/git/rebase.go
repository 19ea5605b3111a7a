package git

import (
	"context"
	"fmt"
)

// MergeOptions controls Merge
type MergeOptions struct {
	// NoFF always creates a merge commit
	NoFF bool
	// FFOnly refuses anything but a fast-forward
	FFOnly bool
	// Message is the merge commit message; git's default is used when empty
	Message string
}

// Merge merges ref into the current branch
func (r *Repo) Merge(ctx context.Context, ref string, opts MergeOptions) error {
	args := []string{}
	switch {
	case opts.FFOnly:
		args = append(args, "--ff-only")
	case opts.NoFF:
		args = append(args, "--no-ff")
	}
	if opts.Message != "" {
		args = append(args, "-m", opts.Message)
	} else {
		args = append(args, "--no-edit")
	}
	args = append(args, ref)

	if _, err := r.Run(ctx, "merge", args); err != nil {
		return fmt.Errorf("failed to merge %s: %w", ref, err)
	}
	return nil
}

// MergeAbort aborts an in-progress merge
func (r *Repo) MergeAbort(ctx context.Context) error {
	if _, err := r.Run(ctx, "merge", []string{"--abort"}); err != nil {
		return fmt.Errorf("merge abort failed: %w", err)
	}
	return nil
}

// RebaseOnto replays the commits of branch that are not in upstream onto
// onto. An empty branch rebases the current branch.
func (r *Repo) RebaseOnto(ctx context.Context, onto, upstream, branch string) error {
	args := []string{"--onto", onto, upstream}
	if branch != "" {
		args = append(args, branch)
	}
	if _, err := r.Run(ctx, "rebase", args); err != nil {
		return fmt.Errorf("failed to rebase onto %s: %w", onto, err)
	}
	return nil
}

// RebaseAbort aborts an in-progress rebase
func (r *Repo) RebaseAbort(ctx context.Context) error {
	if _, err := r.Run(ctx, "rebase", []string{"--abort"}); err != nil {
		return fmt.Errorf("rebase abort failed: %w", err)
	}
	return nil
}
