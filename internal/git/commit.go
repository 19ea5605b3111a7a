package git

import (
	"context"
	"fmt"
	"strconv"
)

// CommitOptions contains options for creating a commit
type CommitOptions struct {
	// AllowEmpty records a commit even when nothing is staged
	AllowEmpty bool
	// All stages modified tracked files first
	All bool
	Amend bool
}

// Commit records staged changes with message
func (r *Repo) Commit(ctx context.Context, message string, opts CommitOptions) error {
	args := []string{"-m", message}
	if opts.AllowEmpty {
		args = append(args, "--allow-empty")
	}
	if opts.All {
		args = append(args, "--all")
	}
	if opts.Amend {
		args = append(args, "--amend")
	}
	if _, err := r.Run(ctx, "commit", args); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// CommitCount returns the number of commits reachable from ref (HEAD when empty)
func (r *Repo) CommitCount(ctx context.Context, ref string) (int, error) {
	if ref == "" {
		ref = "HEAD"
	}
	out, err := r.runTrimmed(ctx, "rev-list", []string{"--count", ref}, Quiet())
	if err != nil {
		return 0, fmt.Errorf("failed to count commits: %w", err)
	}
	n, err := strconv.Atoi(out)
	if err != nil {
		return 0, fmt.Errorf("unexpected rev-list output %q: %w", out, err)
	}
	return n, nil
}

// FilesInCommit returns the paths a commit touched, relative to the
// repository root. The root commit lists every file it added.
func (r *Repo) FilesInCommit(ctx context.Context, ref string) ([]string, error) {
	if ref == "" {
		ref = "HEAD"
	}
	files, err := r.runNul(ctx, "diff-tree", []string{"-z", "--no-commit-id", "--name-only", "-r", "--root", ref}, Quiet())
	if err != nil {
		return nil, fmt.Errorf("failed to list files in %s: %w", ref, err)
	}
	return files, nil
}

// Log returns a decorated one-line graph of the last n commits with git's
// own colours preserved
func (r *Repo) Log(ctx context.Context, n int) (string, error) {
	args := []string{"--oneline", "--decorate", "--graph"}
	if n > 0 {
		args = append(args, "-n", strconv.Itoa(n))
	}
	out, err := r.Run(ctx, "log", args, KeepColor())
	if err != nil {
		return "", fmt.Errorf("failed to read log: %w", err)
	}
	return out, nil
}
