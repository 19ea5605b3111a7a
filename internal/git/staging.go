package git

import (
	"context"
	"fmt"

	"scaffkit.dev/scaffkit/internal/abspath"
	scaffkiterrors "scaffkit.dev/scaffkit/internal/errors"
)

// Add stages the given paths. Failures are reported as errors.ErrAddFailed.
func (r *Repo) Add(ctx context.Context, paths ...string) error {
	if err := r.checkDir(); err != nil {
		return err
	}
	args := append([]string{"--"}, paths...)
	if _, err := r.Run(ctx, "add", args); err != nil {
		return scaffkiterrors.NewAddFailedError(paths, err)
	}
	return nil
}

// AddAll stages all changes including untracked files
func (r *Repo) AddAll(ctx context.Context) error {
	if err := r.checkDir(); err != nil {
		return err
	}
	if _, err := r.Run(ctx, "add", []string{"--all"}); err != nil {
		return scaffkiterrors.NewAddFailedError([]string{"--all"}, err)
	}
	return nil
}

// CheckIgnore returns the subset of paths git ignores. git exits 1 when
// none is ignored, which is not a failure.
func (r *Repo) CheckIgnore(ctx context.Context, paths ...string) ([]string, error) {
	if err := r.checkDir(); err != nil {
		return nil, err
	}
	args := append([]string{"-z", "--"}, paths...)
	ignored, err := r.runNul(ctx, "check-ignore", args, Quiet(), AllowStatus(1))
	if err != nil {
		return nil, scaffkiterrors.NewCheckIgnoreFailedError(err)
	}
	return ignored, nil
}

// IsIgnored reports whether a single path is ignored
func (r *Repo) IsIgnored(ctx context.Context, path string) (bool, error) {
	ignored, err := r.CheckIgnore(ctx, path)
	if err != nil {
		return false, err
	}
	return len(ignored) > 0, nil
}

// LsFiles returns tracked files relative to the repository directory,
// optionally limited to paths
func (r *Repo) LsFiles(ctx context.Context, paths ...string) ([]string, error) {
	args := []string{"-z"}
	if len(paths) > 0 {
		args = append(append(args, "--"), paths...)
	}
	files, err := r.runNul(ctx, "ls-files", args, Quiet())
	if err != nil {
		return nil, fmt.Errorf("failed to list tracked files: %w", err)
	}
	return files, nil
}

// LsFilesAsAbspath is LsFiles resolved against the repository directory
func (r *Repo) LsFilesAsAbspath(ctx context.Context, paths ...string) ([]abspath.Path, error) {
	files, err := r.LsFiles(ctx, paths...)
	if err != nil {
		return nil, err
	}
	resolved := make([]abspath.Path, 0, len(files))
	for _, f := range files {
		resolved = append(resolved, r.dir.Add(f))
	}
	return resolved, nil
}

// HasStagedChanges checks if there are staged changes
func (r *Repo) HasStagedChanges(ctx context.Context) (bool, error) {
	out, err := r.runTrimmed(ctx, "diff", []string{"--cached", "--shortstat"}, Quiet())
	if err != nil {
		return false, fmt.Errorf("failed to check staged changes: %w", err)
	}
	return out != "", nil
}
