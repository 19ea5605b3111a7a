package git

import (
	"context"
	"fmt"
	"strings"
)

// Remote is a configured remote and its fetch URL
type Remote struct {
	Name string
	URL  string
}

// Remotes returns the configured remotes in the order git lists them
func (r *Repo) Remotes(ctx context.Context) ([]Remote, error) {
	lines, err := r.Exec(ctx, "remote", []string{"-v"}, Quiet())
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}
	return parseRemotes(lines), nil
}

// parseRemotes reads "name\turl (fetch)" lines, keeping fetch URLs only.
// URLs may contain spaces, so only the tab and the trailing marker delimit.
func parseRemotes(lines []string) []Remote {
	remotes := []Remote{}
	for _, line := range lines {
		name, rest, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		url, isFetch := strings.CutSuffix(rest, " (fetch)")
		if !isFetch {
			continue
		}
		remotes = append(remotes, Remote{Name: name, URL: url})
	}
	return remotes
}

// AddRemote adds a remote
func (r *Repo) AddRemote(ctx context.Context, name, url string) error {
	if _, err := r.Run(ctx, "remote", []string{"add", name, url}); err != nil {
		return fmt.Errorf("failed to add remote %s: %w", name, err)
	}
	return nil
}

// RemoveRemote removes a remote and its tracking branches
func (r *Repo) RemoveRemote(ctx context.Context, name string) error {
	if _, err := r.Run(ctx, "remote", []string{"remove", name}); err != nil {
		return fmt.Errorf("failed to remove remote %s: %w", name, err)
	}
	return nil
}

// RenameRemote renames a remote
func (r *Repo) RenameRemote(ctx context.Context, oldName, newName string) error {
	if _, err := r.Run(ctx, "remote", []string{"rename", oldName, newName}); err != nil {
		return fmt.Errorf("failed to rename remote %s to %s: %w", oldName, newName, err)
	}
	return nil
}

// FetchOptions controls Fetch
type FetchOptions struct {
	Prune bool
	Tags  bool
}

// Fetch fetches from a remote, or from all remotes when remote is empty
func (r *Repo) Fetch(ctx context.Context, remote string, opts FetchOptions) error {
	args := []string{}
	if opts.Prune {
		args = append(args, "--prune")
	}
	if opts.Tags {
		args = append(args, "--tags")
	}
	if remote == "" {
		args = append(args, "--all")
	} else {
		args = append(args, remote)
	}
	if _, err := r.Run(ctx, "fetch", args); err != nil {
		return fmt.Errorf("failed to fetch %s: %w", remote, err)
	}
	return nil
}
