package git

import (
	"context"
	"fmt"

	"scaffkit.dev/scaffkit/internal/abspath"
)

// InitOptions controls Init
type InitOptions struct {
	// Branch names the initial branch; git's default is used when empty
	Branch string
	Bare   bool
}

// Init creates the repository directory if needed and runs git init in it
func (r *Repo) Init(ctx context.Context, opts InitOptions) error {
	if !r.dir.IsSet() {
		return r.checkDir()
	}
	if err := r.dir.Mkdirp(); err != nil {
		return err
	}
	args := []string{}
	if opts.Branch != "" {
		args = append(args, "--initial-branch="+opts.Branch)
	}
	if opts.Bare {
		args = append(args, "--bare")
	}
	if _, err := r.Run(ctx, "init", args); err != nil {
		return fmt.Errorf("failed to initialize repository in %s: %w", r.dir, err)
	}
	return nil
}

// CloneOptions controls Clone
type CloneOptions struct {
	// Origin names the remote instead of "origin"
	Origin string
	// Branch checks out this branch instead of the remote's HEAD
	Branch string
}

// Clone clones url into dest and returns a Repo bound to dest with the same
// settings as r. r's own directory is not used.
func (r *Repo) Clone(ctx context.Context, url string, dest abspath.Path, opts CloneOptions) (*Repo, error) {
	if !dest.IsSet() {
		return nil, fmt.Errorf("clone destination not set")
	}
	parent := dest.Parent()
	if err := parent.Mkdirp(); err != nil {
		return nil, err
	}

	args := []string{}
	if opts.Origin != "" {
		args = append(args, "--origin", opts.Origin)
	}
	if opts.Branch != "" {
		args = append(args, "--branch", opts.Branch)
	}
	args = append(args, "--", url, dest.String())

	if _, err := r.at(parent).Run(ctx, "clone", args); err != nil {
		return nil, fmt.Errorf("failed to clone %s: %w", url, err)
	}
	return r.at(dest), nil
}
